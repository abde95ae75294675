package composer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lfelipe/papo/internal/bridge"
)

// fakeBridge is an in-memory Bridge for tests. An optional gate blocks
// GetFileInfo until released, to exercise superseded metadata loads.
type fakeBridge struct {
	mu sync.Mutex

	pickPaths []string
	pickErr   error

	gate chan struct{}

	infoCalls  []string
	savedExts  []string
	savedNames []string
	saveErr    error
	saveSeq    int

	clipPaths   []string
	hasFileData bool
}

func (f *fakeBridge) PickFiles(context.Context) ([]string, error) {
	return f.pickPaths, f.pickErr
}

func (f *fakeBridge) GetFileInfo(_ context.Context, path string) (*bridge.FileInfo, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	f.infoCalls = append(f.infoCalls, path)
	f.mu.Unlock()
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return &bridge.FileInfo{
		Name:    filepath.Base(path),
		Size:    int64(len(path)),
		Ext:     ext,
		IsImage: ext == "png",
	}, nil
}

func (f *fakeBridge) GetFilePreview(context.Context, string) (*bridge.Preview, error) {
	return nil, nil
}

func (f *fakeBridge) SaveClipboardImage(_ context.Context, data []byte, ext string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saveSeq++
	f.savedExts = append(f.savedExts, ext)
	return fmt.Sprintf("/spool/img-%d.%s", f.saveSeq, ext), nil
}

func (f *fakeBridge) SaveClipboardFileData(_ context.Context, data []byte, name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saveSeq++
	f.savedNames = append(f.savedNames, name)
	return fmt.Sprintf("/spool/file-%d-%s", f.saveSeq, name), nil
}

func (f *fakeBridge) GetClipboardFilePaths(context.Context) ([]string, error) {
	return f.clipPaths, nil
}

func (f *fakeBridge) ClipboardHasFileLikeData(context.Context) (bool, error) {
	return f.hasFileData, nil
}
