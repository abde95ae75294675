package bridge

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lfelipe/papo/internal/fileuri"
)

// maxPreviewBytes caps how much of a file is loaded for a preview.
const maxPreviewBytes = 8 << 20

var imageExts = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
}

// Local implements Bridge against the local OS: the picker is an external
// command, file introspection goes through the file system, and clipboard
// data is spooled to disk before attaching.
type Local struct {
	spoolDir  string
	pickerCmd string
	log       *zap.Logger
}

// NewLocal creates a Local bridge. spoolDir is created if missing.
func NewLocal(spoolDir, pickerCmd string, log *zap.Logger) (*Local, error) {
	if err := os.MkdirAll(spoolDir, 0700); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	return &Local{spoolDir: spoolDir, pickerCmd: pickerCmd, log: log}, nil
}

// PickFiles runs the configured picker command and returns one path per
// stdout line. A non-zero exit is treated as the user canceling.
func (l *Local) PickFiles(ctx context.Context) ([]string, error) {
	if l.pickerCmd == "" {
		return nil, errors.New("no picker command configured")
	}
	out, err := exec.CommandContext(ctx, "sh", "-c", l.pickerCmd).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, nil
		}
		return nil, fmt.Errorf("run picker: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// GetFileInfo resolves file metadata for display in the attachment bar.
func (l *Local) GetFileInfo(_ context.Context, path string) (*FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	_, isImage := imageExts[ext]
	return &FileInfo{
		Name:    filepath.Base(path),
		Size:    st.Size(),
		Ext:     ext,
		IsImage: isImage,
	}, nil
}

// GetFilePreview loads image bytes for preview rendering. Non-image files
// have no preview.
func (l *Local) GetFilePreview(ctx context.Context, path string) (*Preview, error) {
	info, err := l.GetFileInfo(ctx, path)
	if err != nil {
		return nil, err
	}
	if !info.IsImage || info.Size > maxPreviewBytes {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Preview{MIME: imageExts[info.Ext], Data: data}, nil
}

// SaveClipboardImage writes raw image data into the spool dir.
func (l *Local) SaveClipboardImage(_ context.Context, data []byte, ext string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image data")
	}
	ext = SanitizeExt(ext)
	name := fmt.Sprintf("clip-%s.%s", shortID(), ext)
	return l.spool(name, data)
}

// SaveClipboardFileData writes arbitrary clipboard data into the spool dir.
func (l *Local) SaveClipboardFileData(_ context.Context, data []byte, suggestedName string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty file data")
	}
	base := SanitizeName(suggestedName)
	if base == "" {
		base = "clip.bin"
	}
	return l.spool(fmt.Sprintf("%s-%s", shortID(), base), data)
}

// GetClipboardFilePaths resolves file paths from the clipboard text: decoded
// file:// lines, or absolute paths that exist on disk.
func (l *Local) GetClipboardFilePaths(_ context.Context) ([]string, error) {
	text := ReadClipboardText()
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var paths []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if p, ok := fileuri.Decode(line); ok {
			paths = append(paths, p)
			continue
		}
		if filepath.IsAbs(line) {
			if _, err := os.Stat(line); err == nil {
				paths = append(paths, line)
			}
		}
	}
	return paths, nil
}

// ClipboardHasFileLikeData reports whether the clipboard holds an image or
// resolvable file paths.
func (l *Local) ClipboardHasFileLikeData(ctx context.Context) (bool, error) {
	if len(ReadClipboardImage()) > 0 {
		return true, nil
	}
	paths, err := l.GetClipboardFilePaths(ctx)
	if err != nil {
		return false, err
	}
	return len(paths) > 0, nil
}

func (l *Local) spool(name string, data []byte) (string, error) {
	path := filepath.Join(l.spoolDir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("spool clipboard data: %w", err)
	}
	if l.log != nil {
		l.log.Info("clipboard data spooled",
			zap.String("path", path),
			zap.Int("bytes", len(data)))
	}
	return path, nil
}

func shortID() string {
	return uuid.NewString()[:8]
}

// SanitizeExt reduces a raw extension (possibly a MIME subtype like
// "svg+xml") to lower-case alphanumerics. Empty input falls back to "png",
// the common case for pasted screenshots.
func SanitizeExt(ext string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(ext) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "png"
	}
	return b.String()
}

// SanitizeName strips path separators and control characters from a
// suggested file name.
func SanitizeName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20, r == '/', r == '\\', r == ':':
			// skip
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
