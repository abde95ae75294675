package composer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lfelipe/papo/internal/bridge"
	"github.com/lfelipe/papo/internal/bus"
	"github.com/lfelipe/papo/internal/fileuri"
)

// ErrNothingToAttach is returned when a drop payload carries neither path
// metadata nor raw file data.
var ErrNothingToAttach = errors.New("nothing attachable in payload")

// readChunk is the streaming read granularity for progress reporting.
const readChunk = 64 << 10

// Blob is a raw file payload without a backing path: clipboard image data,
// or a drag originating outside the file system.
type Blob struct {
	Name   string
	MIME   string
	Size   int64 // <= 0 when unknown
	Reader io.Reader
}

// DropPayload carries everything a single drop event may hold.
type DropPayload struct {
	Paths   []string // native path metadata from file handles
	URIList string   // text/uri-list payload
	Text    string   // text/plain payload
	Blobs   []Blob   // raw data when no path metadata exists
}

// ExtractPaths runs the drop extraction ladder: native paths first, then
// decoded text/uri-list entries, then file:// lines in plain text.
func ExtractPaths(p DropPayload) []string {
	if len(p.Paths) > 0 {
		return p.Paths
	}
	if list := fileuri.ParseList(p.URIList); len(list) > 0 {
		return list
	}
	if lines := fileuri.ParseLines(p.Text); len(lines) > 0 {
		return lines
	}
	return nil
}

// HandleDrop ingests one drop payload: path-like content is appended
// directly, raw blobs are imported through the bridge with per-item
// progress. A payload with nothing usable fails with ErrNothingToAttach.
func (c *Composer) HandleDrop(ctx context.Context, p DropPayload) error {
	if !c.AttachmentsEnabled() {
		return nil
	}
	if paths := ExtractPaths(p); len(paths) > 0 {
		c.AddPaths(ctx, paths...)
		return nil
	}
	if len(p.Blobs) > 0 {
		c.IngestBlobs(ctx, p.Blobs)
		return nil
	}
	c.publish(bus.KindAttachFailed, "não foi possível anexar o conteúdo")
	return ErrNothingToAttach
}

// IngestBlobs imports raw payloads one by one. Each failure is terminal
// only for its own item; the remaining blobs still run.
func (c *Composer) IngestBlobs(ctx context.Context, blobs []Blob) {
	for _, b := range blobs {
		if path, err := c.ingestBlob(ctx, b); err != nil {
			c.publish(bus.KindAttachFailed, fmt.Sprintf("%s: %v", b.Name, err))
		} else {
			c.AddPaths(ctx, path)
		}
	}
}

// HandlePasteText decides whether pasted text is really a file payload.
// When it consists of file:// lines, the bridge's resolved clipboard paths
// are appended (falling back to decoding the lines themselves) and true is
// returned so the caller suppresses default text insertion.
func (c *Composer) HandlePasteText(ctx context.Context, text string) bool {
	if !c.AttachmentsEnabled() || !fileuri.IsFileLines(text) {
		return false
	}
	paths, err := c.br.GetClipboardFilePaths(ctx)
	if err != nil || len(paths) == 0 {
		paths = fileuri.ParseLines(text)
	}
	if len(paths) == 0 {
		return false
	}
	c.AddPaths(ctx, paths...)
	return true
}

// PasteFromMenu implements the context menu's paste action: bridge file
// paths win over text. When it returns false the caller falls back to
// inserting clipboard text at the cursor.
func (c *Composer) PasteFromMenu(ctx context.Context) (attached bool) {
	if !c.AttachmentsEnabled() {
		return false
	}
	if has, err := c.br.ClipboardHasFileLikeData(ctx); err != nil || !has {
		return false
	}
	paths, err := c.br.GetClipboardFilePaths(ctx)
	if err != nil || len(paths) == 0 {
		return false
	}
	c.AddPaths(ctx, paths...)
	return true
}

func (c *Composer) ingestBlob(ctx context.Context, b Blob) (string, error) {
	id := c.imports.Begin(b.Name)
	c.publish(bus.KindImportProgress, id)

	data, err := c.readWithProgress(id, b)
	if err != nil {
		_ = c.imports.Advance(id, StageError)
		return "", fmt.Errorf("read: %w", err)
	}
	c.imports.SetPercent(id, 100)
	if err := c.imports.Advance(id, StageSaving); err != nil {
		return "", err
	}
	c.publish(bus.KindImportProgress, id)

	var path string
	if strings.HasPrefix(b.MIME, "image/") {
		ext := bridge.SanitizeExt(strings.TrimPrefix(b.MIME, "image/"))
		path, err = c.br.SaveClipboardImage(ctx, data, ext)
	} else {
		path, err = c.br.SaveClipboardFileData(ctx, data, b.Name)
	}
	if err != nil {
		_ = c.imports.Advance(id, StageError)
		return "", fmt.Errorf("save: %w", err)
	}

	_ = c.imports.Advance(id, StageDone)
	return path, nil
}

// readWithProgress drains the blob reader in chunks, updating the import
// entry's percent as bytes arrive when the total size is known.
func (c *Composer) readWithProgress(id string, b Blob) ([]byte, error) {
	if b.Reader == nil {
		return nil, errors.New("no data")
	}
	var buf bytes.Buffer
	chunk := make([]byte, readChunk)
	for {
		n, err := b.Reader.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if b.Size > 0 {
				c.imports.SetPercent(id, int(buf.Len()*100/int(b.Size)))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if buf.Len() == 0 {
		return nil, errors.New("no data")
	}
	return buf.Bytes(), nil
}
