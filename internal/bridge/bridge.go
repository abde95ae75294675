// Package bridge is the platform boundary for file-system and clipboard
// operations the composer cannot perform directly.
package bridge

import "context"

// FileInfo describes an attachable file.
type FileInfo struct {
	Name    string
	Size    int64
	Ext     string // lower-case, without the dot
	IsImage bool
}

// Preview is a renderable preview payload for a pending attachment.
type Preview struct {
	MIME string
	Data []byte
}

// Bridge is the contract the composer consumes. Every call may fail and no
// call retries; a failure is terminal for that single operation.
type Bridge interface {
	// PickFiles opens the file picker. A nil slice means the user canceled.
	PickFiles(ctx context.Context) ([]string, error)

	// GetFileInfo resolves display metadata for path.
	GetFileInfo(ctx context.Context, path string) (*FileInfo, error)

	// GetFilePreview resolves a preview payload, or nil when none applies.
	GetFilePreview(ctx context.Context, path string) (*Preview, error)

	// SaveClipboardImage persists raw image data under the given extension
	// and returns the resulting path.
	SaveClipboardImage(ctx context.Context, data []byte, ext string) (string, error)

	// SaveClipboardFileData persists arbitrary clipboard data, keeping
	// suggestedName in the resulting file name when non-empty.
	SaveClipboardFileData(ctx context.Context, data []byte, suggestedName string) (string, error)

	// GetClipboardFilePaths resolves file paths held by the clipboard.
	// A nil slice means the clipboard holds none.
	GetClipboardFilePaths(ctx context.Context) ([]string, error)

	// ClipboardHasFileLikeData reports whether the clipboard holds content
	// that can be attached as a file.
	ClipboardHasFileLikeData(ctx context.Context) (bool, error)
}
