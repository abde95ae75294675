package bridge

import (
	"sync"

	"golang.design/x/clipboard"
)

// System clipboard access via golang.design/x/clipboard. Init can fail on
// headless terminals; in that case reads/writes fall back to an in-process
// buffer so copy/cut/paste inside the app keep working.
var (
	clipOnce sync.Once
	clipErr  error

	fallbackMu  sync.Mutex
	fallbackBuf string
)

func initClipboard() error {
	clipOnce.Do(func() {
		clipErr = clipboard.Init()
	})
	return clipErr
}

// ReadClipboardText returns the clipboard's plain-text content, if any.
func ReadClipboardText() string {
	if initClipboard() != nil {
		fallbackMu.Lock()
		defer fallbackMu.Unlock()
		return fallbackBuf
	}
	return string(clipboard.Read(clipboard.FmtText))
}

// WriteClipboardText stores text on the system clipboard.
func WriteClipboardText(text string) {
	if initClipboard() != nil {
		fallbackMu.Lock()
		fallbackBuf = text
		fallbackMu.Unlock()
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
}

// ReadClipboardImage returns raw image bytes from the clipboard, or nil.
func ReadClipboardImage() []byte {
	if initClipboard() != nil {
		return nil
	}
	return clipboard.Read(clipboard.FmtImage)
}
