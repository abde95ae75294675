package views

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/rivo/tview"

	"github.com/lfelipe/papo/internal/tui/ui"
)

// ThreadEntry is one rendered line of the demo thread.
type ThreadEntry struct {
	Body     string
	FilePath string // set for attachment entries
	At       time.Time
}

// Thread is the local echo message list above the composer. Submitted
// text and files land here so the component can be exercised standalone.
type Thread struct {
	*tview.TextView
	theme *ui.Theme

	mu      sync.Mutex
	entries []ThreadEntry
}

// NewThread creates the echo thread view.
func NewThread(theme *ui.Theme) *Thread {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" conversa ")
	tv.SetTitleColor(theme.TitleColor)

	return &Thread{TextView: tv, theme: theme}
}

// Name implements ui.Component.
func (t *Thread) Name() string { return "conversa" }

// Start implements ui.Component.
func (t *Thread) Start() {}

// Stop implements ui.Component.
func (t *Thread) Stop() {}

// Hints implements ui.Component.
func (t *Thread) Hints() []ui.MenuHint {
	return []ui.MenuHint{{Key: "PgUp/PgDn", Description: "rolar"}}
}

// AppendText adds a text message to the thread.
func (t *Thread) AppendText(body string) {
	t.append(ThreadEntry{Body: body, At: time.Now()})
}

// AppendFile adds an attachment message to the thread.
func (t *Thread) AppendFile(path string) {
	t.append(ThreadEntry{FilePath: path, At: time.Now()})
}

func (t *Thread) append(e ThreadEntry) {
	t.mu.Lock()
	t.entries = append(t.entries, e)
	t.mu.Unlock()
	t.render()
}

func (t *Thread) render() {
	t.mu.Lock()
	entries := make([]ThreadEntry, len(t.entries))
	copy(entries, t.entries)
	t.mu.Unlock()

	t.Clear()
	accent := ui.ColorName(t.theme.MenuKeyColor)
	for _, e := range entries {
		ts := e.At.Format("15:04")
		if e.FilePath != "" {
			_, _ = fmt.Fprintf(t, "[%s::b]você[-:-:-] [::d]%s[-:-:-]\n📎 %s\n\n",
				accent, ts, tview.Escape(filepath.Base(e.FilePath)))
			continue
		}
		_, _ = fmt.Fprintf(t, "[%s::b]você[-:-:-] [::d]%s[-:-:-]\n%s\n\n",
			accent, ts, tview.Escape(sanitizeForTerminal(e.Body)))
	}
	t.ScrollToEnd()
}
