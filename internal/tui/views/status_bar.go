package views

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"github.com/lfelipe/papo/internal/tui/ui"
)

// StatusBar is the bottom line: typing indicator, attachment count,
// flash messages and the active view's key hints.
type StatusBar struct {
	*tview.TextView
	theme *ui.Theme
	flash *ui.FlashModel

	typing      bool
	attachments int
	hints       []ui.MenuHint
}

// NewStatusBar creates the status bar over the shared flash model.
func NewStatusBar(theme *ui.Theme, flash *ui.FlashModel) *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv, theme: theme, flash: flash}
}

// SetTyping updates the typing indicator.
func (sb *StatusBar) SetTyping(typing bool) {
	sb.typing = typing
	sb.Render()
}

// SetAttachments updates the pending attachment count.
func (sb *StatusBar) SetAttachments(n int) {
	sb.attachments = n
	sb.Render()
}

// SetHints replaces the key hints for the focused view.
func (sb *StatusBar) SetHints(hints []ui.MenuHint) {
	sb.hints = hints
	sb.Render()
}

// Render redraws the bar from current state.
func (sb *StatusBar) Render() {
	sb.Clear()

	var parts []string
	if sb.typing {
		parts = append(parts, fmt.Sprintf("[%s]digitando…[-]", ui.ColorName(sb.theme.TypingFg)))
	}
	if sb.attachments > 0 {
		parts = append(parts, fmt.Sprintf("📎 %d", sb.attachments))
	}
	if msg := sb.flash.Get(); msg != nil {
		parts = append(parts, fmt.Sprintf("[%s]%s[-]",
			sb.flash.Color(sb.theme, msg.Level), tview.Escape(msg.Text)))
	}

	var hints []string
	key := ui.ColorName(sb.theme.MenuKeyColor)
	for _, h := range sb.hints {
		hints = append(hints, fmt.Sprintf("[%s::b]%s[-:-:-] %s", key, h.Key, h.Description))
	}

	line := " " + strings.Join(parts, " | ")
	if len(hints) > 0 {
		if len(parts) > 0 {
			line += " | "
		}
		line += strings.Join(hints, "  ")
	}
	_, _ = fmt.Fprint(sb, line)
}
