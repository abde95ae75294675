package views

import (
	"fmt"
	"path/filepath"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"github.com/lfelipe/papo/internal/bridge"
	"github.com/lfelipe/papo/internal/composer"
	"github.com/lfelipe/papo/internal/tui/ui"
)

// maxChipWidth caps one attachment chip, file name included.
const maxChipWidth = 28

// AttachmentBar renders the pending attachments as a row of chips.
// Clicking a chip removes its attachment.
type AttachmentBar struct {
	*tview.TextView
	theme *ui.Theme
	core  *composer.Composer
}

// NewAttachmentBar creates the chip row over the composer core.
func NewAttachmentBar(theme *ui.Theme, core *composer.Composer) *AttachmentBar {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWrap(false)
	tv.SetBackgroundColor(theme.BgColor)

	ab := &AttachmentBar{TextView: tv, theme: theme, core: core}
	tv.SetHighlightedFunc(func(added, _, _ []string) {
		if len(added) == 0 {
			return
		}
		ab.core.RemoveAttachment(added[0])
		tv.Highlight()
	})
	return ab
}

// DesiredHeight is 1 when there is anything to show, else 0.
func (ab *AttachmentBar) DesiredHeight() int {
	if ab.core.Attachments().Count() == 0 {
		return 0
	}
	return 1
}

// Refresh re-renders the chips from the pending list.
func (ab *AttachmentBar) Refresh() {
	ab.Clear()

	pending := ab.core.Attachments()
	paths := pending.Paths()
	if len(paths) == 0 {
		return
	}

	chips := make([]string, 0, len(paths))
	for _, path := range paths {
		label := chipLabel(path, pending.Info(path))
		fg := ui.ColorName(ab.theme.AttachmentFg)
		bg := ui.ColorName(ab.theme.AttachmentBg)
		if pending.Removing(path) {
			fg = ui.ColorName(ab.theme.RemovingFg)
			bg = ui.ColorName(ab.theme.BgColor)
		}
		chips = append(chips, fmt.Sprintf(`["%s"][%s:%s] %s ✕ [-:-:-][""]`,
			path, fg, bg, tview.Escape(label)))
	}
	_, _ = fmt.Fprint(ab, " "+strings.Join(chips, " "))
}

// chipLabel builds "name (size)" truncated to the chip width. Info may
// still be loading, in which case only the path's base name shows.
func chipLabel(path string, info *bridge.FileInfo) string {
	label := filepath.Base(path)
	if info != nil {
		label = fmt.Sprintf("%s (%s)", info.Name, humanSize(info.Size))
	}
	return runewidth.Truncate(label, maxChipWidth, "…")
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.0f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
