package views

import (
	"fmt"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"github.com/lfelipe/papo/internal/composer"
	"github.com/lfelipe/papo/internal/tui/ui"
)

const gaugeWidth = 10

// ProgressBar renders in-flight clipboard/drop imports, one gauge per
// entry, on a single row above the attachment chips.
type ProgressBar struct {
	*tview.TextView
	theme *ui.Theme
	core  *composer.Composer
}

// NewProgressBar creates the import progress row.
func NewProgressBar(theme *ui.Theme, core *composer.Composer) *ProgressBar {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	tv.SetBackgroundColor(theme.BgColor)
	return &ProgressBar{TextView: tv, theme: theme, core: core}
}

// DesiredHeight is 1 while any import is alive, else 0.
func (pb *ProgressBar) DesiredHeight() int {
	if len(pb.core.Imports().Snapshot()) == 0 {
		return 0
	}
	return 1
}

// Refresh re-renders the gauges from the tracker snapshot.
func (pb *ProgressBar) Refresh() {
	pb.Clear()

	entries := pb.core.Imports().Snapshot()
	if len(entries) == 0 {
		return
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, pb.gauge(e))
	}
	_, _ = fmt.Fprint(pb, " "+strings.Join(parts, "  "))
}

func (pb *ProgressBar) gauge(e composer.ImportEntry) string {
	name := tview.Escape(runewidth.Truncate(e.Name, 16, "…"))
	color := ui.ColorName(pb.theme.ProgressFg)

	switch e.Stage {
	case composer.StageDone:
		return fmt.Sprintf("[%s]%s ✓[-]", ui.ColorName(pb.theme.AttachmentBg), name)
	case composer.StageError:
		return fmt.Sprintf("[%s]%s ✗[-]", ui.ColorName(pb.theme.FlashErrColor), name)
	case composer.StageSaving:
		return fmt.Sprintf("[%s]%s salvando…[-]", color, name)
	default:
		filled := e.Percent * gaugeWidth / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)
		return fmt.Sprintf("[%s]%s %s %d%%[-]", color, name, bar, e.Percent)
	}
}
