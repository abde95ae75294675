package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor          tcell.Color
	FgColor          tcell.Color
	BorderColor      tcell.Color
	BorderFocusColor tcell.Color
	TitleColor       tcell.Color
	PlaceholderColor tcell.Color
	MenuKeyColor     tcell.Color

	AttachmentFg tcell.Color
	AttachmentBg tcell.Color
	RemovingFg   tcell.Color
	ProgressFg   tcell.Color
	TypingFg     tcell.Color

	SelectFg tcell.Color
	SelectBg tcell.Color

	FlashInfoColor tcell.Color
	FlashWarnColor tcell.Color
	FlashErrColor  tcell.Color
}

// DefaultTheme returns the dark WhatsApp-web-ish palette.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:          tcell.ColorBlack,
		FgColor:          tcell.ColorGainsboro,
		BorderColor:      tcell.ColorDarkSeaGreen,
		BorderFocusColor: tcell.ColorMediumSpringGreen,
		TitleColor:       tcell.ColorMediumSpringGreen,
		PlaceholderColor: tcell.ColorGray,
		MenuKeyColor:     tcell.ColorMediumSpringGreen,

		AttachmentFg: tcell.ColorBlack,
		AttachmentBg: tcell.ColorDarkSeaGreen,
		RemovingFg:   tcell.ColorGray,
		ProgressFg:   tcell.ColorKhaki,
		TypingFg:     tcell.ColorKhaki,

		SelectFg: tcell.ColorBlack,
		SelectBg: tcell.ColorMediumSpringGreen,

		FlashInfoColor: tcell.ColorNavajoWhite,
		FlashWarnColor: tcell.ColorOrange,
		FlashErrColor:  tcell.ColorOrangeRed,
	}
}

// ColorName returns a tview-compatible color name string.
func ColorName(c tcell.Color) string {
	for name, val := range tcell.ColorNames {
		if val == c {
			return name
		}
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
