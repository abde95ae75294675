package views

import "strings"

// strippedRanges lists Unicode ranges that break cell-width accounting in
// terminal emulators: skin tone modifiers, the zero width joiner gluing
// multi-person emoji, and variation selectors. Dropping them collapses a
// sequence like 👍🏽 to its base 👍, which renders at a stable two cells.
var strippedRanges = [][2]rune{
	{0x1F3FB, 0x1F3FF}, // skin tone modifiers
	{0x200D, 0x200D},   // zero width joiner
	{0xFE00, 0xFE0F},   // variation selectors
	{0xE0100, 0xE01EF}, // variation selectors supplement
}

// sanitizeForTerminal strips codepoints tcell cannot size reliably.
func sanitizeForTerminal(s string) string {
	return strings.Map(func(r rune) rune {
		for _, rng := range strippedRanges {
			if r >= rng[0] && r <= rng[1] {
				return -1
			}
		}
		return r
	}, s)
}
