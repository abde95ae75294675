package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lfelipe/papo/internal/emoji"
	"github.com/lfelipe/papo/internal/tui/ui"
)

// emojiCols is the grid width of the symbol table.
const emojiCols = 8

// EmojiPicker is the floating emoji selection overlay: a search field, a
// category list and a symbol grid. Search overrides category browsing;
// picking a symbol keeps the overlay open.
type EmojiPicker struct {
	*tview.Flex
	theme   *ui.Theme
	catalog *emoji.Catalog

	search     *tview.InputField
	categories *tview.List
	grid       *tview.Table
	hint       *tview.TextView

	current []emoji.Emoji
	onPick  func(symbol string)
}

// NewEmojiPicker creates the overlay over the given catalog.
func NewEmojiPicker(theme *ui.Theme, catalog *emoji.Catalog) *EmojiPicker {
	p := &EmojiPicker{
		theme:   theme,
		catalog: catalog,
	}

	p.search = tview.NewInputField().
		SetLabel(" 🔎 ").
		SetFieldWidth(0)
	p.search.SetFieldBackgroundColor(theme.BgColor)
	p.search.SetFieldTextColor(theme.FgColor)
	p.search.SetLabelColor(theme.MenuKeyColor)
	p.search.SetChangedFunc(func(string) { p.refresh() })

	p.categories = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	p.categories.SetMainTextColor(theme.FgColor)
	p.categories.SetSelectedTextColor(theme.SelectFg)
	p.categories.SetSelectedBackgroundColor(theme.SelectBg)
	p.categories.SetBackgroundColor(theme.BgColor)
	for _, cat := range catalog.Categories {
		p.categories.AddItem(cat.Name, "", 0, nil)
	}
	p.categories.SetChangedFunc(func(int, string, string, rune) { p.refresh() })

	p.grid = tview.NewTable().
		SetSelectable(true, true)
	p.grid.SetBackgroundColor(theme.BgColor)
	p.grid.SetSelectedFunc(func(row, col int) {
		idx := row*emojiCols + col
		if idx < len(p.current) && p.onPick != nil {
			p.onPick(p.current[idx].Symbol)
		}
	})

	p.hint = tview.NewTextView().SetDynamicColors(true)
	p.hint.SetBackgroundColor(theme.BgColor)

	body := tview.NewFlex().
		AddItem(p.categories, 14, 0, false).
		AddItem(p.grid, 0, 1, false)

	p.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.search, 1, 0, true).
		AddItem(body, 0, 1, false).
		AddItem(p.hint, 1, 0, false)
	p.Flex.SetBorder(true)
	p.Flex.SetBorderColor(theme.BorderFocusColor)
	p.Flex.SetBackgroundColor(theme.BgColor)
	p.Flex.SetTitle(" emojis ")
	p.Flex.SetTitleColor(theme.TitleColor)

	return p
}

// Name implements ui.Component.
func (p *EmojiPicker) Name() string { return "emoji" }

// Start implements ui.Component. Opening resets search and category and
// shows the first category's grid.
func (p *EmojiPicker) Start() {
	p.search.SetText("")
	p.categories.SetCurrentItem(0)
	p.refresh()
}

// Stop implements ui.Component.
func (p *EmojiPicker) Stop() {}

// Hints implements ui.Component.
func (p *EmojiPicker) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "navegar"},
		{Key: "Enter", Description: "inserir"},
		{Key: "Esc", Description: "fechar"},
	}
}

// SetOnPick sets the selection callback. The overlay stays open after a
// pick.
func (p *EmojiPicker) SetOnPick(fn func(symbol string)) {
	p.onPick = fn
}

// SearchField returns the search input for focus management.
func (p *EmojiPicker) SearchField() tview.Primitive { return p.search }

// FocusTargets returns the Tab cycle order inside the overlay.
func (p *EmojiPicker) FocusTargets() []tview.Primitive {
	return []tview.Primitive{p.search, p.categories, p.grid}
}

// Place centers the overlay on the screen. The page manager adds it
// without resizing so the rect sticks.
func (p *EmojiPicker) Place(screenW, screenH int) {
	w, h := 52, 14
	if w > screenW {
		w = screenW
	}
	if h > screenH {
		h = screenH
	}
	p.SetRect((screenW-w)/2, (screenH-h)/2, w, h)
}

// Contains reports whether the point falls inside the overlay.
func (p *EmojiPicker) Contains(x, y int) bool {
	rx, ry, rw, rh := p.GetRect()
	return x >= rx && x < rx+rw && y >= ry && y < ry+rh
}

// refresh fills the grid from the search query, or from the selected
// category when the query is empty.
func (p *EmojiPicker) refresh() {
	query := p.search.GetText()
	p.hint.Clear()

	if query == "" {
		idx := p.categories.GetCurrentItem()
		if idx >= 0 && idx < len(p.catalog.Categories) {
			p.current = p.catalog.Categories[idx].Emojis
		}
	} else {
		p.current = p.catalog.Search(query)
		if len(p.current) == 0 {
			if s := p.catalog.Suggest(query); s != "" {
				_, _ = fmt.Fprintf(p.hint, " [%s]você quis dizer %q?[-]",
					ui.ColorName(p.theme.FlashInfoColor), s)
			}
		}
	}

	p.fillGrid()
}

func (p *EmojiPicker) fillGrid() {
	p.grid.Clear()
	for i, e := range p.current {
		cell := tview.NewTableCell(" " + e.Symbol + " ").
			SetAlign(tview.AlignCenter).
			SetBackgroundColor(p.theme.BgColor).
			SetSelectedStyle(tcell.StyleDefault.
				Background(p.theme.SelectBg).Foreground(p.theme.SelectFg))
		p.grid.SetCell(i/emojiCols, i%emojiCols, cell)
	}
	p.grid.Select(0, 0)
	p.grid.ScrollToBeginning()
}
