package views

import (
	"github.com/rivo/tview"

	"github.com/lfelipe/papo/internal/tui/ui"
)

// MenuAction identifies a context menu entry.
type MenuAction int

const (
	ActionCopy MenuAction = iota
	ActionCut
	ActionPaste
)

const menuWidth = 14

type menuEntry struct {
	label  string
	action MenuAction
}

// ContextMenu is the floating right-click menu over the text area. With a
// selection it offers copy and cut, without one only paste. It floats at
// the click point; the page manager adds it without resizing so SetRect
// placement sticks.
type ContextMenu struct {
	*tview.List
	theme *ui.Theme

	entries  []menuEntry
	onAction func(a MenuAction)
}

// NewContextMenu creates the menu overlay.
func NewContextMenu(theme *ui.Theme) *ContextMenu {
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(theme.FgColor)
	list.SetSelectedTextColor(theme.SelectFg)
	list.SetSelectedBackgroundColor(theme.SelectBg)
	list.SetBackgroundColor(theme.BgColor)
	list.SetBorder(true)
	list.SetBorderColor(theme.BorderFocusColor)

	m := &ContextMenu{List: list, theme: theme}
	list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		if index < len(m.entries) && m.onAction != nil {
			m.onAction(m.entries[index].action)
		}
	})
	return m
}

// Name implements ui.Component.
func (m *ContextMenu) Name() string { return "menu" }

// Start implements ui.Component.
func (m *ContextMenu) Start() {}

// Stop implements ui.Component.
func (m *ContextMenu) Stop() {}

// Hints implements ui.Component.
func (m *ContextMenu) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "ok"},
		{Key: "Esc", Description: "fechar"},
	}
}

// SetOnAction sets the entry selection callback.
func (m *ContextMenu) SetOnAction(fn func(a MenuAction)) {
	m.onAction = fn
}

// Open populates the menu for the current selection state and positions
// it at the click point, clamped to the screen.
func (m *ContextMenu) Open(x, y, screenW, screenH int, hasSelection bool) {
	m.entries = m.entries[:0]
	if hasSelection {
		m.entries = append(m.entries,
			menuEntry{"Copiar", ActionCopy},
			menuEntry{"Recortar", ActionCut})
	} else {
		m.entries = append(m.entries, menuEntry{"Colar", ActionPaste})
	}

	m.Clear()
	for _, e := range m.entries {
		m.AddItem(e.label, "", 0, nil)
	}
	m.SetCurrentItem(0)

	h := len(m.entries) + 2
	if x+menuWidth > screenW {
		x = screenW - menuWidth
	}
	if y+h > screenH {
		y = screenH - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	m.SetRect(x, y, menuWidth, h)
}

// Contains reports whether the point falls inside the open menu.
func (m *ContextMenu) Contains(x, y int) bool {
	rx, ry, rw, rh := m.GetRect()
	return x >= rx && x < rx+rw && y >= ry && y < ry+rh
}
