package views

import (
	"bytes"
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lfelipe/papo/internal/bridge"
	"github.com/lfelipe/papo/internal/composer"
	"github.com/lfelipe/papo/internal/tui/ui"
)

// inputArea wraps tview.TextArea to reroute Enter and bracketed paste.
// Enter submits, Alt+Enter inserts a newline (terminals cannot see
// Shift+Enter), and pasted text is offered to the classifier before the
// default insertion runs.
type inputArea struct {
	*tview.TextArea
	onSubmit func()
	onPaste  func(text string) (consumed bool)
}

func (ia *inputArea) InputHandler() func(*tcell.EventKey, func(p tview.Primitive)) {
	inner := ia.TextArea.InputHandler()
	return func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if event.Key() == tcell.KeyEnter {
			if event.Modifiers()&tcell.ModAlt != 0 {
				inner(tcell.NewEventKey(tcell.KeyEnter, '\n', tcell.ModNone), setFocus)
				return
			}
			if ia.onSubmit != nil {
				ia.onSubmit()
				return
			}
		}
		inner(event, setFocus)
	}
}

func (ia *inputArea) PasteHandler() func(string, func(p tview.Primitive)) {
	inner := ia.TextArea.PasteHandler()
	return func(pastedText string, setFocus func(p tview.Primitive)) {
		if ia.onPaste != nil && ia.onPaste(pastedText) {
			return
		}
		inner(pastedText, setFocus)
	}
}

// ComposerView binds the composer component to the screen: text area on
// the bottom, attachment chips and import progress stacked above it.
type ComposerView struct {
	*tview.Flex
	theme *ui.Theme
	core  *composer.Composer

	input    *inputArea
	attach   *AttachmentBar
	progress *ProgressBar

	onSubmit func()
}

// NewComposerView creates the composer widget over its headless core.
func NewComposerView(theme *ui.Theme, core *composer.Composer) *ComposerView {
	ta := tview.NewTextArea().
		SetPlaceholder(core.Placeholder()).
		SetWordWrap(true)
	ta.SetPlaceholderStyle(tcell.StyleDefault.
		Background(theme.BgColor).Foreground(theme.PlaceholderColor))
	ta.SetTextStyle(tcell.StyleDefault.
		Background(theme.BgColor).Foreground(theme.FgColor))
	ta.SetBorder(true)
	ta.SetBorderColor(theme.BorderColor)
	ta.SetBackgroundColor(theme.BgColor)
	ta.SetTitle(" papo ")
	ta.SetTitleColor(theme.TitleColor)

	cv := &ComposerView{
		Flex:     tview.NewFlex().SetDirection(tview.FlexRow),
		theme:    theme,
		core:     core,
		input:    &inputArea{TextArea: ta},
		attach:   NewAttachmentBar(theme, core),
		progress: NewProgressBar(theme, core),
	}

	cv.Flex.
		AddItem(cv.progress, 0, 0, false).
		AddItem(cv.attach, 0, 0, false).
		AddItem(cv.input, 3, 0, true)

	cv.input.onSubmit = func() {
		if cv.onSubmit != nil {
			cv.onSubmit()
		}
	}
	cv.input.onPaste = func(text string) bool {
		return core.HandlePasteText(context.Background(), text)
	}
	ta.SetChangedFunc(func() {
		core.SetDraft(ta.GetText())
		cv.resize()
	})
	core.SetOnDraftChanged(func(text string) {
		if ta.GetText() != text {
			ta.SetText(text, true)
		}
		cv.resize()
	})

	return cv
}

// Name implements ui.Component.
func (cv *ComposerView) Name() string { return "composer" }

// Start implements ui.Component.
func (cv *ComposerView) Start() {}

// Stop implements ui.Component.
func (cv *ComposerView) Stop() { cv.core.Close() }

// Hints implements ui.Component.
func (cv *ComposerView) Hints() []ui.MenuHint {
	hints := []ui.MenuHint{
		{Key: "Enter", Description: "enviar"},
		{Key: "Alt+Enter", Description: "nova linha"},
		{Key: "Ctrl+E", Description: "emoji"},
	}
	if cv.core.AttachmentsEnabled() {
		hints = append(hints,
			ui.MenuHint{Key: "Ctrl+O", Description: "anexar"},
			ui.MenuHint{Key: "Ctrl+X", Description: "limpar anexos"})
	}
	return hints
}

// SetOnSubmit sets the Enter handler.
func (cv *ComposerView) SetOnSubmit(fn func()) {
	cv.onSubmit = fn
}

// Input returns the text area primitive for focus management.
func (cv *ComposerView) Input() tview.Primitive { return cv.input }

// InputRect reports the text area's screen rectangle, for hit testing
// right clicks.
func (cv *ComposerView) InputRect() (x, y, w, h int) {
	return cv.input.GetRect()
}

// HasSelection reports whether the text area has a non-empty selection.
func (cv *ComposerView) HasSelection() bool {
	text, _, _ := cv.input.GetSelection()
	return text != ""
}

// SelectionText returns the selected text.
func (cv *ComposerView) SelectionText() string {
	text, _, _ := cv.input.GetSelection()
	return text
}

// CutSelection removes the selected text and leaves the cursor at the
// cut point. Returns the removed text.
func (cv *ComposerView) CutSelection() string {
	text, start, end := cv.input.GetSelection()
	if text == "" {
		return ""
	}
	cv.input.Replace(start, end, "")
	return text
}

// InsertAtCursor inserts text at the cursor, replacing any selection.
func (cv *ComposerView) InsertAtCursor(text string) {
	_, start, end := cv.input.GetSelection()
	cv.input.Replace(start, end, text)
}

// PasteFromMenu runs the context menu paste action: bridge file paths
// win, then a clipboard image ingested with progress, then clipboard
// text inserted at the cursor.
func (cv *ComposerView) PasteFromMenu() {
	ctx := context.Background()
	if cv.core.PasteFromMenu(ctx) {
		return
	}
	if img := bridge.ReadClipboardImage(); len(img) > 0 && cv.core.AttachmentsEnabled() {
		go cv.core.IngestBlobs(ctx, []composer.Blob{{
			Name:   "imagem colada",
			MIME:   "image/png",
			Size:   int64(len(img)),
			Reader: bytes.NewReader(img),
		}})
		return
	}
	if text := bridge.ReadClipboardText(); text != "" {
		if !cv.core.HandlePasteText(ctx, text) {
			cv.InsertAtCursor(text)
		}
	}
}

// SetDisabled mirrors the component's disabled state onto the widget.
func (cv *ComposerView) SetDisabled(disabled bool) {
	cv.core.SetDisabled(disabled)
	cv.input.SetDisabled(disabled)
}

// Refresh re-renders the attachment and progress rows.
func (cv *ComposerView) Refresh() {
	cv.attach.Refresh()
	cv.progress.Refresh()
	cv.Flex.ResizeItem(cv.attach, cv.attach.DesiredHeight(), 0)
	cv.Flex.ResizeItem(cv.progress, cv.progress.DesiredHeight(), 0)
	cv.resize()
}

// resize grows the text area with the draft, up to four lines.
func (cv *ComposerView) resize() {
	lines := strings.Count(cv.core.Draft(), "\n") + 1
	if lines > 4 {
		lines = 4
	}
	cv.Flex.ResizeItem(cv.input, lines+2, 0)
}
