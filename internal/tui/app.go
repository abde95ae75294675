// Package tui is the terminal shell hosting the composer component: a
// local echo thread on top, the composer below it, overlays for the
// emoji picker and the context menu, and a status bar.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/lfelipe/papo/internal/bridge"
	"github.com/lfelipe/papo/internal/bus"
	"github.com/lfelipe/papo/internal/composer"
	"github.com/lfelipe/papo/internal/config"
	"github.com/lfelipe/papo/internal/emoji"
	"github.com/lfelipe/papo/internal/tui/keys"
	"github.com/lfelipe/papo/internal/tui/ui"
	"github.com/lfelipe/papo/internal/tui/views"
)

const (
	pageMain  = "main"
	pageEmoji = "emoji"
	pageMenu  = "menu"
)

// App is the TUI application shell.
type App struct {
	app      *tview.Application
	pages    *ui.Pages
	registry *keys.Registry
	theme    *ui.Theme
	flash    *ui.FlashModel
	log      *zap.Logger
	bus      *bus.Bus

	core      *composer.Composer
	thread    *views.Thread
	compView  *views.ComposerView
	picker    *views.EmojiPicker
	menu      *views.ContextMenu
	statusBar *views.StatusBar

	screenW, screenH int

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp builds the shell and wires the composer component into it.
func NewApp(cfg *config.Config, br bridge.Bridge, b *bus.Bus, logger *zap.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()

	a := &App{
		app:      tview.NewApplication(),
		registry: keys.NewRegistry(),
		theme:    theme,
		flash:    ui.NewFlashModel(),
		log:      logger,
		bus:      b,
		ctx:      ctx,
		cancel:   cancel,
	}

	a.thread = views.NewThread(theme)
	a.core = composer.New(br, b, logger, composer.Options{
		Placeholder: cfg.Placeholder,
		OnSend: func(_ context.Context, text string) error {
			a.thread.AppendText(text)
			return nil
		},
		OnSendFile: func(_ context.Context, path string) error {
			a.thread.AppendFile(path)
			return nil
		},
	})
	a.compView = views.NewComposerView(theme, a.core)
	a.picker = views.NewEmojiPicker(theme, emoji.NewCatalog())
	a.menu = views.NewContextMenu(theme)
	a.statusBar = views.NewStatusBar(theme, a.flash)

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()

	return a
}

func (a *App) setupBindings() {
	a.registry.AddGlobal("emoji", &keys.Action{
		Key:     tcell.KeyCtrlE,
		Handler: func() { a.toggleEmoji() },
	})
	a.registry.AddGlobal("attach", &keys.Action{
		Key: tcell.KeyCtrlO,
		Handler: func() {
			go func() {
				if err := a.core.PickFiles(a.ctx); err != nil {
					a.flash.Err(err)
				}
				a.redraw()
			}()
		},
	})
	a.registry.AddGlobal("clear-attachments", &keys.Action{
		Key:     tcell.KeyCtrlX,
		Handler: func() { a.core.RemoveAllAttachments() },
	})
	a.registry.AddView(pageEmoji, "cycle-focus", &keys.Action{
		Key:     tcell.KeyTab,
		Handler: func() { a.cycleEmojiFocus() },
	})
}

func (a *App) setupCallbacks() {
	a.compView.SetOnSubmit(func() {
		go func() {
			if err := a.core.Submit(a.ctx); err != nil {
				a.flash.Err(fmt.Errorf("falha no envio: %w", err))
			}
			a.redraw()
		}()
	})

	// Attachment/import state changes arrive from UI callbacks and from
	// completion goroutines alike; hop to the draw queue either way.
	a.core.SetOnChanged(func() { a.redraw() })

	a.picker.SetOnPick(func(symbol string) {
		a.core.AppendText(symbol)
	})

	a.menu.SetOnAction(func(action views.MenuAction) {
		switch action {
		case views.ActionCopy:
			bridge.WriteClipboardText(a.compView.SelectionText())
			a.flash.Info("copiado")
		case views.ActionCut:
			bridge.WriteClipboardText(a.compView.CutSelection())
		case views.ActionPaste:
			a.compView.PasteFromMenu()
		}
		a.closeMenu()
	})
}

func (a *App) setupLayout() {
	main := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.thread, 0, 1, false).
		AddItem(a.compView, 3, 0, true)

	a.pages = ui.NewPages(pageMain, main)
	a.pages.AddPage(pageEmoji, a.picker, false, false)
	a.pages.AddPage(pageMenu, a.menu, false, false)
	a.pages.SetOnChange(func([]string) { a.updateHints() })

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(root, true).EnableMouse(true)
	a.app.SetFocus(a.compView.Input())

	a.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		w, h := screen.Size()
		if (w != a.screenW || h != a.screenH) && a.screenW != 0 {
			// Terminal resized: the menu's anchor point is stale.
			if a.pages.IsOpen(pageMenu) {
				a.closeMenu()
			}
			if a.pages.IsOpen(pageEmoji) {
				a.picker.Place(w, h)
			}
		}
		a.screenW, a.screenH = w, h
		return false
	})

	a.app.SetInputCapture(a.handleKey)
	a.app.SetMouseCapture(a.handleMouse)
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	current := a.pages.Current()

	if event.Key() == tcell.KeyEscape && current != pageMain {
		a.closeTop()
		return nil
	}

	if a.registry.HandleEvent(current, event) {
		return nil
	}
	return event
}

func (a *App) handleMouse(event *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	x, y := event.Position()

	if action == tview.MouseRightClick {
		ix, iy, iw, ih := a.compView.InputRect()
		if x >= ix && x < ix+iw && y >= iy && y < iy+ih {
			a.openMenu(x, y)
			return nil, action
		}
		return nil, action
	}

	if action == tview.MouseLeftDown || action == tview.MouseScrollUp || action == tview.MouseScrollDown {
		if a.pages.IsOpen(pageMenu) && !a.menu.Contains(x, y) {
			a.closeMenu()
			if action == tview.MouseLeftDown {
				return nil, action
			}
		}
		if a.pages.IsOpen(pageEmoji) && action == tview.MouseLeftDown && !a.picker.Contains(x, y) {
			a.closeEmoji()
			return nil, action
		}
	}

	return event, action
}

func (a *App) toggleEmoji() {
	if a.pages.IsOpen(pageEmoji) {
		a.closeEmoji()
		return
	}
	a.core.Blur()
	a.picker.Start()
	a.picker.Place(a.screenW, a.screenH)
	a.pages.Push(pageEmoji)
	a.app.SetFocus(a.picker.SearchField())
}

func (a *App) closeEmoji() {
	if !a.pages.IsOpen(pageEmoji) {
		return
	}
	a.picker.Stop()
	a.pages.Pop()
	a.app.SetFocus(a.compView.Input())
}

func (a *App) openMenu(x, y int) {
	if a.pages.IsOpen(pageMenu) {
		a.closeMenu()
	}
	a.core.Blur()
	a.menu.Open(x, y, a.screenW, a.screenH, a.compView.HasSelection())
	a.pages.Push(pageMenu)
	a.app.SetFocus(a.menu.List)
}

func (a *App) closeMenu() {
	if !a.pages.IsOpen(pageMenu) {
		return
	}
	a.pages.Pop()
	a.app.SetFocus(a.compView.Input())
}

func (a *App) closeTop() {
	switch a.pages.Current() {
	case pageMenu:
		a.closeMenu()
	case pageEmoji:
		a.closeEmoji()
	}
}

func (a *App) cycleEmojiFocus() {
	targets := a.picker.FocusTargets()
	focused := a.app.GetFocus()
	for i, t := range targets {
		if t.HasFocus() || t == focused {
			a.app.SetFocus(targets[(i+1)%len(targets)])
			return
		}
	}
	a.app.SetFocus(targets[0])
}

// activeComponent maps the top page to its view.
func (a *App) activeComponent() ui.Component {
	switch a.pages.Current() {
	case pageEmoji:
		return a.picker
	case pageMenu:
		return a.menu
	default:
		return a.compView
	}
}

func (a *App) updateHints() {
	a.statusBar.SetHints(a.activeComponent().Hints())
}

// redraw refreshes composer chrome and the status bar on the draw queue.
// Always hops through a goroutine: QueueUpdateDraw blocks when called
// from the event loop itself.
func (a *App) redraw() {
	go a.app.QueueUpdateDraw(func() {
		a.compView.Refresh()
		a.statusBar.SetAttachments(a.core.Attachments().Count())
	})
}

// watchBus flashes composer events on the status bar.
func (a *App) watchBus() {
	events, cancelSub := a.bus.Subscribe("", 16)
	defer cancelSub()

	for {
		select {
		case ev := <-events:
			switch ev.Kind {
			case bus.KindTypingChanged:
				typing, _ := ev.Payload.(bool)
				go a.app.QueueUpdateDraw(func() { a.statusBar.SetTyping(typing) })
			case bus.KindAttachFailed:
				msg, _ := ev.Payload.(string)
				a.flash.Warn(msg)
				a.redraw()
			case bus.KindSubmitted:
				a.flash.Info("enviado ✓")
				a.redraw()
			}
		case <-a.ctx.Done():
			return
		}
	}
}

// Run starts the TUI event loop. It blocks until Stop or Ctrl+C.
func (a *App) Run() error {
	a.updateHints()
	go a.watchBus()
	a.log.Info("tui started")
	return a.app.Run()
}

// Stop gracefully shuts the shell down.
func (a *App) Stop() {
	a.cancel()
	a.core.Close()
	a.app.Stop()
}
