// Package keys holds the keybinding registry shared by the TUI views.
package keys

import "github.com/gdamore/tcell/v2"

// Action represents a keybinding action. Mod narrows rune bindings to a
// modifier combination (Alt+e vs plain e).
type Action struct {
	Key     tcell.Key
	Rune    rune
	Mod     tcell.ModMask
	Handler func()
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	if ev.Key() != tcell.KeyRune || ev.Rune() != a.Rune {
		return false
	}
	return ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) == a.Mod
}

// Registry holds keybindings organized by scope. View bindings shadow
// global ones.
type Registry struct {
	Global map[string]*Action
	Views  map[string]map[string]*Action
}

// NewRegistry creates an empty keybinding registry.
func NewRegistry() *Registry {
	return &Registry{
		Global: make(map[string]*Action),
		Views:  make(map[string]map[string]*Action),
	}
}

// AddGlobal registers a global keybinding.
func (r *Registry) AddGlobal(name string, action *Action) {
	r.Global[name] = action
}

// AddView registers a view-specific keybinding.
func (r *Registry) AddView(view, name string, action *Action) {
	if r.Views[view] == nil {
		r.Views[view] = make(map[string]*Action)
	}
	r.Views[view][name] = action
}

// HandleEvent dispatches a key event to the matching action in the given
// view, checking view bindings before global ones. Returns true if a
// handler matched.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	if viewBindings, ok := r.Views[view]; ok {
		for _, a := range viewBindings {
			if a.Matches(ev) {
				a.Handler()
				return true
			}
		}
	}
	for _, a := range r.Global {
		if a.Matches(ev) {
			a.Handler()
			return true
		}
	}
	return false
}
