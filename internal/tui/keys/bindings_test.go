package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		event  *tcell.EventKey
		want   bool
	}{
		{"named key", Action{Key: tcell.KeyCtrlE}, tcell.NewEventKey(tcell.KeyCtrlE, 0, tcell.ModCtrl), true},
		{"named key mismatch", Action{Key: tcell.KeyCtrlE}, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), false},
		{"plain rune", Action{Key: tcell.KeyRune, Rune: 'e'}, tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), true},
		{"alt rune needs alt", Action{Key: tcell.KeyRune, Rune: 'e', Mod: tcell.ModAlt}, tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone), false},
		{"alt rune with alt", Action{Key: tcell.KeyRune, Rune: 'e', Mod: tcell.ModAlt}, tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModAlt), true},
		{"plain rune rejects alt", Action{Key: tcell.KeyRune, Rune: 'e'}, tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModAlt), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.action.Matches(tt.event); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewBindingShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	var fired string
	r.AddGlobal("tab", &Action{Key: tcell.KeyTab, Handler: func() { fired = "global" }})
	r.AddView("picker", "tab", &Action{Key: tcell.KeyTab, Handler: func() { fired = "view" }})

	ev := tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)

	if !r.HandleEvent("picker", ev) {
		t.Fatal("HandleEvent(picker) = false")
	}
	if fired != "view" {
		t.Errorf("fired = %q, want view binding", fired)
	}

	if !r.HandleEvent("main", ev) {
		t.Fatal("HandleEvent(main) = false")
	}
	if fired != "global" {
		t.Errorf("fired = %q, want global binding", fired)
	}

	if r.HandleEvent("main", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)) {
		t.Error("HandleEvent matched an unbound key")
	}
}
