package ui

// MenuHint describes a keyboard shortcut for display in the status bar.
type MenuHint struct {
	Key         string
	Description string
}

// Component is the lifecycle interface for the TUI views. Start fires
// when a view becomes active (overlays: on open), Stop when it leaves.
type Component interface {
	Name() string
	Start()
	Stop()
	Hints() []MenuHint
}
