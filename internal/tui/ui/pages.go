package ui

import "github.com/rivo/tview"

// Pages is a stack-based overlay manager wrapping tview.Pages. The bottom
// page stays visible; pushed pages float above it (emoji picker, context
// menu). Notifies on stack changes.
type Pages struct {
	*tview.Pages
	stack    []string
	onChange func(stack []string)
}

// NewPages creates an overlay manager with the given base page.
func NewPages(baseName string, base tview.Primitive) *Pages {
	p := &Pages{Pages: tview.NewPages()}
	p.AddPage(baseName, base, true, true)
	p.stack = []string{baseName}
	return p
}

// SetOnChange sets a callback that fires when the stack changes.
func (p *Pages) SetOnChange(fn func(stack []string)) {
	p.onChange = fn
}

// Push shows an overlay page on top of whatever is already visible.
func (p *Pages) Push(name string) {
	p.stack = append(p.stack, name)
	p.ShowPage(name)
	p.SendToFront(name)
	p.notify()
}

// Pop hides the top overlay. The base page is never popped. Returns the
// name of the hidden page, or empty.
func (p *Pages) Pop() string {
	if len(p.stack) <= 1 {
		return ""
	}
	top := p.stack[len(p.stack)-1]
	p.HidePage(top)
	p.stack = p.stack[:len(p.stack)-1]
	p.notify()
	return top
}

// Current returns the name of the top page.
func (p *Pages) Current() string {
	return p.stack[len(p.stack)-1]
}

// IsOpen reports whether the named overlay is somewhere on the stack.
func (p *Pages) IsOpen(name string) bool {
	for _, n := range p.stack {
		if n == name {
			return true
		}
	}
	return false
}

func (p *Pages) notify() {
	if p.onChange != nil {
		s := make([]string, len(p.stack))
		copy(s, p.stack)
		p.onChange(s)
	}
}
