package composer

import (
	"sync"
	"time"
)

// DefaultTypingIdle is how long after the last keystroke the notifier
// reports not-typing.
const DefaultTypingIdle = 1200 * time.Millisecond

// TypingNotifier turns draft activity into edge-triggered typing reports:
// a transition is emitted only when the desired state differs from the
// last reported one. Non-empty input (re)arms an idle timer that reports
// not-typing on expiry.
type TypingNotifier struct {
	mu       sync.Mutex
	idle     time.Duration
	notify   func(bool)
	timer    *time.Timer
	reported bool
	closed   bool
}

// NewTypingNotifier creates a notifier. idle <= 0 uses DefaultTypingIdle.
func NewTypingNotifier(idle time.Duration, notify func(bool)) *TypingNotifier {
	if idle <= 0 {
		idle = DefaultTypingIdle
	}
	return &TypingNotifier{idle: idle, notify: notify}
}

// Input reports whether the draft is currently non-empty.
func (n *TypingNotifier) Input(nonEmpty bool) {
	var emit *bool
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	if nonEmpty {
		if !n.reported {
			n.reported = true
			v := true
			emit = &v
		}
		n.stopTimerLocked()
		n.timer = time.AfterFunc(n.idle, n.expire)
	} else {
		n.stopTimerLocked()
		if n.reported {
			n.reported = false
			v := false
			emit = &v
		}
	}
	n.mu.Unlock()

	if emit != nil && n.notify != nil {
		n.notify(*emit)
	}
}

// Blur reports not-typing immediately (if typing) and cancels the timer.
func (n *TypingNotifier) Blur() {
	n.Input(false)
}

// Close is Blur plus permanent shutdown; the notifier ignores all further
// input.
func (n *TypingNotifier) Close() {
	n.Input(false)
	n.mu.Lock()
	n.closed = true
	n.stopTimerLocked()
	n.mu.Unlock()
}

func (n *TypingNotifier) expire() {
	n.mu.Lock()
	if n.closed || !n.reported {
		n.mu.Unlock()
		return
	}
	n.reported = false
	n.timer = nil
	n.mu.Unlock()

	if n.notify != nil {
		n.notify(false)
	}
}

func (n *TypingNotifier) stopTimerLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
