package bus

import (
	"strings"
	"sync"
)

// Bus is an in-process publish/subscribe bus for composer events.
// Delivery is non-blocking: a full subscriber drops events.
type Bus struct {
	mu   sync.RWMutex
	subs []*subscriber
}

type subscriber struct {
	prefix string
	ch     chan Event
	gone   bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Publish delivers evt to every subscriber whose prefix matches evt.Kind.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.subs {
		if s.gone || !strings.HasPrefix(evt.Kind, s.prefix) {
			continue
		}
		select {
		case s.ch <- evt:
		default:
		}
	}
}

// Subscribe registers a subscriber for event kinds starting with prefix.
// The empty prefix matches everything. The returned cancel function is
// idempotent; the channel is never closed.
func (b *Bus) Subscribe(prefix string, bufSize int) (<-chan Event, func()) {
	s := &subscriber{prefix: prefix, ch: make(chan Event, bufSize)}
	b.mu.Lock()
	b.subs = append(b.subs, s)
	b.mu.Unlock()

	return s.ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if s.gone {
			return
		}
		s.gone = true
		for i, cur := range b.subs {
			if cur == s {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				break
			}
		}
	}
}
