package bus

import "time"

// Event is a composer event published on the bus.
type Event struct {
	Kind    string
	At      time.Time
	Payload any
}

// Event kinds. Subscribers filter by prefix, e.g. "attachment.".
const (
	KindTypingChanged     = "composer.typing_changed"
	KindSubmitted         = "composer.submitted"
	KindAttachmentAdded   = "attachment.added"
	KindAttachmentRemoved = "attachment.removed"
	KindAttachFailed      = "attachment.failed"
	KindImportProgress    = "import.progress"
)

// New builds an event stamped with the current time.
func New(kind string, payload any) Event {
	return Event{Kind: kind, At: time.Now(), Payload: payload}
}
