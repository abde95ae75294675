// Package composer implements the message-composer component: draft text
// and submission, typing notification, pending attachments with async
// metadata, and clipboard/drop file intake. It is headless; the terminal
// widget in internal/tui/views binds it to the screen.
package composer

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lfelipe/papo/internal/bridge"
	"github.com/lfelipe/papo/internal/bus"
)

// Options configures a Composer. OnSend is required. A nil OnSendFile
// disables every attachment feature.
type Options struct {
	Placeholder string
	Disabled    bool

	OnSend         func(ctx context.Context, text string) error
	OnSendFile     func(ctx context.Context, path string) error
	OnTypingChange func(typing bool)

	// Timing overrides, zero means the default. Tests shorten these.
	TypingIdle  time.Duration
	RemoveDelay time.Duration
	PruneDelay  time.Duration
}

// Composer owns the draft, the pending-attachment list and the import
// tracker. All state is ephemeral and scoped to the component's lifetime.
type Composer struct {
	mu         sync.Mutex
	opts       Options
	br         bridge.Bridge
	bus        *bus.Bus
	log        *zap.Logger
	draft      string
	submitting bool
	disabled   bool

	typing  *TypingNotifier
	pending *PendingList
	imports *ImportTracker

	onDraftChanged func(text string)
	onChanged      func()
}

// New creates a composer over the given bridge and event bus.
func New(br bridge.Bridge, b *bus.Bus, log *zap.Logger, opts Options) *Composer {
	c := &Composer{
		opts:     opts,
		br:       br,
		bus:      b,
		log:      log,
		disabled: opts.Disabled,
	}
	c.typing = NewTypingNotifier(opts.TypingIdle, func(typing bool) {
		c.publish(bus.KindTypingChanged, typing)
		if opts.OnTypingChange != nil {
			opts.OnTypingChange(typing)
		}
	})
	c.pending = NewPendingList(br, opts.RemoveDelay, c.changed)
	c.imports = NewImportTracker(opts.PruneDelay, c.changed)
	return c
}

// SetOnDraftChanged registers the callback fired when the composer itself
// mutates the draft (clear on submit, emoji append). The input widget uses
// it to keep the text area in sync.
func (c *Composer) SetOnDraftChanged(fn func(text string)) {
	c.mu.Lock()
	c.onDraftChanged = fn
	c.mu.Unlock()
}

// SetOnChanged registers a re-render signal covering attachments and
// import progress.
func (c *Composer) SetOnChanged(fn func()) {
	c.mu.Lock()
	c.onChanged = fn
	c.mu.Unlock()
}

// Placeholder returns the configured input placeholder.
func (c *Composer) Placeholder() string { return c.opts.Placeholder }

// Attachments exposes the pending list for rendering.
func (c *Composer) Attachments() *PendingList { return c.pending }

// Imports exposes the import tracker for rendering.
func (c *Composer) Imports() *ImportTracker { return c.imports }

// AttachmentsEnabled reports whether attachment features are available.
func (c *Composer) AttachmentsEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts.OnSendFile != nil && !c.disabled
}

// Draft returns the current draft text.
func (c *Composer) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SetDraft mirrors the input widget's text into the composer and drives
// the typing notifier.
func (c *Composer) SetDraft(text string) {
	c.mu.Lock()
	if c.disabled {
		c.mu.Unlock()
		return
	}
	c.draft = text
	c.mu.Unlock()
	c.typing.Input(strings.TrimSpace(text) != "")
}

// AppendText appends s to the end of the draft (emoji selection inserts at
// the end, not at the cursor).
func (c *Composer) AppendText(s string) {
	c.mu.Lock()
	if c.disabled {
		c.mu.Unlock()
		return
	}
	c.draft += s
	text := c.draft
	fn := c.onDraftChanged
	c.mu.Unlock()

	c.typing.Input(strings.TrimSpace(text) != "")
	if fn != nil {
		fn(text)
	}
}

// SetDisabled toggles the disabled state. Disabling reports not-typing.
func (c *Composer) SetDisabled(disabled bool) {
	c.mu.Lock()
	c.disabled = disabled
	c.mu.Unlock()
	if disabled {
		c.typing.Blur()
	}
	c.changed()
}

// Disabled reports the disabled state.
func (c *Composer) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabled
}

// Submitting reports whether a submit is in flight.
func (c *Composer) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Blur reports not-typing immediately, mirroring input focus loss.
func (c *Composer) Blur() {
	c.typing.Blur()
}

// Close shuts the component down: not-typing is reported and timers stop.
func (c *Composer) Close() {
	c.typing.Close()
}

// Submit sends the trimmed draft and then every pending attachment,
// sequentially and in order. It is a no-op when there is nothing to send,
// when disabled, or while another submit runs. Draft and pending list are
// cleared optimistically before sending; a send error propagates to the
// caller with no rollback.
func (c *Composer) Submit(ctx context.Context) error {
	c.mu.Lock()
	text := strings.TrimSpace(c.draft)
	if c.disabled || c.submitting || (text == "" && c.pending.Count() == 0) {
		c.mu.Unlock()
		return nil
	}
	c.submitting = true
	c.draft = ""
	fn := c.onDraftChanged
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
		c.changed()
	}()

	c.typing.Blur()
	if fn != nil {
		fn("")
	}

	files := c.pending.TakeAll()

	if text != "" {
		if err := c.opts.OnSend(ctx, text); err != nil {
			return err
		}
	}
	if c.opts.OnSendFile != nil {
		for _, path := range files {
			if err := c.opts.OnSendFile(ctx, path); err != nil {
				return err
			}
		}
	}

	c.publish(bus.KindSubmitted, len(files))
	if c.log != nil {
		c.log.Info("message submitted",
			zap.Int("text_len", len(text)),
			zap.Int("files", len(files)))
	}
	return nil
}

// PickFiles opens the platform file picker and appends the selection.
func (c *Composer) PickFiles(ctx context.Context) error {
	if !c.AttachmentsEnabled() {
		return nil
	}
	paths, err := c.br.PickFiles(ctx)
	if err != nil {
		c.publish(bus.KindAttachFailed, "o seletor de arquivos falhou")
		return err
	}
	c.AddPaths(ctx, paths...)
	return nil
}

// AddPaths appends candidate paths to the pending list, de-duplicated, and
// returns the ones actually added.
func (c *Composer) AddPaths(ctx context.Context, paths ...string) []string {
	if !c.AttachmentsEnabled() {
		return nil
	}
	added := c.pending.Add(ctx, paths...)
	for _, path := range added {
		c.publish(bus.KindAttachmentAdded, path)
	}
	return added
}

// RemoveAttachment drops one pending attachment after the removal delay.
func (c *Composer) RemoveAttachment(path string) {
	c.pending.Remove(path)
	c.publish(bus.KindAttachmentRemoved, path)
}

// RemoveAllAttachments clears the pending list after the removal delay.
func (c *Composer) RemoveAllAttachments() {
	c.pending.RemoveAll()
	c.publish(bus.KindAttachmentRemoved, "*")
}

func (c *Composer) publish(kind string, payload any) {
	if c.bus != nil {
		c.bus.Publish(bus.New(kind, payload))
	}
}

func (c *Composer) changed() {
	c.mu.Lock()
	fn := c.onChanged
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}
