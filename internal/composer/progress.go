package composer

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ImportStage is the stage of one in-flight file import. Stages only move
// forward: reading -> saving -> done|error.
type ImportStage string

const (
	StageReading ImportStage = "reading"
	StageSaving  ImportStage = "saving"
	StageDone    ImportStage = "done"
	StageError   ImportStage = "error"
)

var stageNext = map[ImportStage][]ImportStage{
	StageReading: {StageSaving, StageError},
	StageSaving:  {StageDone, StageError},
}

// DefaultPruneDelay is how long a finished entry lingers before it is
// dropped from the tracker.
const DefaultPruneDelay = 700 * time.Millisecond

// ImportEntry is the transient record of one clipboard/drag file import.
type ImportEntry struct {
	ID      string
	Name    string
	Percent int // 0..100
	Stage   ImportStage
}

// Terminal reports whether the entry reached done or error.
func (e ImportEntry) Terminal() bool {
	return e.Stage == StageDone || e.Stage == StageError
}

// ImportTracker holds the ordered set of in-flight imports. Entries are
// auto-pruned shortly after reaching a terminal stage.
type ImportTracker struct {
	mu       sync.Mutex
	entries  []*ImportEntry
	prune    time.Duration
	onChange func()
}

// NewImportTracker creates a tracker. prune <= 0 uses DefaultPruneDelay.
func NewImportTracker(prune time.Duration, onChange func()) *ImportTracker {
	if prune <= 0 {
		prune = DefaultPruneDelay
	}
	return &ImportTracker{prune: prune, onChange: onChange}
}

// Begin registers a new import in the reading stage and returns its id.
func (t *ImportTracker) Begin(name string) string {
	id := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString()[:8], name)
	t.mu.Lock()
	t.entries = append(t.entries, &ImportEntry{ID: id, Name: name, Stage: StageReading})
	t.mu.Unlock()
	t.changed()
	return id
}

// SetPercent updates an entry's progress value, clamped to 0..100.
func (t *ImportTracker) SetPercent(id string, pct int) {
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	t.mu.Lock()
	if e := t.findLocked(id); e != nil {
		e.Percent = pct
	}
	t.mu.Unlock()
	t.changed()
}

// Advance moves an entry to the next stage. Backward or skipping
// transitions are rejected. Reaching a terminal stage schedules the prune.
func (t *ImportTracker) Advance(id string, to ImportStage) error {
	t.mu.Lock()
	e := t.findLocked(id)
	if e == nil {
		t.mu.Unlock()
		return fmt.Errorf("unknown import %q", id)
	}
	allowed := false
	for _, next := range stageNext[e.Stage] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		from := e.Stage
		t.mu.Unlock()
		return fmt.Errorf("invalid stage transition %s -> %s", from, to)
	}
	e.Stage = to
	if to == StageDone {
		e.Percent = 100
	}
	terminal := e.Terminal()
	t.mu.Unlock()

	if terminal {
		time.AfterFunc(t.prune, func() { t.remove(id) })
	}
	t.changed()
	return nil
}

// Snapshot returns a copy of the current entries, in creation order.
func (t *ImportTracker) Snapshot() []ImportEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ImportEntry, len(t.entries))
	for i, e := range t.entries {
		out[i] = *e
	}
	return out
}

func (t *ImportTracker) remove(id string) {
	t.mu.Lock()
	for i, e := range t.entries {
		if e.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			break
		}
	}
	t.mu.Unlock()
	t.changed()
}

func (t *ImportTracker) findLocked(id string) *ImportEntry {
	for _, e := range t.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (t *ImportTracker) changed() {
	if t.onChange != nil {
		t.onChange()
	}
}
