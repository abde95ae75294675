package composer

import (
	"strings"
	"testing"
	"time"
)

func TestImportLifecycle(t *testing.T) {
	tr := NewImportTracker(time.Minute, nil)
	id := tr.Begin("shot.png")

	if !strings.HasSuffix(id, "-shot.png") {
		t.Errorf("id = %q, want -shot.png suffix", id)
	}

	snap := tr.Snapshot()
	if len(snap) != 1 || snap[0].Stage != StageReading || snap[0].Percent != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}

	tr.SetPercent(id, 40)
	if got := tr.Snapshot()[0].Percent; got != 40 {
		t.Errorf("percent = %d, want 40", got)
	}

	if err := tr.Advance(id, StageSaving); err != nil {
		t.Fatalf("Advance(saving) error = %v", err)
	}
	if err := tr.Advance(id, StageDone); err != nil {
		t.Fatalf("Advance(done) error = %v", err)
	}
	if got := tr.Snapshot()[0].Percent; got != 100 {
		t.Errorf("percent after done = %d, want 100", got)
	}
}

func TestStageOnlyMovesForward(t *testing.T) {
	tests := []struct {
		name  string
		walk  []ImportStage
		then  ImportStage
		valid bool
	}{
		{"reading to saving", nil, StageSaving, true},
		{"reading to error", nil, StageError, true},
		{"reading skips to done", nil, StageDone, false},
		{"saving to done", []ImportStage{StageSaving}, StageDone, true},
		{"saving to error", []ImportStage{StageSaving}, StageError, true},
		{"saving back to reading", []ImportStage{StageSaving}, StageReading, false},
		{"done is terminal", []ImportStage{StageSaving, StageDone}, StageError, false},
		{"error is terminal", []ImportStage{StageError}, StageSaving, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewImportTracker(time.Minute, nil)
			id := tr.Begin("x")
			for _, s := range tt.walk {
				if err := tr.Advance(id, s); err != nil {
					t.Fatalf("walk to %s: %v", s, err)
				}
			}
			err := tr.Advance(id, tt.then)
			if tt.valid && err != nil {
				t.Errorf("Advance(%s) error = %v", tt.then, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("Advance(%s) should fail", tt.then)
			}
		})
	}
}

func TestPercentClamped(t *testing.T) {
	tr := NewImportTracker(time.Minute, nil)
	id := tr.Begin("x")

	tr.SetPercent(id, -5)
	if got := tr.Snapshot()[0].Percent; got != 0 {
		t.Errorf("percent = %d, want 0", got)
	}
	tr.SetPercent(id, 300)
	if got := tr.Snapshot()[0].Percent; got != 100 {
		t.Errorf("percent = %d, want 100", got)
	}
}

func TestTerminalEntriesPruned(t *testing.T) {
	tr := NewImportTracker(20*time.Millisecond, nil)
	done := tr.Begin("ok.png")
	failed := tr.Begin("bad.png")
	kept := tr.Begin("inflight.png")

	_ = tr.Advance(done, StageSaving)
	_ = tr.Advance(done, StageDone)
	_ = tr.Advance(failed, StageError)

	waitFor(t, func() bool { return len(tr.Snapshot()) == 1 }, "terminal entries not pruned")
	if got := tr.Snapshot()[0].ID; got != kept {
		t.Errorf("surviving entry = %q, want %q", got, kept)
	}
}

func TestAdvanceUnknownID(t *testing.T) {
	tr := NewImportTracker(time.Minute, nil)
	if err := tr.Advance("nope", StageSaving); err == nil {
		t.Error("Advance(unknown) should fail")
	}
}
