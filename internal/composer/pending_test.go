package composer

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestAddDeduplicates(t *testing.T) {
	p := NewPendingList(nil, 0, nil)
	ctx := context.Background()

	added := p.Add(ctx, "/a.png", "/b.pdf", "/a.png")
	if !reflect.DeepEqual(added, []string{"/a.png", "/b.pdf"}) {
		t.Errorf("added = %v", added)
	}

	if added := p.Add(ctx, "/b.pdf", "/c.txt"); !reflect.DeepEqual(added, []string{"/c.txt"}) {
		t.Errorf("second added = %v", added)
	}

	if got := p.Paths(); !reflect.DeepEqual(got, []string{"/a.png", "/b.pdf", "/c.txt"}) {
		t.Errorf("paths = %v", got)
	}
}

func TestAddIgnoresEmpty(t *testing.T) {
	p := NewPendingList(nil, 0, nil)
	if added := p.Add(context.Background(), "", ""); added != nil {
		t.Errorf("added = %v, want nil", added)
	}
	if p.Count() != 0 {
		t.Errorf("count = %d, want 0", p.Count())
	}
}

func TestRemoveTransientState(t *testing.T) {
	p := NewPendingList(nil, 20*time.Millisecond, nil)
	ctx := context.Background()
	p.Add(ctx, "/a.png", "/b.pdf")

	p.Remove("/a.png")
	if !p.Removing("/a.png") {
		t.Error("Removing(/a.png) = false right after Remove")
	}
	if p.Count() != 2 {
		t.Errorf("count = %d during removal delay, want 2", p.Count())
	}

	waitFor(t, func() bool { return p.Count() == 1 }, "entry was not dropped")
	if p.Removing("/a.png") {
		t.Error("Removing(/a.png) = true after drop")
	}
	if got := p.Paths(); !reflect.DeepEqual(got, []string{"/b.pdf"}) {
		t.Errorf("paths = %v", got)
	}
}

func TestRemoveAll(t *testing.T) {
	p := NewPendingList(nil, 20*time.Millisecond, nil)
	ctx := context.Background()
	p.Add(ctx, "/a.png", "/b.pdf")

	p.RemoveAll()
	if !p.Removing("/a.png") || !p.Removing("/b.pdf") {
		t.Error("entries not marked removing")
	}

	waitFor(t, func() bool { return p.Count() == 0 }, "list was not emptied")
	if p.Removing("/a.png") || p.Removing("/b.pdf") {
		t.Error("removing set not emptied")
	}
}

func TestRemoveAllSparesLaterAdds(t *testing.T) {
	p := NewPendingList(nil, 20*time.Millisecond, nil)
	ctx := context.Background()
	p.Add(ctx, "/a.png", "/b.pdf")

	p.RemoveAll()
	p.Add(ctx, "/new.png")

	waitFor(t, func() bool { return !p.Removing("/a.png") && !p.Removing("/b.pdf") },
		"marked entries were not dropped")
	if got := p.Paths(); !reflect.DeepEqual(got, []string{"/new.png"}) {
		t.Errorf("paths = %v, want [/new.png]", got)
	}
}

func TestReAddDuringRemovalRevives(t *testing.T) {
	p := NewPendingList(nil, 20*time.Millisecond, nil)
	ctx := context.Background()
	p.Add(ctx, "/a.png")

	p.Remove("/a.png")
	if added := p.Add(ctx, "/a.png"); !reflect.DeepEqual(added, []string{"/a.png"}) {
		t.Errorf("added = %v, want [/a.png]", added)
	}
	if p.Removing("/a.png") {
		t.Error("Removing(/a.png) = true after re-add")
	}

	time.Sleep(60 * time.Millisecond)
	if got := p.Paths(); !reflect.DeepEqual(got, []string{"/a.png"}) {
		t.Errorf("paths = %v, want [/a.png]", got)
	}
}

func TestReAddDuringRemoveAllRevives(t *testing.T) {
	p := NewPendingList(nil, 20*time.Millisecond, nil)
	ctx := context.Background()
	p.Add(ctx, "/a.png", "/b.pdf")

	p.RemoveAll()
	p.Add(ctx, "/b.pdf")

	waitFor(t, func() bool { return p.Count() == 1 }, "marked entry was not dropped")
	time.Sleep(30 * time.Millisecond)
	if got := p.Paths(); !reflect.DeepEqual(got, []string{"/b.pdf"}) {
		t.Errorf("paths = %v, want [/b.pdf]", got)
	}
}

func TestTakeAllClearsImmediately(t *testing.T) {
	p := NewPendingList(nil, 0, nil)
	ctx := context.Background()
	p.Add(ctx, "/a.png", "/b.pdf")

	taken := p.TakeAll()
	if !reflect.DeepEqual(taken, []string{"/a.png", "/b.pdf"}) {
		t.Errorf("taken = %v", taken)
	}
	if p.Count() != 0 {
		t.Errorf("count = %d, want 0", p.Count())
	}
}

func TestMetadataLoads(t *testing.T) {
	br := &fakeBridge{}
	p := NewPendingList(br, 0, nil)
	p.Add(context.Background(), "/a.png", "/b.pdf")

	waitFor(t, func() bool { return p.Info("/a.png") != nil && p.Info("/b.pdf") != nil },
		"metadata never resolved")

	info := p.Info("/a.png")
	if info.Name != "a.png" || !info.IsImage {
		t.Errorf("info = %+v", info)
	}
}

func TestSupersededLoadDiscarded(t *testing.T) {
	br := &fakeBridge{gate: make(chan struct{})}
	p := NewPendingList(br, 0, nil)
	ctx := context.Background()

	p.Add(ctx, "/a.png") // load #1, blocked on the gate
	p.Add(ctx, "/b.pdf") // load #2 supersedes #1
	close(br.gate)

	waitFor(t, func() bool { return p.Info("/a.png") != nil && p.Info("/b.pdf") != nil },
		"metadata never resolved for both paths")

	// If the superseded batch had applied last, /b.pdf would be missing.
	time.Sleep(50 * time.Millisecond)
	if p.Info("/b.pdf") == nil {
		t.Error("stale batch overwrote the newer one")
	}
}

func TestMapsNeverHoldForeignKeys(t *testing.T) {
	br := &fakeBridge{}
	p := NewPendingList(br, 10*time.Millisecond, nil)
	ctx := context.Background()

	p.Add(ctx, "/a.png", "/b.pdf")
	waitFor(t, func() bool { return p.Info("/a.png") != nil }, "metadata never resolved")

	p.Remove("/a.png")
	waitFor(t, func() bool { return p.Count() == 1 }, "entry was not dropped")
	waitFor(t, func() bool { return p.Info("/a.png") == nil }, "dropped path still has metadata")
	waitFor(t, func() bool { return p.Info("/b.pdf") != nil }, "kept path lost metadata")
}
