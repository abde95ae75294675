package composer

import (
	"context"
	"sync"
	"time"

	"github.com/lfelipe/papo/internal/bridge"
)

// DefaultRemoveDelay is the transient "removing" period before an entry is
// actually dropped from the pending list.
const DefaultRemoveDelay = 170 * time.Millisecond

// PendingList owns the ordered, duplicate-free set of not-yet-sent
// attachment paths plus their asynchronously loaded metadata and previews.
// Metadata maps are wholesale-replaced on every list change; a load that is
// superseded by a newer change discards its results.
type PendingList struct {
	mu          sync.Mutex
	br          bridge.Bridge
	paths       []string
	info        map[string]*bridge.FileInfo
	previews    map[string]*bridge.Preview
	removing    map[string]bool
	gen         uint64
	removeDelay time.Duration
	onChange    func()
}

// NewPendingList creates an empty list. removeDelay <= 0 uses
// DefaultRemoveDelay.
func NewPendingList(br bridge.Bridge, removeDelay time.Duration, onChange func()) *PendingList {
	if removeDelay <= 0 {
		removeDelay = DefaultRemoveDelay
	}
	return &PendingList{
		br:          br,
		info:        map[string]*bridge.FileInfo{},
		previews:    map[string]*bridge.Preview{},
		removing:    map[string]bool{},
		removeDelay: removeDelay,
		onChange:    onChange,
	}
}

// Add appends candidate paths, silently dropping any already present and
// reviving any present-but-removing, and kicks a metadata reload. It returns
// the paths actually added or revived.
func (p *PendingList) Add(ctx context.Context, paths ...string) []string {
	var added []string
	p.mu.Lock()
	present := make(map[string]bool, len(p.paths))
	for _, existing := range p.paths {
		present[existing] = true
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if present[path] {
			if p.removing[path] {
				// Re-adding a path mid-removal revives it in place.
				delete(p.removing, path)
				added = append(added, path)
			}
			continue
		}
		present[path] = true
		p.paths = append(p.paths, path)
		added = append(added, path)
	}
	if len(added) > 0 {
		p.reloadLocked(ctx)
	}
	p.mu.Unlock()

	if len(added) > 0 {
		p.changed()
	}
	return added
}

// Paths returns a snapshot of the pending paths in insertion order.
func (p *PendingList) Paths() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.paths...)
}

// Count returns the number of pending paths.
func (p *PendingList) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.paths)
}

// Info returns loaded metadata for path, or nil while unresolved.
func (p *PendingList) Info(path string) *bridge.FileInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.info[path]
}

// Preview returns the loaded preview for path, or nil.
func (p *PendingList) Preview(path string) *bridge.Preview {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.previews[path]
}

// Removing reports whether path is in its transient removing state.
func (p *PendingList) Removing(path string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.removing[path]
}

// Remove marks path as removing and drops it after the removal delay.
func (p *PendingList) Remove(path string) {
	p.mu.Lock()
	if !p.containsLocked(path) || p.removing[path] {
		p.mu.Unlock()
		return
	}
	p.removing[path] = true
	p.mu.Unlock()
	p.changed()

	time.AfterFunc(p.removeDelay, func() { p.drop(path) })
}

// RemoveAll marks every pending path as removing and drops the marked
// entries after the removal delay. Paths added or revived while the delay
// runs are kept.
func (p *PendingList) RemoveAll() {
	p.mu.Lock()
	if len(p.paths) == 0 {
		p.mu.Unlock()
		return
	}
	marked := append([]string(nil), p.paths...)
	for _, path := range marked {
		p.removing[path] = true
	}
	p.mu.Unlock()
	p.changed()

	time.AfterFunc(p.removeDelay, func() { p.dropAll(marked) })
}

// TakeAll atomically snapshots and clears the list, discarding any load in
// flight. Used by submit, which clears pending attachments before sending.
func (p *PendingList) TakeAll() []string {
	p.mu.Lock()
	taken := p.paths
	p.paths = nil
	p.removing = map[string]bool{}
	p.reloadLocked(context.Background())
	p.mu.Unlock()

	p.changed()
	return taken
}

func (p *PendingList) drop(path string) {
	p.mu.Lock()
	if !p.removing[path] {
		p.mu.Unlock()
		return
	}
	delete(p.removing, path)
	for i, cur := range p.paths {
		if cur == path {
			p.paths = append(p.paths[:i], p.paths[i+1:]...)
			break
		}
	}
	p.reloadLocked(context.Background())
	p.mu.Unlock()
	p.changed()
}

// dropAll drops the given paths, skipping any that were revived or taken
// while the removal delay ran.
func (p *PendingList) dropAll(marked []string) {
	p.mu.Lock()
	dropped := false
	for _, path := range marked {
		if !p.removing[path] {
			continue
		}
		delete(p.removing, path)
		for i, cur := range p.paths {
			if cur == path {
				p.paths = append(p.paths[:i], p.paths[i+1:]...)
				break
			}
		}
		dropped = true
	}
	if dropped {
		p.reloadLocked(context.Background())
	}
	p.mu.Unlock()
	if dropped {
		p.changed()
	}
}

func (p *PendingList) containsLocked(path string) bool {
	for _, cur := range p.paths {
		if cur == path {
			return true
		}
	}
	return false
}

// reloadLocked starts an async metadata/preview load for the current path
// set. Results are applied as a wholesale replacement, and only if no newer
// list change happened in the meantime.
func (p *PendingList) reloadLocked(ctx context.Context) {
	p.gen++
	gen := p.gen

	// Keep the invariant that map keys always belong to the pending list.
	for key := range p.info {
		if !p.containsLocked(key) {
			delete(p.info, key)
		}
	}
	for key := range p.previews {
		if !p.containsLocked(key) {
			delete(p.previews, key)
		}
	}

	snapshot := append([]string(nil), p.paths...)
	if p.br == nil {
		return
	}

	go func() {
		info := make(map[string]*bridge.FileInfo, len(snapshot))
		previews := make(map[string]*bridge.Preview, len(snapshot))
		var mu sync.Mutex
		var wg sync.WaitGroup
		for _, path := range snapshot {
			wg.Add(1)
			go func(path string) {
				defer wg.Done()
				fi, err := p.br.GetFileInfo(ctx, path)
				var pv *bridge.Preview
				if err == nil {
					pv, _ = p.br.GetFilePreview(ctx, path)
				}
				mu.Lock()
				if fi != nil {
					info[path] = fi
				}
				if pv != nil {
					previews[path] = pv
				}
				mu.Unlock()
			}(path)
		}
		wg.Wait()

		p.mu.Lock()
		if p.gen != gen {
			// Superseded by a newer list change.
			p.mu.Unlock()
			return
		}
		p.info = info
		p.previews = previews
		p.mu.Unlock()
		p.changed()
	}()
}

func (p *PendingList) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}
