package seatmask

import "sync"

// Key identifies one independent seat pool: a movie showing in a
// particular theater.  Keys are compared by value and carry no ownership.
type Key struct {
	MovieID   uint32
	TheaterID uint32
}

// Registry owns every SeatMask in the system, one per key, created
// lazily on first use.  The map itself is guarded by a reader-writer
// lock; the masks it hands out are mutated lock-free by their owners'
// CAS loops, never under this lock.
type Registry struct {
	mu    sync.RWMutex
	masks map[Key]*SeatMask
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{masks: make(map[Key]*SeatMask)}
}

// Get returns the mask for key, or nil if nothing has ever been reserved
// there.  Pure read paths use this so they never pay the write-lock cost.
func (r *Registry) Get(key Key) *SeatMask {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.masks[key]
}

// GetOrCreate returns the mask for key, creating it on first access.
// For any key exactly one SeatMask instance ever exists, even when many
// goroutines hit a previously-unseen key at once: the common case is a
// shared-lock lookup, and creation re-checks the map under the exclusive
// lock because another goroutine may have inserted between the two locks.
func (r *Registry) GetOrCreate(key Key) *SeatMask {
	r.mu.RLock()
	if m, ok := r.masks[key]; ok {
		r.mu.RUnlock()
		return m
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.masks[key]; ok {
		return m
	}
	m := New()
	r.masks[key] = m
	return m
}
