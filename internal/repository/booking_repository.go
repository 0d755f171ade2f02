package repository

import (
	"sync"
	"sync/atomic"

	"github.com/iliyamo/movie-booking-engine/internal/model"
)

// BookingRepo is the append-only ledger of confirmed bookings.  IDs are
// allocated from an atomic counter so concurrent bookings never contend
// on the map lock just to draw an ID; uniqueness is guaranteed but the
// numeric order of IDs need not match the real-time order of bookings.
// Records are immutable once appended and are never removed.
type BookingRepo struct {
	mu       sync.RWMutex
	bookings map[uint64]*model.Booking
	nextID   atomic.Uint64
}

// NewBookingRepo returns an empty ledger whose first ID will be 1.
func NewBookingRepo() *BookingRepo {
	return &BookingRepo{bookings: make(map[uint64]*model.Booking)}
}

// NextID allocates the next unique booking ID.
func (r *BookingRepo) NextID() uint64 {
	return r.nextID.Add(1)
}

// Append stores a confirmed booking under its ID.
func (r *BookingRepo) Append(b *model.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = b
}

// Get returns the booking with the given ID, if it exists.
func (r *BookingRepo) Get(id uint64) (*model.Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	return b, ok
}

// Count returns the number of bookings recorded so far.
func (r *BookingRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
