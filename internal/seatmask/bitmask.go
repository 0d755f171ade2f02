// Package seatmask implements the lock-free seat availability core.  Each
// (movie, theater) pair owns a fixed 20-seat pool represented as an atomic
// bitmask: bit 0 is seat a1, bit 19 is seat a20, and a set bit means the
// seat is occupied.  Reservation is performed with a bounded compare-and-swap
// loop so concurrent bookings never block each other on a mutex.
package seatmask

import (
	"math/bits"
	"runtime"
	"sync/atomic"
	"time"
)

const (
	// MaxSeats is the fixed capacity of every seat pool.
	MaxSeats = 20

	// allSeatsMask has one bit set per valid seat.
	allSeatsMask = (uint32(1) << MaxSeats) - 1

	// maxRetries bounds the CAS loop in TryReserve.  Exhausting the
	// budget refuses the reservation instead of spinning forever under
	// pathological contention; callers treat that as "try again later".
	maxRetries = 100
)

// SeatMask is the occupancy bitmask for one seat pool.  Bits only ever
// transition from free to occupied; there is no release operation.  The
// zero value is ready to use with all seats free.
type SeatMask struct {
	occupied atomic.Uint32
}

// New returns a SeatMask with every seat available.
func New() *SeatMask { return &SeatMask{} }

// TryReserve atomically claims every seat in mask.  It succeeds only if,
// at the instant of the winning atomic update, none of the requested bits
// were set.  The operation is all-or-nothing: on failure no bit changes.
//
// Each attempt reloads the current occupancy.  If any requested seat is
// already occupied the call fails immediately; occupancy is monotonic, so
// retrying could never help.  A CAS rejection means another goroutine
// raced us on the word, so we back off briefly and retry up to maxRetries
// times before giving up.
func (m *SeatMask) TryReserve(mask uint32) bool {
	if mask == 0 || mask&^allSeatsMask != 0 {
		return false
	}
	for attempt := 0; attempt < maxRetries; attempt++ {
		current := m.occupied.Load()
		if current&mask != 0 {
			// At least one requested seat is taken.
			return false
		}
		if m.occupied.CompareAndSwap(current, current|mask) {
			return true
		}
		// Lost the race on the word, not on a seat.  Yield and back
		// off a little longer each attempt before reloading.
		runtime.Gosched()
		time.Sleep(time.Duration(attempt+1) * 50 * time.Nanosecond)
	}
	return false
}

// AreAvailable reports whether every seat in mask is currently free.  The
// read is a single atomic load and may be stale by the time the caller
// acts on it.
func (m *SeatMask) AreAvailable(mask uint32) bool {
	return m.occupied.Load()&mask == 0
}

// Occupied returns the current occupancy bitmask as a single atomic
// snapshot.
func (m *SeatMask) Occupied() uint32 {
	return m.occupied.Load()
}

// AvailableSeats returns the IDs of all currently free seats in ascending
// seat order.  The list is built from one atomic snapshot of the mask.
func (m *SeatMask) AvailableSeats() []string {
	current := m.occupied.Load()
	available := make([]string, 0, MaxSeats)
	for bit := uint32(0); bit < MaxSeats; bit++ {
		if current&(1<<bit) == 0 {
			available = append(available, BitToSeat(bit))
		}
	}
	return available
}

// AvailableCount returns the number of free seats from one atomic
// snapshot of the mask.
func (m *SeatMask) AvailableCount() uint32 {
	current := m.occupied.Load()
	return MaxSeats - uint32(bits.OnesCount32(current&allSeatsMask))
}
