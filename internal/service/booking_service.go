// Package service contains the booking orchestrator that ties the
// catalog, the seat-mask registry and the booking ledger together, plus
// the RabbitMQ publisher for confirmed-booking events.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/movie-booking-engine/internal/model"
	"github.com/iliyamo/movie-booking-engine/internal/repository"
	"github.com/iliyamo/movie-booking-engine/internal/seatmask"
)

// Sentinel errors returned by ReserveSeats.  All of them are expected
// business outcomes, not faults: handlers translate each into a refusal
// response and no shared state is ever corrupted by any of them.
var (
	// ErrNoSeats means the request contained no seat IDs.
	ErrNoSeats = errors.New("no seats requested")
	// ErrInvalidSeat means a seat ID failed the seat codec.
	ErrInvalidSeat = errors.New("invalid seat id")
	// ErrSeatsOccupied means at least one requested seat was already taken.
	ErrSeatsOccupied = errors.New("seats already occupied")
	// ErrContention means the CAS retry budget ran out before the request
	// could be resolved.  The seats may still be free; callers should
	// treat this as "try again later", not as "taken".
	ErrContention = errors.New("reservation contention, try again")
)

// BookingService is the single entry point for reserving seats.  It
// validates requests against the catalog, performs the lock-free seat
// reservation, and records successful outcomes in the ledger.  It owns
// none of its collaborators; construct them once in main and share.
type BookingService struct {
	catalog  *repository.CatalogRepo
	registry *seatmask.Registry
	bookings *repository.BookingRepo
}

// NewBookingService constructs a BookingService.  All dependencies must
// be non-nil.
func NewBookingService(catalog *repository.CatalogRepo, registry *seatmask.Registry, bookings *repository.BookingRepo) *BookingService {
	if catalog == nil || registry == nil || bookings == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{catalog: catalog, registry: registry, bookings: bookings}
}

// ReserveSeats books the given seats for a movie in a theater.  The
// reservation is all-or-nothing: either every requested seat flips from
// free to occupied and a booking record is created, or nothing changes
// and a sentinel error describes why.  No booking ID is consumed on
// failure.
//
// The catalog linkage check and the seat reservation are not one
// transaction, but the gap is benign here: links are append-only, so a
// pair that passed the check cannot become unlinked before the CAS.
func (s *BookingService) ReserveSeats(ctx context.Context, movieID, theaterID uint32, seatIDs []string) (*model.Booking, error) {
	if len(seatIDs) == 0 {
		return nil, ErrNoSeats
	}
	for _, id := range seatIDs {
		if !seatmask.IsValidSeat(id) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSeat, id)
		}
	}
	if err := s.catalog.CheckLink(movieID, theaterID); err != nil {
		return nil, err
	}

	// Duplicate seat IDs collapse onto the same bit here, so a request
	// like ["a1","a1"] claims one seat, not two.
	mask := seatmask.BuildMask(seatIDs)
	pool := s.registry.GetOrCreate(seatmask.Key{MovieID: movieID, TheaterID: theaterID})
	if !pool.TryReserve(mask) {
		// Distinguish the two failure modes for diagnostics: if the
		// seats are (still) taken the refusal is final, otherwise we
		// lost the retry budget to contention.
		if !pool.AreAvailable(mask) {
			return nil, ErrSeatsOccupied
		}
		return nil, ErrContention
	}

	booking := &model.Booking{
		ID:        s.bookings.NextID(),
		MovieID:   movieID,
		TheaterID: theaterID,
		Seats:     append([]string(nil), seatIDs...),
	}
	s.bookings.Append(booking)
	return booking, nil
}

// GetBooking returns a previously confirmed booking by ID.
func (s *BookingService) GetBooking(id uint64) (*model.Booking, bool) {
	return s.bookings.Get(id)
}

// AvailableSeats returns the free seat IDs for a movie/theater pair.  A
// pair with no reservations yet has no seat mask, which means all
// MaxSeats seats are available.
func (s *BookingService) AvailableSeats(movieID, theaterID uint32) []string {
	pool := s.registry.Get(seatmask.Key{MovieID: movieID, TheaterID: theaterID})
	if pool == nil {
		all := make([]string, 0, seatmask.MaxSeats)
		for bit := uint32(0); bit < seatmask.MaxSeats; bit++ {
			all = append(all, seatmask.BitToSeat(bit))
		}
		return all
	}
	return pool.AvailableSeats()
}

// AvailableCount returns the number of free seats for a movie/theater
// pair, defaulting to the full pool when nothing was ever reserved.
func (s *BookingService) AvailableCount(movieID, theaterID uint32) uint32 {
	pool := s.registry.Get(seatmask.Key{MovieID: movieID, TheaterID: theaterID})
	if pool == nil {
		return seatmask.MaxSeats
	}
	return pool.AvailableCount()
}

// OccupancyPercentage returns how full a pool is, in [0.0, 100.0].
func (s *BookingService) OccupancyPercentage(movieID, theaterID uint32) float64 {
	occupied := seatmask.MaxSeats - s.AvailableCount(movieID, theaterID)
	return float64(occupied) / float64(seatmask.MaxSeats) * 100.0
}
