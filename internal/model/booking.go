package model

// Booking records a confirmed seat reservation for a movie showing
// in a specific theater.  A booking is created exactly once, at the
// moment the atomic seat reservation succeeds, and is never mutated
// or removed afterwards.  The ID is globally unique across all
// bookings; assignment order is not guaranteed to match real-time
// order under concurrency, only uniqueness.
//
// Fields:
//  ID        – globally unique booking identifier.
//  MovieID   – movie that was booked.
//  TheaterID – theater in which the seats were reserved.
//  Seats     – seat IDs reserved under this booking (e.g. ["a1","a5"]).
type Booking struct {
	ID        uint64   `json:"booking_id"` // unique booking identifier
	MovieID   uint32   `json:"movie_id"`   // booked movie
	TheaterID uint32   `json:"theater_id"` // booked theater
	Seats     []string `json:"seats"`      // reserved seat IDs
}
