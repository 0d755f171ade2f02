// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when seats are successfully booked.
// It carries enough information for downstream consumers to log, notify,
// or feed analytics without querying the in-memory catalog.
type BookingConfirmedEvent struct {
	BookingID   uint64   `json:"booking_id"`
	MovieID     uint32   `json:"movie_id"`
	MovieTitle  string   `json:"movie_title"`
	TheaterID   uint32   `json:"theater_id"`
	TheaterName string   `json:"theater_name"`
	Seats       []string `json:"seats"`
	ConfirmedAt string   `json:"confirmed_at"`
}
