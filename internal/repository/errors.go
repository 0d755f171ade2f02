// Package repository holds the in-memory stores behind the booking
// engine: the movie/theater catalog and the append-only booking ledger.
// This file defines error types that are reused across repositories.
// These sentinel values allow higher layers such as handlers to
// distinguish between different failure scenarios with errors.Is and
// translate them into the right HTTP responses.
package repository

import "errors"

// ErrUnknownMovie is returned when an operation references a movie ID
// that does not exist in the catalog. Handlers should translate this
// into an HTTP 404 response.
var ErrUnknownMovie = errors.New("unknown movie")

// ErrUnknownTheater is returned when an operation references a theater
// ID that does not exist in the catalog. Handlers should translate
// this into an HTTP 404 response.
var ErrUnknownTheater = errors.New("unknown theater")

// ErrNotLinked is returned when a movie and theater both exist but the
// movie is not showing in that theater. Handlers should translate this
// into an HTTP 404 response.
var ErrNotLinked = errors.New("movie not showing in theater")
