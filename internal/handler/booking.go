package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-engine/internal/queue"
	"github.com/iliyamo/movie-booking-engine/internal/repository"
	"github.com/iliyamo/movie-booking-engine/internal/service"
)

// BookingHandler exposes seat availability and the booking operation.
// The handler is a thin HTTP skin over BookingService: every refusal the
// service can produce maps onto a 4xx/5xx status here, and a confirmed
// booking additionally fans out a best-effort broker event.
type BookingHandler struct {
	Service *service.BookingService
	Catalog *repository.CatalogRepo // display names for published events

	// Publish is invoked asynchronously after each confirmed booking.
	// Defaults to the RabbitMQ publisher; tests may replace or nil it.
	Publish func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// NewBookingHandler constructs a BookingHandler wired to the RabbitMQ
// publisher.  Service and catalog must be non-nil.
func NewBookingHandler(svc *service.BookingService, catalog *repository.CatalogRepo) *BookingHandler {
	if svc == nil || catalog == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc, Catalog: catalog, Publish: service.PublishBookingConfirmed}
}

// ReserveSeats handles POST /v1/movies/:id/theaters/:theater_id/bookings.
// The body must contain a JSON object with a "seats" array of seat IDs
// such as ["a1","a5"].  On success it returns 201 Created with the
// booking record.  Refusals map to: 400 for malformed seats, 404 for
// unknown or unlinked movie/theater, 409 when a requested seat is
// already taken, and 503 when the reservation lost its retry budget to
// contention and should simply be retried.
func (h *BookingHandler) ReserveSeats(c echo.Context) error {
	movieID, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	theaterID, ok := parseID32(c, "theater_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theater id"})
	}
	var body struct {
		Seats []string `json:"seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	booking, err := h.Service.ReserveSeats(c.Request().Context(), movieID, theaterID, body.Seats)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoSeats), errors.Is(err, service.ErrInvalidSeat):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrUnknownMovie),
			errors.Is(err, repository.ErrUnknownTheater),
			errors.Is(err, repository.ErrNotLinked):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrSeatsOccupied):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrContention):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	// Publish outside the request path; a broker outage must not delay
	// or fail a booking that is already in the ledger.
	if h.Publish != nil {
		ev := queue.BookingConfirmedEvent{
			BookingID:   booking.ID,
			MovieID:     booking.MovieID,
			TheaterID:   booking.TheaterID,
			Seats:       booking.Seats,
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if m, found := h.Catalog.GetMovie(booking.MovieID); found {
			ev.MovieTitle = m.Title
		}
		if t, found := h.Catalog.GetTheater(booking.TheaterID); found {
			ev.TheaterName = t.Name
		}
		go func() { _ = h.Publish(context.Background(), ev) }()
	}

	return c.JSON(http.StatusCreated, booking)
}

// GetBooking handles GET /v1/bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	booking, found := h.Service.GetBooking(id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, booking)
}

// AvailableSeats handles GET /v1/movies/:id/theaters/:theater_id/seats.
// A pair nobody ever booked reports the full pool.  The response is one
// point-in-time snapshot and may be stale by the time the client books.
func (h *BookingHandler) AvailableSeats(c echo.Context) error {
	movieID, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	theaterID, ok := parseID32(c, "theater_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theater id"})
	}
	seats := h.Service.AvailableSeats(movieID, theaterID)
	return c.JSON(http.StatusOK, echo.Map{"seats": seats, "count": len(seats)})
}

// AvailableCount handles GET /v1/movies/:id/theaters/:theater_id/seats/count.
func (h *BookingHandler) AvailableCount(c echo.Context) error {
	movieID, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	theaterID, ok := parseID32(c, "theater_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theater id"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": h.Service.AvailableCount(movieID, theaterID)})
}

// Occupancy handles GET /v1/movies/:id/theaters/:theater_id/occupancy
// and reports how full the pool is as a percentage.
func (h *BookingHandler) Occupancy(c echo.Context) error {
	movieID, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	theaterID, ok := parseID32(c, "theater_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theater id"})
	}
	return c.JSON(http.StatusOK, echo.Map{"occupancy_percent": h.Service.OccupancyPercentage(movieID, theaterID)})
}
