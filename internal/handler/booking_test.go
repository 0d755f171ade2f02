package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-engine/internal/model"
	"github.com/iliyamo/movie-booking-engine/internal/queue"
	"github.com/iliyamo/movie-booking-engine/internal/repository"
	"github.com/iliyamo/movie-booking-engine/internal/seatmask"
	"github.com/iliyamo/movie-booking-engine/internal/service"
)

func newTestBookingHandler(t *testing.T) *BookingHandler {
	t.Helper()
	catalog := repository.NewCatalogRepo()
	catalog.AddMovie(&model.Movie{ID: 1, Title: "Dune: Part Two"})
	catalog.AddTheater(&model.Theater{ID: 1, Name: "VOX Cinemas"})
	catalog.AddTheater(&model.Theater{ID: 2, Name: "Reel Cinemas"})
	if err := catalog.LinkMovieToTheater(1, 1); err != nil {
		t.Fatal(err)
	}
	svc := service.NewBookingService(catalog, seatmask.NewRegistry(), repository.NewBookingRepo())
	h := NewBookingHandler(svc, catalog)
	h.Publish = nil // no broker in unit tests
	return h
}

// reserve performs a booking request against the handler and returns the
// recorder.
func reserve(t *testing.T, h *BookingHandler, movieID, theaterID, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/movies/:id/theaters/:theater_id/bookings")
	c.SetParamNames("id", "theater_id")
	c.SetParamValues(movieID, theaterID)
	if err := h.ReserveSeats(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestReserveSeatsHandler_Created(t *testing.T) {
	h := newTestBookingHandler(t)

	rec := reserve(t, h, "1", "1", `{"seats":["a1","a2"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var b model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if b.ID != 1 || len(b.Seats) != 2 {
		t.Errorf("unexpected booking: %+v", b)
	}
}

func TestReserveSeatsHandler_Refusals(t *testing.T) {
	h := newTestBookingHandler(t)

	if rec := reserve(t, h, "1", "1", `{"seats":[]}`); rec.Code != http.StatusBadRequest {
		t.Errorf("empty seats: expected 400, got %d", rec.Code)
	}
	if rec := reserve(t, h, "1", "1", `{"seats":["a21"]}`); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid seat: expected 400, got %d", rec.Code)
	}
	if rec := reserve(t, h, "9", "1", `{"seats":["a1"]}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown movie: expected 404, got %d", rec.Code)
	}
	// Theater 2 exists but has no showing of movie 1.
	if rec := reserve(t, h, "1", "2", `{"seats":["a1"]}`); rec.Code != http.StatusNotFound {
		t.Errorf("unlinked: expected 404, got %d", rec.Code)
	}
	// Book a1, then try to book it again.
	if rec := reserve(t, h, "1", "1", `{"seats":["a1"]}`); rec.Code != http.StatusCreated {
		t.Fatalf("setup booking failed: %d", rec.Code)
	}
	if rec := reserve(t, h, "1", "1", `{"seats":["a1"]}`); rec.Code != http.StatusConflict {
		t.Errorf("occupied: expected 409, got %d", rec.Code)
	}
}

func TestReserveSeatsHandler_PublishesEvent(t *testing.T) {
	h := newTestBookingHandler(t)

	published := make(chan queue.BookingConfirmedEvent, 1)
	h.Publish = func(ctx context.Context, ev queue.BookingConfirmedEvent) error {
		published <- ev
		return nil
	}

	if rec := reserve(t, h, "1", "1", `{"seats":["a7"]}`); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	select {
	case ev := <-published:
		if ev.BookingID != 1 || ev.MovieTitle != "Dune: Part Two" || ev.TheaterName != "VOX Cinemas" {
			t.Errorf("unexpected event: %+v", ev)
		}
		if len(ev.Seats) != 1 || ev.Seats[0] != "a7" {
			t.Errorf("unexpected event seats: %v", ev.Seats)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
	}
}

func TestGetBookingHandler(t *testing.T) {
	h := newTestBookingHandler(t)
	if rec := reserve(t, h, "1", "1", `{"seats":["a1"]}`); rec.Code != http.StatusCreated {
		t.Fatalf("setup booking failed: %d", rec.Code)
	}

	e := echo.New()
	get := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.GetBooking(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		return rec
	}

	if rec := get("1"); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if rec := get("42"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if rec := get("zero"); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestAvailableSeatsHandler_DefaultPool(t *testing.T) {
	h := newTestBookingHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/movies/:id/theaters/:theater_id/seats")
	c.SetParamNames("id", "theater_id")
	c.SetParamValues("1", "1")
	if err := h.AvailableSeats(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Seats []string `json:"seats"`
		Count int      `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Count != seatmask.MaxSeats || len(body.Seats) != seatmask.MaxSeats {
		t.Errorf("expected full pool, got count=%d seats=%d", body.Count, len(body.Seats))
	}
}
