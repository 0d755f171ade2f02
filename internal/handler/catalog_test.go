package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-engine/internal/model"
	"github.com/iliyamo/movie-booking-engine/internal/repository"
)

func postJSON(t *testing.T, fn echo.HandlerFunc, path, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if err := fn(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestCreateMovieHandler(t *testing.T) {
	h := NewCatalogHandler(repository.NewCatalogRepo())

	rec := postJSON(t, h.CreateMovie, "/v1/movies", `{"id":1,"title":"Oppenheimer"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if m, ok := h.Catalog.GetMovie(1); !ok || m.Title != "Oppenheimer" {
		t.Errorf("movie not stored: %v (ok=%v)", m, ok)
	}

	if rec := postJSON(t, h.CreateMovie, "/v1/movies", `{"id":0,"title":"x"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("zero id: expected 400, got %d", rec.Code)
	}
	if rec := postJSON(t, h.CreateMovie, "/v1/movies", `{"id":2,"title":"  "}`); rec.Code != http.StatusBadRequest {
		t.Errorf("blank title: expected 400, got %d", rec.Code)
	}
}

func TestLinkHandler(t *testing.T) {
	h := NewCatalogHandler(repository.NewCatalogRepo())
	h.Catalog.AddMovie(&model.Movie{ID: 1, Title: "Oppenheimer"})
	h.Catalog.AddTheater(&model.Theater{ID: 1, Name: "VOX Cinemas"})

	link := func(movieID, theaterID string) *httptest.ResponseRecorder {
		return postJSON(t, h.LinkMovieToTheater, "/v1/movies/:id/theaters/:theater_id/link", "",
			"id", movieID, "theater_id", theaterID)
	}

	if rec := link("1", "1"); rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if rec := link("9", "1"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown movie: expected 404, got %d", rec.Code)
	}
	if rec := link("1", "9"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown theater: expected 404, got %d", rec.Code)
	}
	if rec := link("nope", "1"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad movie id: expected 400, got %d", rec.Code)
	}
}

func TestListMoviesHandler(t *testing.T) {
	h := NewCatalogHandler(repository.NewCatalogRepo())
	h.Catalog.AddMovie(&model.Movie{ID: 2, Title: "Dune: Part Two"})
	h.Catalog.AddMovie(&model.Movie{ID: 1, Title: "Oppenheimer"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/movies")
	if err := h.ListMovies(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Movies []model.Movie `json:"movies"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Movies) != 2 || body.Movies[0].ID != 1 || body.Movies[1].ID != 2 {
		t.Errorf("expected movies ordered by ID, got %+v", body.Movies)
	}
}
