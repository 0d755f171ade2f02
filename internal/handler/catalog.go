package handler

import (
	"errors"   // errors.Is comparisons against repository sentinels
	"net/http" // http provides status code constants
	"strconv"  // strconv parses string identifiers to numeric types
	"strings"  // strings offers trimming utilities

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking-engine/internal/model"
	"github.com/iliyamo/movie-booking-engine/internal/repository"
)

// CatalogHandler exposes the movie/theater catalog over HTTP.  Reads are
// public; mutations sit behind the JWT admin middleware applied by the
// router, so the handlers themselves only validate payloads.
type CatalogHandler struct {
	Catalog *repository.CatalogRepo
}

// NewCatalogHandler constructs a CatalogHandler.  The catalog must be
// non-nil.
func NewCatalogHandler(catalog *repository.CatalogRepo) *CatalogHandler {
	if catalog == nil {
		panic("nil catalog passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: catalog}
}

// parseID32 parses a positive 32-bit identifier from a path parameter.
func parseID32(c echo.Context, name string) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint32(id), true
}

// CreateMovie handles POST /v1/movies.  The body must contain a numeric
// "id" and a non-empty "title".  Posting an existing ID overwrites the
// title (last write wins); both cases return 201 with the stored movie.
func (h *CatalogHandler) CreateMovie(c echo.Context) error {
	var body struct {
		ID    uint32 `json:"id"`
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	title := strings.TrimSpace(body.Title)
	if body.ID == 0 || title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id and title are required"})
	}
	movie := &model.Movie{ID: body.ID, Title: title}
	h.Catalog.AddMovie(movie)
	return c.JSON(http.StatusCreated, movie)
}

// CreateTheater handles POST /v1/theaters.  Same contract as
// CreateMovie with "name" instead of "title".
func (h *CatalogHandler) CreateTheater(c echo.Context) error {
	var body struct {
		ID   uint32 `json:"id"`
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if body.ID == 0 || name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id and name are required"})
	}
	theater := &model.Theater{ID: body.ID, Name: name}
	h.Catalog.AddTheater(theater)
	return c.JSON(http.StatusCreated, theater)
}

// LinkMovieToTheater handles POST /v1/movies/:id/theaters/:theater_id/link.
// Both entities must already exist in the catalog.
func (h *CatalogHandler) LinkMovieToTheater(c echo.Context) error {
	movieID, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	theaterID, ok := parseID32(c, "theater_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theater id"})
	}
	if err := h.Catalog.LinkMovieToTheater(movieID, theaterID); err != nil {
		if errors.Is(err, repository.ErrUnknownMovie) || errors.Is(err, repository.ErrUnknownTheater) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not link"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"movie_id": movieID, "theater_id": theaterID})
}

// ListMovies handles GET /v1/movies and returns every movie ordered by
// ascending ID.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"movies": h.Catalog.AllMovies()})
}

// GetMovie handles GET /v1/movies/:id.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
	movieID, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	movie, found := h.Catalog.GetMovie(movieID)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	return c.JSON(http.StatusOK, movie)
}

// ListTheatersForMovie handles GET /v1/movies/:id/theaters.  The result
// preserves link insertion order and is empty (not an error) for a movie
// with no showings.
func (h *CatalogHandler) ListTheatersForMovie(c echo.Context) error {
	movieID, ok := parseID32(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	if _, found := h.Catalog.GetMovie(movieID); !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"theaters": h.Catalog.TheatersForMovie(movieID)})
}
