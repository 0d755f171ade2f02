package repository

import (
	"sort"
	"sync"

	"github.com/iliyamo/movie-booking-engine/internal/model"
)

// CatalogRepo stores movies, theaters and the many-to-many links between
// them.  The workload is read-heavy: every booking does a linkage check
// while catalog writes happen a handful of times at startup, so the maps
// are guarded by a reader-writer lock and readers never exclude each
// other.  Entities are append-only within the process lifetime; there is
// no delete or unlink operation.
type CatalogRepo struct {
	mu            sync.RWMutex
	movies        map[uint32]*model.Movie
	theaters      map[uint32]*model.Theater
	movieTheaters map[uint32][]uint32
}

// NewCatalogRepo returns an empty catalog.
func NewCatalogRepo() *CatalogRepo {
	return &CatalogRepo{
		movies:        make(map[uint32]*model.Movie),
		theaters:      make(map[uint32]*model.Theater),
		movieTheaters: make(map[uint32][]uint32),
	}
}

// AddMovie registers a movie under its ID.  Adding the same ID twice is
// a last-write-wins overwrite, not an error.
func (r *CatalogRepo) AddMovie(m *model.Movie) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movies[m.ID] = m
}

// AddTheater registers a theater under its ID, last-write-wins by ID.
func (r *CatalogRepo) AddTheater(t *model.Theater) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theaters[t.ID] = t
}

// LinkMovieToTheater records that a movie is showing in a theater.  Both
// endpoints must already exist in the catalog; insertion order of a
// movie's links is preserved.
func (r *CatalogRepo) LinkMovieToTheater(movieID, theaterID uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movies[movieID]; !ok {
		return ErrUnknownMovie
	}
	if _, ok := r.theaters[theaterID]; !ok {
		return ErrUnknownTheater
	}
	r.movieTheaters[movieID] = append(r.movieTheaters[movieID], theaterID)
	return nil
}

// AllMovies returns every movie in the catalog ordered by ascending ID.
func (r *CatalogRepo) AllMovies() []*model.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*model.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetMovie returns the movie with the given ID, if it exists.
func (r *CatalogRepo) GetMovie(id uint32) (*model.Movie, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.movies[id]
	return m, ok
}

// GetTheater returns the theater with the given ID, if it exists.
func (r *CatalogRepo) GetTheater(id uint32) (*model.Theater, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.theaters[id]
	return t, ok
}

// TheatersForMovie returns the theaters showing the given movie, in the
// order the links were created.  An unknown or unlinked movie yields an
// empty slice.
func (r *CatalogRepo) TheatersForMovie(movieID uint32) []*model.Theater {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.movieTheaters[movieID]
	result := make([]*model.Theater, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.theaters[id]; ok {
			result = append(result, t)
		}
	}
	return result
}

// CheckLink verifies under a single shared lock that movieID and
// theaterID both exist and are linked.  It returns ErrUnknownMovie,
// ErrUnknownTheater or ErrNotLinked, or nil when the pair is bookable.
// The booking path calls this once before touching the seat pool.
func (r *CatalogRepo) CheckLink(movieID, theaterID uint32) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.movies[movieID]; !ok {
		return ErrUnknownMovie
	}
	if _, ok := r.theaters[theaterID]; !ok {
		return ErrUnknownTheater
	}
	for _, id := range r.movieTheaters[movieID] {
		if id == theaterID {
			return nil
		}
	}
	return ErrNotLinked
}
