package repository

import (
	"sync"
	"testing"

	"github.com/iliyamo/movie-booking-engine/internal/model"
)

func TestBookingRepo_NextIDStartsAtOne(t *testing.T) {
	repo := NewBookingRepo()
	if id := repo.NextID(); id != 1 {
		t.Errorf("expected first ID 1, got %d", id)
	}
	if id := repo.NextID(); id != 2 {
		t.Errorf("expected second ID 2, got %d", id)
	}
}

func TestBookingRepo_AppendAndGet(t *testing.T) {
	repo := NewBookingRepo()
	b := &model.Booking{ID: repo.NextID(), MovieID: 1, TheaterID: 2, Seats: []string{"a1", "a2"}}
	repo.Append(b)

	got, ok := repo.Get(b.ID)
	if !ok {
		t.Fatal("expected booking to be found")
	}
	if got.MovieID != 1 || got.TheaterID != 2 || len(got.Seats) != 2 {
		t.Errorf("unexpected booking: %+v", got)
	}
	if _, ok := repo.Get(999); ok {
		t.Error("expected missing booking to report not found")
	}
	if repo.Count() != 1 {
		t.Errorf("expected count 1, got %d", repo.Count())
	}
}

func TestBookingRepo_ConcurrentIDsUnique(t *testing.T) {
	repo := NewBookingRepo()

	const goroutines = 500
	ids := make([]uint64, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := repo.NextID()
			ids[i] = id
			repo.Append(&model.Booking{ID: id, MovieID: 1, TheaterID: 1, Seats: []string{"a1"}})
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, goroutines)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate booking ID %d", id)
		}
		seen[id] = true
	}
	if repo.Count() != goroutines {
		t.Errorf("expected %d bookings, got %d", goroutines, repo.Count())
	}
}
