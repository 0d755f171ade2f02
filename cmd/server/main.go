package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/movie-booking-engine/internal/config"
	"github.com/iliyamo/movie-booking-engine/internal/handler"
	"github.com/iliyamo/movie-booking-engine/internal/middleware"
	"github.com/iliyamo/movie-booking-engine/internal/model"
	"github.com/iliyamo/movie-booking-engine/internal/queue"
	"github.com/iliyamo/movie-booking-engine/internal/repository"
	"github.com/iliyamo/movie-booking-engine/internal/router"
	"github.com/iliyamo/movie-booking-engine/internal/seatmask"
	"github.com/iliyamo/movie-booking-engine/internal/service"
)

func main() {
	// Load .env when present; real deployments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// All state lives in these three stores for the process lifetime.
	catalog := repository.NewCatalogRepo()
	registry := seatmask.NewRegistry()
	bookings := repository.NewBookingRepo()
	svc := service.NewBookingService(catalog, registry, bookings)

	if cfg.SeedData {
		seedSampleData(catalog)
	}

	// Redis is optional: without it the rate limiter and response cache
	// become pass-throughs and the core still works.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg.JWTSecret, cfg.AccessTTLMin, cfg.AdminUser, cfg.AdminPassHash))
	router.RegisterCatalog(e, handler.NewCatalogHandler(catalog), cfg.JWTSecret, cache)
	router.RegisterBooking(e, handler.NewBookingHandler(svc, catalog), limiter, cache)

	// Consume booking.confirmed events in the background; the consumer
	// reconnects on its own and never takes the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}

// seedSampleData fills the catalog with a small demo data set so the API
// is explorable immediately after startup.
func seedSampleData(catalog *repository.CatalogRepo) {
	catalog.AddTheater(&model.Theater{ID: 1, Name: "VOX Cinemas - Mall of the Emirates (Dubai)"})
	catalog.AddTheater(&model.Theater{ID: 2, Name: "Reel Cinemas - Dubai Mall"})
	catalog.AddTheater(&model.Theater{ID: 3, Name: "Novo Cinemas - IMG Worlds of Adventure"})

	catalog.AddMovie(&model.Movie{ID: 1, Title: "Mission: Impossible – Dead Reckoning"})
	catalog.AddMovie(&model.Movie{ID: 2, Title: "Dune: Part Two"})
	catalog.AddMovie(&model.Movie{ID: 3, Title: "Oppenheimer"})
	catalog.AddMovie(&model.Movie{ID: 4, Title: "Avatar: The Way of Water"})

	links := [][2]uint32{
		{1, 1}, {1, 2},
		{2, 1}, {2, 3},
		{3, 2}, {3, 3},
		{4, 1}, {4, 2}, {4, 3},
	}
	for _, l := range links {
		if err := catalog.LinkMovieToTheater(l[0], l[1]); err != nil {
			log.Printf("seed: link movie %d to theater %d: %v", l[0], l[1], err)
		}
	}
	log.Printf("seeded sample catalog: 4 movies, 3 theaters, %d links", len(links))
}
