package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/movie-booking-engine/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/movie-booking-engine/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The /healthz endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the admin login endpoint.  Login is the only
// auth operation: there are no user accounts, refresh tokens or logout,
// just a short-lived admin JWT for the catalog mutation routes.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	e.POST("/v1/auth/login", a.Login)
}

// RegisterCatalog registers the catalog browse and mutation routes.
// Reads are public so anyone can list movies and showings; mutations
// live in a group protected by JWT authentication and the ADMIN role.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	// Public browse endpoints, served through the response cache when
	// Redis is available.
	browse := e.Group("/v1", cache)
	browse.GET("/movies", h.ListMovies)
	browse.GET("/movies/:id", h.GetMovie)
	browse.GET("/movies/:id/theaters", h.ListTheatersForMovie)

	// Catalog mutations require a valid admin token.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))
	admin.POST("/movies", h.CreateMovie)
	admin.POST("/theaters", h.CreateTheater)
	admin.POST("/movies/:id/theaters/:theater_id/link", h.LinkMovieToTheater)
}

// RegisterBooking registers seat availability reads and the booking
// operation.  Availability reads go through the response cache;
// bookings go through the rate limiter so one client cannot monopolize
// the seat pools.  Both middlewares degrade to pass-throughs when Redis
// is not configured.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, limiter, cache echo.MiddlewareFunc) {
	seats := e.Group("/v1/movies/:id/theaters/:theater_id", cache)
	seats.GET("/seats", h.AvailableSeats)
	seats.GET("/seats/count", h.AvailableCount)
	seats.GET("/occupancy", h.Occupancy)

	e.POST("/v1/movies/:id/theaters/:theater_id/bookings", h.ReserveSeats, limiter)
	e.GET("/v1/bookings/:id", h.GetBooking)
}
