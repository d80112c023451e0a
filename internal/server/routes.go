package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/cinepass/cinebook/internal/booking"
	"github.com/cinepass/cinebook/internal/inventory"
	"github.com/cinepass/cinebook/internal/payment"
	"github.com/cinepass/cinebook/internal/quiz"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Logger   *slog.Logger
	DB       *sql.DB
	Store    Store
	Sessions *booking.Registry
	Quiz     *quiz.Service
	Payments payment.Provider
	SPADir   string
}

func addRoutes(r chi.Router, d Deps) {
	gen := inventory.New()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("CineBook API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(d.Logger, d.DB))

	// Reference data.
	r.Get("/api/movies", handleListMovies(d.Store))
	r.Get("/api/movies/{id}", handleGetMovie(d.Store))
	r.Get("/api/cities", handleListCities())

	// Inventory — freshly randomized per request, no holds.
	r.Get("/api/movies/{movieID}/seats", handleSeats(d.Store, gen))
	r.Get("/api/movies/{movieID}/parking", handleParkingSlots(d.Store, gen))

	// Auth.
	r.Post("/api/auth/register", handleRegister(d.Store))
	r.Post("/api/auth/login", handleLogin(d.Store))
	r.Post("/api/auth/logout", handleLogout(d.Store))
	r.Get("/api/auth/me", handleMe(d.Store))

	// Profile — requires a login session.
	r.Route("/api/profile", func(r chi.Router) {
		r.Use(authMiddleware(d.Store))
		r.Get("/", handleGetProfile(d.Store))
		r.Put("/", handleUpdateProfile(d.Store))
	})

	// Booking flow — POST starts a session; everything else needs the
	// session token, resolved by bookingMiddleware.
	r.Route("/api/booking", func(r chi.Router) {
		r.Post("/", handleStartBooking(d.Sessions))

		r.Group(func(r chi.Router) {
			r.Use(bookingMiddleware(d.Sessions))
			r.Get("/", handleBookingState())
			r.Delete("/", handleAbandonBooking(d.Sessions))
			r.Put("/city", handleSetCity())
			r.Put("/theater", handleSetTheater())
			r.Put("/movie", handleSetMovie(d.Store))
			r.Put("/showtime", handleSetShowtime())
			r.Put("/seats", handleSetSeats())
			r.Put("/parking", handleSetParking())
			r.Post("/checkout", handleCheckout(d.Payments, d.Logger))
			r.Post("/confirm", handleConfirmBooking(d.Store, d.Sessions, d.Logger))
		})
	})

	// Trivia quiz.
	r.Post("/api/quiz", handleQuiz(d.Quiz))

	if d.SPADir != "" {
		if info, err := os.Stat(d.SPADir); err == nil && info.IsDir() {
			d.Logger.Info("serving SPA", "dir", d.SPADir)
			r.NotFound(handleSPA(d.SPADir))
		}
	}
}
