package server

import (
	"context"
	"errors"

	"github.com/cinepass/cinebook/internal/cinebook"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// UserSummary is the slice of a user returned by register/login/me.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ProfileUpdate carries the fields of a partial profile edit. Nil pointers
// mean "leave unchanged".
type ProfileUpdate struct {
	Name             *string   `json:"name,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	DateOfBirth      *string   `json:"dateOfBirth,omitempty"`
	FavoriteGenres   *[]string `json:"favoriteGenres,omitempty"`
	PreferredCity    *string   `json:"preferredCity,omitempty"`
	PreferredTheater *string   `json:"preferredTheater,omitempty"`
	Avatar           *string   `json:"avatar,omitempty"`
}

type Store interface {
	// Auth. CreateUser fails with ErrEmailTaken on a duplicate email;
	// UserByEmail fails with ErrNotFound so the handler can collapse both
	// login failures into one generic message.
	CreateUser(ctx context.Context, email, passwordHash, name string) (UserSummary, error)
	UserByEmail(ctx context.Context, email string) (id, passwordHash string, err error)
	CreateSession(ctx context.Context, userID string) (sessionID string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	UserFromSession(ctx context.Context, sessionID string) (userSession, error)

	// Profile. Booking history is read-only from this flow; only the single
	// user record is written.
	Profile(ctx context.Context, userID string) (cinebook.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (cinebook.UserProfile, error)

	// Bookings.
	AddBooking(ctx context.Context, userID string, movieID string, rec cinebook.BookingRecord) (bookingID string, err error)

	// Movie reference data, immutable after seeding.
	ListMovies(ctx context.Context) ([]cinebook.Movie, error)
	MovieByID(ctx context.Context, id string) (cinebook.Movie, error)
}
