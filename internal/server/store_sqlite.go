package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cinepass/cinebook/internal/cinebook"
)

// SQLiteStore persists users, sessions, bookings and movie reference data.
// Aggregate user data lives in a JSONB document column; bookings get their
// own table so the profile view can join them against movies.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			data          JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id      TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS movies (
			id    TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			data  JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			movie_id   TEXT NOT NULL REFERENCES movies(id),
			showtime   TEXT NOT NULL,
			theater    TEXT NOT NULL,
			seats      TEXT NOT NULL,
			total      INTEGER NOT NULL,
			status     TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

// profileDoc is the JSONB document stored per user. Booking history lives in
// the bookings table, not here.
type profileDoc struct {
	Name             string   `json:"name"`
	Phone            string   `json:"phone,omitempty"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty"`
	FavoriteGenres   []string `json:"favoriteGenres"`
	PreferredCity    string   `json:"preferredCity,omitempty"`
	PreferredTheater string   `json:"preferredTheater,omitempty"`
	LoyaltyPoints    int      `json:"loyaltyPoints"`
	WatchedMovies    []string `json:"watchedMovies"`
	Avatar           string   `json:"avatar,omitempty"`
}

func (s *SQLiteStore) CreateUser(ctx context.Context, email, passwordHash, name string) (UserSummary, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE email = ?`, email,
	).Scan(&exists)
	if err != nil {
		return UserSummary{}, err
	}
	if exists > 0 {
		return UserSummary{}, ErrEmailTaken
	}

	doc := profileDoc{
		Name:           name,
		FavoriteGenres: []string{},
		WatchedMovies:  []string{},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return UserSummary{}, err
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, data) VALUES (?, ?, ?, jsonb(?))`,
		id, email, passwordHash, string(data),
	)
	if err != nil {
		return UserSummary{}, err
	}

	return UserSummary{ID: id, Email: email, Name: name}, nil
}

func (s *SQLiteStore) UserByEmail(ctx context.Context, email string) (string, string, error) {
	var id, hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM users WHERE email = ?`, email,
	).Scan(&id, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrNotFound
	}
	return id, hash, err
}

func (s *SQLiteStore) CreateSession(ctx context.Context, userID string) (string, error) {
	id := newSessionID()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id) VALUES (?, ?)`, id, userID,
	)
	return id, err
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID)
	return err
}

func (s *SQLiteStore) UserFromSession(ctx context.Context, sessionID string) (userSession, error) {
	var sess userSession
	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT u.id, u.email, json(u.data)
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = ?
	`, sessionID).Scan(&sess.UserID, &sess.Email, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return userSession{}, errNoSession
	}
	if err != nil {
		return userSession{}, err
	}

	var doc profileDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return userSession{}, err
	}
	sess.Name = doc.Name
	return sess, nil
}

func (s *SQLiteStore) userDoc(ctx context.Context, userID string) (string, profileDoc, error) {
	var email, data string
	err := s.db.QueryRowContext(ctx,
		`SELECT email, json(data) FROM users WHERE id = ?`, userID,
	).Scan(&email, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", profileDoc{}, ErrNotFound
	}
	if err != nil {
		return "", profileDoc{}, err
	}

	var doc profileDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return "", profileDoc{}, err
	}
	return email, doc, nil
}

func (s *SQLiteStore) putUserDoc(ctx context.Context, userID string, doc profileDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE users SET data = jsonb(?) WHERE id = ?`, string(data), userID,
	)
	return err
}

func (s *SQLiteStore) Profile(ctx context.Context, userID string) (cinebook.UserProfile, error) {
	email, doc, err := s.userDoc(ctx, userID)
	if err != nil {
		return cinebook.UserProfile{}, err
	}

	history, err := s.bookingHistory(ctx, userID)
	if err != nil {
		return cinebook.UserProfile{}, err
	}

	return cinebook.UserProfile{
		ID:               userID,
		Email:            email,
		Name:             doc.Name,
		Phone:            doc.Phone,
		DateOfBirth:      doc.DateOfBirth,
		FavoriteGenres:   doc.FavoriteGenres,
		PreferredCity:    doc.PreferredCity,
		PreferredTheater: doc.PreferredTheater,
		LoyaltyPoints:    doc.LoyaltyPoints,
		WatchedMovies:    doc.WatchedMovies,
		Avatar:           doc.Avatar,
		BookingHistory:   history,
	}, nil
}

// bookingHistory joins bookings against movie reference data, newest first.
func (s *SQLiteStore) bookingHistory(ctx context.Context, userID string) ([]cinebook.BookingRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, m.title, json_extract(m.data, '$.image'),
		       b.created_at, b.showtime, b.theater, b.seats, b.total, b.status
		FROM bookings b
		JOIN movies m ON m.id = b.movie_id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []cinebook.BookingRecord{}
	for rows.Next() {
		var rec cinebook.BookingRecord
		var image sql.NullString
		var createdAt, seatsJSON string
		if err := rows.Scan(&rec.ID, &rec.MovieTitle, &image, &createdAt,
			&rec.Showtime, &rec.Theater, &seatsJSON, &rec.TotalAmount, &rec.Status); err != nil {
			return nil, err
		}
		rec.MovieImage = image.String
		if len(createdAt) >= 10 {
			rec.Date = createdAt[:10]
		}
		if err := json.Unmarshal([]byte(seatsJSON), &rec.Seats); err != nil {
			return nil, err
		}
		history = append(history, rec)
	}
	return history, rows.Err()
}

func (s *SQLiteStore) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (cinebook.UserProfile, error) {
	_, doc, err := s.userDoc(ctx, userID)
	if err != nil {
		return cinebook.UserProfile{}, err
	}

	if upd.Name != nil {
		doc.Name = *upd.Name
	}
	if upd.Phone != nil {
		doc.Phone = *upd.Phone
	}
	if upd.DateOfBirth != nil {
		doc.DateOfBirth = *upd.DateOfBirth
	}
	if upd.FavoriteGenres != nil {
		doc.FavoriteGenres = *upd.FavoriteGenres
	}
	if upd.PreferredCity != nil {
		doc.PreferredCity = *upd.PreferredCity
	}
	if upd.PreferredTheater != nil {
		doc.PreferredTheater = *upd.PreferredTheater
	}
	if upd.Avatar != nil {
		doc.Avatar = *upd.Avatar
	}

	if err := s.putUserDoc(ctx, userID, doc); err != nil {
		return cinebook.UserProfile{}, err
	}
	return s.Profile(ctx, userID)
}

func (s *SQLiteStore) AddBooking(ctx context.Context, userID, movieID string, rec cinebook.BookingRecord) (string, error) {
	seats, err := json.Marshal(rec.Seats)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO bookings (id, user_id, movie_id, showtime, theater, seats, total, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, userID, movieID, rec.Showtime, rec.Theater, string(seats),
		rec.TotalAmount, string(rec.Status), nowUTC())
	if err != nil {
		return "", err
	}

	// Completed flows feed loyalty points and the watched list.
	_, doc, err := s.userDoc(ctx, userID)
	if err != nil {
		return "", err
	}
	doc.LoyaltyPoints += rec.TotalAmount / 10
	doc.WatchedMovies = appendUnique(doc.WatchedMovies, movieID)
	if err := s.putUserDoc(ctx, userID, doc); err != nil {
		return "", err
	}

	return id, nil
}

func (s *SQLiteStore) ListMovies(ctx context.Context) ([]cinebook.Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT json(data) FROM movies ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []cinebook.Movie
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var m cinebook.Movie
		if err := json.Unmarshal([]byte(data), &m); err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func (s *SQLiteStore) MovieByID(ctx context.Context, id string) (cinebook.Movie, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM movies WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return cinebook.Movie{}, ErrNotFound
	}
	if err != nil {
		return cinebook.Movie{}, err
	}

	var m cinebook.Movie
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return cinebook.Movie{}, err
	}
	return m, nil
}

func (s *SQLiteStore) putMovie(ctx context.Context, m cinebook.Movie) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO movies (id, title, data) VALUES (?, ?, jsonb(?))`,
		m.ID, m.Title, string(data),
	)
	return err
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func nowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
