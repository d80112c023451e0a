package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/cinepass/cinebook/internal/booking"
	"github.com/cinepass/cinebook/internal/database"
	"github.com/cinepass/cinebook/internal/payment"
	"github.com/cinepass/cinebook/internal/quiz"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLiteStore(ctx, db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := SeedMovies(ctx, logger, store); err != nil {
		t.Fatalf("seed movies: %v", err)
	}

	r := chi.NewRouter()
	addRoutes(r, Deps{
		Logger:   logger,
		DB:       db,
		Store:    store,
		Sessions: booking.NewRegistry(),
		Quiz:     quiz.NewService(nil, logger),
		Payments: payment.NewSimulated(0),
	})
	return r
}

// doJSON sends body as JSON and decodes the response into out (when non-nil).
// cookies and bearer may be empty.
func doJSON(t *testing.T, r http.Handler, method, path string, body any, cookies []*http.Cookie, bearer string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if out != nil && w.Code < 300 {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
		}
	}
	return w
}

// registerUser creates an account and returns its session cookies.
func registerUser(t *testing.T, r http.Handler, email, password, name string) []*http.Cookie {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		RegisterRequest{Email: email, Password: password, Name: name}, nil, "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return w.Result().Cookies()
}
