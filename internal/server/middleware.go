package server

import (
	"context"
	"net/http"

	"github.com/cinepass/cinebook/internal/booking"
)

type ctxKey int

const (
	ctxKeyUser ctxKey = iota
	ctxKeySelection
	ctxKeyBookingToken
)

// authMiddleware resolves the session cookie into a logged-in user.
func authMiddleware(store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := userFromRequest(r, store)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bookingMiddleware resolves the booking-session bearer token into the live
// selection owned by that session.
func bookingMiddleware(sessions *booking.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bookingTokenFromRequest(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "invalid or missing booking token")
				return
			}

			sel, ok := sessions.Get(token)
			if !ok {
				writeError(w, http.StatusUnauthorized, "invalid or missing booking token")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySelection, sel)
			ctx = context.WithValue(ctx, ctxKeyBookingToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFrom(r *http.Request) userSession {
	return r.Context().Value(ctxKeyUser).(userSession)
}

func selectionFrom(r *http.Request) *booking.Selection {
	return r.Context().Value(ctxKeySelection).(*booking.Selection)
}

func bookingTokenFrom(r *http.Request) string {
	return r.Context().Value(ctxKeyBookingToken).(string)
}
