package server

import (
	"errors"
	"net/http"
	"strings"
)

type userSession struct {
	UserID string
	Email  string
	Name   string
}

var errNoSession = errors.New("no valid session")

const sessionCookieName = "session"

// userFromRequest reads the session cookie and looks up the logged-in user.
func userFromRequest(r *http.Request, store Store) (userSession, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return userSession{}, errNoSession
	}
	return store.UserFromSession(r.Context(), cookie.Value)
}

// bookingTokenFromRequest extracts the booking-session bearer token. Booking
// sessions are separate from login sessions: a flow can be started without
// an account and only confirmation requires one.
func bookingTokenFromRequest(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
