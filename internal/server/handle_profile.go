package server

import (
	"net/http"
	"regexp"
	"strings"
)

// phonePattern is deliberately permissive: digits, spaces, parentheses,
// dashes and an optional leading plus.
var phonePattern = regexp.MustCompile(`^[+]?[\d\s()-]+$`)

func handleGetProfile(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := userFrom(r)

		profile, err := store.Profile(r.Context(), sess.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

func handleUpdateProfile(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := userFrom(r)

		var upd ProfileUpdate
		if err := readJSON(r, &upd); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		// Validation failures must leave the stored profile unchanged, so
		// everything is checked before the store is touched.
		if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		if upd.Phone != nil && *upd.Phone != "" && !phonePattern.MatchString(*upd.Phone) {
			writeError(w, http.StatusBadRequest, "invalid phone number")
			return
		}

		profile, err := store.UpdateProfile(r.Context(), sess.UserID, upd)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}
