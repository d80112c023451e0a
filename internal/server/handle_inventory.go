package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cinepass/cinebook/internal/inventory"
)

// Inventory is generated fresh per request and never persisted: availability
// is not stable across calls and no holds are taken.

func handleSeats(store Store, gen *inventory.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := store.MovieByID(r.Context(), chi.URLParam(r, "movieID"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "movie not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, gen.Seats())
	}
}

func handleParkingSlots(store Store, gen *inventory.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := store.MovieByID(r.Context(), chi.URLParam(r, "movieID"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "movie not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, gen.ParkingSlots())
	}
}
