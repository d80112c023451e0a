package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func handleListMovies(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movies, err := store.ListMovies(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, movies)
	}
}

func handleGetMovie(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movie, err := store.MovieByID(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "movie not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, movie)
	}
}

func handleListCities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cities)
	}
}
