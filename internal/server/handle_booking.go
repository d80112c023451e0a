package server

import (
	"errors"
	"net/http"
	"strings"

	bookingpkg "github.com/cinepass/cinebook/internal/booking"
	"github.com/cinepass/cinebook/internal/cinebook"
)

// StartBookingResponse is the response for POST /api/booking.
type StartBookingResponse struct {
	Token string `json:"token"`
}

// BookingStateResponse mirrors the current selection for the UI.
type BookingStateResponse struct {
	Stage    string                `json:"stage"`
	City     string                `json:"city,omitempty"`
	Theater  string                `json:"theater,omitempty"`
	Movie    *cinebook.Movie       `json:"movie,omitempty"`
	Showtime string                `json:"showtime,omitempty"`
	Seats    []cinebook.Seat       `json:"seats"`
	Parking  *cinebook.ParkingSlot `json:"parkingSlot,omitempty"`
	Total    int                   `json:"total"`
}

type SetCityRequest struct {
	City string `json:"city"`
}

type SetTheaterRequest struct {
	Theater string `json:"theater"`
}

type SetMovieRequest struct {
	MovieID string `json:"movieId"`
}

type SetShowtimeRequest struct {
	Showtime string `json:"showtime"`
}

type SetSeatsRequest struct {
	Seats []cinebook.Seat `json:"seats"`
}

type SetParkingRequest struct {
	Slot *cinebook.ParkingSlot `json:"slot"`
}

func stateResponse(sel *bookingpkg.Selection) BookingStateResponse {
	seats := sel.Seats
	if seats == nil {
		seats = []cinebook.Seat{}
	}
	return BookingStateResponse{
		Stage:    string(sel.Stage()),
		City:     sel.City,
		Theater:  sel.Theater,
		Movie:    sel.Movie,
		Showtime: sel.Showtime,
		Seats:    seats,
		Parking:  sel.Parking,
		Total:    sel.Total(),
	}
}

func handleStartBooking(sessions *bookingpkg.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, _ := sessions.Start()
		writeJSON(w, http.StatusCreated, StartBookingResponse{Token: token})
	}
}

func handleBookingState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stateResponse(selectionFrom(r)))
	}
}

func handleSetCity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetCityRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if cityByID(req.City) == nil {
			writeError(w, http.StatusNotFound, "city not found")
			return
		}

		sel := selectionFrom(r)
		sel.SetCity(req.City)
		writeJSON(w, http.StatusOK, stateResponse(sel))
	}
}

func handleSetTheater() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetTheaterRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sel := selectionFrom(r)
		city := cityByID(sel.City)
		if city == nil {
			writeError(w, http.StatusConflict, "select a city first")
			return
		}
		if !cityHasTheater(city, req.Theater) {
			writeError(w, http.StatusNotFound, "theater not found in selected city")
			return
		}

		sel.SetTheater(req.Theater)
		writeJSON(w, http.StatusOK, stateResponse(sel))
	}
}

func handleSetMovie(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetMovieRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		movie, err := store.MovieByID(r.Context(), req.MovieID)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "movie not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		sel := selectionFrom(r)
		sel.SetMovie(movie)
		writeJSON(w, http.StatusOK, stateResponse(sel))
	}
}

func handleSetShowtime() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetShowtimeRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Showtime = strings.TrimSpace(req.Showtime)
		if req.Showtime == "" {
			writeError(w, http.StatusBadRequest, "showtime is required")
			return
		}

		sel := selectionFrom(r)
		if sel.Movie != nil && !containsString(sel.Movie.Showtimes, req.Showtime) {
			writeError(w, http.StatusNotFound, "showtime not available for this movie")
			return
		}

		sel.SetShowtime(req.Showtime)
		writeJSON(w, http.StatusOK, stateResponse(sel))
	}
}

func handleSetSeats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetSeatsRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sel := selectionFrom(r)
		if err := sel.SetSeats(req.Seats); err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, stateResponse(sel))
	}
}

func handleSetParking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetParkingRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sel := selectionFrom(r)
		if err := sel.SetParkingSlot(req.Slot); err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, stateResponse(sel))
	}
}

// handleAbandonBooking drops the selection. No inventory holds exist, so
// nothing needs releasing.
func handleAbandonBooking(sessions *bookingpkg.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selectionFrom(r).Clear()
		sessions.End(bookingTokenFrom(r))
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
