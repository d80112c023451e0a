package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	bookingpkg "github.com/cinepass/cinebook/internal/booking"
	"github.com/cinepass/cinebook/internal/cinebook"
	"github.com/cinepass/cinebook/internal/payment"
)

// CheckoutResponse is the response for POST /api/booking/checkout.
type CheckoutResponse struct {
	SessionID    string `json:"sessionId"`
	ClientSecret string `json:"clientSecret"`
	AmountPaise  int64  `json:"amountPaise"`
}

// ConfirmRequest is the payment result handed back after checkout completes.
type ConfirmRequest struct {
	Method        string `json:"method"`
	TransactionID string `json:"transactionId"`
}

// ConfirmResponse is the response for POST /api/booking/confirm.
type ConfirmResponse struct {
	BookingID string                 `json:"bookingId"`
	Booking   cinebook.BookingRecord `json:"booking"`
}

func handleCheckout(provider payment.Provider, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := selectionFrom(r)

		if len(sel.Seats) == 0 {
			writeError(w, http.StatusConflict, "no seats selected")
			return
		}
		if sel.Stage() != bookingpkg.StageAwaitingPayment {
			// The parking step is optional; passing through it is not.
			if err := sel.SetParkingSlot(sel.Parking); err != nil {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
		}

		description := "Movie booking"
		metadata := map[string]string{
			"seats":    strings.Join(sel.SeatIDs(), ","),
			"showtime": sel.Showtime,
			"theater":  sel.Theater,
		}
		if sel.Movie != nil {
			description = fmt.Sprintf("Movie booking: %s (%s)", sel.Movie.Title, sel.Showtime)
			metadata["movieId"] = sel.Movie.ID
		}
		if sel.Parking != nil {
			metadata["parkingSlot"] = sel.Parking.ID
		}

		amount := bookingpkg.ToPaise(sel.Total())
		sess, err := provider.CreateSession(r.Context(), amount, description, metadata)
		if err != nil {
			logger.Error("checkout session failed", "error", err)
			writeError(w, http.StatusBadGateway, "payment provider unavailable")
			return
		}

		writeJSON(w, http.StatusOK, CheckoutResponse{
			SessionID:    sess.ID,
			ClientSecret: sess.ClientSecret,
			AmountPaise:  amount,
		})
	}
}

func handleConfirmBooking(store Store, sessions *bookingpkg.Registry, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Confirmation persists history, so it is the one booking step that
		// needs a logged-in user.
		user, err := userFromRequest(r, store)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		var req ConfirmRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Method == "" || req.TransactionID == "" {
			writeError(w, http.StatusBadRequest, "method and transactionId are required")
			return
		}

		sel := selectionFrom(r)
		if sel.Movie == nil {
			writeError(w, http.StatusConflict, "no movie selected")
			return
		}

		if err := sel.Confirm(cinebook.PaymentResult{
			Method:        req.Method,
			TransactionID: req.TransactionID,
		}); err != nil {
			writeError(w, http.StatusConflict, err.Error())
			return
		}

		rec := cinebook.BookingRecord{
			MovieTitle:  sel.Movie.Title,
			MovieImage:  sel.Movie.Image,
			Showtime:    sel.Showtime,
			Theater:     theaterLabel(sel.City, sel.Theater),
			Seats:       sel.SeatIDs(),
			TotalAmount: sel.Total(),
			Status:      cinebook.BookingUpcoming,
		}

		bookingID, err := store.AddBooking(r.Context(), user.UserID, sel.Movie.ID, rec)
		if err != nil {
			logger.Error("storing booking failed", "error", err, "user", user.UserID)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		rec.ID = bookingID

		logger.Info("booking confirmed",
			"booking", bookingID,
			"movie", sel.Movie.ID,
			"seats", len(sel.Seats),
			"total", rec.TotalAmount,
			"method", req.Method,
		)

		// The flow is complete: the next one starts clean.
		sel.Clear()
		sessions.End(bookingTokenFrom(r))

		writeJSON(w, http.StatusCreated, ConfirmResponse{
			BookingID: bookingID,
			Booking:   rec,
		})
	}
}
