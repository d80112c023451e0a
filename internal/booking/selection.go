// Package booking holds the in-progress booking selection for one user
// session: the chosen movie, showtime, seats and optional parking slot, plus
// the city/theater scope. A Selection is owned by exactly one session and is
// mutated only by that session's own sequential actions.
package booking

import (
	"errors"
	"fmt"

	"github.com/cinepass/cinebook/internal/cinebook"
)

// Stage is the position in the linear booking flow. Back-navigation is a UI
// concern; the core only gates forward transitions.
type Stage string

const (
	StageSelecting        Stage = "selecting"
	StageSelectingSeats   Stage = "selecting_seats"
	StageSelectingParking Stage = "selecting_parking"
	StageAwaitingPayment  Stage = "awaiting_payment"
	StageConfirmed        Stage = "confirmed"
)

var (
	ErrNoShowtime    = errors.New("showtime must be selected before seats")
	ErrNoSeats       = errors.New("at least one seat is required")
	ErrSeatBooked    = errors.New("seat is already booked")
	ErrNotPayable    = errors.New("selection is not awaiting payment")
	ErrNoPayment     = errors.New("payment result is required to confirm")
	ErrAlreadyDone   = errors.New("selection is already confirmed")
	ErrDuplicateSeat = errors.New("duplicate seat in selection")
	ErrUnknownTier   = errors.New("unknown pricing tier")
)

// Selection is the mutable accumulator for one booking flow. The zero value
// is an empty selection at the Selecting stage.
type Selection struct {
	City     string
	Theater  string
	Movie    *cinebook.Movie
	Showtime string
	Seats    []cinebook.Seat
	Parking  *cinebook.ParkingSlot

	stage   Stage
	payment *cinebook.PaymentResult
}

func NewSelection() *Selection {
	return &Selection{stage: StageSelecting}
}

// Stage reports the current flow stage.
func (s *Selection) Stage() Stage {
	if s.stage == "" {
		return StageSelecting
	}
	return s.stage
}

// SetCity scopes the flow to a city. Theaters belong to a city, so any
// previously chosen theater is cleared.
func (s *Selection) SetCity(city string) {
	s.City = city
	s.Theater = ""
}

func (s *Selection) SetTheater(theater string) {
	s.Theater = theater
}

func (s *Selection) SetMovie(m cinebook.Movie) {
	s.Movie = &m
}

// SetShowtime records the showtime and advances the flow to seat selection.
func (s *Selection) SetShowtime(showtime string) {
	s.Showtime = showtime
	if s.stage == StageSelecting || s.stage == "" {
		s.stage = StageSelectingSeats
	}
}

// SetSeats replaces the selected seats. Seats must be unique by id, carry a
// known tier and none may be booked. Prices are taken from the tier table,
// never from the payload. At least one seat advances the flow to parking
// selection.
func (s *Selection) SetSeats(seats []cinebook.Seat) error {
	if s.Showtime == "" {
		return ErrNoShowtime
	}
	if len(seats) == 0 {
		return ErrNoSeats
	}

	kept := make([]cinebook.Seat, len(seats))
	seen := make(map[string]bool, len(seats))
	for i, seat := range seats {
		if seat.Booked {
			return fmt.Errorf("%w: %s", ErrSeatBooked, seat.ID)
		}
		if seen[seat.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateSeat, seat.ID)
		}
		seen[seat.ID] = true

		price, ok := cinebook.SeatPrice[seat.Tier]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTier, seat.ID)
		}
		seat.Price = price
		kept[i] = seat
	}

	s.Seats = kept
	s.stage = StageSelectingParking
	return nil
}

// SetParkingSlot records the optional parking slot; nil clears it. Like
// seats, the price comes from the tier table. Parking is optional, so this
// also moves the flow to awaiting payment.
func (s *Selection) SetParkingSlot(slot *cinebook.ParkingSlot) error {
	if len(s.Seats) == 0 {
		return ErrNoSeats
	}
	if slot != nil {
		if slot.Booked {
			return fmt.Errorf("%w: %s", ErrSeatBooked, slot.ID)
		}
		price, ok := cinebook.ParkingPrice[slot.Tier]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTier, slot.ID)
		}
		kept := *slot
		kept.Price = price
		slot = &kept
	}

	s.Parking = slot
	s.stage = StageAwaitingPayment
	return nil
}

// SkipParking advances past the parking step with no slot selected.
func (s *Selection) SkipParking() error {
	return s.SetParkingSlot(nil)
}

// Total is the sum of selected seat prices plus the parking slot's price
// (zero if none). Recomputed on every call; the sets involved are small.
func (s *Selection) Total() int {
	total := 0
	for _, seat := range s.Seats {
		total += seat.Price
	}
	if s.Parking != nil {
		total += s.Parking.Price
	}
	return total
}

// Confirm transitions to Confirmed. It requires a prior move to
// AwaitingPayment and a successful external payment result.
func (s *Selection) Confirm(result cinebook.PaymentResult) error {
	if s.stage == StageConfirmed {
		return ErrAlreadyDone
	}
	if s.stage != StageAwaitingPayment {
		return ErrNotPayable
	}
	if result.TransactionID == "" || result.Method == "" {
		return ErrNoPayment
	}

	s.payment = &result
	s.stage = StageConfirmed
	return nil
}

// Payment returns the recorded payment result, or nil before confirmation.
func (s *Selection) Payment() *cinebook.PaymentResult {
	return s.payment
}

// SeatIDs returns the selected seat labels in selection order.
func (s *Selection) SeatIDs() []string {
	ids := make([]string, len(s.Seats))
	for i, seat := range s.Seats {
		ids[i] = seat.ID
	}
	return ids
}

// Clear resets to the empty state so the next flow starts clean. Called after
// a completed flow or on abandonment. No inventory holds exist, so there is
// nothing to release.
func (s *Selection) Clear() {
	*s = Selection{stage: StageSelecting}
}
