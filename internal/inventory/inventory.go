// Package inventory generates randomized seat and parking-slot availability
// with fixed tier pricing. Nothing here is persisted: every call produces a
// fresh layout and callers must not expect availability to be stable across
// calls.
package inventory

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/cinepass/cinebook/internal/cinebook"
)

const (
	seatRows    = 8  // rows A..H
	seatsPerRow = 12 // seats 1..12 per row

	parkingLevels = 3  // levels L1..L3
	slotsPerLevel = 20 // slots 01..20 per level

	seatBookedProb    = 0.30
	parkingBookedProb = 0.40
)

// Generator produces seat and parking inventories. The zero value is not
// usable; construct with New or NewSeeded. Safe for concurrent use: the
// underlying rand.Rand is not, so every draw goes through the mutex.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (g *Generator) booked(prob float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < prob
}

// New returns a Generator backed by a non-deterministic source.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a Generator with a fixed seed, for tests.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, 0))}
}

func seatTier(rowIndex int) cinebook.SeatTier {
	switch {
	case rowIndex >= 5:
		return cinebook.SeatVIP
	case rowIndex >= 3:
		return cinebook.SeatPremium
	default:
		return cinebook.SeatStandard
	}
}

// Seats returns the full 8×12 auditorium layout. Rows A-C are standard,
// D-E premium, F-H vip; every seat's price comes from the tier table and its
// booked flag is drawn independently.
func (g *Generator) Seats() []cinebook.Seat {
	seats := make([]cinebook.Seat, 0, seatRows*seatsPerRow)

	for rowIndex := range seatRows {
		row := string(rune('A' + rowIndex))
		tier := seatTier(rowIndex)

		for n := 1; n <= seatsPerRow; n++ {
			seats = append(seats, cinebook.Seat{
				ID:     fmt.Sprintf("%s%d", row, n),
				Row:    row,
				Number: n,
				Tier:   tier,
				Price:  cinebook.SeatPrice[tier],
				Booked: g.booked(seatBookedProb),
			})
		}
	}

	return seats
}

func parkingTier(slot int) cinebook.ParkingTier {
	switch {
	case slot <= 5:
		return cinebook.ParkingVIP
	case slot <= 10:
		return cinebook.ParkingCovered
	default:
		return cinebook.ParkingStandard
	}
}

// ParkingSlots returns 3 levels × 20 slots. Slots 1-5 on each level are vip,
// 6-10 covered, the rest standard.
func (g *Generator) ParkingSlots() []cinebook.ParkingSlot {
	slots := make([]cinebook.ParkingSlot, 0, parkingLevels*slotsPerLevel)

	for l := 1; l <= parkingLevels; l++ {
		level := fmt.Sprintf("L%d", l)

		for n := 1; n <= slotsPerLevel; n++ {
			tier := parkingTier(n)
			slots = append(slots, cinebook.ParkingSlot{
				ID:     fmt.Sprintf("%s-%d", level, n),
				Level:  level,
				Slot:   fmt.Sprintf("%02d", n),
				Tier:   tier,
				Price:  cinebook.ParkingPrice[tier],
				Booked: g.booked(parkingBookedProb),
			})
		}
	}

	return slots
}
