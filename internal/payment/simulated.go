package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Simulated is a stand-in checkout provider behind the same interface as a
// real gateway. Latency is configurable so tests can run synchronously with
// zero delay.
type Simulated struct {
	latency time.Duration
}

func NewSimulated(latency time.Duration) *Simulated {
	return &Simulated{latency: latency}
}

func (p *Simulated) CreateSession(ctx context.Context, amountPaise int64, description string, metadata map[string]string) (Session, error) {
	if amountPaise <= 0 {
		return Session{}, fmt.Errorf("amount must be positive, got %d", amountPaise)
	}

	if p.latency > 0 {
		select {
		case <-time.After(p.latency):
		case <-ctx.Done():
			return Session{}, ctx.Err()
		}
	}

	id := uuid.NewString()
	return Session{
		ID:           "cs_sim_" + id,
		ClientSecret: "cs_sim_" + id + "_secret",
	}, nil
}
