package scheduler

import (
	"context"
	"time"

	"ai-medical-assistant/internal/domain/entity"
)

// SimulatedBooker stands in for a booking backend. The scheduler service
// does not contract a booking endpoint yet, so confirmation is simulated
// with a short delay; the controllers treat it like any other collaborator.
type SimulatedBooker struct {
	Delay time.Duration
}

func NewSimulatedBooker() *SimulatedBooker {
	return &SimulatedBooker{Delay: time.Second}
}

// Book confirms the given slot after the configured delay, or fails when
// the context is cancelled first.
func (b *SimulatedBooker) Book(ctx context.Context, slot entity.SuggestedSlot) error {
	timer := time.NewTimer(b.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
