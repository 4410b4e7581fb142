package services

import (
	"context"
	"fmt"

	"explorewithme/internal/domain"
)

// capacityCalculator derives an event's occupancy from the request store.
// Callers that act on the result must hold the event lock in the same transaction.
type capacityCalculator struct {
	requestRepo domain.RequestRepository
}

func newCapacityCalculator(requestRepo domain.RequestRepository) *capacityCalculator {
	return &capacityCalculator{requestRepo: requestRepo}
}

func (c *capacityCalculator) Snapshot(ctx context.Context, event *domain.Event) (domain.CapacitySnapshot, error) {
	confirmed, err := c.requestRepo.CountByEventAndStatus(ctx, event.ID, domain.RequestStatusConfirmed)
	if err != nil {
		return domain.CapacitySnapshot{}, fmt.Errorf("count confirmed requests: %w", err)
	}
	return domain.CapacitySnapshot{
		EventID:        event.ID,
		ConfirmedCount: confirmed,
		Limit:          event.ParticipantLimit,
	}, nil
}
