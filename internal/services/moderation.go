package services

import (
	"fmt"

	"explorewithme/internal/domain"
)

// uniqueIDs drops repeated ids, keeping the first occurrence so submission order is preserved.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// resolveBatch returns found reordered to match ids. Every id must exist, be
// PENDING and belong to eventID; otherwise nothing is returned.
func resolveBatch(eventID int64, ids []int64, found []*domain.Request) ([]*domain.Request, error) {
	byID := make(map[int64]*domain.Request, len(found))
	for _, req := range found {
		byID[req.ID] = req
	}

	var missing []int64
	batch := make([]*domain.Request, 0, len(ids))
	for _, id := range ids {
		req, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		batch = append(batch, req)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("requests %v: %w", missing, domain.ErrNotFound)
	}

	for _, req := range batch {
		if req.Status != domain.RequestStatusPending {
			return nil, fmt.Errorf("%w: request %d is %s", domain.ErrRequestNotPending, req.ID, req.Status)
		}
		if req.EventID != eventID {
			return nil, fmt.Errorf("%w: request %d, event %d", domain.ErrRequestForeignEvent, req.ID, eventID)
		}
	}
	return batch, nil
}

// moderate applies target to batch in order and returns every request whose status changed.
//
// For CONFIRMED the first snap.Available() requests of batch are confirmed and
// the rest rejected. If that fills the limit, every request in waitlist (the
// event's other pending requests) is rejected as well. For REJECTED only batch
// is touched.
func moderate(snap domain.CapacitySnapshot, target domain.RequestStatus, batch, waitlist []*domain.Request) (*domain.RequestStatusUpdateResult, error) {
	result := &domain.RequestStatusUpdateResult{
		Confirmed: []*domain.Request{},
		Rejected:  []*domain.Request{},
	}

	switch target {
	case domain.RequestStatusRejected:
		for _, req := range batch {
			req.Status = domain.RequestStatusRejected
			result.Rejected = append(result.Rejected, req)
		}
		return result, nil

	case domain.RequestStatusConfirmed:
		available := snap.Available()
		if available == 0 {
			return nil, fmt.Errorf("%w: event %d has %d of %d confirmed", domain.ErrNoSlotsAvailable, snap.EventID, snap.ConfirmedCount, snap.Limit)
		}
		for _, req := range batch {
			if len(result.Confirmed) < available {
				req.Status = domain.RequestStatusConfirmed
				result.Confirmed = append(result.Confirmed, req)
				continue
			}
			req.Status = domain.RequestStatusRejected
			result.Rejected = append(result.Rejected, req)
		}
		if len(result.Confirmed) == available {
			for _, req := range waitlist {
				req.Status = domain.RequestStatusRejected
				result.Rejected = append(result.Rejected, req)
			}
		}
		return result, nil
	}

	return nil, fmt.Errorf("%w: got %q", domain.ErrInvalidTargetStatus, target)
}

func requestIDs(reqs []*domain.Request) []int64 {
	ids := make([]int64, len(reqs))
	for i, req := range reqs {
		ids[i] = req.ID
	}
	return ids
}
