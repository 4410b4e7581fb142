package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"explorewithme/internal/domain"
)

type requestService struct {
	tx             domain.Transactor
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	requestRepo    domain.RequestRepository
	capacity       *capacityCalculator
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewRequestService creates a RequestService. Every operation that reads capacity
// and writes request state runs in one transaction holding the event row lock.
func NewRequestService(
	tx domain.Transactor,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	requestRepo domain.RequestRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RequestService {
	return &requestService{
		tx:             tx,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		requestRepo:    requestRepo,
		capacity:       newCapacityCalculator(requestRepo),
		logger:         logger,
		contextTimeout: timeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *requestService) CreateRequest(ctx context.Context, requesterID, eventID int64) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var created *domain.Request
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireUser(ctx, requesterID); err != nil {
			return err
		}
		event, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return lookupError("event", eventID, err)
		}

		if _, err := s.requestRepo.GetByEventAndRequester(ctx, eventID, requesterID); err == nil {
			s.logger.WarnContext(ctx, "duplicate participation request", "user_id", requesterID, "event_id", eventID)
			return fmt.Errorf("%w: user %d, event %d", domain.ErrDuplicateRequest, requesterID, eventID)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get request: %w", err)
		}

		if event.InitiatorID == requesterID {
			s.logger.WarnContext(ctx, "initiator requested own event", "user_id", requesterID, "event_id", eventID)
			return fmt.Errorf("%w: event %d", domain.ErrInitiatorRequest, eventID)
		}
		if event.State != domain.EventStatePublished {
			s.logger.WarnContext(ctx, "request for unpublished event", "user_id", requesterID, "event_id", eventID, "state", event.State)
			return fmt.Errorf("%w: event %d", domain.ErrEventNotPublished, eventID)
		}

		snap, err := s.capacity.Snapshot(ctx, event)
		if err != nil {
			return err
		}
		if !snap.HasRoom() {
			s.logger.WarnContext(ctx, "participant limit reached", "event_id", eventID, "limit", snap.Limit)
			return fmt.Errorf("%w: event %d", domain.ErrLimitReached, eventID)
		}

		status := domain.RequestStatusPending
		if !event.NeedsModeration() {
			s.logger.DebugContext(ctx, "moderation not required", "event_id", eventID)
			status = domain.RequestStatusConfirmed
		}

		req := domain.NewRequest(eventID, requesterID, status, s.now())
		if err := s.requestRepo.Create(ctx, req); err != nil {
			if errors.Is(err, domain.ErrDuplicateRequest) {
				return fmt.Errorf("%w: user %d, event %d", domain.ErrDuplicateRequest, requesterID, eventID)
			}
			return fmt.Errorf("create request: %w", err)
		}
		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "participation request created",
		"request_id", created.ID, "user_id", requesterID, "event_id", eventID, "status", created.Status)
	return created, nil
}

// CancelRequest moves the caller's PENDING or CONFIRMED request to CANCELED.
// Canceling an already canceled request returns it unchanged.
func (s *requestService) CancelRequest(ctx context.Context, requesterID, requestID int64) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var canceled *domain.Request
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireUser(ctx, requesterID); err != nil {
			return err
		}
		req, err := s.requestRepo.GetByID(ctx, requestID)
		if err != nil {
			return lookupError("request", requestID, err)
		}
		if req.RequesterID != requesterID {
			s.logger.WarnContext(ctx, "cancel of foreign request", "request_id", requestID, "user_id", requesterID)
			return fmt.Errorf("%w: request %d, user %d", domain.ErrRequestNotOwned, requestID, requesterID)
		}

		canceled = req
		if req.Status == domain.RequestStatusCanceled {
			return nil
		}
		if !req.Status.CanTransitionTo(domain.RequestStatusCanceled) {
			return fmt.Errorf("%w: request %d is %s", domain.ErrRequestNotCancelable, requestID, req.Status)
		}

		req.Status = domain.RequestStatusCanceled
		err = s.requestRepo.UpdateStatus(ctx, req, domain.RequestStatusPending, domain.RequestStatusConfirmed)
		if errors.Is(err, domain.ErrStatusChanged) {
			s.logger.WarnContext(ctx, "request moderated during cancel", "request_id", requestID, "user_id", requesterID)
			return fmt.Errorf("%w: request %d was moderated concurrently", domain.ErrRequestNotCancelable, requestID)
		}
		if err != nil {
			return fmt.Errorf("update request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "participation request canceled", "request_id", requestID, "user_id", requesterID)
	return canceled, nil
}

func (s *requestService) ListRequestsForUser(ctx context.Context, requesterID int64) ([]*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	reqs, err := s.requestRepo.ListByRequesterID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	s.logger.DebugContext(ctx, "listed user requests", "user_id", requesterID, "count", len(reqs))
	return reqs, nil
}

func (s *requestService) ListRequestsForEvent(ctx context.Context, initiatorID, eventID int64) ([]*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, lookupError("event", eventID, err)
	}
	if event.InitiatorID != initiatorID {
		s.logger.WarnContext(ctx, "non-initiator listed event requests", "user_id", initiatorID, "event_id", eventID)
		return nil, fmt.Errorf("%w: user %d, event %d", domain.ErrNotInitiator, initiatorID, eventID)
	}
	reqs, err := s.requestRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	s.logger.DebugContext(ctx, "listed event requests", "event_id", eventID, "count", len(reqs))
	return reqs, nil
}

// UpdateRequestStatus applies the initiator's bulk decision. Confirmation
// order is the order of update.RequestIDs; once the participant limit is
// filled the event's remaining pending requests are rejected too and
// reported in the result.
func (s *requestService) UpdateRequestStatus(ctx context.Context, initiatorID, eventID int64, update domain.RequestStatusUpdate) (*domain.RequestStatusUpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var result *domain.RequestStatusUpdateResult
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return lookupError("event", eventID, err)
		}
		if event.InitiatorID != initiatorID {
			s.logger.WarnContext(ctx, "non-initiator moderation attempt", "user_id", initiatorID, "event_id", eventID)
			return fmt.Errorf("%w: user %d, event %d", domain.ErrNotInitiator, initiatorID, eventID)
		}
		if !event.NeedsModeration() {
			return fmt.Errorf("%w: event %d", domain.ErrModerationNotApplicable, eventID)
		}
		if update.Status != domain.RequestStatusConfirmed && update.Status != domain.RequestStatusRejected {
			return fmt.Errorf("%w: got %q", domain.ErrInvalidTargetStatus, update.Status)
		}

		ids := uniqueIDs(update.RequestIDs)
		if len(ids) == 0 {
			return domain.ErrEmptyRequestIDs
		}
		found, err := s.requestRepo.ListByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("list requests: %w", err)
		}
		batch, err := resolveBatch(eventID, ids, found)
		if err != nil {
			return err
		}

		snap, err := s.capacity.Snapshot(ctx, event)
		if err != nil {
			return err
		}
		s.logger.DebugContext(ctx, "moderating requests", "event_id", eventID,
			"request_ids", ids, "status", update.Status, "available", snap.Available())

		var waitlist []*domain.Request
		if update.Status == domain.RequestStatusConfirmed {
			pending, err := s.requestRepo.ListByEventAndStatus(ctx, eventID, domain.RequestStatusPending)
			if err != nil {
				return fmt.Errorf("list pending requests: %w", err)
			}
			waitlist = excludeRequests(pending, ids)
		}

		res, err := moderate(snap, update.Status, batch, waitlist)
		if err != nil {
			s.logger.WarnContext(ctx, "moderation rejected", "event_id", eventID, "err", err)
			return err
		}
		if err := s.applyDecision(ctx, eventID, res.Confirmed, domain.RequestStatusConfirmed); err != nil {
			return err
		}
		if err := s.applyDecision(ctx, eventID, res.Rejected, domain.RequestStatusRejected); err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "participation requests moderated", "event_id", eventID,
		"confirmed", len(result.Confirmed), "rejected", len(result.Rejected))
	return result, nil
}

// applyDecision moves reqs out of PENDING. A request canceled after it was read
// fails the whole batch so the transaction rolls back.
func (s *requestService) applyDecision(ctx context.Context, eventID int64, reqs []*domain.Request, to domain.RequestStatus) error {
	err := s.requestRepo.UpdateStatuses(ctx, requestIDs(reqs), domain.RequestStatusPending, to)
	if errors.Is(err, domain.ErrStatusChanged) {
		s.logger.WarnContext(ctx, "request left pending during moderation", "event_id", eventID, "err", err)
		return fmt.Errorf("%w: event %d: %v", domain.ErrRequestNotPending, eventID, err)
	}
	if err != nil {
		return fmt.Errorf("set requests %s: %w", to, err)
	}
	return nil
}

func (s *requestService) requireUser(ctx context.Context, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return lookupError("user", userID, err)
	}
	return nil
}

// lookupError tags a missing entity with its kind and id and wraps anything else.
func lookupError(kind string, id int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return fmt.Errorf("get %s: %w", kind, err)
}

func excludeRequests(reqs []*domain.Request, ids []int64) []*domain.Request {
	skip := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}
	out := make([]*domain.Request, 0, len(reqs))
	for _, req := range reqs {
		if _, ok := skip[req.ID]; !ok {
			out = append(out, req)
		}
	}
	return out
}
