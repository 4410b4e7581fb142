package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"explorewithme/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	capacity       *capacityCalculator
	stats          domain.StatsClient
	app            string
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService creates an EventService serving public event views. app is
// the application name reported with every hit.
func NewEventService(
	eventRepo domain.EventRepository,
	requestRepo domain.RequestRepository,
	stats domain.StatsClient,
	app string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		capacity:       newCapacityCalculator(requestRepo),
		stats:          stats,
		app:            app,
		logger:         logger,
		contextTimeout: timeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// GetPublishedEvent returns a published event with its confirmed participant
// count and unique view count, and records hit. Statistics failures are logged
// and leave Views at zero.
func (s *eventService) GetPublishedEvent(ctx context.Context, id int64, hit domain.Hit) (*domain.EventView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError("event", id, err)
	}
	if event.State != domain.EventStatePublished {
		return nil, fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
	}

	snap, err := s.capacity.Snapshot(ctx, event)
	if err != nil {
		return nil, err
	}

	now := s.now()
	hit.App = s.app
	hit.Timestamp = now
	if err := s.stats.Hit(ctx, hit); err != nil {
		s.logger.WarnContext(ctx, "record hit failed", "event_id", id, "uri", hit.URI, "err", err)
	}

	return &domain.EventView{
		ID:                event.ID,
		Title:             event.Title,
		InitiatorID:       event.InitiatorID,
		ParticipantLimit:  event.ParticipantLimit,
		RequestModeration: event.RequestModeration,
		ConfirmedRequests: snap.ConfirmedCount,
		Views:             s.views(ctx, event, hit.URI, now),
	}, nil
}

func (s *eventService) views(ctx context.Context, event *domain.Event, uri string, now time.Time) int64 {
	start := now.AddDate(-1, 0, 0)
	if event.PublishedOn != nil {
		start = *event.PublishedOn
	}
	stats, err := s.stats.Stats(ctx, start, now, []string{uri}, true)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch views failed", "event_id", event.ID, "err", err)
		return 0
	}
	var views int64
	for _, st := range stats {
		if st.URI == uri {
			views += st.Hits
		}
	}
	return views
}
