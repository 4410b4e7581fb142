package postgres

import (
	"context"
	"database/sql"
	"errors"

	"explorewithme/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const selectEvent = `
		SELECT id, title, initiator_id, state, participant_limit, request_moderation, published_on
		FROM events
		WHERE id = $1
	`

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return r.get(ctx, selectEvent, id)
}

func (r *eventRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Event, error) {
	return r.get(ctx, selectEvent+"FOR UPDATE", id)
}

func (r *eventRepository) get(ctx context.Context, query string, id int64) (*domain.Event, error) {
	e := &domain.Event{}
	var publishedNull sql.NullTime
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.InitiatorID, &e.State, &e.ParticipantLimit, &e.RequestModeration, &publishedNull,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if publishedNull.Valid {
		e.PublishedOn = &publishedNull.Time
	}
	return e, nil
}
