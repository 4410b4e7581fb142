package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"explorewithme/internal/domain"
)

const uniqueViolation = "23505"

type requestRepository struct {
	DB *sql.DB
}

func NewRequestRepository(db *sql.DB) domain.RequestRepository {
	return &requestRepository{
		DB: db,
	}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `
		INSERT INTO requests (event_id, requester_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, req.EventID, req.RequesterID, req.Status, req.CreatedAt).
		Scan(&req.ID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateRequest
		}
		return err
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	query := `
		SELECT id, event_id, requester_id, status, created_at
		FROM requests
		WHERE id = $1
	`
	req := &domain.Request{}
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, id).
		Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) GetByEventAndRequester(ctx context.Context, eventID, requesterID int64) (*domain.Request, error) {
	query := `
		SELECT id, event_id, requester_id, status, created_at
		FROM requests
		WHERE event_id = $1 AND requester_id = $2
	`
	req := &domain.Request{}
	err := conn(ctx, r.DB).QueryRowContext(ctx, query, eventID, requesterID).
		Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

// ListByIDs returns the requests with the given ids in id order. Missing ids are skipped.
func (r *requestRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Request, error) {
	query := `
		SELECT id, event_id, requester_id, status, created_at
		FROM requests
		WHERE id = ANY($1)
		ORDER BY id
	`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *requestRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Request, error) {
	query := `
		SELECT id, event_id, requester_id, status, created_at
		FROM requests
		WHERE event_id = $1
		ORDER BY created_at, id
	`
	return r.list(ctx, query, eventID)
}

func (r *requestRepository) ListByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) ([]*domain.Request, error) {
	query := `
		SELECT id, event_id, requester_id, status, created_at
		FROM requests
		WHERE event_id = $1 AND status = $2
		ORDER BY created_at, id
	`
	return r.list(ctx, query, eventID, status)
}

func (r *requestRepository) ListByRequesterID(ctx context.Context, requesterID int64) ([]*domain.Request, error) {
	query := `
		SELECT id, event_id, requester_id, status, created_at
		FROM requests
		WHERE requester_id = $1
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, query, requesterID)
}

func (r *requestRepository) CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int, error) {
	query := `SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = $2`
	var n int
	if err := conn(ctx, r.DB).QueryRowContext(ctx, query, eventID, status).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, req *domain.Request, from ...domain.RequestStatus) error {
	query := `UPDATE requests SET status = $1 WHERE id = $2 AND status = ANY($3)`
	res, err := conn(ctx, r.DB).ExecContext(ctx, query, req.Status, req.ID, pq.Array(statusStrings(from)))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("request %d not in %v: %w", req.ID, from, domain.ErrStatusChanged)
	}
	return nil
}

func (r *requestRepository) UpdateStatuses(ctx context.Context, ids []int64, from, to domain.RequestStatus) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE requests SET status = $1 WHERE id = ANY($2) AND status = $3`
	res, err := conn(ctx, r.DB).ExecContext(ctx, query, to, pq.Array(ids), from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if int(n) != len(ids) {
		return fmt.Errorf("%d of %d requests still %s: %w", n, len(ids), from, domain.ErrStatusChanged)
	}
	return nil
}

func statusStrings(statuses []domain.RequestStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *requestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Request, error) {
	rows, err := conn(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*domain.Request
	for rows.Next() {
		req := &domain.Request{}
		if err := rows.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []*domain.Request{}
	}
	return reqs, nil
}
