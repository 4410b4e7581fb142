package domain

import (
	"context"
	"time"
)

// TimeLayout is the wire format of timestamps exchanged over HTTP.
const TimeLayout = "2006-01-02 15:04:05"

// RequestStatus is the lifecycle state of a participation request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusConfirmed RequestStatus = "CONFIRMED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCanceled  RequestStatus = "CANCELED"
)

// Valid reports whether s is one of the known statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusConfirmed, RequestStatusRejected, RequestStatusCanceled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a request in status s may move to next.
// Moderators move PENDING requests only; requesters may cancel PENDING or CONFIRMED ones.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch next {
	case RequestStatusConfirmed, RequestStatusRejected:
		return s == RequestStatusPending
	case RequestStatusCanceled:
		return s == RequestStatusPending || s == RequestStatusConfirmed
	}
	return false
}

// Request is one user's attempt to participate in an event.
// swagger:model Request
type Request struct {
	ID          int64         `json:"id"`
	EventID     int64         `json:"event"`
	RequesterID int64         `json:"requester"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created"`
}

// NewRequest returns a Request for the given event and requester. ID is set by the repository on create.
func NewRequest(eventID, requesterID int64, status RequestStatus, createdAt time.Time) *Request {
	return &Request{
		EventID:     eventID,
		RequesterID: requesterID,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

// RequestStatusUpdate is a moderator's bulk decision. Confirmation order follows RequestIDs.
type RequestStatusUpdate struct {
	RequestIDs []int64       `json:"requestIds"`
	Status     RequestStatus `json:"status"`
}

// RequestStatusUpdateResult partitions every request touched by a bulk decision,
// including pending requests rejected automatically once the limit is filled.
// swagger:model RequestStatusUpdateResult
type RequestStatusUpdateResult struct {
	Confirmed []*Request `json:"confirmedRequests"`
	Rejected  []*Request `json:"rejectedRequests"`
}

// RequestRepository defines storage operations for participation requests.
type RequestRepository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id int64) (*Request, error)
	GetByEventAndRequester(ctx context.Context, eventID, requesterID int64) (*Request, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*Request, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*Request, error)
	ListByEventAndStatus(ctx context.Context, eventID int64, status RequestStatus) ([]*Request, error)
	ListByRequesterID(ctx context.Context, requesterID int64) ([]*Request, error)
	CountByEventAndStatus(ctx context.Context, eventID int64, status RequestStatus) (int, error)
	// UpdateStatus writes req.Status only while the stored status is one of from.
	// Otherwise it returns ErrStatusChanged and writes nothing.
	UpdateStatus(ctx context.Context, req *Request, from ...RequestStatus) error
	// UpdateStatuses moves every id from status from to status to. If any of them is
	// no longer in from it returns ErrStatusChanged; callers roll back the transaction.
	UpdateStatuses(ctx context.Context, ids []int64, from, to RequestStatus) error
}

// RequestService defines participation request operations exposed to the API layer.
type RequestService interface {
	CreateRequest(ctx context.Context, requesterID, eventID int64) (*Request, error)
	CancelRequest(ctx context.Context, requesterID, requestID int64) (*Request, error)
	ListRequestsForUser(ctx context.Context, requesterID int64) ([]*Request, error)
	ListRequestsForEvent(ctx context.Context, initiatorID, eventID int64) ([]*Request, error)
	UpdateRequestStatus(ctx context.Context, initiatorID, eventID int64, update RequestStatusUpdate) (*RequestStatusUpdateResult, error)
}
