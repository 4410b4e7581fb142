package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testCreated = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// fakeRequestService implements domain.RequestService for handler tests.
type fakeRequestService struct {
	err          error
	request      *domain.Request
	requests     []*domain.Request
	result       *domain.RequestStatusUpdateResult
	lastUserID   int64
	lastEventID  int64
	lastReqID    int64
	lastUpdate   domain.RequestStatusUpdate
	calledMethod string
}

func (f *fakeRequestService) CreateRequest(_ context.Context, requesterID, eventID int64) (*domain.Request, error) {
	f.calledMethod, f.lastUserID, f.lastEventID = "create", requesterID, eventID
	return f.request, f.err
}

func (f *fakeRequestService) CancelRequest(_ context.Context, requesterID, requestID int64) (*domain.Request, error) {
	f.calledMethod, f.lastUserID, f.lastReqID = "cancel", requesterID, requestID
	return f.request, f.err
}

func (f *fakeRequestService) ListRequestsForUser(_ context.Context, requesterID int64) ([]*domain.Request, error) {
	f.calledMethod, f.lastUserID = "listUser", requesterID
	return f.requests, f.err
}

func (f *fakeRequestService) ListRequestsForEvent(_ context.Context, initiatorID, eventID int64) ([]*domain.Request, error) {
	f.calledMethod, f.lastUserID, f.lastEventID = "listEvent", initiatorID, eventID
	return f.requests, f.err
}

func (f *fakeRequestService) UpdateRequestStatus(_ context.Context, initiatorID, eventID int64, update domain.RequestStatusUpdate) (*domain.RequestStatusUpdateResult, error) {
	f.calledMethod, f.lastUserID, f.lastEventID, f.lastUpdate = "update", initiatorID, eventID, update
	return f.result, f.err
}

func newTestMux(ctrl *RequestController) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/{userId}/requests", ctrl.CreateRequest)
	mux.HandleFunc("GET /users/{userId}/requests", ctrl.ListUserRequests)
	mux.HandleFunc("PATCH /users/{userId}/requests/{requestId}/cancel", ctrl.CancelRequest)
	mux.HandleFunc("GET /users/{userId}/events/{eventId}/requests", ctrl.ListEventRequests)
	mux.HandleFunc("PATCH /users/{userId}/events/{eventId}/requests", ctrl.UpdateRequestStatus)
	return mux
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) *helpers.APIError {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if data != nil && envelope.Error == nil {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}
	return envelope.Error
}

func TestRequestController_CreateRequest(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		fakeReq    *domain.Request
		fakeErr    error
		wantStatus int
		wantCode   string
		wantCalled bool
	}{
		{
			name:       "created pending",
			url:        "/users/4/requests?eventId=9",
			fakeReq:    &domain.Request{ID: 1, EventID: 9, RequesterID: 4, Status: domain.RequestStatusPending, CreatedAt: testCreated},
			wantStatus: http.StatusCreated,
			wantCalled: true,
		},
		{
			name:       "missing eventId",
			url:        "/users/4/requests",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "non numeric eventId",
			url:        "/users/4/requests?eventId=abc",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "non positive userId",
			url:        "/users/0/requests?eventId=9",
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "limit reached",
			url:        "/users/4/requests?eventId=9",
			fakeErr:    domain.ErrLimitReached,
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
			wantCalled: true,
		},
		{
			name:       "event missing",
			url:        "/users/4/requests?eventId=9",
			fakeErr:    fmt.Errorf("event 9: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
			wantCalled: true,
		},
		{
			name:       "store failure",
			url:        "/users/4/requests?eventId=9",
			fakeErr:    errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRequestService{request: tt.fakeReq, err: tt.fakeErr}
			mux := newTestMux(NewRequestController(testLogger, fake))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, tt.url, nil))

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.wantCalled, fake.calledMethod == "create", "service called")
			var got RequestResponse
			apiErr := decodeEnvelope(t, rr, &got)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, int64(4), fake.lastUserID)
			assert.Equal(t, int64(9), fake.lastEventID)
			assert.Equal(t, RequestResponse{
				ID:        1,
				Created:   "2026-03-14 09:26:53",
				Event:     9,
				Requester: 4,
				Status:    domain.RequestStatusPending,
			}, got)
		})
	}
}

func TestRequestController_InternalErrorHidesDetail(t *testing.T) {
	fake := &fakeRequestService{err: errors.New("pq: connection refused")}
	mux := newTestMux(NewRequestController(testLogger, fake))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/4/requests", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestRequestController_ListUserRequests(t *testing.T) {
	fake := &fakeRequestService{requests: []*domain.Request{
		{ID: 2, EventID: 5, RequesterID: 4, Status: domain.RequestStatusConfirmed, CreatedAt: testCreated},
		{ID: 1, EventID: 3, RequesterID: 4, Status: domain.RequestStatusCanceled, CreatedAt: testCreated},
	}}
	mux := newTestMux(NewRequestController(testLogger, fake))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/4/requests", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got []RequestResponse
	require.Nil(t, decodeEnvelope(t, rr, &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, domain.RequestStatusCanceled, got[1].Status)
	assert.Equal(t, int64(4), fake.lastUserID)
}

func TestRequestController_ListUserRequests_EmptyIsArray(t *testing.T) {
	fake := &fakeRequestService{requests: nil}
	mux := newTestMux(NewRequestController(testLogger, fake))
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/4/requests", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[],"error":null}`, rr.Body.String())
}

func TestRequestController_CancelRequest(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		fakeErr    error
		wantStatus int
	}{
		{"canceled", "/users/4/requests/11/cancel", nil, http.StatusOK},
		{"not owned", "/users/4/requests/11/cancel", domain.ErrRequestNotOwned, http.StatusConflict},
		{"rejected cannot cancel", "/users/4/requests/11/cancel", domain.ErrRequestNotCancelable, http.StatusConflict},
		{"unknown request", "/users/4/requests/11/cancel", fmt.Errorf("request 11: %w", domain.ErrNotFound), http.StatusNotFound},
		{"bad request id", "/users/4/requests/x/cancel", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRequestService{
				request: &domain.Request{ID: 11, EventID: 5, RequesterID: 4, Status: domain.RequestStatusCanceled, CreatedAt: testCreated},
				err:     tt.fakeErr,
			}
			mux := newTestMux(NewRequestController(testLogger, fake))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, tt.url, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var got RequestResponse
				require.Nil(t, decodeEnvelope(t, rr, &got))
				assert.Equal(t, domain.RequestStatusCanceled, got.Status)
				assert.Equal(t, int64(4), fake.lastUserID)
				assert.Equal(t, int64(11), fake.lastReqID)
			}
		})
	}
}

func TestRequestController_ListEventRequests(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{"initiator", nil, http.StatusOK, ""},
		{"not initiator", domain.ErrNotInitiator, http.StatusForbidden, helpers.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRequestService{
				requests: []*domain.Request{{ID: 1, EventID: 5, RequesterID: 8, Status: domain.RequestStatusPending, CreatedAt: testCreated}},
				err:      tt.fakeErr,
			}
			mux := newTestMux(NewRequestController(testLogger, fake))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/2/events/5/requests", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			var got []RequestResponse
			apiErr := decodeEnvelope(t, rr, &got)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, int64(2), fake.lastUserID)
			assert.Equal(t, int64(5), fake.lastEventID)
		})
	}
}

func TestRequestController_UpdateRequestStatus(t *testing.T) {
	result := &domain.RequestStatusUpdateResult{
		Confirmed: []*domain.Request{{ID: 3, EventID: 5, RequesterID: 8, Status: domain.RequestStatusConfirmed, CreatedAt: testCreated}},
		Rejected: []*domain.Request{
			{ID: 1, EventID: 5, RequesterID: 9, Status: domain.RequestStatusRejected, CreatedAt: testCreated},
			{ID: 4, EventID: 5, RequesterID: 10, Status: domain.RequestStatusRejected, CreatedAt: testCreated},
		},
	}

	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantSubstr string
		wantCalled bool
	}{
		{
			name:       "confirmed with cascade",
			body:       `{"requestIds":[3,1],"status":"CONFIRMED"}`,
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "invalid json",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
			wantSubstr: "invalid",
		},
		{
			name:       "unknown field rejected",
			body:       `{"requestIds":[1],"status":"REJECTED","reason":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantSubstr: "unknown field",
		},
		{
			name:       "missing ids and status",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantSubstr: "requestIds is required; status is required",
		},
		{
			name:       "invalid target",
			body:       `{"requestIds":[1],"status":"PENDING"}`,
			fakeErr:    domain.ErrInvalidTargetStatus,
			wantStatus: http.StatusBadRequest,
			wantCalled: true,
		},
		{
			name:       "no slots",
			body:       `{"requestIds":[1],"status":"CONFIRMED"}`,
			fakeErr:    domain.ErrNoSlotsAvailable,
			wantStatus: http.StatusConflict,
			wantCalled: true,
		},
		{
			name:       "not pending",
			body:       `{"requestIds":[1],"status":"REJECTED"}`,
			fakeErr:    domain.ErrRequestNotPending,
			wantStatus: http.StatusConflict,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRequestService{result: result, err: tt.fakeErr}
			mux := newTestMux(NewRequestController(testLogger, fake))
			req := httptest.NewRequest(http.MethodPatch, "/users/2/events/5/requests", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, fake.calledMethod == "update")
			if tt.wantSubstr != "" {
				assert.Contains(t, rr.Body.String(), tt.wantSubstr)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			var got UpdateRequestStatusResponse
			require.Nil(t, decodeEnvelope(t, rr, &got))
			assert.Equal(t, domain.RequestStatusUpdate{RequestIDs: []int64{3, 1}, Status: domain.RequestStatusConfirmed}, fake.lastUpdate)
			assert.Equal(t, int64(2), fake.lastUserID)
			assert.Equal(t, int64(5), fake.lastEventID)
			require.Len(t, got.ConfirmedRequests, 1)
			require.Len(t, got.RejectedRequests, 2)
			assert.Equal(t, int64(3), got.ConfirmedRequests[0].ID)
			assert.Equal(t, []int64{1, 4}, []int64{got.RejectedRequests[0].ID, got.RejectedRequests[1].ID})
		})
	}
}
