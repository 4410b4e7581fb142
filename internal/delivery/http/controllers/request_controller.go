package controllers

import (
	"log/slog"
	"net/http"

	"explorewithme/internal/delivery/http/helpers"
	"explorewithme/internal/domain"
)

// RequestResponse is the wire representation of a participation request.
type RequestResponse struct {
	ID        int64                `json:"id"`
	Created   string               `json:"created"`
	Event     int64                `json:"event"`
	Requester int64                `json:"requester"`
	Status    domain.RequestStatus `json:"status"`
}

func newRequestResponse(req *domain.Request) RequestResponse {
	return RequestResponse{
		ID:        req.ID,
		Created:   req.CreatedAt.Format(domain.TimeLayout),
		Event:     req.EventID,
		Requester: req.RequesterID,
		Status:    req.Status,
	}
}

func newRequestResponses(reqs []*domain.Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, newRequestResponse(req))
	}
	return out
}

// UpdateRequestStatusBody is the request body for PATCH /users/{userId}/events/{eventId}/requests.
type UpdateRequestStatusBody struct {
	RequestIDs []int64              `json:"requestIds"`
	Status     domain.RequestStatus `json:"status"`
}

// Validate implements Validator.
func (b UpdateRequestStatusBody) Validate() []string {
	var errs []string
	if len(b.RequestIDs) == 0 {
		errs = append(errs, "requestIds is required")
	}
	if b.Status == "" {
		errs = append(errs, "status is required")
	}
	return errs
}

// UpdateRequestStatusResponse partitions the requests touched by a moderation decision.
type UpdateRequestStatusResponse struct {
	ConfirmedRequests []RequestResponse `json:"confirmedRequests"`
	RejectedRequests  []RequestResponse `json:"rejectedRequests"`
}

// RequestSuccessResponse is the success envelope for a single request.
type RequestSuccessResponse struct {
	Data  RequestResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RequestListSuccessResponse is the success envelope for a list of requests.
type RequestListSuccessResponse struct {
	Data  []RequestResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UpdateRequestStatusSuccessResponse is the success envelope for a moderation decision.
type UpdateRequestStatusSuccessResponse struct {
	Data  UpdateRequestStatusResponse `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

type RequestController struct {
	Logger  *slog.Logger
	Service domain.RequestService
}

func NewRequestController(logger *slog.Logger, svc domain.RequestService) *RequestController {
	return &RequestController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateRequest godoc
// @Summary Submit a participation request
// @Description Creates a request by the user to take part in the event. The request is confirmed immediately when the event needs no moderation.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Requester ID"
// @Param eventId query int true "Event ID"
// @Success 201 {object} controllers.RequestSuccessResponse "data contains the created request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/requests [post]
func (c *RequestController) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	eventID, ok := helpers.QueryID(w, r, "eventId")
	if !ok {
		return
	}
	req, err := c.Service.CreateRequest(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, newRequestResponse(req))
}

// ListUserRequests godoc
// @Summary List the user's participation requests
// @Description Returns every request the user has submitted, newest first.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Requester ID"
// @Success 200 {object} controllers.RequestListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/requests [get]
func (c *RequestController) ListUserRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	reqs, err := c.Service.ListRequestsForUser(r.Context(), userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newRequestResponses(reqs))
}

// CancelRequest godoc
// @Summary Cancel a participation request
// @Description The requester withdraws a pending or confirmed request. Canceling a confirmed request frees its slot.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Requester ID"
// @Param requestId path int true "Request ID"
// @Success 200 {object} controllers.RequestSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/requests/{requestId}/cancel [patch]
func (c *RequestController) CancelRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	requestID, ok := helpers.PathID(w, r, "requestId")
	if !ok {
		return
	}
	req, err := c.Service.CancelRequest(r.Context(), userID, requestID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newRequestResponse(req))
}

// ListEventRequests godoc
// @Summary List requests for an event
// @Description Returns every request submitted to the event. Only the event initiator may call this.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Initiator ID"
// @Param eventId path int true "Event ID"
// @Success 200 {object} controllers.RequestListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/events/{eventId}/requests [get]
func (c *RequestController) ListEventRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	reqs, err := c.Service.ListRequestsForEvent(r.Context(), userID, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newRequestResponses(reqs))
}

// UpdateRequestStatus godoc
// @Summary Confirm or reject pending requests
// @Description Applies the initiator's decision to a batch of pending requests. Confirmation follows the order of requestIds. When the participant limit fills, remaining pending requests are rejected.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Initiator ID"
// @Param eventId path int true "Event ID"
// @Param body body UpdateRequestStatusBody true "Request ids and target status (CONFIRMED or REJECTED)"
// @Success 200 {object} controllers.UpdateRequestStatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userId}/events/{eventId}/requests [patch]
func (c *RequestController) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userId")
	if !ok {
		return
	}
	eventID, ok := helpers.PathID(w, r, "eventId")
	if !ok {
		return
	}
	var body UpdateRequestStatusBody
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}
	result, err := c.Service.UpdateRequestStatus(r.Context(), userID, eventID, domain.RequestStatusUpdate{
		RequestIDs: body.RequestIDs,
		Status:     body.Status,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, UpdateRequestStatusResponse{
		ConfirmedRequests: newRequestResponses(result.Confirmed),
		RejectedRequests:  newRequestResponses(result.Rejected),
	})
}
