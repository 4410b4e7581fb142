package domain

import (
	"errors"
	"fmt"
)

// Error categories. The HTTP layer maps each category to a status code;
// specific errors below wrap one of them so errors.Is matches both.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// Participation request rule violations.
var (
	ErrDuplicateRequest     = fmt.Errorf("%w: duplicate request", ErrConflict)
	ErrInitiatorRequest     = fmt.Errorf("%w: initiator cannot request own event", ErrConflict)
	ErrEventNotPublished    = fmt.Errorf("%w: event not published", ErrConflict)
	ErrLimitReached         = fmt.Errorf("%w: limit reached", ErrConflict)
	ErrNoSlotsAvailable     = fmt.Errorf("%w: no slots available", ErrConflict)
	ErrRequestNotOwned      = fmt.Errorf("%w: request does not belong to user", ErrConflict)
	ErrRequestNotPending    = fmt.Errorf("%w: only pending requests can be moderated", ErrConflict)
	ErrRequestForeignEvent  = fmt.Errorf("%w: request does not belong to event", ErrConflict)
	ErrRequestNotCancelable = fmt.Errorf("%w: request cannot be canceled", ErrConflict)
	ErrStatusChanged        = fmt.Errorf("%w: request status changed concurrently", ErrConflict)

	ErrModerationNotApplicable = fmt.Errorf("%w: moderation not applicable", ErrValidation)
	ErrInvalidTargetStatus     = fmt.Errorf("%w: status must be CONFIRMED or REJECTED", ErrValidation)
	ErrEmptyRequestIDs         = fmt.Errorf("%w: requestIds must not be empty", ErrValidation)

	ErrNotInitiator = fmt.Errorf("%w: user is not the event initiator", ErrForbidden)
)
