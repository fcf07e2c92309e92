package http

import (
	"errors"
	"net/http"

	"campusmarket/internal/core/application/usecases/commands"
	"campusmarket/internal/core/application/usecases/queries"
	"campusmarket/internal/core/domain/model/order"
	"campusmarket/internal/core/domain/services"
	"campusmarket/internal/pkg/errs"
)

// statusForError maps application and domain failures to HTTP status codes.
// Conflicts cover both illegal state machine moves and lost optimistic
// concurrency races, so a client retry strategy can treat 409 uniformly.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotAuthorized),
		errors.Is(err, commands.ErrNotAParticipant),
		errors.Is(err, queries.ErrNotAParticipant):
		return http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCancellationNotAllowed),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, commands.ErrInactiveAccount),
		errors.Is(err, commands.ErrListingUnavailable),
		errors.Is(err, commands.ErrWrongListingType),
		errors.Is(err, commands.ErrSelfTrade),
		errors.Is(err, commands.ErrDuplicateActiveOrder):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(code int, err error) ErrorResponse {
	message := err.Error()
	if code == http.StatusInternalServerError {
		// Internal details stay in the logs
		message = "internal server error"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
