package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// Client-facing error messages.
const (
	MsgFieldsRequired = "text and imageUrl are required"
	MsgInvalidBody    = "invalid request body"
	MsgTaskNotFound   = "task not found"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	// An id that can never be assigned names no task.
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError writes the response for err. failMessage is used as the
// error text for store failures, whose underlying message goes into details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, failMessage string) {
	status := MapErrorToStatusCode(err)

	switch status {
	case http.StatusNotFound:
		shared.RespondWithErrorAndLog(w, r, status, MsgTaskNotFound, err)
	case http.StatusBadRequest:
		shared.RespondWithErrorAndLog(w, r, status, MsgFieldsRequired, err)
	default:
		shared.RespondWithErrorAndLog(w, r, status, failMessage, err,
			shared.WithDetails(storeMessage(err)))
	}
}

// storeMessage returns the driver's own text for store failures and the
// full error text otherwise.
func storeMessage(err error) string {
	var se *store.StoreError
	if errors.As(err, &se) {
		return se.Message()
	}
	return err.Error()
}
