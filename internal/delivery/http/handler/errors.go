package handler

import (
	"errors"
	"net/http"

	"smart-clinic-gateway/internal/delivery/http/middleware"
	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/infrastructure/backend"
	"smart-clinic-gateway/pkg/response"
)

// writeBackendError answers for failures reported by the clinic backend.
// Field errors are passed through verbatim and joined in the message.
func writeBackendError(w http.ResponseWriter, err error, fallback string) {
	if rejected, ok := backend.AsRemoteRejected(err); ok {
		var details interface{}
		if len(rejected.FieldErrors) > 0 {
			details = rejected.FieldErrors
		}
		response.Error(w, http.StatusBadRequest, rejected.Error(), details)
		return
	}

	switch {
	case errors.Is(err, backend.ErrNetwork):
		response.BadGateway(w, "Clinic backend is unreachable, please try again")
	case errors.Is(err, backend.ErrUnauthorized):
		response.Unauthorized(w, "Clinic backend session expired, please log in again")
	case errors.Is(err, backend.ErrForbidden):
		response.Forbidden(w, "")
	case errors.Is(err, backend.ErrNotFound):
		response.NotFound(w, "")
	case errors.Is(err, backend.ErrUnexpectedStatus):
		response.BadGateway(w, fallback)
	default:
		response.InternalServerError(w, fallback)
	}
}

func sessionFrom(r *http.Request) *entity.Session {
	session, _ := middleware.GetSessionFromContext(r.Context())
	return session
}
