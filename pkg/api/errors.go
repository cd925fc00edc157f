package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ketos-lab/traylims/pkg/optimizer"
)

// mapOptimizeError maps optimizer errors to an HTTP status and error payload.
func mapOptimizeError(err error) (int, *ErrorResponse) {
	var unknownErr *optimizer.UnknownExperimentError
	if errors.As(err, &unknownErr) {
		return http.StatusBadRequest, &ErrorResponse{Error: unknownErr.Error()}
	}

	var capacityErr *optimizer.CapacityExceededError
	if errors.As(err, &capacityErr) {
		return http.StatusUnprocessableEntity, &ErrorResponse{
			Error:  capacityErr.Error(),
			Detail: capacityErr,
		}
	}

	// InfeasibleError and anything else is a bug, not a caller mistake.
	slog.Error("Unexpected optimizer error", "error", err)
	return http.StatusInternalServerError, &ErrorResponse{Error: "internal server error"}
}
