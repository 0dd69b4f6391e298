package httpx

import (
	"errors"
	"net/http"

	"github.com/sarmini1/biztime/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807. It is
// the single boundary translator: handlers pass every failure through
// here untouched, so the taxonomy in internal/shared decides the status.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrBadRequest):
		Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, shared.ErrConflict):
		Problem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
