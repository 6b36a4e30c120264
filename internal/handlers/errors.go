// internal/handlers/errors.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/game"
	"github.com/quizparty/server/internal/stats"
)

// errUnauthenticated marks requests without a usable token.
var errUnauthenticated = errors.New("authentication required")

// validationError wraps a caller input problem so statusFor maps it to 400.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func invalid(msg string) error { return &validationError{msg: msg} }

// statusFor maps domain errors onto the HTTP taxonomy: validation 400,
// unauthenticated 401, authorization 403, not-found 404, conflict and
// wrong-state 409. Anything unrecognized is a 500.
func statusFor(err error) int {
	var vErr *validationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, stats.ErrMissingOutcome),
		errors.Is(err, stats.ErrInvalidOutcome):
		return http.StatusBadRequest
	case errors.Is(err, errUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, game.ErrNotHost),
		errors.Is(err, game.ErrNotPlayer),
		errors.Is(err, database.ErrNotRequestTarget):
		return http.StatusForbidden
	case errors.Is(err, database.ErrNotFound),
		errors.Is(err, game.ErrNoQuestion):
		return http.StatusNotFound
	case errors.Is(err, database.ErrDuplicate),
		errors.Is(err, database.ErrRequestNotPending),
		errors.Is(err, game.ErrLobbyFull),
		errors.Is(err, game.ErrAlreadyJoined),
		errors.Is(err, game.ErrAlreadyAnswered),
		errors.Is(err, game.ErrWrongState),
		errors.Is(err, game.ErrNoQuestions),
		errors.Is(err, game.ErrCodeExhausted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError reports err to the caller with its taxonomy status. Internal
// errors get a generic message; the detail stays in the server log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.WithField("path", r.URL.Path).WithError(err).Error("internal error")
		msg = "server error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
