// internal/handlers/errors_test.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/game"
	"github.com/quizparty/server/internal/stats"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", invalid("bad input"), http.StatusBadRequest},
		{"missing outcome", stats.ErrMissingOutcome, http.StatusBadRequest},
		{"invalid outcome", stats.ErrInvalidOutcome, http.StatusBadRequest},
		{"unauthenticated", errUnauthenticated, http.StatusUnauthorized},
		{"wrapped unauthenticated", fmt.Errorf("%w: missing header", errUnauthenticated), http.StatusUnauthorized},
		{"not host", game.ErrNotHost, http.StatusForbidden},
		{"not player", game.ErrNotPlayer, http.StatusForbidden},
		{"not request target", database.ErrNotRequestTarget, http.StatusForbidden},
		{"not found", database.ErrNotFound, http.StatusNotFound},
		{"no current question", game.ErrNoQuestion, http.StatusNotFound},
		{"duplicate", database.ErrDuplicate, http.StatusConflict},
		{"request not pending", database.ErrRequestNotPending, http.StatusConflict},
		{"lobby full", game.ErrLobbyFull, http.StatusConflict},
		{"already joined", game.ErrAlreadyJoined, http.StatusConflict},
		{"already answered", game.ErrAlreadyAnswered, http.StatusConflict},
		{"wrong state", game.ErrWrongState, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusFor(tc.err))
		})
	}
}
