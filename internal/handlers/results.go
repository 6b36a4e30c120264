package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/game"
)

// ResultsHandler serves the ranked results of a completed game. Player
// names prefer live identities and fall back to the denormalized names
// stored with the game.
func (s *Server) ResultsHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := database.GetGameByCode(r.Context(), gameCode(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(g.Players)+1)
	ids = append(ids, g.HostID)
	for _, p := range g.Players {
		ids = append(ids, p.UserID)
	}
	users, err := database.GetUsersByIDs(r.Context(), ids)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	results, err := game.BuildResults(g, users)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
