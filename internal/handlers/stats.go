// internal/handlers/stats.go
package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/models"
	"github.com/quizparty/server/internal/stats"
)

// MyStatsHandler returns the caller's formatted stats, creating the
// record lazily on first read.
func (s *Server) MyStatsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	record, err := database.EnsureStats(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats.BuildView(user, record))
}

// StatsByIdentifierHandler resolves either a user UUID or a player code
// and returns that user's formatted stats. A user who has never played
// gets the zero view without a record being created.
func (s *Server) StatsByIdentifierHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		s.writeError(w, r, err)
		return
	}

	identifier := r.PathValue("identifier")

	var user *models.User
	var err error
	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		user, err = database.GetUserByID(r.Context(), id)
	} else {
		user, err = database.GetUserByPlayerCode(r.Context(), strings.ToUpper(identifier))
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	record, err := database.GetStats(r.Context(), user.ID)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats.BuildView(user, record))
}

type reportOutcomeResponse struct {
	Msg          string            `json:"msg"`
	UpdatedStats *models.UserStats `json:"updatedStats"`
}

// ReportOutcomeHandler folds one completed game's outcome into the
// caller's stats. Each player reports once per game; totalGamesPlayed
// grows by exactly one regardless of how many categories were reported.
func (s *Server) ReportOutcomeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var outcome stats.Outcome
	if err := json.NewDecoder(r.Body).Decode(&outcome); err != nil {
		s.writeError(w, r, invalid("invalid request payload"))
		return
	}

	record, err := database.EnsureStats(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := stats.Apply(record, &outcome, time.Now()); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := database.SaveStats(r.Context(), record); err != nil {
		s.writeError(w, r, err)
		return
	}

	// Best-effort mirror refresh; the SQL leaderboard stays authoritative.
	if err := s.board.Record(r.Context(), leaderboardEntry(user, record)); err != nil {
		s.log.WithError(err).Warn("failed to update leaderboard mirror")
	}

	writeJSON(w, http.StatusOK, reportOutcomeResponse{
		Msg:          "stats updated successfully",
		UpdatedStats: record,
	})
}

func leaderboardEntry(user *models.User, record *models.UserStats) database.LeaderboardEntry {
	entry := database.LeaderboardEntry{
		Username:            user.Username,
		PlayerCode:          user.PlayerCode,
		TotalCorrectAnswers: record.TotalCorrectAnswers,
		TotalGamesPlayed:    record.TotalGamesPlayed,
	}
	if record.TotalQuestionsAnswered > 0 {
		entry.AverageAccuracy = int(math.Round(
			100 * float64(record.TotalCorrectAnswers) / float64(record.TotalQuestionsAnswered)))
	}
	return entry
}

const defaultLeaderboardSize = 10

// LeaderboardHandler serves the global top players, preferring the Redis
// mirror and falling back to SQL.
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		s.writeError(w, r, err)
		return
	}

	limit := defaultLeaderboardSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	if entries, err := s.board.Top(r.Context(), limit); err == nil && len(entries) > 0 {
		writeJSON(w, http.StatusOK, entries)
		return
	}

	entries, err := database.Leaderboard(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
