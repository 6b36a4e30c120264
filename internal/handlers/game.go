// internal/handlers/game.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/game"
	"github.com/quizparty/server/internal/models"
)

type createGameRequest struct {
	Category          string `json:"category"`
	MaxPlayers        int    `json:"maxPlayers"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

// CreateGameHandler opens a new lobby. The host is added as the first
// player and the game embeds value snapshots of sampled bank questions,
// so later bank edits cannot affect this game.
func (s *Server) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	host, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, invalid("invalid request payload"))
		return
	}
	if req.Category == "" {
		s.writeError(w, r, invalid("please provide a game category"))
		return
	}

	numQuestions := req.NumberOfQuestions
	if numQuestions <= 0 {
		numQuestions = models.DefaultQuestions
	}

	sampled, err := database.SampleQuestions(r.Context(), req.Category, numQuestions)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	snapshots := make([]models.GameQuestion, 0, len(sampled))
	for _, q := range sampled {
		snapshots = append(snapshots, models.GameQuestion{
			QuestionID:    q.ID.String(),
			Text:          q.Text,
			Choices:       q.Choices,
			CorrectAnswer: q.CorrectAnswer,
			Category:      q.Category,
		})
	}

	maxPlayers := req.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = models.DefaultMaxPlayers
	}
	if maxPlayers < models.MinPlayers {
		maxPlayers = models.MinPlayers
	}
	if maxPlayers > models.MaxPlayersCeiling {
		maxPlayers = models.MaxPlayersCeiling
	}

	g := models.Game{
		HostID:   host.ID,
		Category: req.Category,
		Players: []models.Player{{
			UserID:       host.ID,
			Username:     host.Username,
			Score:        0,
			LastAnswered: -1,
		}},
		MaxPlayers: maxPlayers,
		Status:     models.GameStatusLobby,
		Questions:  snapshots,
	}
	if err := database.CreateGame(r.Context(), &g); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

// gameCode normalizes the path's game code: stored codes are uppercase.
func gameCode(r *http.Request) string {
	return strings.ToUpper(r.PathValue("code"))
}

// GetGameHandler returns the full game document for the lobby view.
func (s *Server) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := database.GetGameByCode(r.Context(), gameCode(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// JoinGameHandler adds the caller to a lobby.
func (s *Server) JoinGameHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := database.GetGameByCode(r.Context(), gameCode(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := game.AddPlayer(g, user); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := database.SaveGamePlayers(r.Context(), g.ID, g.Players); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// StartGameHandler moves the lobby to in-progress. Host only; the
// persisted transition is conditional on the lobby status, so a racing
// second start loses.
func (s *Server) StartGameHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := database.GetGameByCode(r.Context(), gameCode(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := game.Start(g, user.ID); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := database.StartGame(r.Context(), g.ID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

type submitAnswerResponse struct {
	Msg              string `json:"msg"`
	Correct          bool   `json:"correct"`
	YourCurrentScore int    `json:"yourCurrentScore"`
}

// SubmitAnswerHandler scores the caller's answer to the current question.
func (s *Server) SubmitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, invalid("invalid request payload"))
		return
	}
	if req.Answer == "" {
		s.writeError(w, r, invalid("answer is required"))
		return
	}

	g, err := database.GetGameByCode(r.Context(), gameCode(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	correct, score, err := game.SubmitAnswer(g, user.ID, req.Answer)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := database.SaveGamePlayers(r.Context(), g.ID, g.Players); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, submitAnswerResponse{
		Msg:              "answer submitted",
		Correct:          correct,
		YourCurrentScore: score,
	})
}

type advanceResponse struct {
	Msg                  string `json:"msg"`
	GameStatus           string `json:"gameStatus"`
	CurrentQuestionIndex int    `json:"currentQuestionIndex"`
}

// AdvanceGameHandler moves the game to the next question, or completes it
// when the cursor already sits on the last question. Any participant may
// advance; the conditional write keyed on the observed cursor ensures two
// racing calls cannot skip a question.
func (s *Server) AdvanceGameHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := database.GetGameByCode(r.Context(), gameCode(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if g.FindPlayer(user.ID) == nil {
		s.writeError(w, r, game.ErrNotPlayer)
		return
	}

	outcome, err := game.Advance(g)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if outcome.Completed {
		if err := database.CompleteGame(r.Context(), g.ID, g.CurrentQuestionIndex); err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, advanceResponse{
			Msg:                  "game completed, all questions answered",
			GameStatus:           models.GameStatusCompleted,
			CurrentQuestionIndex: g.CurrentQuestionIndex,
		})
		return
	}

	if err := database.AdvanceCursor(r.Context(), g.ID, g.CurrentQuestionIndex); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, advanceResponse{
		Msg:                  "advanced to next question",
		GameStatus:           g.Status,
		CurrentQuestionIndex: outcome.NextIndex,
	})
}

// DeleteGameHandler removes a game. Host only, and never while the game
// is in progress.
func (s *Server) DeleteGameHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := database.GetGameByCode(r.Context(), gameCode(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !g.IsHost(user.ID) {
		s.writeError(w, r, game.ErrNotHost)
		return
	}
	if g.Status == models.GameStatusInProgress {
		s.writeError(w, r, game.ErrWrongState)
		return
	}

	if err := database.DeleteGame(r.Context(), g.ID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "game " + g.GameCode + " deleted"})
}
