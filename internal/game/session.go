// internal/game/session.go
//
// Pure state transitions for a game session. These functions mutate the
// in-memory model only; persistence (including the conditional cursor
// update that serializes concurrent advances) lives in internal/database.
package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quizparty/server/internal/models"
)

// PointsPerCorrectAnswer is credited to a player's running score for each
// correct submission.
const PointsPerCorrectAnswer = 10

// AddPlayer appends user as a player with score 0. It fails if the lobby
// is full, the game has left the lobby state, or the user already joined.
func AddPlayer(g *models.Game, user *models.User) error {
	if len(g.Players) >= g.MaxPlayers {
		return ErrLobbyFull
	}
	if g.Status != models.GameStatusLobby {
		return ErrWrongState
	}
	if g.FindPlayer(user.ID) != nil {
		return ErrAlreadyJoined
	}
	g.Players = append(g.Players, models.Player{
		UserID:       user.ID,
		Username:     user.Username,
		Score:        0,
		LastAnswered: -1,
	})
	return nil
}

// Start moves the game from lobby to in-progress. Host only.
func Start(g *models.Game, userID uuid.UUID) error {
	if !g.IsHost(userID) {
		return ErrNotHost
	}
	if g.Status != models.GameStatusLobby {
		return ErrWrongState
	}
	if len(g.Questions) == 0 {
		return ErrNoQuestions
	}
	now := time.Now()
	g.Status = models.GameStatusInProgress
	g.CurrentQuestionIndex = 0
	g.StartedAt = &now
	return nil
}

// SubmitAnswer scores a player's answer against the current question.
// The comparison is a case-insensitive exact match. Each player gets one
// submission per question; a second attempt at the same index fails.
func SubmitAnswer(g *models.Game, userID uuid.UUID, answer string) (correct bool, score int, err error) {
	if g.Status != models.GameStatusInProgress {
		return false, 0, ErrWrongState
	}
	player := g.FindPlayer(userID)
	if player == nil {
		return false, 0, ErrNotPlayer
	}
	if g.CurrentQuestionIndex < 0 || g.CurrentQuestionIndex >= len(g.Questions) {
		return false, 0, ErrNoQuestion
	}
	if player.LastAnswered >= g.CurrentQuestionIndex {
		return false, player.Score, ErrAlreadyAnswered
	}

	question := g.Questions[g.CurrentQuestionIndex]
	player.LastAnswered = g.CurrentQuestionIndex
	if strings.EqualFold(question.CorrectAnswer, answer) {
		player.Score += PointsPerCorrectAnswer
		return true, player.Score, nil
	}
	return false, player.Score, nil
}

// AdvanceOutcome describes what an advance call should do: either bump the
// cursor, or complete the game when the cursor already sits on the last
// question.
type AdvanceOutcome struct {
	Completed bool
	NextIndex int
}

// Advance computes the next transition for an in-progress game. The caller
// persists it with a conditional write keyed on the observed cursor, so two
// racing advances cannot both take effect.
func Advance(g *models.Game) (AdvanceOutcome, error) {
	if g.Status != models.GameStatusInProgress {
		return AdvanceOutcome{}, ErrWrongState
	}
	if g.CurrentQuestionIndex < len(g.Questions)-1 {
		return AdvanceOutcome{NextIndex: g.CurrentQuestionIndex + 1}, nil
	}
	return AdvanceOutcome{Completed: true, NextIndex: g.CurrentQuestionIndex}, nil
}
