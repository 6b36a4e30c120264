package models

import (
	"time"

	"github.com/google/uuid"
)

// Game statuses. Transitions are monotonic: lobby -> in-progress -> completed.
// Aborted games are physically deleted rather than kept.
const (
	GameStatusLobby      = "lobby"
	GameStatusInProgress = "in-progress"
	GameStatusCompleted  = "completed"
)

const (
	MinPlayers        = 2
	MaxPlayersCeiling = 10
	DefaultMaxPlayers = 5
	DefaultQuestions  = 10
)

// Player is one entry in a game's player list. Username is denormalized
// so lobbies and results render without a join against users.
type Player struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Score    int       `json:"score"`

	// LastAnswered is the highest question index this player has submitted
	// an answer for, -1 before the first submission. One submission is
	// allowed per player per question.
	LastAnswered int `json:"lastAnswered"`
}

type Game struct {
	ID       uuid.UUID `json:"id"`
	GameCode string    `json:"gameCode"`
	HostID   uuid.UUID `json:"host"`
	Category string    `json:"category"`

	Players    []Player `json:"players"`
	MaxPlayers int      `json:"maxPlayers"`
	Status     string   `json:"status"`

	Questions            []GameQuestion `json:"questions"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`

	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FindPlayer returns the player entry for userID, or nil.
func (g *Game) FindPlayer(userID uuid.UUID) *Player {
	for i := range g.Players {
		if g.Players[i].UserID == userID {
			return &g.Players[i]
		}
	}
	return nil
}

// IsHost reports whether userID created this game.
func (g *Game) IsHost(userID uuid.UUID) bool {
	return g.HostID == userID
}
