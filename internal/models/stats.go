package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryStat is the per-category slice of a user's statistics.
type CategoryStat struct {
	Correct               int `json:"correct"`
	TotalAnswered         int `json:"totalAnswered"`
	GamesPlayedInCategory int `json:"gamesPlayedInCategory"`
}

// UserStats is the one-per-user running total record. All counters are
// monotonically non-decreasing; category keys are plain data.
type UserStats struct {
	UserID uuid.UUID `json:"user"`

	TotalGamesPlayed       int `json:"totalGamesPlayed"`
	TotalQuestionsAnswered int `json:"totalQuestionsAnswered"`
	TotalCorrectAnswers    int `json:"totalCorrectAnswers"`

	CategoryStats map[string]CategoryStat `json:"categoryStats"`

	LastPlayedAt *time.Time `json:"lastPlayedAt,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// NewUserStats returns an empty stats record for a user, as created lazily
// on first read or first outcome report.
func NewUserStats(userID uuid.UUID) *UserStats {
	return &UserStats{
		UserID:        userID,
		CategoryStats: make(map[string]CategoryStat),
	}
}
