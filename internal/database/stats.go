package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizparty/server/internal/models"
)

const statsColumns = `user_id, total_games_played, total_questions_answered,
	total_correct_answers, category_stats, last_played_at, updated_at`

func scanStats(row pgx.Row) (*models.UserStats, error) {
	var s models.UserStats
	err := row.Scan(&s.UserID, &s.TotalGamesPlayed, &s.TotalQuestionsAnswered,
		&s.TotalCorrectAnswers, &s.CategoryStats, &s.LastPlayedAt, &s.UpdatedAt)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &s, nil
}

// GetStats returns a user's stats record, or ErrNotFound before first play.
func GetStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	q := `SELECT ` + statsColumns + ` FROM user_stats WHERE user_id=$1`
	return scanStats(DB.QueryRow(ctx, q, userID))
}

// EnsureStats returns the user's stats record, creating an empty one if
// none exists yet (stats are created lazily on first read or write).
func EnsureStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	q := `
	INSERT INTO user_stats (user_id) VALUES ($1)
	ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := DB.Exec(ctx, q, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure stats row: %w", err)
	}
	return GetStats(ctx, userID)
}

// SaveStats persists the whole record in a single-row write.
func SaveStats(ctx context.Context, s *models.UserStats) error {
	q := `
	UPDATE user_stats
	SET total_games_played=$2, total_questions_answered=$3,
	    total_correct_answers=$4, category_stats=$5, last_played_at=$6,
	    updated_at=NOW()
	WHERE user_id=$1
	`
	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, q, s.UserID, s.TotalGamesPlayed,
			s.TotalQuestionsAnswered, s.TotalCorrectAnswers,
			s.CategoryStats, s.LastPlayedAt)
		return err
	})
}

// LeaderboardEntry is one row of the global leaderboard.
type LeaderboardEntry struct {
	Username            string `json:"username"`
	PlayerCode          string `json:"playerId"`
	TotalCorrectAnswers int    `json:"totalCorrectAnswers"`
	TotalGamesPlayed    int    `json:"totalGamesPlayed"`
	AverageAccuracy     int    `json:"averageAccuracy"`
}

// Leaderboard returns the top players by correct answers, then by games
// played. This is the source of truth; the redis mirror only accelerates it.
func Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	q := `
	SELECT u.username, u.player_code, s.total_correct_answers,
	       s.total_games_played,
	       CASE WHEN s.total_questions_answered > 0
	            THEN ROUND(100.0 * s.total_correct_answers / s.total_questions_answered)
	            ELSE 0 END
	FROM user_stats s
	JOIN users u ON u.id = s.user_id
	ORDER BY s.total_correct_answers DESC, s.total_games_played DESC
	LIMIT $1
	`
	rows, err := DB.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []LeaderboardEntry{}
	for rows.Next() {
		var e LeaderboardEntry
		err := rows.Scan(&e.Username, &e.PlayerCode, &e.TotalCorrectAnswers,
			&e.TotalGamesPlayed, &e.AverageAccuracy)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
