package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizparty/server/internal/game"
	"github.com/quizparty/server/internal/models"
)

// CreateGame inserts a new lobby with a freshly drawn game code, retrying
// on code collision up to the bounded attempt count. The player list and
// question snapshots must already be populated on g.
func CreateGame(ctx context.Context, g *models.Game) error {
	if g.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("failed to generate game id: %w", err)
		}
		g.ID = id
	}

	q := `
	INSERT INTO games (id, game_code, host_id, category, players, max_players,
	                   status, questions, current_question_index)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at, updated_at
	`

	for attempt := 0; attempt < game.MaxCodeAttempts; attempt++ {
		code, err := game.NewCode(game.GameCodeLength)
		if err != nil {
			return fmt.Errorf("failed to generate game code: %w", err)
		}

		err = DB.QueryRow(ctx, q,
			g.ID, code, g.HostID, g.Category, g.Players, g.MaxPlayers,
			g.Status, g.Questions, g.CurrentQuestionIndex,
		).Scan(&g.CreatedAt, &g.UpdatedAt)
		if err == nil {
			g.GameCode = code
			return nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return game.ErrCodeExhausted
}

const gameColumns = `id, game_code, host_id, category, players, max_players,
	status, questions, current_question_index, started_at, completed_at,
	created_at, updated_at`

// GetGameByCode loads a game by its code. Codes are stored uppercase; the
// caller normalizes input.
func GetGameByCode(ctx context.Context, code string) (*models.Game, error) {
	var g models.Game
	q := `SELECT ` + gameColumns + ` FROM games WHERE game_code=$1`
	err := DB.QueryRow(ctx, q, code).Scan(
		&g.ID, &g.GameCode, &g.HostID, &g.Category, &g.Players, &g.MaxPlayers,
		&g.Status, &g.Questions, &g.CurrentQuestionIndex, &g.StartedAt,
		&g.CompletedAt, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &g, nil
}

// SaveGamePlayers persists the player list (join order and scores) of one
// game. A single-row write, so the store applies it atomically.
func SaveGamePlayers(ctx context.Context, gameID uuid.UUID, players []models.Player) error {
	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE games SET players=$1, updated_at=NOW() WHERE id=$2`,
			players, gameID)
		return err
	})
}

// StartGame flips a lobby to in-progress. The status predicate makes the
// transition single-shot: a second start finds no matching row.
func StartGame(ctx context.Context, gameID uuid.UUID) error {
	ct, err := DB.Exec(ctx, `
		UPDATE games
		SET status='in-progress', current_question_index=0,
		    started_at=NOW(), updated_at=NOW()
		WHERE id=$1 AND status='lobby'`,
		gameID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return game.ErrWrongState
	}
	return nil
}

// AdvanceCursor bumps the question cursor, conditional on the cursor still
// holding the value the caller observed. Two racing advances cannot both
// match; the loser gets ErrWrongState.
func AdvanceCursor(ctx context.Context, gameID uuid.UUID, observedIndex int) error {
	ct, err := DB.Exec(ctx, `
		UPDATE games
		SET current_question_index=current_question_index+1, updated_at=NOW()
		WHERE id=$1 AND status='in-progress' AND current_question_index=$2`,
		gameID, observedIndex)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return game.ErrWrongState
	}
	return nil
}

// CompleteGame marks an in-progress game completed, conditional on the
// cursor still sitting on the observed (last) question.
func CompleteGame(ctx context.Context, gameID uuid.UUID, observedIndex int) error {
	ct, err := DB.Exec(ctx, `
		UPDATE games
		SET status='completed', completed_at=NOW(), updated_at=NOW()
		WHERE id=$1 AND status='in-progress' AND current_question_index=$2`,
		gameID, observedIndex)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return game.ErrWrongState
	}
	return nil
}

// DeleteGame removes a game row entirely.
func DeleteGame(ctx context.Context, gameID uuid.UUID) error {
	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM games WHERE id=$1`, gameID)
		return err
	})
}
