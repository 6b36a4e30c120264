package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizparty/server/internal/models"
)

// InsertQuestion adds a question to the bank. Validation (2+ choices,
// correct answer among choices) happens at the caller.
func InsertQuestion(ctx context.Context, q *models.Question) error {
	if q.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("failed to generate question id: %w", err)
		}
		q.ID = id
	}

	stmt := `INSERT INTO questions (id, category, text, choices, correct_answer)
	         VALUES ($1, $2, $3, $4, $5)`
	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, stmt, q.ID, q.Category, q.Text, q.Choices, q.CorrectAnswer)
		return err
	})
}

// SampleQuestions draws a uniform random subset of up to n questions in
// the category, without replacement over the matched set. Zero matches is
// ErrNotFound; fewer than n is not an error.
func SampleQuestions(ctx context.Context, category string, n int) ([]models.Question, error) {
	q := `
	SELECT id, category, text, choices, correct_answer
	FROM questions
	WHERE category = $1
	ORDER BY random()
	LIMIT $2
	`
	rows, err := DB.Query(ctx, q, category, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var question models.Question
		err := rows.Scan(&question.ID, &question.Category, &question.Text,
			&question.Choices, &question.CorrectAnswer)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return questions, nil
}

// ListCategories returns the distinct category names present in the bank.
func ListCategories(ctx context.Context) ([]string, error) {
	rows, err := DB.Query(ctx, `SELECT DISTINCT category FROM questions ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
