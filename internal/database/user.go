package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizparty/server/internal/game"
	"github.com/quizparty/server/internal/models"
)

// CreateUser inserts a new user. The password must already be hashed.
// A unique player code is generated with bounded retries against the
// player_code constraint.
func CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("failed to generate user id: %w", err)
		}
		user.ID = id
	}

	q := `INSERT INTO users (id, username, email, password, player_code)
	      VALUES ($1, $2, $3, $4, $5)`

	for attempt := 0; attempt < game.MaxCodeAttempts; attempt++ {
		code, err := game.NewCode(game.PlayerCodeLength)
		if err != nil {
			return fmt.Errorf("failed to generate player code: %w", err)
		}

		err = pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
			_, execErr := tx.Exec(ctx, q,
				user.ID, user.Username, user.Email, user.Password, code)
			return execErr
		})
		if err == nil {
			user.PlayerCode = code
			return nil
		}
		if isUniqueViolation(err) {
			// A clash on username or email is a caller error; only a
			// player_code collision warrants another draw.
			exists, checkErr := userExists(ctx, user.Username, user.Email)
			if checkErr != nil {
				return checkErr
			}
			if exists {
				return ErrDuplicate
			}
			continue
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return game.ErrCodeExhausted
}

func userExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM users WHERE username=$1 OR email=$2)`
	if err := DB.QueryRow(ctx, q, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

const userColumns = `id, username, email, password, player_code, friends, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password,
		&u.PlayerCode, &u.Friends, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &u, nil
}

func GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(DB.QueryRow(ctx, q, id))
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(DB.QueryRow(ctx, q, email))
}

func GetUserByPlayerCode(ctx context.Context, code string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE player_code=$1`
	return scanUser(DB.QueryRow(ctx, q, code))
}

// GetUsersByIDs fetches a batch of users keyed by ID. Missing IDs are
// simply absent from the result.
func GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`
	rows, err := DB.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make(map[uuid.UUID]*models.User, len(ids))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users[u.ID] = u
	}
	return users, rows.Err()
}

// ListFriends resolves a user's friend references to public identities.
func ListFriends(ctx context.Context, userID uuid.UUID) ([]models.PublicUser, error) {
	q := `
	SELECT f.username, f.player_code
	FROM users u
	JOIN users f ON f.id = ANY(u.friends)
	WHERE u.id = $1
	ORDER BY f.username
	`
	rows, err := DB.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	friends := []models.PublicUser{}
	for rows.Next() {
		var f models.PublicUser
		if err := rows.Scan(&f.Username, &f.PlayerCode); err != nil {
			return nil, err
		}
		friends = append(friends, f)
	}
	return friends, rows.Err()
}
