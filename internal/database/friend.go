// internal/database/friend.go

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizparty/server/internal/models"
)

// ErrNotRequestTarget is returned when a caller tries to resolve a friend
// request that was not addressed to them.
var ErrNotRequestTarget = errors.New("not the target of this friend request")

// ErrRequestNotPending is returned when a request has already reached a
// terminal status.
var ErrRequestNotPending = errors.New("friend request is not pending")

// CreateFriendRequest inserts a pending request. Uniqueness of the ordered
// (from, to) pair while pending is enforced by a partial unique index, not
// a pre-check, so concurrent duplicates collapse into ErrDuplicate.
func CreateFriendRequest(ctx context.Context, from, to uuid.UUID) (*models.FriendRequest, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate request id: %w", err)
	}

	fr := &models.FriendRequest{ID: id, FromID: from, ToID: to, Status: models.FriendRequestPending}

	q := `
	INSERT INTO friend_requests (id, from_id, to_id, status)
	VALUES ($1, $2, $3, 'pending')
	RETURNING created_at, updated_at
	`
	err = DB.QueryRow(ctx, q, id, from, to).Scan(&fr.CreatedAt, &fr.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert friend request: %w", err)
	}
	return fr, nil
}

// ListPendingRequests returns the user's incoming and outgoing pending
// requests, each carrying the counterpart's public identity.
func ListPendingRequests(ctx context.Context, userID uuid.UUID) (incoming, outgoing []models.FriendRequestView, err error) {
	q := `
	SELECT fr.id, fr.status, fr.to_id = $1 AS is_incoming, u.username, u.player_code
	FROM friend_requests fr
	JOIN users u ON u.id = CASE WHEN fr.to_id = $1 THEN fr.from_id ELSE fr.to_id END
	WHERE (fr.to_id = $1 OR fr.from_id = $1) AND fr.status = 'pending'
	ORDER BY fr.created_at
	`
	rows, err := DB.Query(ctx, q, userID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	incoming, outgoing = []models.FriendRequestView{}, []models.FriendRequestView{}
	for rows.Next() {
		var v models.FriendRequestView
		var isIncoming bool
		if err := rows.Scan(&v.ID, &v.Status, &isIncoming, &v.User.Username, &v.User.PlayerCode); err != nil {
			return nil, nil, err
		}
		if isIncoming {
			incoming = append(incoming, v)
		} else {
			outgoing = append(outgoing, v)
		}
	}
	return incoming, outgoing, rows.Err()
}

// ResolveFriendRequest accepts or declines a pending request. Only the
// request's target may resolve it. Acceptance adds each user to the
// other's friend set inside the same transaction, so a partial, one-sided
// friendship cannot be observed. The set-adds are idempotent.
func ResolveFriendRequest(ctx context.Context, requestID, callerID uuid.UUID, accept bool) error {
	return pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var fr models.FriendRequest
		err := tx.QueryRow(ctx,
			`SELECT id, from_id, to_id, status FROM friend_requests WHERE id=$1 FOR UPDATE`,
			requestID,
		).Scan(&fr.ID, &fr.FromID, &fr.ToID, &fr.Status)
		if err != nil {
			return wrapNotFound(err)
		}

		if fr.ToID != callerID {
			return ErrNotRequestTarget
		}
		if fr.Status != models.FriendRequestPending {
			return ErrRequestNotPending
		}

		status := models.FriendRequestDeclined
		if accept {
			status = models.FriendRequestAccepted
		}
		_, err = tx.Exec(ctx,
			`UPDATE friend_requests SET status=$1, updated_at=NOW() WHERE id=$2`,
			status, requestID)
		if err != nil {
			return err
		}

		if !accept {
			return nil
		}

		addFriend := `
		UPDATE users SET friends = array_append(friends, $2), updated_at = NOW()
		WHERE id = $1 AND NOT friends @> ARRAY[$2]::uuid[]
		`
		if _, err := tx.Exec(ctx, addFriend, fr.FromID, fr.ToID); err != nil {
			return fmt.Errorf("failed to add friend: %w", err)
		}
		if _, err := tx.Exec(ctx, addFriend, fr.ToID, fr.FromID); err != nil {
			return fmt.Errorf("failed to add friend: %w", err)
		}
		return nil
	})
}
