package models

import (
	"time"

	"github.com/google/uuid"
)

// Friend request statuses. Requests are kept with their terminal status
// rather than deleted, so a declined pair can request again later.
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestDeclined = "declined"
)

type FriendRequest struct {
	ID     uuid.UUID `json:"id"`
	FromID uuid.UUID `json:"from"`
	ToID   uuid.UUID `json:"to"`
	Status string    `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FriendRequestView pairs a pending request with the counterpart's
// public identity for listing.
type FriendRequestView struct {
	ID     uuid.UUID  `json:"id"`
	Status string     `json:"status"`
	User   PublicUser `json:"user"`
}
