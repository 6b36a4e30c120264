package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Password string    `json:"password,omitempty"`

	// PlayerCode is the short public identifier used to find/friend a user
	// without exposing the internal UUID. Serialized as "playerId".
	PlayerCode string `json:"playerId"`

	Friends []uuid.UUID `json:"friends,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// PublicUser is the projection of a user safe to show to other players.
type PublicUser struct {
	Username   string `json:"username"`
	PlayerCode string `json:"playerId"`
}
