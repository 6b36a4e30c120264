// internal/game/results_test.go
package game

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizparty/server/internal/models"
)

func completedGame(players []models.Player) *models.Game {
	now := time.Now()
	return &models.Game{
		ID:          uuid.New(),
		GameCode:    "XYZ99",
		HostID:      players[0].UserID,
		Category:    "Science",
		Players:     players,
		Status:      models.GameStatusCompleted,
		CompletedAt: &now,
	}
}

func TestBuildResultsStableOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	g := completedGame([]models.Player{
		{UserID: a, Username: "alice", Score: 10},
		{UserID: b, Username: "bob", Score: 30},
		{UserID: c, Username: "carol", Score: 30},
	})

	res, err := BuildResults(g, nil)
	require.NoError(t, err)
	require.Len(t, res.Rankings, 3)

	// Descending by score; the tied 30s keep their source order.
	assert.Equal(t, []int{30, 30, 10},
		[]int{res.Rankings[0].Score, res.Rankings[1].Score, res.Rankings[2].Score})
	assert.Equal(t, "bob", res.Rankings[0].Name)
	assert.Equal(t, "carol", res.Rankings[1].Name)
	assert.Equal(t, "alice", res.Rankings[2].Name)
}

func TestBuildResultsPrefersLiveIdentity(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	g := completedGame([]models.Player{
		{UserID: a, Username: "stale-name", Score: 20},
		{UserID: b, Username: "bob", Score: 5},
	})

	users := map[uuid.UUID]*models.User{
		a: {ID: a, Username: "alice-renamed", PlayerCode: "AL1CE7"},
	}

	res, err := BuildResults(g, users)
	require.NoError(t, err)

	assert.Equal(t, "alice-renamed", res.Rankings[0].Name)
	assert.Equal(t, "AL1CE7", res.Rankings[0].PlayerCode)
	assert.Equal(t, "alice-renamed", res.HostUsername)

	// No live identity for bob: the denormalized name stands in.
	assert.Equal(t, "bob", res.Rankings[1].Name)
	assert.Empty(t, res.Rankings[1].PlayerCode)
}

func TestBuildResultsNotCompleted(t *testing.T) {
	g := completedGame([]models.Player{{UserID: uuid.New(), Username: "alice"}})
	g.Status = models.GameStatusInProgress

	_, err := BuildResults(g, nil)
	assert.ErrorIs(t, err, ErrWrongState)
}
