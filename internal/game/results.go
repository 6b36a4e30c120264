// internal/game/results.go
package game

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/quizparty/server/internal/models"
)

// Ranking is one row of a completed game's results.
type Ranking struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	PlayerCode string `json:"playerId"`
}

// Results is the projection served for a completed game.
type Results struct {
	GameCode     string     `json:"gameCode"`
	Category     string     `json:"category"`
	HostUsername string     `json:"hostUsername"`
	CompletedAt  *time.Time `json:"completedAt"`
	Rankings     []Ranking  `json:"rankings"`
}

// BuildResults ranks a completed game's players by descending score.
// The sort is stable: tied players keep their join order. Identities come
// from the users map when present, otherwise from the denormalized name
// stored on the player entry.
func BuildResults(g *models.Game, users map[uuid.UUID]*models.User) (*Results, error) {
	if g.Status != models.GameStatusCompleted {
		return nil, ErrWrongState
	}

	ranked := make([]models.Player, len(g.Players))
	copy(ranked, g.Players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	res := &Results{
		GameCode:    g.GameCode,
		Category:    g.Category,
		CompletedAt: g.CompletedAt,
		Rankings:    make([]Ranking, 0, len(ranked)),
	}
	if host, ok := users[g.HostID]; ok {
		res.HostUsername = host.Username
	}
	for _, p := range ranked {
		r := Ranking{Name: p.Username, Score: p.Score}
		if u, ok := users[p.UserID]; ok {
			r.Name = u.Username
			r.PlayerCode = u.PlayerCode
		}
		res.Rankings = append(res.Rankings, r)
	}
	return res, nil
}
