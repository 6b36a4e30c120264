// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quizparty/server/internal/database"
	"github.com/redis/go-redis/v9"
)

const (
	leaderboardKey        = "quizparty:leaderboard"
	leaderboardEntriesKey = "quizparty:leaderboard:entries"
)

// Leaderboard mirrors the global leaderboard in a Redis sorted set so
// reads skip the database. A nil Leaderboard (or any Redis failure)
// degrades to the SQL path; the mirror is never the source of truth.
type Leaderboard struct {
	client *redis.Client
}

// ConnectLeaderboard dials Redis and verifies the connection.
func ConnectLeaderboard(ctx context.Context, addr string, db int) (*Leaderboard, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &Leaderboard{client: client}, nil
}

// Record upserts one player's leaderboard entry. Ranking score is total
// correct answers; the full formatted entry rides along in a hash so a
// read never touches SQL.
func (l *Leaderboard) Record(ctx context.Context, entry database.LeaderboardEntry) error {
	if l == nil {
		return nil
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard entry: %w", err)
	}

	pipe := l.client.TxPipeline()
	pipe.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(entry.TotalCorrectAnswers),
		Member: entry.PlayerCode,
	})
	pipe.HSet(ctx, leaderboardEntriesKey, entry.PlayerCode, payload)
	_, err = pipe.Exec(ctx)
	return err
}

// Top returns the highest-ranked entries, best first. An empty mirror
// returns an empty slice and no error; the caller decides whether to fall
// back to SQL.
func (l *Leaderboard) Top(ctx context.Context, limit int) ([]database.LeaderboardEntry, error) {
	if l == nil {
		return nil, redis.Nil
	}

	codes, err := l.client.ZRevRange(ctx, leaderboardKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return []database.LeaderboardEntry{}, nil
	}

	raw, err := l.client.HMGet(ctx, leaderboardEntriesKey, codes...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]database.LeaderboardEntry, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var e database.LeaderboardEntry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
