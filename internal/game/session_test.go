// internal/game/session_test.go
package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizparty/server/internal/models"
)

func newTestGame(t *testing.T, numQuestions int) (*models.Game, *models.User) {
	t.Helper()

	host := &models.User{ID: uuid.New(), Username: "host", PlayerCode: "HOST42"}
	g := &models.Game{
		ID:       uuid.New(),
		GameCode: "ABC12",
		HostID:   host.ID,
		Category: "History",
		Players: []models.Player{{
			UserID:       host.ID,
			Username:     host.Username,
			LastAnswered: -1,
		}},
		MaxPlayers: models.DefaultMaxPlayers,
		Status:     models.GameStatusLobby,
	}
	for i := 0; i < numQuestions; i++ {
		g.Questions = append(g.Questions, models.GameQuestion{
			QuestionID:    uuid.NewString(),
			Text:          fmt.Sprintf("question %d", i),
			Choices:       []string{"Paris", "London", "Rome", "Berlin"},
			CorrectAnswer: "Paris",
			Category:      "History",
		})
	}
	return g, host
}

func join(t *testing.T, g *models.Game, name string) *models.User {
	t.Helper()
	u := &models.User{ID: uuid.New(), Username: name}
	require.NoError(t, AddPlayer(g, u))
	return u
}

func TestAddPlayer(t *testing.T) {
	g, _ := newTestGame(t, 3)

	u := join(t, g, "bob")
	require.Len(t, g.Players, 2)
	assert.Equal(t, 0, g.Players[1].Score)
	assert.Equal(t, -1, g.Players[1].LastAnswered)

	// Joining twice with the same user is a duplicate.
	err := AddPlayer(g, u)
	assert.ErrorIs(t, err, ErrAlreadyJoined)
	assert.Len(t, g.Players, 2)
}

func TestAddPlayerFullLobby(t *testing.T) {
	g, _ := newTestGame(t, 3)
	g.MaxPlayers = 2
	join(t, g, "bob")

	err := AddPlayer(g, &models.User{ID: uuid.New(), Username: "carol"})
	assert.ErrorIs(t, err, ErrLobbyFull)
}

func TestAddPlayerAfterStart(t *testing.T) {
	g, host := newTestGame(t, 3)
	join(t, g, "bob")
	require.NoError(t, Start(g, host.ID))

	err := AddPlayer(g, &models.User{ID: uuid.New(), Username: "carol"})
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestStart(t *testing.T) {
	g, host := newTestGame(t, 3)
	join(t, g, "bob")

	require.NoError(t, Start(g, host.ID))
	assert.Equal(t, models.GameStatusInProgress, g.Status)
	assert.Equal(t, 0, g.CurrentQuestionIndex)
	require.NotNil(t, g.StartedAt)

	// A second start is a state error.
	assert.ErrorIs(t, Start(g, host.ID), ErrWrongState)
}

func TestStartNotHost(t *testing.T) {
	g, _ := newTestGame(t, 3)
	bob := join(t, g, "bob")

	assert.ErrorIs(t, Start(g, bob.ID), ErrNotHost)
	assert.Equal(t, models.GameStatusLobby, g.Status)
}

func TestStartWithoutQuestions(t *testing.T) {
	g, host := newTestGame(t, 0)
	join(t, g, "bob")

	assert.ErrorIs(t, Start(g, host.ID), ErrNoQuestions)
}

func TestSubmitAnswerCaseInsensitive(t *testing.T) {
	g, host := newTestGame(t, 3)
	bob := join(t, g, "bob")
	require.NoError(t, Start(g, host.ID))

	correct, score, err := SubmitAnswer(g, bob.ID, "paris")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, PointsPerCorrectAnswer, score)
}

func TestSubmitAnswerWrong(t *testing.T) {
	g, host := newTestGame(t, 3)
	bob := join(t, g, "bob")
	require.NoError(t, Start(g, host.ID))

	correct, score, err := SubmitAnswer(g, bob.ID, "Pariss")
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, 0, score)
}

func TestSubmitAnswerTwiceSameQuestion(t *testing.T) {
	g, host := newTestGame(t, 3)
	bob := join(t, g, "bob")
	require.NoError(t, Start(g, host.ID))

	_, _, err := SubmitAnswer(g, bob.ID, "Paris")
	require.NoError(t, err)

	// One submission per player per question; the score must not move.
	_, score, err := SubmitAnswer(g, bob.ID, "Paris")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.Equal(t, PointsPerCorrectAnswer, score)

	// After an advance the same player may answer again.
	g.CurrentQuestionIndex = 1
	correct, score, err := SubmitAnswer(g, bob.ID, "London")
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, PointsPerCorrectAnswer, score)
}

func TestSubmitAnswerNotPlayer(t *testing.T) {
	g, host := newTestGame(t, 3)
	join(t, g, "bob")
	require.NoError(t, Start(g, host.ID))

	_, _, err := SubmitAnswer(g, uuid.New(), "Paris")
	assert.ErrorIs(t, err, ErrNotPlayer)
}

func TestSubmitAnswerInLobby(t *testing.T) {
	g, host := newTestGame(t, 3)

	_, _, err := SubmitAnswer(g, host.ID, "Paris")
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestAdvance(t *testing.T) {
	g, host := newTestGame(t, 3)
	join(t, g, "bob")
	require.NoError(t, Start(g, host.ID))

	out, err := Advance(g)
	require.NoError(t, err)
	assert.False(t, out.Completed)
	assert.Equal(t, 1, out.NextIndex)

	// The last question completes the game instead of bumping the cursor.
	g.CurrentQuestionIndex = 2
	out, err = Advance(g)
	require.NoError(t, err)
	assert.True(t, out.Completed)
}

func TestAdvanceCompletedGame(t *testing.T) {
	g, _ := newTestGame(t, 3)
	g.Status = models.GameStatusCompleted

	_, err := Advance(g)
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestNewCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := NewCode(GameCodeLength)
		require.NoError(t, err)
		require.Len(t, code, GameCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(CodeAlphabet, c),
				"character %q outside the code alphabet", c)
		}
		seen[code] = true
	}
	// 34^5 possibilities; 100 draws colliding down to a handful would
	// mean the generator is badly broken.
	assert.Greater(t, len(seen), 90)
}
