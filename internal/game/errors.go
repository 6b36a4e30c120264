// internal/game/errors.go
package game

import "errors"

// Sentinel errors for game session transitions. Handlers map these onto
// HTTP statuses with errors.Is; messages are surfaced to the caller as-is.
var (
	ErrLobbyFull       = errors.New("game lobby is full")
	ErrAlreadyJoined   = errors.New("user already in this game lobby")
	ErrWrongState      = errors.New("game is not in the required state")
	ErrNotHost         = errors.New("only the host can perform this action")
	ErrNotPlayer       = errors.New("you are not a player in this game")
	ErrNoQuestion      = errors.New("no question at the current index")
	ErrAlreadyAnswered = errors.New("answer already submitted for this question")
	ErrNoQuestions     = errors.New("cannot start a game with no questions")
	ErrCodeExhausted   = errors.New("could not generate a unique game code")
)
