package models

import "github.com/google/uuid"

// Question is a bank question. Games copy questions by value when created,
// so later edits to the bank never touch in-flight or historical games.
type Question struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Text          string    `json:"text"`
	Choices       []string  `json:"choices"`
	CorrectAnswer string    `json:"correctAnswer"`
}

// GameQuestion is the value snapshot of a bank question embedded in a game.
type GameQuestion struct {
	QuestionID    string   `json:"questionId"`
	Text          string   `json:"text"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correctAnswer"`
	Category      string   `json:"category"`
}
