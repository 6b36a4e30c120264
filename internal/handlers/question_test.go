// internal/handlers/question_test.go
package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quizparty/server/internal/models"
)

func TestValidateQuestion(t *testing.T) {
	valid := models.Question{
		Category:      "Geography",
		Text:          "What is the capital of France?",
		Choices:       []string{"Paris", "Lyon", "Nice"},
		CorrectAnswer: "Paris",
	}
	assert.NoError(t, validateQuestion(&valid))
}

func TestValidateQuestionRejectsMissingFields(t *testing.T) {
	q := models.Question{
		Text:          "What is the capital of France?",
		Choices:       []string{"Paris", "Lyon"},
		CorrectAnswer: "Paris",
	}
	assert.Error(t, validateQuestion(&q))

	q = models.Question{
		Category:      "Geography",
		Choices:       []string{"Paris", "Lyon"},
		CorrectAnswer: "Paris",
	}
	assert.Error(t, validateQuestion(&q))
}

func TestValidateQuestionRejectsSingleChoice(t *testing.T) {
	q := models.Question{
		Category:      "Geography",
		Text:          "What is the capital of France?",
		Choices:       []string{"Paris"},
		CorrectAnswer: "Paris",
	}
	assert.Error(t, validateQuestion(&q))
}

func TestValidateQuestionRejectsForeignAnswer(t *testing.T) {
	// The stored answer must match a choice byte for byte; answer matching
	// at play time is the case-insensitive step, not this one.
	q := models.Question{
		Category:      "Geography",
		Text:          "What is the capital of France?",
		Choices:       []string{"Paris", "Lyon"},
		CorrectAnswer: "paris",
	}
	assert.Error(t, validateQuestion(&q))
}
