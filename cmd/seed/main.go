// cmd/seed/main.go
//
// Applies the schema and loads a question bank from a JSON file of the form:
//
//	[
//	  {"name": "Sports", "questions": [
//	    {"text": "...", "choices": ["A", "B"], "correctAnswer": "A"}
//	  ]}
//	]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/quizparty/server/internal/config"
	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/models"
)

type seedCategory struct {
	Name      string `json:"name"`
	Questions []struct {
		Text          string   `json:"text"`
		Choices       []string `json:"choices"`
		CorrectAnswer string   `json:"correctAnswer"`
	} `json:"questions"`
}

func main() {
	logger := logrus.New()

	file := flag.String("file", "questions.json", "path to the question bank JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	if err := database.ConnectDB(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer database.DB.Close()

	if err := database.Migrate(ctx); err != nil {
		logger.Fatalf("failed to apply schema: %v", err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatalf("failed to read %s: %v", *file, err)
	}

	var categories []seedCategory
	if err := json.Unmarshal(raw, &categories); err != nil {
		logger.Fatalf("failed to parse %s: %v", *file, err)
	}

	inserted := 0
	for _, cat := range categories {
		for _, q := range cat.Questions {
			question := models.Question{
				Category:      cat.Name,
				Text:          q.Text,
				Choices:       q.Choices,
				CorrectAnswer: q.CorrectAnswer,
			}
			if err := database.InsertQuestion(ctx, &question); err != nil {
				logger.Fatalf("failed to insert question %q: %v", q.Text, err)
			}
			inserted++
		}
	}
	logger.Infof("seeded %d questions across %d categories", inserted, len(categories))
}
