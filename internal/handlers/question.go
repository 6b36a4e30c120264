package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/models"
)

// SampleQuestionsHandler returns a uniform random sample of questions in
// a category, for ad hoc rounds outside a hosted game.
func (s *Server) SampleQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		s.writeError(w, r, err)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		s.writeError(w, r, invalid("a category is required to fetch questions"))
		return
	}

	limit := models.DefaultQuestions
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	questions, err := database.SampleQuestions(r.Context(), category, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// CreateQuestionHandler adds a question to the bank. Games snapshot
// questions by value, so edits here never reach games already created.
func (s *Server) CreateQuestionHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		s.writeError(w, r, err)
		return
	}

	var q models.Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		s.writeError(w, r, invalid("invalid request payload"))
		return
	}

	if err := validateQuestion(&q); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := database.InsertQuestion(r.Context(), &q); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func validateQuestion(q *models.Question) error {
	if q.Category == "" || q.Text == "" {
		return invalid("category and text are required")
	}
	if len(q.Choices) < 2 {
		return invalid("a question needs at least two choices")
	}
	for _, c := range q.Choices {
		if c == q.CorrectAnswer {
			return nil
		}
	}
	return invalid("correctAnswer must be one of the choices")
}

// ListCategoriesHandler returns the distinct categories in the bank.
func (s *Server) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		s.writeError(w, r, err)
		return
	}

	categories, err := database.ListCategories(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
