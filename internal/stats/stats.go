// internal/stats/stats.go
//
// Running per-user statistics: one aggregate record per user plus a
// per-category breakdown keyed by category name. Counters only ever grow.
package stats

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/quizparty/server/internal/models"
)

var (
	// ErrMissingOutcome is returned when a report carries neither the
	// single-category nor the multi-category shape.
	ErrMissingOutcome = errors.New("game outcome data is required, including category information")

	// ErrInvalidOutcome is returned when counts are negative or a
	// category name is empty.
	ErrInvalidOutcome = errors.New("invalid game outcome data")
)

// CategoryResult is one category's slice of a finished game.
type CategoryResult struct {
	CategoryName      string `json:"categoryName"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
}

// Outcome is what a player reports after a completed game. Exactly one of
// the two shapes must be present: CategoryPlayed for a single-category
// game, or CategoriesPlayed for a game spanning several.
type Outcome struct {
	CategoryPlayed       string `json:"categoryPlayed,omitempty"`
	QuestionsInGame      int    `json:"questionsInGame,omitempty"`
	CorrectAnswersInGame int    `json:"correctAnswersInGame,omitempty"`

	CategoriesPlayed []CategoryResult `json:"categoriesPlayed,omitempty"`
}

// normalize flattens either shape into a list of per-category results,
// validating counts along the way.
func (o *Outcome) normalize() ([]CategoryResult, error) {
	var results []CategoryResult
	switch {
	case o.CategoryPlayed != "":
		results = []CategoryResult{{
			CategoryName:      o.CategoryPlayed,
			QuestionsAnswered: o.QuestionsInGame,
			CorrectAnswers:    o.CorrectAnswersInGame,
		}}
	case len(o.CategoriesPlayed) > 0:
		results = o.CategoriesPlayed
	default:
		return nil, ErrMissingOutcome
	}

	for _, r := range results {
		if r.CategoryName == "" || r.QuestionsAnswered < 0 || r.CorrectAnswers < 0 {
			return nil, ErrInvalidOutcome
		}
	}
	return results, nil
}

// Apply folds one game outcome into the stats record. totalGamesPlayed
// grows by exactly one per report regardless of how many categories the
// game spanned; each reported category additionally counts one game played
// in that category.
func Apply(s *models.UserStats, outcome *Outcome, now time.Time) error {
	results, err := outcome.normalize()
	if err != nil {
		return err
	}

	if s.CategoryStats == nil {
		s.CategoryStats = make(map[string]models.CategoryStat)
	}

	s.TotalGamesPlayed++
	s.LastPlayedAt = &now

	for _, r := range results {
		s.TotalQuestionsAnswered += r.QuestionsAnswered
		s.TotalCorrectAnswers += r.CorrectAnswers

		cat := s.CategoryStats[r.CategoryName]
		cat.Correct += r.CorrectAnswers
		cat.TotalAnswered += r.QuestionsAnswered
		cat.GamesPlayedInCategory++
		s.CategoryStats[r.CategoryName] = cat
	}
	return nil
}

// BestCategory names the category with the highest accuracy among those
// with at least one answered question. Ties break on higher totalAnswered,
// then on category name, so the result is deterministic.
func BestCategory(s *models.UserStats) (name string, percent float64, ok bool) {
	names := make([]string, 0, len(s.CategoryStats))
	for n, c := range s.CategoryStats {
		if c.TotalAnswered > 0 {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return "", 0, false
	}
	sort.Strings(names)

	best := names[0]
	bestStat := s.CategoryStats[best]
	for _, n := range names[1:] {
		c := s.CategoryStats[n]
		lhs := float64(c.Correct) * float64(bestStat.TotalAnswered)
		rhs := float64(bestStat.Correct) * float64(c.TotalAnswered)
		if lhs > rhs || (lhs == rhs && c.TotalAnswered > bestStat.TotalAnswered) {
			best, bestStat = n, c
		}
	}

	percent = 100 * float64(bestStat.Correct) / float64(bestStat.TotalAnswered)
	return best, math.Round(percent*10) / 10, true
}
