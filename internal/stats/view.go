// internal/stats/view.go
package stats

import (
	"math"

	"github.com/quizparty/server/internal/models"
)

// CategoryView is the per-category slice of a formatted stats response.
type CategoryView struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// BestCategoryView names the strongest category, or "N/A" with percent 0
// when nothing has been answered yet.
type BestCategoryView struct {
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
}

// View is the formatted stats payload served to clients.
type View struct {
	UserID                string                  `json:"userId"`
	Name                  string                  `json:"name"`
	TotalGames            int                     `json:"totalGames"`
	TotalQuestions        int                     `json:"totalQuestions"`
	TotalCorrect          int                     `json:"totalCorrect"`
	CategoryStats         map[string]CategoryView `json:"categoryStats"`
	AverageCorrectPercent int                     `json:"averageCorrectPercent"`
	BestCategory          BestCategoryView        `json:"bestCategory"`
}

// BuildView formats a stats record for a user. The user's player code, not
// the internal UUID, identifies the subject. A nil record yields the empty
// view, which is what fetch-by-identifier serves before first play.
func BuildView(user *models.User, s *models.UserStats) *View {
	v := &View{
		UserID:        user.PlayerCode,
		Name:          user.Username,
		CategoryStats: make(map[string]CategoryView),
		BestCategory:  BestCategoryView{Category: "N/A"},
	}
	if s == nil {
		return v
	}

	v.TotalGames = s.TotalGamesPlayed
	v.TotalQuestions = s.TotalQuestionsAnswered
	v.TotalCorrect = s.TotalCorrectAnswers

	for name, c := range s.CategoryStats {
		v.CategoryStats[name] = CategoryView{Correct: c.Correct, Total: c.TotalAnswered}
	}

	if s.TotalQuestionsAnswered > 0 {
		v.AverageCorrectPercent = int(math.Round(
			100 * float64(s.TotalCorrectAnswers) / float64(s.TotalQuestionsAnswered)))
	}

	if name, percent, ok := BestCategory(s); ok {
		v.BestCategory = BestCategoryView{Category: name, Percent: percent}
	}
	return v
}
