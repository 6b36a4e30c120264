// internal/handlers/api_server.go
package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/quizparty/server/internal/auth"
	"github.com/quizparty/server/internal/cache"
)

// Server holds the request handlers' dependencies: token signing, password
// hashing, logging, and the optional leaderboard mirror. Persistence goes
// through the database package's pool.
type Server struct {
	tokens *auth.TokenService
	hasher auth.PasswordHasher
	log    *logrus.Logger
	board  *cache.Leaderboard
}

func NewServer(tokens *auth.TokenService, hasher auth.PasswordHasher, log *logrus.Logger, board *cache.Leaderboard) *Server {
	return &Server{tokens: tokens, hasher: hasher, log: log, board: board}
}

// Routes registers every API endpoint on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.RegisterHandler)
	mux.HandleFunc("POST /api/auth/login", s.LoginHandler)

	mux.HandleFunc("GET /api/users/me", s.MeHandler)
	mux.HandleFunc("GET /api/users/me/friends", s.ListFriendsHandler)

	mux.HandleFunc("POST /api/friend-requests", s.CreateFriendRequestHandler)
	mux.HandleFunc("GET /api/friend-requests", s.ListFriendRequestsHandler)
	mux.HandleFunc("POST /api/friend-requests/{id}/accept", s.AcceptFriendRequestHandler)
	mux.HandleFunc("POST /api/friend-requests/{id}/decline", s.DeclineFriendRequestHandler)

	mux.HandleFunc("GET /api/questions", s.SampleQuestionsHandler)
	mux.HandleFunc("POST /api/questions", s.CreateQuestionHandler)
	mux.HandleFunc("GET /api/categories", s.ListCategoriesHandler)

	mux.HandleFunc("POST /api/games", s.CreateGameHandler)
	mux.HandleFunc("GET /api/games/{code}", s.GetGameHandler)
	mux.HandleFunc("DELETE /api/games/{code}", s.DeleteGameHandler)
	mux.HandleFunc("POST /api/games/{code}/join", s.JoinGameHandler)
	mux.HandleFunc("POST /api/games/{code}/start", s.StartGameHandler)
	mux.HandleFunc("POST /api/games/{code}/answer", s.SubmitAnswerHandler)
	mux.HandleFunc("POST /api/games/{code}/next", s.AdvanceGameHandler)

	mux.HandleFunc("GET /api/results/{code}", s.ResultsHandler)

	mux.HandleFunc("GET /api/stats/me", s.MyStatsHandler)
	mux.HandleFunc("PUT /api/stats/me", s.ReportOutcomeHandler)
	mux.HandleFunc("GET /api/stats/leaderboard", s.LeaderboardHandler)
	mux.HandleFunc("GET /api/stats/{identifier}", s.StatsByIdentifierHandler)

	return mux
}
