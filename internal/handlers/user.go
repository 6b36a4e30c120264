package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	PlayerCode string `json:"playerId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
}

// RegisterHandler creates a new account. The password is always hashed;
// the stored secret never leaves the server.
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, invalid("invalid request payload"))
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		s.writeError(w, r, invalid("username, email, and password are required"))
		return
	}
	if len(req.Password) < 6 {
		s.writeError(w, r, invalid("password must be at least 6 characters long"))
		return
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err := database.CreateUser(r.Context(), &user); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		PlayerCode: user.PlayerCode,
		Username:   user.Username,
		Email:      user.Email,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// LoginHandler verifies credentials and issues a session token.
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, invalid("invalid request payload"))
		return
	}
	if req.Email == "" || req.Password == "" {
		s.writeError(w, r, invalid("email and password are required"))
		return
	}

	user, err := database.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		// Unknown email and wrong password answer identically.
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}

	match, err := s.hasher.Verify(req.Password, user.Password)
	if err != nil || !match {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}

	token, err := s.tokens.Sign(user.ID.String())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// MeHandler returns the authenticated user's own profile.
func (s *Server) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}

// ListFriendsHandler returns the caller's friends as public identities.
func (s *Server) ListFriendsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	friends, err := database.ListFriends(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, friends)
}
