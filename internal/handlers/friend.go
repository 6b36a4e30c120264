// internal/handlers/friend.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/models"
)

type createFriendRequestBody struct {
	TargetPlayerCode string `json:"targetPlayerId"`
}

// CreateFriendRequestHandler sends a friend request to the user owning the
// target player code. The pending-pair uniqueness is enforced by the store,
// so a duplicate surfaces as a conflict rather than racing a pre-check.
func (s *Server) CreateFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req createFriendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, invalid("invalid request payload"))
		return
	}
	if req.TargetPlayerCode == "" {
		s.writeError(w, r, invalid("targetPlayerId is required"))
		return
	}

	target, err := database.GetUserByPlayerCode(r.Context(), strings.ToUpper(req.TargetPlayerCode))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if target.ID == user.ID {
		s.writeError(w, r, invalid("cannot friend yourself"))
		return
	}

	fr, err := database.CreateFriendRequest(r.Context(), user.ID, target.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, fr)
}

type friendRequestsResponse struct {
	Incoming []models.FriendRequestView `json:"incoming"`
	Outgoing []models.FriendRequestView `json:"outgoing"`
}

// ListFriendRequestsHandler returns the caller's pending requests in both
// directions.
func (s *Server) ListFriendRequestsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	incoming, outgoing, err := database.ListPendingRequests(r.Context(), user.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, friendRequestsResponse{Incoming: incoming, Outgoing: outgoing})
}

func (s *Server) resolveFriendRequest(w http.ResponseWriter, r *http.Request, accept bool) {
	user, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	requestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, invalid("invalid request id"))
		return
	}

	if err := database.ResolveFriendRequest(r.Context(), requestID, user.ID, accept); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// AcceptFriendRequestHandler accepts a pending request addressed to the
// caller and links both users as friends.
func (s *Server) AcceptFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	s.resolveFriendRequest(w, r, true)
}

// DeclineFriendRequestHandler declines a pending request addressed to the
// caller. The request is kept with its terminal status.
func (s *Server) DeclineFriendRequestHandler(w http.ResponseWriter, r *http.Request) {
	s.resolveFriendRequest(w, r, false)
}
