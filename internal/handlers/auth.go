// internal/handlers/auth.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/models"
)

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("%w: missing Authorization header", errUnauthenticated)
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("%w: malformed Authorization header", errUnauthenticated)
	}
	return parts[1], nil
}

// authenticate verifies the request's bearer token and loads the caller.
func (s *Server) authenticate(r *http.Request) (*models.User, error) {
	token, err := bearerToken(r)
	if err != nil {
		return nil, err
	}

	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", errUnauthenticated)
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id in token", errUnauthenticated)
	}

	user, err := database.GetUserByID(r.Context(), userID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown user", errUnauthenticated)
	}
	return user, nil
}
