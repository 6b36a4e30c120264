// internal/handlers/user_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizparty/server/internal/auth"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewServer(tokens, auth.NewArgon2Hasher(), log, nil)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func TestRegisterRejectsBadPayload(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/auth/register", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"email":"a@b.com","password":"secret1"}`,
		`{"username":"alice","password":"secret1"}`,
		`{"username":"alice","email":"a@b.com"}`,
	} {
		rec := doRequest(t, s, http.MethodPost, "/api/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"a@b.com","password":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "at least 6 characters")
}

func TestLoginRequiresCredentials(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/auth/login", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/users/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeRejectsMalformedHeader(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeRejectsBadToken(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc123")

	token, err := bearerToken(req)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	req.Header.Set("Authorization", "bearer abc123")
	token, err = bearerToken(req)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}
