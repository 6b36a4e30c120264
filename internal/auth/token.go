// internal/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService signs and verifies session tokens. The signing secret is
// injected at construction; nothing here reads the environment.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService around an HMAC-SHA256 secret.
// A ttl of zero means tokens never expire.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Sign issues a token whose "sub" claim is the subject (a user ID).
func (t *TokenService) Sign(subject string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
	}
	if t.ttl > 0 {
		claims["exp"] = time.Now().Add(t.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks the token signature and expiry and returns the subject.
func (t *TokenService) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("jwt parse error: %w", err)
	}
	if !parsed.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid jwt claims")
	}
	subject, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("missing sub in jwt")
	}
	return subject, nil
}
