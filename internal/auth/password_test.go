// internal/auth/password_test.go
package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewArgon2Hasher()

	encoded, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$"), "unexpected hash format: %s", encoded)

	match, err := h.Verify("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = h.Verify("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHashesAreSalted(t *testing.T) {
	h := NewArgon2Hasher()

	a, err := h.Hash("password")
	require.NoError(t, err)
	b, err := h.Hash("password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two hashes of the same password should differ")
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	h := NewArgon2Hasher()

	_, err := h.Verify("password", "not-a-hash")
	assert.Error(t, err)

	_, err = h.Verify("password", "$argon2id$v=19$m=65536,t=3,p=2$bad")
	assert.Error(t, err)
}
