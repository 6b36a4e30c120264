// internal/game/code.go
package game

import (
	"crypto/rand"
	"math/big"
)

// CodeAlphabet excludes visually confusable characters (O, 0).
const CodeAlphabet = "ABCDEFGHIJKLMNPQRSTUVWXYZ123456789"

const (
	GameCodeLength   = 5
	PlayerCodeLength = 6

	// MaxCodeAttempts bounds the retry loop when a freshly drawn code
	// collides with an existing one.
	MaxCodeAttempts = 5
)

// NewCode draws a random code of the given length from CodeAlphabet.
func NewCode(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(CodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = CodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
