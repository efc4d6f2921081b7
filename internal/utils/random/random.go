package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Intn returns a uniform cryptographically secure integer in [0, n).
func Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid bound %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}

// String draws length characters uniformly from alphabet.
func String(alphabet string, length int) (string, error) {
	chars := []rune(alphabet)
	out := make([]rune, length)
	for i := range out {
		j, err := Intn(len(chars))
		if err != nil {
			return "", err
		}
		out[i] = chars[j]
	}
	return string(out), nil
}
