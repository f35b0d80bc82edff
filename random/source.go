// Package random provides uniformly distributed random integers drawn from a
// cryptographically secure source.
package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Source yields uniform random integers. Implementations backed by
// crypto/rand are safe for concurrent use; deterministic test sources
// need not be.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) (int, error)
}

type cryptoSource struct{}

// NewSource returns a Source backed by crypto/rand.
func NewSource() Source {
	return cryptoSource{}
}

func (cryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: n must be positive, got %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
