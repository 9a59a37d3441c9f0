package dice

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"sync"
)

// Source is the randomness provider for rolls.
type Source interface {
	// Intn returns a uniform random int in [0, n). n must be positive.
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. It is safe for concurrent use.
type CryptoSource struct{}

// Intn implements Source.
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("cannot make a random int of size %d", n)
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("couldn't make a random number. Out of entropy? %w", err)
	}
	return int(nBig.Int64()), nil
}

// SeededSource is a deterministic Source. Two sources built from the same seed
// produce the same sequence.
type SeededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a SeededSource for seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewSource(seed))}
}

// Intn implements Source.
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("cannot make a random int of size %d", n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n), nil
}

// DefaultSource is used by Roll.
var DefaultSource Source = CryptoSource{}

//rollFaces sums count dice of face sides drawn from src
func rollFaces(src Source, count, face int) (int, error) {
	if count == 0 || face == 0 {
		return 0, nil
	}
	total := 0
	for i := 0; i < count; i++ {
		x, err := src.Intn(face)
		if err != nil {
			return 0, err
		}
		total += x + 1
	}
	return total, nil
}
