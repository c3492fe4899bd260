package hexnoise

import (
	crand "crypto/rand"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
)

// Source provides the random values used to pick noise nibbles.
// A *rand.Rand from math/rand/v2 satisfies Source, but isn't safe for concurrent use on its own.
type Source interface {
	// IntN returns a value in the half-open interval [0, n).
	IntN(n int) int
}

var _ Source = globalSource{}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultSource returns a Source backed by the math/rand/v2 top-level generator, which is safe for concurrent use.
func DefaultSource() Source {
	return globalSource{}
}

var _ Source = (*seededSource)(nil)

type seededSource struct {
	mux sync.Mutex
	rng *rand.Rand
}

// NewSeededSource creates a deterministic Source, so the same seed always produces the same noise.
// The returned Source may be shared between goroutines, but the sequence each one observes is then interleaved.
func NewSeededSource(seed uint64) Source {
	return &seededSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *seededSource) IntN(n int) int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.rng.IntN(n)
}

// GenKey will pick a random key using the OS entropy pool.
func GenKey() (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(crand.Reader, buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read random key: %w", err)
	}
	return buf[0], nil
}
