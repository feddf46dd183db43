package passgen

import (
	"math/rand/v2"
	"sync"
)

// Sampler yields uniformly distributed indexes in [0, bound).
type Sampler interface {
	NextIndex(bound int) int
}

// MathSampler draws from the math/rand/v2 global source. It is not suitable
// for secrets that need cryptographic unpredictability.
type MathSampler struct{}

func (MathSampler) NextIndex(bound int) int {
	return rand.IntN(bound)
}

// SeededSampler is a reproducible sampler safe for concurrent use.
type SeededSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSampler creates a sampler whose sequence is fully determined by seed.
func NewSeededSampler(seed uint64) *SeededSampler {
	return &SeededSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededSampler) NextIndex(bound int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(bound)
}
