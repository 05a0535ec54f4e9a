package generator

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the uniform randomness the generator draws from.
// Implementations must be safe for concurrent use.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always positive.
	Intn(n int) int
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

type globalSource struct{}

// NewSource returns a Source backed by the process-wide generator of math/rand/v2.
func NewSource() Source {
	return globalSource{}
}

func (globalSource) Intn(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

type seededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource returns a reproducible Source for the given seed.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
