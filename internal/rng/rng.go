package rng

import (
	"math/rand"
	"sync"
)

// Generator provides random numbers to the deck and to the decision policies
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int

	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
}

// Seeded is a reproducible Generator backed by math/rand
// It is safe to share between goroutines
type Seeded struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// NewSeeded returns a Generator that always produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
		seed: seed,
	}
}

// Intn returns a number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rand.Intn(n)
}

// Float64 returns a number from 0.0 <= x < 1.0
func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rand.Float64()
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}
