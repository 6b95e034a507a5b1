// rng provides an injectable randomness source so combat outcomes
// can be scripted in tests.
package rng

//go:generate mockgen -destination=mock/mock_source.go -package=mockrng -source=rng.go

import (
	"math/rand"
)

// Source provides the random draws the combat engine consumes.
// Implementations must be safe to call from a single goroutine at a time.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0)
	Float64() float64
}

// randSource implements Source using math/rand
type randSource struct {
	r *rand.Rand
}

// NewRandSource creates a Source backed by math/rand with the given seed
func NewRandSource(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

// Float64 implements Source.Float64
func (s *randSource) Float64() float64 {
	return s.r.Float64()
}
