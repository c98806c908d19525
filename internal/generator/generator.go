// Package generator provides the random source used for word draws.
package generator

import (
	"math/rand"
	"time"
)

// Source draws uniform indexes. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Generator is a seedable Source.
type Generator struct {
	rnd  *rand.Rand
	seed int64
}

// New returns a Generator seeded with seed, or with the current time when seed is nil.
func New(seed *int64) *Generator {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	return &Generator{rnd: rand.New(rand.NewSource(s)), seed: s}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Intn returns a uniform index in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}
