package sample

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"
)

// Bernoulli keeps each line independently with a fixed probability.
// Unlike a Reservoir it remembers nothing about past lines, so it can
// sample endless streams; the price is a sample whose size is only
// p·n in expectation rather than exact.
type Bernoulli struct {
	p   float64
	rng *rand.Rand
}

// NewBernoulli returns a sampler that keeps lines with probability p,
// which must lie in [0.0, 1.0]. A rate of 0 keeps nothing and a rate
// of 1 keeps everything.
func NewBernoulli(p float64, rng *rand.Rand) (*Bernoulli, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, errors.Newf("sample: rate %v outside [0.0, 1.0]", p)
	}
	return &Bernoulli{p: p, rng: rng}, nil
}

// Keep decides one line. It draws from the generator exactly once
// whatever the outcome, so with a seeded generator the decision for
// any line depends only on how many lines preceded it.
func (b *Bernoulli) Keep() bool {
	return b.rng.Float64() < b.p
}
