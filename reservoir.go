package sample

import "math/rand"

// Reservoir holds a fixed-size sample of the lines offered to it,
// chosen uniformly: after n lines have been offered, each one is in
// the sample with probability k/n. It never holds more than k lines
// and never looks at a line twice, so it can sample a stream of
// unknown length in one pass.
type Reservoir struct {
	k     int
	rng   *rand.Rand
	seen  int
	lines []string
}

// NewReservoir returns an empty reservoir that keeps at most k lines.
// k must be non-negative. All draws come from rng, which the caller
// must not share with anything else mid-run.
func NewReservoir(k int, rng *rand.Rand) *Reservoir {
	return &Reservoir{
		k:     k,
		rng:   rng,
		lines: make([]string, 0, k),
	}
}

// Add offers one line to the reservoir.
func (r *Reservoir) Add(line string) {
	// Algorithm R from Vitter. Algorithm L draws less often, but would
	// produce different samples for the same seed.
	i := r.seen
	r.seen++
	if i < r.k {
		r.lines = append(r.lines, line)
		return
	}
	if j := r.rng.Intn(i + 1); j < r.k {
		r.lines[j] = line
	}
}

// Lines returns the sample accumulated so far, in slot order: lines
// that arrived while there was room keep their relative order, and
// each later replacement lands in a uniformly chosen slot. The slice
// is the reservoir's backing store, not a copy.
func (r *Reservoir) Lines() []string {
	return r.lines
}

// Len reports how many lines the sample currently holds.
func (r *Reservoir) Len() int {
	return len(r.lines)
}
