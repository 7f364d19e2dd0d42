/*
Package sample selects a random subset of the lines in a stream. The
stream is read exactly once, front to back, and nothing beyond the
sample itself is ever held in memory, so the input may be far larger
than RAM or may never end at all. A simple example that keeps 10
random lines from standard input:

	cfg := sample.Config{Mode: sample.ModeReservoir, Count: 10}
	stats, err := sample.Run(cfg, os.Stdin, os.Stdout)

Two sampling modes are available. ModeReservoir keeps a fixed-size
subset chosen uniformly from the whole stream (reservoir sampling);
the sample is emitted after the stream ends. ModeBernoulli keeps each
line independently with a fixed probability and emits every kept line
as soon as it is chosen, which suits streams that never end.

Determinism

A run draws all of its randomness from one generator. Setting
Config.Seed makes the generator deterministic: the same seed and the
same input produce byte-for-byte identical output, in either mode.
Leaving Seed nil seeds the generator from the operating system's
entropy source, so every run samples differently.

Headers

Config.Headers copies that many leading lines to the output verbatim,
before any sampling decision is made. Header lines are not part of the
sampled population and consume no randomness. A stream that ends
inside the header still yields a successful run.

Pipelines

Run writes each line as soon as it is decided. When the consumer of
the output closes its end early (say, a downstream head that has seen
enough), Run stops at once and returns an error marked with
ErrOutputClosed; drivers should treat that error as success. The
command-line interface to this package lives in cmd/sample.
*/
package sample

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// Mode selects which sampling algorithm a run uses.
type Mode int

const (
	// ModeReservoir draws a fixed-size uniform sample of the stream.
	ModeReservoir Mode = iota + 1
	// ModeBernoulli keeps each line independently with a fixed probability.
	ModeBernoulli
)

// Config describes one sampling run. Exactly one Mode must be set; the
// other fields refine it. A Config is validated once, before any input
// is read, and is not consulted for changes afterwards.
type Config struct {
	// Mode picks the algorithm: ModeReservoir reads Count,
	// ModeBernoulli reads Rate.
	Mode Mode

	// Count is the reservoir size: the largest sample a ModeReservoir
	// run can emit, and the exact size whenever the stream has at
	// least Count lines after the header. Must be non-negative.
	Count int

	// Rate is the probability, in [0.0, 1.0], that a ModeBernoulli run
	// keeps any given line.
	Rate float64

	// Seed, when non-nil, fixes the random generator so the run is
	// reproducible. When nil the generator is seeded from the
	// operating system's entropy source.
	Seed *uint64

	// Headers is the number of leading lines to copy through verbatim
	// before sampling begins. Must be non-negative.
	Headers int
}

// Validate reports whether the configuration describes a runnable
// sampling job. Run calls it before reading any input, so a bad
// configuration never produces partial output.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeReservoir:
		if c.Count < 0 {
			return errors.Newf("sample: negative count %d", c.Count)
		}
	case ModeBernoulli:
		if math.IsNaN(c.Rate) || c.Rate < 0 || c.Rate > 1 {
			return errors.Newf("sample: rate %v outside [0.0, 1.0]", c.Rate)
		}
	case 0:
		return errors.New("sample: no sampling mode selected")
	default:
		return errors.Newf("sample: unknown sampling mode %d", c.Mode)
	}
	if c.Headers < 0 {
		return errors.Newf("sample: negative header count %d", c.Headers)
	}
	return nil
}

// Stats reports what a run processed. A run that ends early, whether
// from an error or from the consumer closing the output, reports the
// progress it made before stopping.
type Stats struct {
	// HeaderLines is the number of leading lines copied through verbatim.
	HeaderLines int
	// LinesRead is the number of lines offered to the sampler,
	// headers excluded.
	LinesRead int64
	// LinesKept is the number of sampled lines written to the output.
	LinesKept int64
}

// Run reads lines from src, samples them as cfg directs, and writes
// the chosen lines to dst. It makes a single sequential pass and
// returns once the input ends, the consumer of dst goes away, or an
// error occurs.
//
// The error is nil on normal completion, marked with ErrOutputClosed
// when dst's consumer closed its end (callers should treat that as
// success), and describes the failure otherwise. A failure while
// reading aborts the run; lines already written stay written.
func Run(cfg Config, src io.Reader, dst io.Writer) (Stats, error) {
	var stats Stats
	if err := cfg.Validate(); err != nil {
		return stats, err
	}

	in := newScanner(src)
	out := NewSink(dst)

	for stats.HeaderLines < cfg.Headers {
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return stats, errors.Wrap(err, "read input")
			}
			// The whole stream was header. Nothing to sample.
			return stats, nil
		}
		if err := out.Write(in.Text()); err != nil {
			return stats, err
		}
		stats.HeaderLines++
	}

	// Headers consume no randomness: the generator exists only from
	// this point on.
	var seed uint64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = RandomSeed()
	}
	rng := NewRand(seed)

	switch cfg.Mode {
	case ModeReservoir:
		res := NewReservoir(cfg.Count, rng)
		for in.Scan() {
			res.Add(in.Text())
			stats.LinesRead++
		}
		if err := in.Err(); err != nil {
			return stats, errors.Wrap(err, "read input")
		}
		for _, line := range res.Lines() {
			if err := out.Write(line); err != nil {
				return stats, err
			}
			stats.LinesKept++
		}
	case ModeBernoulli:
		smp, err := NewBernoulli(cfg.Rate, rng)
		if err != nil {
			return stats, err
		}
		for in.Scan() {
			stats.LinesRead++
			if !smp.Keep() {
				continue
			}
			if err := out.Write(in.Text()); err != nil {
				return stats, err
			}
			stats.LinesKept++
		}
		if err := in.Err(); err != nil {
			return stats, errors.Wrap(err, "read input")
		}
	}
	return stats, nil
}
