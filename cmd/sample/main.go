// Command sample randomly samples lines from a file or standard
// input in a single pass, either a fixed number of them (-n, reservoir
// sampling) or each line with a fixed probability (-r). See the
// package documentation of github.com/stringertheory/sample for the
// sampling semantics.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stringertheory/sample"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Go raises SIGPIPE instead of returning EPIPE for writes to a
	// closed stdout; ignoring it turns an early-exiting consumer into
	// an ordinary write error the sink can classify.
	signal.Ignore(syscall.SIGPIPE)

	err := newSampleCmd().Execute()
	code := exitCode(err)
	if code != 0 {
		logger := newLogger(false)
		logger.Error().Err(err).Msg("sampling failed")
	}
	os.Exit(code)
}

// exitCode maps the outcome of a run to the process exit status. A
// consumer that stopped reading early is normal pipeline behavior,
// not a failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, sample.ErrOutputClosed):
		return 0
	}
	return 1
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

type options struct {
	count   int
	rate    float64
	seed    uint64
	headers int
	verbose bool
}

func bindFlags(flags *pflag.FlagSet, o *options) {
	flags.IntVarP(&o.count, "count", "n", 0, "number of lines to sample (reservoir mode)")
	flags.Float64VarP(&o.rate, "rate", "r", 0, "keep each line with this probability, in [0.0, 1.0]")
	flags.Uint64VarP(&o.seed, "seed", "s", 0, "seed the random generator for reproducible output")
	flags.IntVarP(&o.headers, "preserve-headers", "p", 0, "copy this many leading lines through unsampled (bare -p copies one)")
	flags.Lookup("preserve-headers").NoOptDefVal = "1"
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log run details to stderr")
}

func newSampleCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "sample [flags] [file]",
		Short: "Randomly sample lines from a file or standard input",
		Long: `sample keeps a random subset of its input lines, reading the input
only once and holding no more than the sample in memory.

With -n, a fixed-size sample is chosen uniformly from the whole input
and emitted once the input ends (reservoir sampling). With -r, each
line is kept independently with the given probability and emitted
immediately, which also works on streams that never end.

A --seed makes either mode reproducible: the same seed on the same
input yields the same output. --preserve-headers copies leading lines
such as CSV headers through untouched, before any sampling.`,
		Example: `  cat access.log | sample -n 100
  sample -r 0.01 --seed 42 access.log
  sample -n 500 --preserve-headers data.csv | head`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd, args, &opts)
		},
	}
	bindFlags(cmd.Flags(), &opts)
	cmd.MarkFlagsMutuallyExclusive("count", "rate")
	cmd.MarkFlagsOneRequired("count", "rate")
	return cmd
}

func runSample(cmd *cobra.Command, args []string, opts *options) error {
	logger := newLogger(opts.verbose)

	cfg := sample.Config{Headers: opts.headers}
	switch {
	case cmd.Flags().Changed("count"):
		cfg.Mode = sample.ModeReservoir
		cfg.Count = opts.count
	case cmd.Flags().Changed("rate"):
		cfg.Mode = sample.ModeBernoulli
		cfg.Rate = opts.rate
	}

	// Resolve the seed here rather than in the library so an
	// entropy-seeded run can be reproduced from its debug log.
	seed := opts.seed
	if !cmd.Flags().Changed("seed") {
		seed = sample.RandomSeed()
	}
	cfg.Seed = &seed

	if err := cfg.Validate(); err != nil {
		return err
	}

	in := cmd.InOrStdin()
	inputName := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		in = f
		inputName = args[0]
	}

	evt := logger.Debug().
		Str("input", inputName).
		Uint64("seed", seed).
		Int("headers", cfg.Headers)
	if cfg.Mode == sample.ModeReservoir {
		evt = evt.Int("count", cfg.Count)
	} else {
		evt = evt.Float64("rate", cfg.Rate)
	}
	evt.Msg("sampling")

	stats, err := sample.Run(cfg, in, cmd.OutOrStdout())
	logger.Debug().
		Str("headers", humanize.Comma(int64(stats.HeaderLines))).
		Str("read", humanize.Comma(stats.LinesRead)).
		Str("kept", humanize.Comma(stats.LinesKept)).
		Msg("finished")
	return err
}
