package sample_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/stringertheory/sample"
)

// TestDataDriven runs the cases under testdata. Each directive is a
// sampling mode with its arguments, the input block is the stream, and
// the expected block is the exact output (or the error). Only
// configurations with deterministic output belong here; seeded
// subsampling is covered by the property tests.
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			var cfg sample.Config
			switch d.Cmd {
			case "reservoir":
				cfg.Mode = sample.ModeReservoir
				d.ScanArgs(t, "count", &cfg.Count)
			case "rate":
				cfg.Mode = sample.ModeBernoulli
				var rate string
				d.ScanArgs(t, "p", &rate)
				p, err := strconv.ParseFloat(rate, 64)
				if err != nil {
					d.Fatalf(t, "bad rate %q: %v", rate, err)
				}
				cfg.Rate = p
			default:
				d.Fatalf(t, "unknown command %q", d.Cmd)
			}
			if d.HasArg("headers") {
				d.ScanArgs(t, "headers", &cfg.Headers)
			}

			var out strings.Builder
			if _, err := sample.Run(cfg, strings.NewReader(d.Input), &out); err != nil {
				return "error: " + err.Error() + "\n"
			}
			return out.String()
		})
	})
}
