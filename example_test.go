package sample_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/stringertheory/sample"
)

func ExampleRun() {
	// Rate 1 keeps every line, so the output is deterministic; the
	// header line is copied through before sampling begins.
	cfg := sample.Config{Mode: sample.ModeBernoulli, Rate: 1, Headers: 1}
	input := "ts,ip\n1,10.0.0.1\n2,10.0.0.2\n"
	if _, err := sample.Run(cfg, strings.NewReader(input), os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// ts,ip
	// 1,10.0.0.1
	// 2,10.0.0.2
}

func ExampleReservoir() {
	// A reservoir bigger than the stream keeps everything, in order.
	r := sample.NewReservoir(8, sample.NewRand(1))
	for _, line := range []string{"alpha", "beta", "gamma"} {
		r.Add(line)
	}
	fmt.Println(r.Len(), r.Lines())
	// Output: 3 [alpha beta gamma]
}

func ExampleBernoulli() {
	b, _ := sample.NewBernoulli(1, sample.NewRand(1))
	fmt.Println(b.Keep(), b.Keep())
	// Output: true true
}
