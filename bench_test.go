package sample_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stringertheory/sample"
)

func BenchmarkReservoirAdd(b *testing.B) {
	r := sample.NewReservoir(10, sample.NewRand(1))
	for i := 0; i < b.N; i++ {
		r.Add("hello")
	}
}

func BenchmarkBernoulliKeep(b *testing.B) {
	s, err := sample.NewBernoulli(0.5, sample.NewRand(1))
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		s.Keep()
	}
}

func BenchmarkRunReservoir(b *testing.B) {
	input := strings.Repeat("hello\n", 10000)
	cfg := sample.Config{Mode: sample.ModeReservoir, Count: 10, Seed: seed(1)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sample.Run(cfg, strings.NewReader(input), io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunBernoulli(b *testing.B) {
	input := strings.Repeat("hello\n", 10000)
	cfg := sample.Config{Mode: sample.ModeBernoulli, Rate: 0.01, Seed: seed(1)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sample.Run(cfg, strings.NewReader(input), io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
