package sample

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// NewRand returns a pseudo-random generator in a known state: two
// generators built from the same seed yield the same draws in the
// same order, on every platform. Everything in this package draws
// from a generator passed in explicitly; the global math/rand state
// is never touched.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}

// RandomSeed returns a seed drawn from the operating system's entropy
// source, falling back to the wall clock if that source fails.
func RandomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
