// Package prng implements the deterministic random source used by the
// dataset generator. It deliberately avoids math/rand and crypto/rand:
// generated datasets must be byte-identical for a given seed across runs
// and platforms, so the generator is fully specified here.
package prng

import "io"

// Linear congruential generator constants.
const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// Source is a seeded pseudo-random number generator. Two Sources created
// with the same seed produce identical sequences. Not safe for concurrent
// use; callers that share a Source must serialize access.
type Source struct {
	state int64
}

// New creates a Source from an integer seed.
func New(seed int64) *Source {
	state := seed % modulus
	if state < 0 {
		state += modulus
	}
	return &Source{state: state}
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	s.state = (s.state*multiplier + increment) % modulus
	return float64(s.state) / modulus
}

// IntN returns a uniform int in [0, n). Panics if n <= 0, since every call
// site draws from a non-empty table.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		panic("prng: IntN called with n <= 0")
	}
	return int(s.Float64() * float64(n))
}

// Int64Range returns a uniform int64 in [lo, hi]. Panics if lo > hi.
func (s *Source) Int64Range(lo, hi int64) int64 {
	if lo > hi {
		panic("prng: Int64Range called with lo > hi")
	}
	return lo + int64(s.Float64()*float64(hi-lo+1))
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.Float64() < p
}

// Reader returns an io.Reader that yields one derived byte per draw.
// Used to feed deterministic bytes into uuid generation.
func (s *Source) Reader() io.Reader {
	return reader{src: s}
}

type reader struct {
	src *Source
}

func (r reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Float64() * 256)
	}
	return len(p), nil
}
