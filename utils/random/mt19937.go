// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import "gonum.org/v1/gonum/mathext/prng"

var _ Source = (*MT19937)(nil)

// MT19937 is a seeded Mersenne Twister source.
//
// We don't use a cryptographically secure source of randomness here, as
// there's no need to ensure a truly random sampling.
type MT19937 struct {
	rng  *prng.MT19937
	seed uint64
}

// NewMT19937 returns a source seeded with [seed]. Two sources created with the
// same seed produce the same sequence.
func NewMT19937(seed uint64) *MT19937 {
	rng := prng.NewMT19937()
	rng.Seed(seed)
	return &MT19937{
		rng:  rng,
		seed: seed,
	}
}

func (s *MT19937) Float64() (float64, error) {
	return Float64FromUint64(s.rng.Uint64()), nil
}

// Uint64 returns a random number in [0, MaxUint64].
func (s *MT19937) Uint64() uint64 {
	return s.rng.Uint64()
}

// Seed returns the seed the source was last seeded with.
func (s *MT19937) Seed() uint64 {
	return s.seed
}

// Reseed restarts the sequence from [seed].
func (s *MT19937) Reseed(seed uint64) {
	s.rng.Seed(seed)
	s.seed = seed
}
