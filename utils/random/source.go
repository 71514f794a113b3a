// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import "math"

var _ Source = SourceFunc(nil)

// Source is the capability a sampler consumes to draw uniform values.
//
// Implementations are not required to be safe for concurrent use. Wrap a
// shared source with NewLocked.
type Source interface {
	// Float64 returns a uniform value in [0, 1) and advances the source.
	Float64() (float64, error)
}

// Uint64Source is any generator producing uniformly distributed 64-bit words,
// such as gonum's prng.MT19937 or prng.SplitMix64.
type Uint64Source interface {
	Uint64() uint64
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (float64, error)

func (f SourceFunc) Float64() (float64, error) {
	return f()
}

// FromUint64 returns a Source that maps the top 53 bits of each word onto
// [0, 1).
func FromUint64(src Uint64Source) Source {
	return &uint64Source{src: src}
}

type uint64Source struct {
	src Uint64Source
}

func (s *uint64Source) Float64() (float64, error) {
	return Float64FromUint64(s.src.Uint64()), nil
}

// Float64FromUint64 maps a uniformly distributed word onto [0, 1) using its
// top 53 bits. The result is exactly representable and never equals 1.
func Float64FromUint64(v uint64) float64 {
	return float64(v>>11) * 0x1.0p-53
}

// IsUnit reports whether f is a valid uniform draw, i.e. in [0, 1).
func IsUnit(f float64) bool {
	return f >= 0 && f < 1 && !math.IsNaN(f)
}
