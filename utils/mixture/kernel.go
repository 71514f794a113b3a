// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mixture

import "math"

// Normalizer returns 1 / sqrt(deviation * 2π).
func Normalizer(deviation float64) float64 {
	return 1 / math.Sqrt(deviation*2*math.Pi)
}

// Kernel returns exp(-z²/2) where z = (position - mean) / deviation.
//
// The square is a multiplication and the exponential is a single call to
// math.Exp. Neither goes through math.Pow.
func Kernel(position, mean, deviation float64) float64 {
	z := (position - mean) / deviation
	return math.Exp(-0.5 * z * z)
}

// term is the contribution of one component at one position given the
// component's precomputed floor * normalizer scale.
func term(amplitude, scale, position, mean, deviation float64) float64 {
	return amplitude * (1 + scale*Kernel(position, mean, deviation))
}
