// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mixture

import (
	"fmt"
	"math"
)

// Evaluator computes mixture weights over window positions:
//
//	weight(p) = Σ c.Amplitude * (1 + floor * Normalizer(c.Deviation) * Kernel(p, c.Mean, c.Deviation))
//
// An Evaluator is immutable and safe for concurrent use.
type Evaluator struct {
	floor float64
}

// NewEvaluator returns an evaluator using [floor] as the base weight floor B.
// The floor is supplied by the caller; it must be positive and finite.
func NewEvaluator(floor float64) (*Evaluator, error) {
	if !(floor > 0) || math.IsInf(floor, 0) {
		return nil, fmt.Errorf("%w: floor %v must be positive and finite", ErrInvalidParameter, floor)
	}
	return &Evaluator{floor: floor}, nil
}

// Floor returns the base weight floor B.
func (e *Evaluator) Floor() float64 {
	return e.floor
}

// Evaluate returns a freshly allocated weight per position.
//
// All components are validated before anything is computed. With no
// components every weight is zero.
func (e *Evaluator) Evaluate(components []Component, positions []float64) ([]float64, error) {
	weights := make([]float64, len(positions))
	if err := e.EvaluateInto(weights, components, positions); err != nil {
		return nil, err
	}
	return weights, nil
}

// EvaluateInto writes the weight of positions[i] into dst[i], so a caller can
// reuse one buffer across evaluations. [dst] must have the same length as
// [positions]. On error [dst] is left untouched.
func (e *Evaluator) EvaluateInto(dst []float64, components []Component, positions []float64) error {
	if len(dst) != len(positions) {
		return fmt.Errorf("%w: %d weights for %d positions", ErrLengthMismatch, len(dst), len(positions))
	}
	for i, c := range components {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
	}
	for i, p := range positions {
		if math.IsNaN(p) {
			return fmt.Errorf("%w: position %d is NaN", ErrInvalidParameter, i)
		}
	}

	for i := range dst {
		dst[i] = 0
	}
	// Components are accumulated in index order for every position, so the
	// result doesn't depend on the number of positions.
	for _, c := range components {
		scale := e.floor * Normalizer(c.Deviation)
		for i, p := range positions {
			dst[i] += term(c.Amplitude, scale, p, c.Mean, c.Deviation)
		}
	}
	return nil
}

// Weight returns the mixture weight of a single position.
func (e *Evaluator) Weight(components []Component, position float64) (float64, error) {
	var weight [1]float64
	if err := e.EvaluateInto(weight[:], components, []float64{position}); err != nil {
		return 0, err
	}
	return weight[0], nil
}
