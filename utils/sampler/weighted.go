// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ava-labs/windowsampler/utils/random"
	"github.com/ava-labs/windowsampler/utils/timer/mockable"
)

var (
	ErrInvalidDistribution = errors.New("invalid distribution")
	ErrRandomSource        = errors.New("random source failure")
	ErrOutOfRange          = errors.New("out of range")
)

// Weighted draws indices with probability proportional to the weights it was
// built from.
//
// A Weighted sampler is immutable once built. Sampling never modifies it, so
// it may be shared between goroutines as long as each supplies a source that
// is safe for its use.
type Weighted interface {
	// Len returns the number of weights the sampler was built from.
	Len() int
	// Total returns the sum of the weights.
	Total() float64
	// SampleValue maps [value] in [0, Total()) onto an index.
	SampleValue(value float64) (int, error)
	// Sample draws a uniform value from [source] and maps it onto an index.
	Sample(source random.Source) (int, error)
}

// NewWeighted builds the default sampler, a cumulative array searched by
// bisection.
func NewWeighted(weights []float64) (Weighted, error) {
	return NewWeightedWithStrategy(Array, weights)
}

// NewWeightedWithStrategy builds a sampler over [weights] using [strategy].
//
// The weights must be non-empty, finite, non-negative and have a positive
// finite sum. The sampler copies what it needs from [weights].
func NewWeightedWithStrategy(strategy Strategy, weights []float64) (Weighted, error) {
	d, err := newDistribution(weights)
	if err != nil {
		return nil, err
	}
	switch strategy {
	case Array:
		return newWeightedArray(d, weights), nil
	case Linear:
		return newWeightedLinear(d, weights), nil
	case Heap:
		return newWeightedHeap(d, weights), nil
	case Alias:
		return newWeightedAlias(d, weights), nil
	case Best:
		return newWeightedBest(d, weights, &mockable.Clock{}, defaultCandidates, defaultBenchmarkIterations)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, strategy)
	}
}

// distribution is the state shared by every strategy.
type distribution struct {
	length int
	total  float64
	// lastPositive is the highest index with a positive weight. Values that
	// round up to the total are mapped to it.
	lastPositive int
}

func newDistribution(weights []float64) (distribution, error) {
	if len(weights) == 0 {
		return distribution{}, fmt.Errorf("%w: no weights", ErrInvalidDistribution)
	}
	lastPositive := -1
	for i, weight := range weights {
		if math.IsNaN(weight) || math.IsInf(weight, 0) {
			return distribution{}, fmt.Errorf("%w: weight %d is %v", ErrInvalidDistribution, i, weight)
		}
		if weight < 0 {
			return distribution{}, fmt.Errorf("%w: weight %d is negative (%v)", ErrInvalidDistribution, i, weight)
		}
		if weight > 0 {
			lastPositive = i
		}
	}
	if lastPositive < 0 {
		return distribution{}, fmt.Errorf("%w: all %d weights are zero", ErrInvalidDistribution, len(weights))
	}
	total := floats.Sum(weights)
	if math.IsInf(total, 0) {
		return distribution{}, fmt.Errorf("%w: total weight overflows", ErrInvalidDistribution)
	}
	return distribution{
		length:       len(weights),
		total:        total,
		lastPositive: lastPositive,
	}, nil
}

func (d *distribution) Len() int {
	return d.length
}

func (d *distribution) Total() float64 {
	return d.total
}

func (d *distribution) checkValue(value float64) error {
	if !(value >= 0 && value < d.total) {
		return fmt.Errorf("%w: %v is not in [0, %v)", ErrOutOfRange, value, d.total)
	}
	return nil
}

// draw returns a value in [0, Total()) taken from [source]. A rounded product
// that reaches the total is reported as ok == false so the caller can return
// the last positive index.
func (d *distribution) draw(source random.Source) (float64, bool, error) {
	u, err := source.Float64()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	if !random.IsUnit(u) {
		return 0, false, fmt.Errorf("%w: draw %v is not in [0, 1)", ErrRandomSource, u)
	}
	value := u * d.total
	return value, value < d.total, nil
}

// sample draws from [source] and resolves the value with [search], which is
// only ever called with values in [0, Total()).
func (d *distribution) sample(source random.Source, search func(float64) int) (int, error) {
	value, ok, err := d.draw(source)
	if err != nil {
		return 0, err
	}
	if !ok {
		return d.lastPositive, nil
	}
	return search(value), nil
}
