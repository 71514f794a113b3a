// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ava-labs/windowsampler/utils/timer/mockable"
)

const defaultBenchmarkIterations = 100

var (
	_ Weighted = (*weightedBest)(nil)

	errNoValidWeightedSamplers = errors.New("no valid weighted samplers found")

	defaultCandidates = []Strategy{Array, Heap, Linear, Alias}
)

// weightedBest builds every candidate strategy, times a fixed sequence of
// lookups against each, and keeps the fastest.
//
// The lookups are evenly spaced over the total so that the choice only
// depends on the weights and the timings.
type weightedBest struct {
	Weighted
	strategy Strategy
}

func newWeightedBest(
	d distribution,
	weights []float64,
	clock *mockable.Clock,
	candidates []Strategy,
	benchmarkIterations int,
) (*weightedBest, error) {
	best := &weightedBest{}
	bestDuration := time.Duration(math.MaxInt64)

samplerLoop:
	for _, strategy := range candidates {
		startTime := clock.Time()

		var sampler Weighted
		switch strategy {
		case Array:
			sampler = newWeightedArray(d, weights)
		case Linear:
			sampler = newWeightedLinear(d, weights)
		case Heap:
			sampler = newWeightedHeap(d, weights)
		case Alias:
			sampler = newWeightedAlias(d, weights)
		default:
			return nil, fmt.Errorf("%w: %s can't be a candidate", ErrUnknownStrategy, strategy)
		}

		total := sampler.Total()
		for i := 0; i < benchmarkIterations; i++ {
			value := total * (float64(i) + .5) / float64(benchmarkIterations)
			if _, err := sampler.SampleValue(value); err != nil {
				continue samplerLoop
			}
		}

		newDuration := clock.Since(startTime)
		if newDuration < bestDuration {
			bestDuration = newDuration
			best.Weighted = sampler
			best.strategy = strategy
		}
	}

	if best.Weighted == nil {
		return nil, errNoValidWeightedSamplers
	}
	return best, nil
}

// Strategy returns the strategy that was chosen.
func (s *weightedBest) Strategy() Strategy {
	return s.strategy
}
