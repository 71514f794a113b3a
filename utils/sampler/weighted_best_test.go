// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/windowsampler/utils/timer/mockable"
)

func TestWeightedBestFakedClockKeepsFirst(t *testing.T) {
	require := require.New(t)

	weights := []float64{1, 2, 3}
	d, err := newDistribution(weights)
	require.NoError(err)

	clock := &mockable.Clock{}
	clock.Set(time.Unix(1, 0))

	for _, candidates := range [][]Strategy{
		{Array, Heap, Linear, Alias},
		{Alias, Array},
		{Linear},
	} {
		s, err := newWeightedBest(d, weights, clock, candidates, defaultBenchmarkIterations)
		require.NoError(err)
		require.Equal(candidates[0], s.Strategy())
	}
}

func TestWeightedBestRejectsNestedCandidate(t *testing.T) {
	weights := []float64{1}
	d, err := newDistribution(weights)
	require.NoError(t, err)

	_, err = newWeightedBest(d, weights, &mockable.Clock{}, []Strategy{Array, Best}, 1)
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestWeightedBestNoCandidates(t *testing.T) {
	weights := []float64{1}
	d, err := newDistribution(weights)
	require.NoError(t, err)

	_, err = newWeightedBest(d, weights, &mockable.Clock{}, nil, 1)
	require.ErrorIs(t, err, errNoValidWeightedSamplers)
}

func TestWeightedBestChoosesCandidate(t *testing.T) {
	require := require.New(t)

	s, err := NewWeightedWithStrategy(Best, []float64{1, 2, 3, 4})
	require.NoError(err)

	best, ok := s.(*weightedBest)
	require.True(ok)
	require.Contains(defaultCandidates, best.Strategy())
}
