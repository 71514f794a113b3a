// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/ava-labs/windowsampler/utils/random"
)

var _ Weighted = (*weightedArray)(nil)

// Sampling is performed by a binary search over the cumulative weights.
//
// Initialization takes O(n) time, where n is the number of elements that can
// be sampled.
// Sampling takes O(log(n)) time.
type weightedArray struct {
	distribution
	cumulativeWeights []float64
}

func newWeightedArray(d distribution, weights []float64) *weightedArray {
	cumulativeWeights := floats.CumSum(make([]float64, len(weights)), weights)
	// The search is defined against the prefix sums, so their final value is
	// the total.
	d.total = cumulativeWeights[len(cumulativeWeights)-1]
	return &weightedArray{
		distribution:      d,
		cumulativeWeights: cumulativeWeights,
	}
}

func (s *weightedArray) SampleValue(value float64) (int, error) {
	if err := s.checkValue(value); err != nil {
		return 0, err
	}
	return s.search(value), nil
}

func (s *weightedArray) Sample(source random.Source) (int, error) {
	return s.sample(source, s.search)
}

// search returns the first index whose cumulative weight exceeds [value].
// Zero weights repeat the previous cumulative weight, so they are never the
// first to exceed it.
func (s *weightedArray) search(value float64) int {
	return sort.Search(len(s.cumulativeWeights), func(i int) bool {
		return s.cumulativeWeights[i] > value
	})
}
