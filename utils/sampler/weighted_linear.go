// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/ava-labs/windowsampler/utils"
	"github.com/ava-labs/windowsampler/utils/random"
)

var (
	_ Weighted                              = (*weightedLinear)(nil)
	_ utils.Sortable[weightedLinearElement] = weightedLinearElement{}
)

type weightedLinearElement struct {
	cumulativeWeight float64
	index            int
}

// Note that this sorts in order of decreasing cumulative weight.
func (e weightedLinearElement) Less(other weightedLinearElement) bool {
	return e.cumulativeWeight > other.cumulativeWeight
}

// Sampling is performed by executing a linear search over the provided elements
// in the order of their probabilistic occurrence.
//
// Initialization takes O(n * log(n)) time, where n is the number of elements
// that can be sampled.
// Sampling can take up to O(n) time. As the distribution becomes more biased,
// sampling will become faster in expectation.
type weightedLinear struct {
	distribution
	arr []weightedLinearElement
}

func newWeightedLinear(d distribution, weights []float64) *weightedLinear {
	arr := make([]weightedLinearElement, len(weights))
	for i, weight := range weights {
		arr[i] = weightedLinearElement{
			cumulativeWeight: weight,
			index:            i,
		}
	}

	// Optimize so that the most probable values are at the front of the array.
	// Equal weights keep their index order so builds are reproducible.
	utils.SortStable(arr)

	for i := 1; i < len(arr); i++ {
		arr[i].cumulativeWeight += arr[i-1].cumulativeWeight
	}
	d.total = arr[len(arr)-1].cumulativeWeight
	return &weightedLinear{
		distribution: d,
		arr:          arr,
	}
}

func (s *weightedLinear) SampleValue(value float64) (int, error) {
	if err := s.checkValue(value); err != nil {
		return 0, err
	}
	return s.search(value), nil
}

func (s *weightedLinear) Sample(source random.Source) (int, error) {
	return s.sample(source, s.search)
}

func (s *weightedLinear) search(value float64) int {
	index := 0
	for {
		if elem := s.arr[index]; value < elem.cumulativeWeight {
			return elem.index
		}
		index++
	}
}
