// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/ava-labs/windowsampler/utils"
	"github.com/ava-labs/windowsampler/utils/random"
)

var (
	_ Weighted                            = (*weightedHeap)(nil)
	_ utils.Sortable[weightedHeapElement] = weightedHeapElement{}
)

type weightedHeapElement struct {
	weight           float64
	cumulativeWeight float64
	index            int
}

// Note that this sorts in order of decreasing weight.
func (e weightedHeapElement) Less(other weightedHeapElement) bool {
	return e.weight > other.weight
}

// Sampling is performed by executing a search over a tree of elements in the
// order of their probabilistic occurrence. Each node stores the sum of the
// weights in its subtree.
//
// Initialization takes O(n * log(n)) time, where n is the number of elements
// that can be sampled.
// Sampling takes O(log(n)) time.
type weightedHeap struct {
	distribution
	heap []weightedHeapElement
}

func newWeightedHeap(d distribution, weights []float64) *weightedHeap {
	heap := make([]weightedHeapElement, len(weights))
	for i, weight := range weights {
		heap[i] = weightedHeapElement{
			weight:           weight,
			cumulativeWeight: weight,
			index:            i,
		}
	}

	// Optimize so that the most probable values are at the top of the heap
	utils.SortStable(heap)

	// Initialize the heap
	for i := len(heap) - 1; i > 0; i-- {
		parentIndex := (i - 1) / 2
		heap[parentIndex].cumulativeWeight += heap[i].cumulativeWeight
	}
	d.total = heap[0].cumulativeWeight
	return &weightedHeap{
		distribution: d,
		heap:         heap,
	}
}

func (s *weightedHeap) SampleValue(value float64) (int, error) {
	if err := s.checkValue(value); err != nil {
		return 0, err
	}
	return s.search(value), nil
}

func (s *weightedHeap) Sample(source random.Source) (int, error) {
	return s.sample(source, s.search)
}

func (s *weightedHeap) search(value float64) int {
	index := 0
	for {
		currentElement := s.heap[index]
		if value < currentElement.weight {
			return currentElement.index
		}
		value -= currentElement.weight

		// We shouldn't return the root, so check the left child
		leftIndex := index*2 + 1
		if leftIndex >= len(s.heap) {
			// Only reachable through rounding in the subtractions above.
			return s.lastPositive
		}
		index = leftIndex

		// If the weight is greater than the left weight, you should move to
		// the right child
		if rightIndex := leftIndex + 1; rightIndex < len(s.heap) {
			if leftWeight := s.heap[leftIndex].cumulativeWeight; leftWeight <= value {
				value -= leftWeight
				index = rightIndex
			}
		}
	}
}
