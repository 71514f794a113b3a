// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "github.com/ava-labs/windowsampler/utils/random"

var _ Weighted = (*weightedAlias)(nil)

// weightedAlias implements Vose's alias method.
//
// The value is split into a column, chosen uniformly, and a position within
// the column. Each column holds its own index up to [prob] and its alias
// after it.
//
// Initialization takes O(n) time and space.
// Sampling takes O(1) time.
type weightedAlias struct {
	distribution
	prob  []float64
	alias []int
}

func newWeightedAlias(d distribution, weights []float64) *weightedAlias {
	var (
		n      = len(weights)
		prob   = make([]float64, n)
		alias  = make([]int, n)
		scaled = make([]float64, n)
		small  = make([]int, 0, n)
		large  = make([]int, 0, n)
	)
	for i, weight := range weights {
		scaled[i] = weight / d.total * float64(n)
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		less := small[len(small)-1]
		small = small[:len(small)-1]
		more := large[len(large)-1]
		large = large[:len(large)-1]

		prob[less] = scaled[less]
		alias[less] = more

		scaled[more] = scaled[more] + scaled[less] - 1
		if scaled[more] < 1 {
			small = append(small, more)
		} else {
			large = append(large, more)
		}
	}

	for _, i := range large {
		prob[i] = 1
		alias[i] = i
	}
	// Leftover small columns only exist due to rounding. Their own index is
	// kept unless its weight is zero.
	for _, i := range small {
		if weights[i] > 0 {
			prob[i] = 1
			alias[i] = i
		} else {
			prob[i] = 0
			alias[i] = d.lastPositive
		}
	}

	return &weightedAlias{
		distribution: d,
		prob:         prob,
		alias:        alias,
	}
}

func (s *weightedAlias) SampleValue(value float64) (int, error) {
	if err := s.checkValue(value); err != nil {
		return 0, err
	}
	return s.search(value), nil
}

func (s *weightedAlias) Sample(source random.Source) (int, error) {
	return s.sample(source, s.search)
}

func (s *weightedAlias) search(value float64) int {
	x := value / s.total * float64(len(s.prob))
	column := int(x)
	if column >= len(s.prob) {
		return s.lastPositive
	}
	if x-float64(column) < s.prob[column] {
		return column
	}
	return s.alias[column]
}
