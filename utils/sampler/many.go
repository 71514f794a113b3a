// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	"github.com/ava-labs/windowsampler/utils/random"
)

// SampleMany draws [count] indices from [w], with replacement, consuming one
// value of [source] per draw. It stops at the first failure.
func SampleMany(w Weighted, source random.Source, count int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}

	indices := make([]int, count)
	for i := range indices {
		index, err := w.Sample(source)
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
		indices[i] = index
	}
	return indices, nil
}

// Counts returns how many times each index of [w] is drawn in [count] draws.
func Counts(w Weighted, source random.Source, count int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}

	counts := make([]int, w.Len())
	for i := 0; i < count; i++ {
		index, err := w.Sample(source)
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
		counts[index]++
	}
	return counts, nil
}
