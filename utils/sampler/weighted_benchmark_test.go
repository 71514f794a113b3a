// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"

	"github.com/ava-labs/windowsampler/utils/random"
)

var benchIndex int

func benchWeights(size int) []float64 {
	source := random.NewMT19937(uint64(size))
	weights := make([]float64, size)
	for i := range weights {
		f, _ := source.Float64()
		weights[i] = 1 + 1000*f
	}
	return weights
}

// BenchmarkWeightedPerTrial rebuilds the sampler for every draw.
func BenchmarkWeightedPerTrial(b *testing.B) {
	for _, size := range []int{10, 100, 1_000} {
		weights := benchWeights(size)
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			source := random.NewMT19937(0)
			for i := 0; i < b.N; i++ {
				s, err := NewWeighted(weights)
				if err != nil {
					b.Fatal(err)
				}
				benchIndex, _ = s.Sample(source)
			}
		})
	}
}

// BenchmarkWeightedReused builds the sampler once and draws from it.
func BenchmarkWeightedReused(b *testing.B) {
	for _, size := range []int{10, 100, 1_000} {
		weights := benchWeights(size)
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			s, err := NewWeighted(weights)
			if err != nil {
				b.Fatal(err)
			}
			source := random.NewMT19937(0)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchIndex, _ = s.Sample(source)
			}
		})
	}
}

func BenchmarkWeightedBuild(b *testing.B) {
	for _, strategy := range allStrategies {
		for _, size := range []int{10, 1_000, 100_000} {
			weights := benchWeights(size)
			b.Run(fmt.Sprintf("%s/%d", strategy, size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := NewWeightedWithStrategy(strategy, weights); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkWeightedSample(b *testing.B) {
	for _, strategy := range allStrategies {
		for _, size := range []int{10, 1_000, 100_000} {
			weights := benchWeights(size)
			b.Run(fmt.Sprintf("%s/%d", strategy, size), func(b *testing.B) {
				s, err := NewWeightedWithStrategy(strategy, weights)
				if err != nil {
					b.Fatal(err)
				}
				source := random.NewMT19937(0)

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					benchIndex, _ = s.Sample(source)
				}
			})
		}
	}
}
