// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestWeightedSampleValueProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	for _, strategy := range allStrategies {
		strategy := strategy
		properties.Property(fmt.Sprintf("%s returns an index with positive weight", strategy), prop.ForAll(
			func(weights []float64, fraction float64) string {
				// Guarantee at least one positive weight.
				weights = append(weights, 1)

				s, err := NewWeightedWithStrategy(strategy, weights)
				if err != nil {
					return fmt.Sprintf("unexpected build error %v", err)
				}
				value := fraction * s.Total()
				if value >= s.Total() {
					value = math.Nextafter(s.Total(), 0)
				}

				index, err := s.SampleValue(value)
				if err != nil {
					return fmt.Sprintf("unexpected sample error %v", err)
				}
				if index < 0 || index >= len(weights) {
					return fmt.Sprintf("index %d out of range [0, %d)", index, len(weights))
				}
				if weights[index] <= 0 {
					return fmt.Sprintf("index %d has weight %v", index, weights[index])
				}
				return ""
			},
			gen.SliceOf(gen.Float64Range(-1e6, 1e6).Map(func(f float64) float64 {
				// About half of the weights are zero.
				return math.Max(f, 0)
			})),
			gen.Float64Range(0, 1),
		))
	}

	properties.TestingRun(t)
}

func FuzzWeightedSampleValue(f *testing.F) {
	f.Add(1.0, 2.0, 3.0, 0.5)
	f.Add(0.0, 0.0, 1.0, 0.0)
	f.Add(1e-300, 1e300, 0.0, 1e300)
	f.Add(-1.0, 2.0, 3.0, 4.0)

	f.Fuzz(func(t *testing.T, a, b, c, value float64) {
		weights := []float64{a, b, c}
		for _, strategy := range allStrategies {
			s, err := NewWeightedWithStrategy(strategy, weights)
			if err != nil {
				return
			}
			index, err := s.SampleValue(value)
			if err != nil {
				if value >= 0 && value < s.Total() {
					t.Fatalf("%s: value %v in range failed with %v", strategy, value, err)
				}
				continue
			}
			if index < 0 || index >= len(weights) || weights[index] <= 0 {
				t.Fatalf("%s: value %v returned index %d of %v", strategy, value, index, weights)
			}
		}
	})
}
