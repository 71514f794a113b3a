// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mixture

import "testing"

var benchSink float64

func benchPositions() []float64 {
	positions := make([]float64, 100)
	for i := range positions {
		positions[i] = float64(i) * 10
	}
	return positions
}

func benchComponents() []Component {
	return []Component{
		{Amplitude: 1, Mean: 100, Deviation: 50},
		{Amplitude: 2, Mean: 200, Deviation: 60},
		{Amplitude: 3, Mean: 300, Deviation: 70},
		{Amplitude: 4, Mean: 400, Deviation: 80},
		{Amplitude: 5, Mean: 500, Deviation: 90},
	}
}

func BenchmarkKernel(b *testing.B) {
	kernels := []struct {
		name   string
		weight func(c Component, floor, position float64) float64
	}{
		{
			name:   "pow",
			weight: powWeight,
		},
		{
			name: "exp",
			weight: func(c Component, floor, position float64) float64 {
				return term(c.Amplitude, floor*Normalizer(c.Deviation), position, c.Mean, c.Deviation)
			},
		},
	}

	positions := benchPositions()
	components := benchComponents()
	for _, kernel := range kernels {
		b.Run(kernel.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var total float64
				for _, p := range positions {
					for _, c := range components {
						total += kernel.weight(c, testFloor, p)
					}
				}
				benchSink = total
			}
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	e, err := NewEvaluator(testFloor)
	if err != nil {
		b.Fatal(err)
	}

	positions := benchPositions()
	components := benchComponents()

	b.Run("fresh", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			weights, _ := e.Evaluate(components, positions)
			benchSink = weights[0]
		}
	})

	b.Run("into", func(b *testing.B) {
		b.ReportAllocs()
		dst := make([]float64, len(positions))
		for i := 0; i < b.N; i++ {
			_ = e.EvaluateInto(dst, components, positions)
			benchSink = dst[0]
		}
	})
}
