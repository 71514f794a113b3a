// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mixture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const testFloor = 20000

func TestNewEvaluator(t *testing.T) {
	tests := []struct {
		name        string
		floor       float64
		expectedErr error
	}{
		{
			name:  "positive",
			floor: testFloor,
		},
		{
			name:  "tiny",
			floor: math.SmallestNonzeroFloat64,
		},
		{
			name:        "zero",
			floor:       0,
			expectedErr: ErrInvalidParameter,
		},
		{
			name:        "negative",
			floor:       -1,
			expectedErr: ErrInvalidParameter,
		},
		{
			name:        "NaN",
			floor:       math.NaN(),
			expectedErr: ErrInvalidParameter,
		},
		{
			name:        "infinite",
			floor:       math.Inf(1),
			expectedErr: ErrInvalidParameter,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			e, err := NewEvaluator(test.floor)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				require.Nil(e)
				return
			}
			require.Equal(test.floor, e.Floor())
		})
	}
}

func TestComponentValidate(t *testing.T) {
	tests := []struct {
		name        string
		component   Component
		expectedErr error
	}{
		{
			name:      "valid",
			component: Component{Amplitude: 1, Mean: 100, Deviation: 50},
		},
		{
			name:      "zero amplitude",
			component: Component{Amplitude: 0, Mean: 100, Deviation: 50},
		},
		{
			name:        "zero deviation",
			component:   Component{Amplitude: 1, Mean: 100, Deviation: 0},
			expectedErr: ErrInvalidParameter,
		},
		{
			name:        "negative deviation",
			component:   Component{Amplitude: 1, Mean: 100, Deviation: -50},
			expectedErr: ErrInvalidParameter,
		},
		{
			name:        "NaN deviation",
			component:   Component{Amplitude: 1, Mean: 100, Deviation: math.NaN()},
			expectedErr: ErrInvalidParameter,
		},
		{
			name:        "infinite deviation",
			component:   Component{Amplitude: 1, Mean: 100, Deviation: math.Inf(1)},
			expectedErr: ErrInvalidParameter,
		},
		{
			name:        "negative amplitude",
			component:   Component{Amplitude: -1, Mean: 100, Deviation: 50},
			expectedErr: ErrInvalidParameter,
		},
		{
			name:        "NaN mean",
			component:   Component{Amplitude: 1, Mean: math.NaN(), Deviation: 50},
			expectedErr: ErrInvalidParameter,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.ErrorIs(t, test.component.Validate(), test.expectedErr)
		})
	}
}

func TestEvaluateAtMeanExceedsTail(t *testing.T) {
	require := require.New(t)

	e, err := NewEvaluator(testFloor)
	require.NoError(err)

	components := []Component{{Amplitude: 1, Mean: 100, Deviation: 50}}
	weights, err := e.Evaluate(components, []float64{100, 500})
	require.NoError(err)
	require.Len(weights, 2)
	require.Greater(weights[0], weights[1])

	// At the mean the kernel is 1.
	expected := 1 * (1 + testFloor/math.Sqrt(50*2*math.Pi))
	require.InDelta(expected, weights[0], 1e-9)

	single, err := e.Weight(components, 100)
	require.NoError(err)
	require.Equal(weights[0], single)
}

func TestEvaluateNoComponents(t *testing.T) {
	require := require.New(t)

	e, err := NewEvaluator(testFloor)
	require.NoError(err)

	weights, err := e.Evaluate(nil, []float64{1, 2, 3})
	require.NoError(err)
	require.Equal([]float64{0, 0, 0}, weights)
}

func TestEvaluateNoPositions(t *testing.T) {
	require := require.New(t)

	e, err := NewEvaluator(testFloor)
	require.NoError(err)

	weights, err := e.Evaluate([]Component{{Amplitude: 1, Mean: 0, Deviation: 1}}, nil)
	require.NoError(err)
	require.NotNil(weights)
	require.Empty(weights)
}

func TestEvaluateFailsFast(t *testing.T) {
	require := require.New(t)

	e, err := NewEvaluator(testFloor)
	require.NoError(err)

	components := []Component{
		{Amplitude: 1, Mean: 100, Deviation: 50},
		{Amplitude: 1, Mean: 200, Deviation: 0},
	}
	weights, err := e.Evaluate(components, []float64{100, 200})
	require.ErrorIs(err, ErrInvalidParameter)
	require.ErrorContains(err, "component 1")
	require.Nil(weights)

	// the destination is untouched on failure
	dst := []float64{7, 7}
	err = e.EvaluateInto(dst, components, []float64{100, 200})
	require.ErrorIs(err, ErrInvalidParameter)
	require.Equal([]float64{7, 7}, dst)
}

func TestEvaluateNaNPosition(t *testing.T) {
	e, err := NewEvaluator(testFloor)
	require.NoError(t, err)

	_, err = e.Evaluate([]Component{{Amplitude: 1, Mean: 0, Deviation: 1}}, []float64{0, math.NaN()})
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestEvaluateIntoLengthMismatch(t *testing.T) {
	e, err := NewEvaluator(testFloor)
	require.NoError(t, err)

	err = e.EvaluateInto(make([]float64, 1), nil, []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEvaluateIntoReusesBuffer(t *testing.T) {
	require := require.New(t)

	e, err := NewEvaluator(testFloor)
	require.NoError(err)

	positions := []float64{0, 50, 100}
	components := []Component{{Amplitude: 2, Mean: 50, Deviation: 10}}

	dst := []float64{99, 99, 99}
	require.NoError(e.EvaluateInto(dst, components, positions))

	expected, err := e.Evaluate(components, positions)
	require.NoError(err)
	require.Equal(expected, dst)
}

func TestEvaluateSumsComponents(t *testing.T) {
	require := require.New(t)

	e, err := NewEvaluator(testFloor)
	require.NoError(err)

	a := Component{Amplitude: 1, Mean: 100, Deviation: 50}
	b := Component{Amplitude: 3, Mean: 400, Deviation: 80}
	positions := []float64{0, 100, 250, 400, 990}

	wa, err := e.Evaluate([]Component{a}, positions)
	require.NoError(err)
	wb, err := e.Evaluate([]Component{b}, positions)
	require.NoError(err)
	wab, err := e.Evaluate([]Component{a, b}, positions)
	require.NoError(err)

	for i := range positions {
		// 0 + a + b is evaluated in the same order as a + b
		require.Equal(wa[i]+wb[i], wab[i])
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	require := require.New(t)

	e, err := NewEvaluator(testFloor)
	require.NoError(err)

	components := benchComponents()
	positions := benchPositions()

	first, err := e.Evaluate(components, positions)
	require.NoError(err)
	for i := 0; i < 10; i++ {
		again, err := e.Evaluate(components, positions)
		require.NoError(err)
		require.Equal(first, again)
	}

	// evaluating a subset of positions yields bit-identical weights
	subset, err := e.Evaluate(components, positions[10:20])
	require.NoError(err)
	require.Equal(first[10:20], subset)
}
