// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	tracker := NewProgress(3, 1000)
	now := time.Now()

	tests := []struct {
		name              string
		completed         uint64
		timestamp         time.Time
		expectedPercent   float64
		expectedRemaining time.Duration
		expectedOK        bool
	}{
		{
			name:            "first observation",
			completed:       0,
			timestamp:       now,
			expectedPercent: 0,
		},
		{
			name:            "second observation",
			completed:       100,
			timestamp:       now.Add(10 * time.Second),
			expectedPercent: 10,
		},
		{
			name:              "window full",
			completed:         200,
			timestamp:         now.Add(20 * time.Second),
			expectedPercent:   20,
			expectedRemaining: 80 * time.Second,
			expectedOK:        true,
		},
		{
			name:              "rate measured over the window",
			completed:         600,
			timestamp:         now.Add(40 * time.Second),
			expectedPercent:   60,
			expectedRemaining: 24 * time.Second,
			expectedOK:        true,
		},
		{
			name:              "done",
			completed:         1000,
			timestamp:         now.Add(50 * time.Second),
			expectedPercent:   100,
			expectedRemaining: 0,
			expectedOK:        true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			percent, remaining, ok := tracker.Observe(test.completed, test.timestamp)
			require.Equal(test.expectedOK, ok)
			require.Equal(test.expectedPercent, percent)
			require.Equal(test.expectedRemaining, remaining)
		})
	}
}

func TestProgressStalled(t *testing.T) {
	require := require.New(t)

	tracker := NewProgress(2, 10)
	now := time.Now()

	_, _, ok := tracker.Observe(5, now)
	require.False(ok)
	_, _, ok = tracker.Observe(5, now.Add(time.Second))
	require.False(ok)
}

func TestProgressEmptyTarget(t *testing.T) {
	require := require.New(t)

	tracker := NewProgress(0, 0)
	percent, remaining, ok := tracker.Observe(0, time.Now())
	require.True(ok)
	require.Equal(100.0, percent)
	require.Zero(remaining)
}
