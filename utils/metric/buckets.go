// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

var (
	// Useful latency buckets

	NanosecondsBuckets = []float64{
		float64(100 * time.Nanosecond),
		float64(time.Microsecond),
		float64(10 * time.Microsecond),
		float64(100 * time.Microsecond),
		float64(time.Millisecond),
		float64(10 * time.Millisecond),
		float64(100 * time.Millisecond),
		float64(time.Second),
		// anything larger than a second will be bucketed together
	}

	// Useful size buckets, for the number of weights in a distribution

	LengthBuckets = []float64{
		1 << 4,
		1 << 7,
		1 << 10,
		1 << 13,
		1 << 16,
		1 << 20,
		// anything larger than ~1M weights will be bucketed together
	}
)
