// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package timer

import (
	"math"
	"sync"
	"time"
)

const defaultWindow = 5

type sample struct {
	completed uint64
	timestamp time.Time
}

// Progress estimates the time remaining until [target] units of work are
// completed. The rate is measured over the last [window] observations.
//
// Progress is safe for concurrent use.
type Progress struct {
	lock     sync.Mutex
	target   uint64
	samples  []sample
	position int
	total    int
}

// NewProgress returns a tracker for [target] units of work. A window smaller
// than 2 defaults to 5.
func NewProgress(window int, target uint64) *Progress {
	if window < 2 {
		window = defaultWindow
	}
	return &Progress{
		target:  target,
		samples: make([]sample, window),
	}
}

// Target returns the amount of work being tracked.
func (p *Progress) Target() uint64 {
	return p.target
}

// Observe records that [completed] units of work were done at [timestamp].
//
// It returns the percentage complete, rounded to 2 decimal places, and the
// remaining time, rounded to the second. ok is false until the window holds
// enough observations with measurable progress.
func (p *Progress) Observe(completed uint64, timestamp time.Time) (percent float64, remaining time.Duration, ok bool) {
	p.lock.Lock()
	defer p.lock.Unlock()

	latest := sample{
		completed: completed,
		timestamp: timestamp,
	}
	p.samples[p.position] = latest
	p.position = (p.position + 1) % len(p.samples)
	p.total++

	if p.target == 0 || completed >= p.target {
		return 100, 0, true
	}
	percent = math.Round(float64(completed)/float64(p.target)*10000) / 100
	if p.total < len(p.samples) {
		return percent, 0, false
	}

	// [p.position] now points at the oldest observation in the window.
	oldest := p.samples[p.position]
	elapsed := latest.timestamp.Sub(oldest.timestamp)
	if elapsed <= 0 || latest.completed <= oldest.completed {
		return percent, 0, false
	}

	rate := float64(latest.completed-oldest.completed) / float64(elapsed)
	remaining = time.Duration(float64(p.target-completed) / rate)
	return percent, remaining.Round(time.Second), true
}
