// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mockable

import "time"

// Clock acts as a thin wrapper around global time that allows for easy testing
type Clock struct {
	faked bool
	time  time.Time
}

// Set the time on the clock
func (c *Clock) Set(time time.Time) { c.faked = true; c.time = time }

// Advance moves a faked clock forward by [d]. It has no effect on a clock
// following global time.
func (c *Clock) Advance(d time.Duration) { c.time = c.time.Add(d) }

// Sync this clock with global time
func (c *Clock) Sync() { c.faked = false }

// Time returns the time on this clock
func (c *Clock) Time() time.Time {
	if c.faked {
		return c.time
	}
	return time.Now()
}

// Since returns the time elapsed on this clock since [start].
func (c *Clock) Since(start time.Time) time.Duration {
	return c.Time().Sub(start)
}
