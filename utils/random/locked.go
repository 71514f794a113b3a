// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

import "sync"

var _ Source = (*locked)(nil)

type locked struct {
	lock   sync.Mutex
	source Source
}

// NewLocked returns a Source that serializes access to [source], making it
// safe to share between goroutines.
func NewLocked(source Source) Source {
	return &locked{source: source}
}

func (l *locked) Float64() (float64, error) {
	// Note: We must grab the lock here because drawing modifies the
	// underlying source's state.
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.source.Float64()
}
