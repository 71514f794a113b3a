// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import "sync/atomic"

// Atomic holds a value that can be replaced while other goroutines read it.
// Readers never block; a Set is visible to every Get that starts after it.
type Atomic[T any] struct {
	value atomic.Pointer[T]
}

func NewAtomic[T any](value T) *Atomic[T] {
	a := &Atomic[T]{}
	a.Set(value)
	return a
}

// Get returns the current value, or the zero value if none was set.
func (a *Atomic[T]) Get() T {
	p := a.value.Load()
	if p == nil {
		return Zero[T]()
	}
	return *p
}

func (a *Atomic[T]) Set(value T) {
	a.value.Store(&value)
}

// Swap stores [value] and returns the previous value.
func (a *Atomic[T]) Swap(value T) T {
	p := a.value.Swap(&value)
	if p == nil {
		return Zero[T]()
	}
	return *p
}
