// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomic(t *testing.T) {
	require := require.New(t)

	var a Atomic[bool]
	require.Zero(a.Get())

	a.Set(false)
	require.False(a.Get())

	a.Set(true)
	require.True(a.Get())

	require.True(a.Swap(false))
	require.False(a.Get())
}

func TestAtomicSwapEmpty(t *testing.T) {
	var a Atomic[*int]
	require.Nil(t, a.Swap(new(int)))
	require.NotNil(t, a.Get())
}

func TestAtomicConcurrentReaders(t *testing.T) {
	a := NewAtomic([]int{1, 2, 3})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if v := a.Get(); len(v) != 3 {
					t.Errorf("unexpected length %d", len(v))
				}
			}
		}()
	}
	for j := 0; j < 100; j++ {
		a.Set([]int{j, j, j})
	}
	wg.Wait()
}
