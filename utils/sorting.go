// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import "golang.org/x/exp/slices"

type Sortable[T any] interface {
	Less(T) bool
}

// Sorts the elements of [s] without reordering equal elements.
func SortStable[T Sortable[T]](s []T) {
	slices.SortStableFunc(s, T.Less)
}

// Returns true iff the elements in [s] are sorted.
func IsSorted[T Sortable[T]](s []T) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i+1].Less(s[i]) {
			return false
		}
	}
	return true
}
