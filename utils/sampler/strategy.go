// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy selects the structure a Weighted sampler is built on.
type Strategy uint8

const (
	// Array is a cumulative array searched by bisection.
	// Build O(n), sample O(log n).
	Array Strategy = iota
	// Linear scans cumulative weights sorted by decreasing weight.
	// Build O(n log n), sample O(n) but fast for skewed weights.
	Linear
	// Heap walks an implicit binary tree of subtree sums.
	// Build O(n log n), sample O(log n).
	Heap
	// Alias is Vose's alias method. Build O(n), sample O(1).
	Alias
	// Best builds every other strategy and keeps the fastest one.
	Best
)

// ParseStrategy parses a strategy name, ignoring case.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "array", "":
		return Array, nil
	case "linear":
		return Linear, nil
	case "heap":
		return Heap, nil
	case "alias":
		return Alias, nil
	case "best":
		return Best, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func (s Strategy) String() string {
	switch s {
	case Array:
		return "array"
	case Linear:
		return "linear"
	case Heap:
		return "heap"
	case Alias:
		return "alias"
	case Best:
		return "best"
	default:
		return "unknown"
	}
}

func (s Strategy) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Strategy) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*s, err = ParseStrategy(str)
	return err
}
