// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	"github.com/ava-labs/windowsampler/utils/random"
)

// KeyWeight pairs a key with its weight.
type KeyWeight[K comparable] struct {
	Key    K       `json:"key"`
	Weight float64 `json:"weight"`
}

// WeightedKeyed samples keys rather than indices.
type WeightedKeyed[K comparable] struct {
	keys    []K
	sampler Weighted
}

// NewWeightedKeyed builds a sampler over [pairs] using [strategy]. Keys must
// be unique. The same weight rules as NewWeightedWithStrategy apply.
func NewWeightedKeyed[K comparable](strategy Strategy, pairs []KeyWeight[K]) (*WeightedKeyed[K], error) {
	var (
		keys    = make([]K, len(pairs))
		weights = make([]float64, len(pairs))
		seen    = make(map[K]struct{}, len(pairs))
	)
	for i, pair := range pairs {
		if _, ok := seen[pair.Key]; ok {
			return nil, fmt.Errorf("%w: duplicate key %v", ErrInvalidDistribution, pair.Key)
		}
		seen[pair.Key] = struct{}{}
		keys[i] = pair.Key
		weights[i] = pair.Weight
	}

	sampler, err := NewWeightedWithStrategy(strategy, weights)
	if err != nil {
		return nil, err
	}
	return &WeightedKeyed[K]{
		keys:    keys,
		sampler: sampler,
	}, nil
}

// Keys returns the keys in the order they were provided.
func (s *WeightedKeyed[K]) Keys() []K {
	return append([]K(nil), s.keys...)
}

func (s *WeightedKeyed[K]) Sample(source random.Source) (K, error) {
	index, err := s.sampler.Sample(source)
	if err != nil {
		var zero K
		return zero, err
	}
	return s.keys[index], nil
}

func (s *WeightedKeyed[K]) SampleValue(value float64) (K, error) {
	index, err := s.sampler.SampleValue(value)
	if err != nil {
		var zero K
		return zero, err
	}
	return s.keys[index], nil
}
