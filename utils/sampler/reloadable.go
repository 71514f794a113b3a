// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	"github.com/ava-labs/windowsampler/utils"
	"github.com/ava-labs/windowsampler/utils/random"
)

var _ Weighted = (*Reloadable)(nil)

// BuildFunc builds a sampler over the provided weights.
type BuildFunc func(weights []float64) (Weighted, error)

// Reloadable holds the current sampler of a distribution that may change.
//
// Rebuild constructs the replacement before publishing it, so samplers in use
// are never modified and a failed rebuild leaves the previous distribution in
// place. Each call reads whichever sampler is current when it starts.
//
// The number of weights is fixed at construction, so an index drawn from any
// replacement is valid for every caller sized by Len.
type Reloadable struct {
	build   BuildFunc
	length  int
	current *utils.Atomic[Weighted]
}

// NewReloadable builds the initial sampler over [weights] with [strategy].
func NewReloadable(strategy Strategy, weights []float64) (*Reloadable, error) {
	return NewReloadableFunc(
		func(weights []float64) (Weighted, error) {
			return NewWeightedWithStrategy(strategy, weights)
		},
		weights,
	)
}

// NewReloadableFunc builds the initial sampler, and every replacement, with
// [build].
func NewReloadableFunc(build BuildFunc, weights []float64) (*Reloadable, error) {
	w, err := build(weights)
	if err != nil {
		return nil, err
	}
	return &Reloadable{
		build:   build,
		length:  w.Len(),
		current: utils.NewAtomic(w),
	}, nil
}

// Rebuild replaces the current sampler with one built over [weights]. On
// error the current sampler is kept. [weights] must have Len entries.
func (r *Reloadable) Rebuild(weights []float64) error {
	if len(weights) != r.length {
		return fmt.Errorf("%w: %d weights, expected %d", ErrInvalidDistribution, len(weights), r.length)
	}
	w, err := r.build(weights)
	if err != nil {
		return err
	}
	if w.Len() != r.length {
		return fmt.Errorf("%w: built %d weights, expected %d", ErrInvalidDistribution, w.Len(), r.length)
	}
	r.current.Set(w)
	return nil
}

// Current returns the sampler in use.
func (r *Reloadable) Current() Weighted {
	return r.current.Get()
}

func (r *Reloadable) Len() int {
	return r.length
}

func (r *Reloadable) Total() float64 {
	return r.Current().Total()
}

func (r *Reloadable) SampleValue(value float64) (int, error) {
	return r.Current().SampleValue(value)
}

func (r *Reloadable) Sample(source random.Source) (int, error) {
	return r.Current().Sample(source)
}
