// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mixture

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrLengthMismatch   = errors.New("length mismatch")
)

// Component is a single Gaussian bump contributing one term to the mixture
// weight of every position.
type Component struct {
	Amplitude float64 `json:"amplitude" mapstructure:"amplitude"`
	Mean      float64 `json:"mean"      mapstructure:"mean"`
	Deviation float64 `json:"deviation" mapstructure:"deviation"`
}

// Validate returns ErrInvalidParameter unless the deviation is positive and
// finite, the amplitude is non-negative and finite, and the mean is finite.
func (c Component) Validate() error {
	switch {
	case !(c.Deviation > 0) || math.IsInf(c.Deviation, 0):
		return fmt.Errorf("%w: deviation %v must be positive and finite", ErrInvalidParameter, c.Deviation)
	case !(c.Amplitude >= 0) || math.IsInf(c.Amplitude, 0):
		return fmt.Errorf("%w: amplitude %v must be non-negative and finite", ErrInvalidParameter, c.Amplitude)
	case math.IsNaN(c.Mean) || math.IsInf(c.Mean, 0):
		return fmt.Errorf("%w: mean %v must be finite", ErrInvalidParameter, c.Mean)
	default:
		return nil
	}
}

func (c Component) String() string {
	return fmt.Sprintf("{amplitude=%g mean=%g deviation=%g}", c.Amplitude, c.Mean, c.Deviation)
}
