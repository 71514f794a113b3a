// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package random

var _ Source = (*Ran1)(nil)

const (
	ran1TableSize  = 32
	ran1Multiplier = 16807
	ran1Modulus    = 2147483647
	ran1Quotient   = 127773 // ran1Modulus / ran1Multiplier
	ran1Remainder  = 2836   // ran1Modulus % ran1Multiplier

	ran1Scale = 1.0 / ran1Modulus
	// Largest value returned by Float64, keeps draws strictly below 1.
	ran1Max = 1.0 - 1.2e-7
)

// The table index divisor is fractional. Using the integer quotient shifts
// the shuffle for draws that are exact multiples of it, which would change
// the sequence.
var ran1Divisor = 1 + float64(ran1Modulus-1)/ran1TableSize

// Ran1 is the Park-Miller minimal standard generator with a Bays-Durham
// shuffle. It reproduces the seeded sequences that slot simulations are
// recorded with, so results can be replayed bit-for-bit.
type Ran1 struct {
	idum  int64
	iy    int64
	table [ran1TableSize]int64
	seed  int32
}

// NewRan1 returns a generator seeded with [seed].
func NewRan1(seed int32) *Ran1 {
	r := &Ran1{}
	r.SetSeed(seed)
	return r
}

// SetSeed restarts the sequence from [seed]. Negative and non-negative seeds
// of the same magnitude produce the same sequence.
func (r *Ran1) SetSeed(seed int32) {
	r.seed = seed
	r.idum = int64(seed)
	if seed >= 0 {
		r.idum = -int64(seed)
	}
	r.iy = 0
}

// SetSeedIfDifferent reseeds only when [seed] differs from the current seed,
// so repeated calls with the same seed continue the current sequence.
func (r *Ran1) SetSeedIfDifferent(seed int32) {
	if r.seed != seed {
		r.SetSeed(seed)
	}
}

// Seed returns the current seed.
func (r *Ran1) Seed() int32 {
	return r.seed
}

// Next returns the next value in [1, ran1Modulus-1].
func (r *Ran1) Next() int64 {
	if r.idum <= 0 || r.iy == 0 {
		if -r.idum < 1 {
			r.idum = 1
		} else {
			r.idum = -r.idum
		}
		for j := ran1TableSize + 7; j >= 0; j-- {
			r.step()
			if j < ran1TableSize {
				r.table[j] = r.idum
			}
		}
		r.iy = r.table[0]
	}

	r.step()
	j := int(float64(r.iy) / ran1Divisor)
	r.iy = r.table[j]
	r.table[j] = r.idum
	return r.iy
}

// step advances idum using Schrage's method to avoid overflow.
func (r *Ran1) step() {
	k := r.idum / ran1Quotient
	r.idum = ran1Multiplier*(r.idum-k*ran1Quotient) - ran1Remainder*k
	if r.idum < 0 {
		r.idum += ran1Modulus
	}
}

func (r *Ran1) Float64() (float64, error) {
	f := ran1Scale * float64(r.Next())
	if f > ran1Max {
		f = ran1Max
	}
	return f, nil
}

// Range returns a value in [low, high).
func (r *Ran1) Range(low, high float64) float64 {
	f, _ := r.Float64()
	return f*(high-low) + low
}
