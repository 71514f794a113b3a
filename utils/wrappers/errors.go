// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import "errors"

// Errs accumulates errors so a sequence of fallible calls can be checked once.
// Every non-nil error added is kept, joined in the order it was added.
type Errs struct{ Err error }

func (errs *Errs) Errored() bool {
	return errs.Err != nil
}

func (errs *Errs) Add(errs2 ...error) {
	for _, err := range errs2 {
		if err == nil {
			continue
		}
		if errs.Err == nil {
			errs.Err = err
			continue
		}
		errs.Err = errors.Join(errs.Err, err)
	}
}
