// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrs(t *testing.T) {
	require := require.New(t)

	var (
		errFirst  = errors.New("first")
		errSecond = errors.New("second")
	)

	errs := Errs{}
	errs.Add(nil, nil)
	require.False(errs.Errored())
	require.NoError(errs.Err)

	errs.Add(nil, errFirst)
	require.True(errs.Errored())
	require.Equal(errFirst, errs.Err)

	errs.Add(errSecond)
	require.ErrorIs(errs.Err, errFirst)
	require.ErrorIs(errs.Err, errSecond)
}
