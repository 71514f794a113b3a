// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("non-nil error")

type testApp struct {
	startErr error
	exitCode int
	exitErr  error
}

func (a *testApp) Start() error {
	return a.startErr
}

func (*testApp) Stop() error {
	return nil
}

func (a *testApp) ExitCode() (int, error) {
	return a.exitCode, a.exitErr
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		app      *testApp
		expected int
	}{
		{
			name:     "success",
			app:      &testApp{},
			expected: 0,
		},
		{
			name:     "reported exit code",
			app:      &testApp{exitCode: 3},
			expected: 3,
		},
		{
			name:     "start failure",
			app:      &testApp{startErr: errTest},
			expected: 1,
		},
		{
			name:     "run failure",
			app:      &testApp{exitErr: errTest},
			expected: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, Run(test.app))
		})
	}
}

func TestRunSampler(t *testing.T) {
	require := require.New(t)

	cfg := testConfig()
	cfg.Draws = 1_000
	cfg.Workers = 2
	a := newTestApp(t, cfg)
	require.Zero(Run(a))
	require.Equal(uint64(cfg.Draws), a.completed.Load())
}
