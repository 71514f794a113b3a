// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

var allLevels = []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo}

func TestToLevel(t *testing.T) {
	for _, level := range allLevels {
		parsed, err := ToLevel(level.String())
		require.NoError(t, err)
		require.Equal(t, level, parsed)

		parsed, err = ToLevel(level.LowerString())
		require.NoError(t, err)
		require.Equal(t, level, parsed)
	}

	_, err := ToLevel("loud")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLevelOrdering(t *testing.T) {
	for i := 1; i < len(allLevels); i++ {
		require.Less(t, allLevels[i], allLevels[i-1])
	}
}

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	for _, level := range allLevels {
		b, err := json.Marshal(level)
		require.NoError(err)

		var parsed Level
		require.NoError(json.Unmarshal(b, &parsed))
		require.Equal(level, parsed)
	}

	var level Level
	err := json.Unmarshal([]byte(`"loud"`), &level)
	require.ErrorIs(err, ErrUnknownLevel)

	require.Equal("UNKNO", Level(100).String())
	require.Equal("unkno", Level(100).LowerString())
}
