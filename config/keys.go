// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey            = "config-file"
	ConfigContentKey         = "config-file-content"
	ConfigContentTypeKey     = "config-file-content-type"
	MixtureFloorKey          = "mixture-floor"
	MixtureComponentsKey     = "mixture-components"
	PositionsKey             = "positions"
	PositionsStartKey        = "positions-start"
	PositionsStepKey         = "positions-step"
	PositionsCountKey        = "positions-count"
	SamplerStrategyKey       = "sampler-strategy"
	RandomSourceKey          = "random-source"
	SeedKey                  = "seed"
	DrawsKey                 = "draws"
	WorkersKey               = "workers"
	ProgressFrequencyKey     = "progress-frequency"
	MetricsNamespaceKey      = "metrics-namespace"
	HTTPHostKey              = "http-host"
	HTTPPortKey              = "http-port"
	LogsDirKey               = "log-dir"
	LogLevelKey              = "log-level"
	LogDisplayLevelKey       = "log-display-level"
	LogFormatKey             = "log-format"
	LogRotaterMaxSizeKey     = "log-rotater-max-size"
	LogRotaterMaxFilesKey    = "log-rotater-max-files"
	LogRotaterMaxAgeKey      = "log-rotater-max-age"
	LogRotaterCompressKey    = "log-rotater-compress-enabled"
	LogDisableDisplayKey     = "log-disable-display"
)
