// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	AppName = "windowsampler"

	// EnvPrefix is prepended to the upper-cased key, with dashes turned into
	// underscores, to name the environment variable of a flag.
	EnvPrefix = "windowsampler"

	DefaultMetricsNamespace = AppName
)

func addSamplerFlags(fs *pflag.FlagSet) {
	// Mixture
	fs.Float64(MixtureFloorKey, 0, "Base weight floor B added under every gaussian bump. Must be positive")
	fs.String(MixtureComponentsKey, "", `Gaussian components as a JSON list, e.g. [{"amplitude":1,"mean":100,"deviation":50}]`)

	// Positions
	fs.StringSlice(PositionsKey, nil, "Explicit comma separated window positions. Overrides the generated positions")
	fs.Float64(PositionsStartKey, 0, "First generated window position")
	fs.Float64(PositionsStepKey, 1, "Distance between generated window positions")
	fs.Int(PositionsCountKey, 0, "Number of generated window positions")

	// Sampling
	fs.String(SamplerStrategyKey, "array", "Sampler structure. One of {array, linear, heap, alias, best}")
	fs.String(RandomSourceKey, MT19937Source, fmt.Sprintf("Random source. One of {%s, %s}", MT19937Source, Ran1Source))
	fs.Uint64(SeedKey, 1, "Seed of the random source. Worker i uses seed + i")
	fs.Int(DrawsKey, 100_000, "Total number of draws")
	fs.Int(WorkersKey, 1, "Number of goroutines drawing concurrently")
	fs.Duration(ProgressFrequencyKey, 5*time.Second, "Minimum time between progress logs")

	// Metrics
	fs.String(MetricsNamespaceKey, DefaultMetricsNamespace, "Namespace of the exported metrics")
	fs.String(HTTPHostKey, "127.0.0.1", "Address of the metrics HTTP server")
	fs.Uint(HTTPPortKey, 0, "Port of the metrics HTTP server. 0 disables the server")
}

func addLoggingFlags(fs *pflag.FlagSet) {
	fs.String(LogsDirKey, "", "Logging directory. File logging is disabled if empty")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", "The structure of log format. Defaults to 'auto' which formats terminal-like logs, when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")
	fs.Uint(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Uint(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Uint(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogRotaterCompressKey, false, "Enables the compression of rotated log files through gzip")
	fs.Bool(LogDisableDisplayKey, false, "Disables displaying raw writes on stdout")
}

// BuildFlagSet returns the complete set of flags for the sampler driver
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)

	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Ignored if %s is specified", ConfigContentKey))
	fs.String(ConfigContentKey, "", "Specifies base64 encoded config content")
	fs.String(ConfigContentTypeKey, "json", "Specifies the format of the base64 encoded config content. Available values: 'json', 'yaml', 'toml'")

	addSamplerFlags(fs)
	addLoggingFlags(fs)
	return fs
}

// BuildViper returns the viper environment from parsing config file from
// default search paths and any parsed command line flags
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return NewViper(fs)
}

// NewViper returns the viper environment of the already parsed flags [fs],
// layered over environment variables and the optional config file.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	switch {
	case v.IsSet(ConfigContentKey):
		configContentB64 := v.GetString(ConfigContentKey)
		configBytes, err := decodeContent(configContentB64)
		if err != nil {
			return nil, fmt.Errorf("unable to decode base64 config content: %w", err)
		}
		v.SetConfigType(v.GetString(ConfigContentTypeKey))
		if err := v.ReadConfig(strings.NewReader(string(configBytes))); err != nil {
			return nil, err
		}
	case v.IsSet(ConfigFileKey):
		filename := os.ExpandEnv(v.GetString(ConfigFileKey))
		v.SetConfigFile(filename)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
