// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ava-labs/windowsampler/utils/logging"
	"github.com/ava-labs/windowsampler/utils/mixture"
	"github.com/ava-labs/windowsampler/utils/sampler"
)

// Random sources the driver can draw from.
const (
	MT19937Source = "mt19937"
	Ran1Source    = "ran1"
)

const (
	// maxPositions bounds generated positions so a typo can't allocate
	// unbounded memory.
	maxPositions = 1 << 24
)

var (
	errInvalidFloor        = errors.New("mixture floor must be positive and finite")
	errNoPositions         = errors.New("no window positions")
	errTooManyPositions    = errors.New("too many window positions")
	errInvalidStep         = errors.New("position step must be positive and finite")
	errInvalidPosition     = errors.New("window positions must be finite")
	errInvalidDraws        = errors.New("number of draws can't be negative")
	errInvalidWorkers      = errors.New("number of workers must be positive")
	errUnknownRandomSource = errors.New("unknown random source")
	errInvalidFrequency    = errors.New("progress frequency must be positive")
	errInvalidComponents   = errors.New("invalid mixture components")
	errInvalidPort         = errors.New("invalid http port")
)

// Config is everything the driver needs to evaluate a mixture, build a
// sampler and draw from it.
type Config struct {
	Floor      float64             `json:"floor"`
	Components []mixture.Component `json:"components"`
	Positions  []float64           `json:"positions"`

	Strategy     sampler.Strategy `json:"strategy"`
	RandomSource string           `json:"randomSource"`
	Seed         uint64           `json:"seed"`
	Draws        int              `json:"draws"`
	Workers      int              `json:"workers"`

	ProgressFrequency time.Duration `json:"progressFrequency"`

	MetricsNamespace string `json:"metricsNamespace"`
	HTTPHost         string `json:"httpHost"`
	HTTPPort         uint16 `json:"httpPort"`

	Logging logging.Config `json:"loggingConfig"`
}

func decodeContent(content string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(content)
}

func getComponents(v *viper.Viper) ([]mixture.Component, error) {
	var components []mixture.Component
	switch raw := v.Get(MixtureComponentsKey).(type) {
	case nil:
	case string:
		// Flags and environment variables hold the list as JSON.
		if strings.TrimSpace(raw) == "" {
			break
		}
		if err := json.Unmarshal([]byte(raw), &components); err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidComponents, err)
		}
	default:
		// Config files hold the list natively.
		if err := v.UnmarshalKey(MixtureComponentsKey, &components); err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidComponents, err)
		}
	}

	for i, c := range components {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: component %d: %w", errInvalidComponents, i, err)
		}
	}
	return components, nil
}

func getPositions(v *viper.Viper) ([]float64, error) {
	var positions []float64
	if v.IsSet(PositionsKey) {
		if err := v.UnmarshalKey(PositionsKey, &positions); err != nil {
			return nil, err
		}
	}
	if len(positions) == 0 {
		start := v.GetFloat64(PositionsStartKey)
		step := v.GetFloat64(PositionsStepKey)
		count := v.GetInt(PositionsCountKey)
		switch {
		case count <= 0:
			return nil, errNoPositions
		case count > maxPositions:
			return nil, fmt.Errorf("%w: %d > %d", errTooManyPositions, count, maxPositions)
		case !(step > 0) || math.IsInf(step, 0):
			return nil, fmt.Errorf("%w: %v", errInvalidStep, step)
		}
		positions = make([]float64, count)
		for i := range positions {
			positions[i] = start + float64(i)*step
		}
	}

	for i, p := range positions {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: position %d is %v", errInvalidPosition, i, p)
		}
	}
	return positions, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()
	if v.IsSet(LogsDirKey) {
		loggingConfig.Directory = filepath.Clean(os.ExpandEnv(v.GetString(LogsDirKey)))
	}

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogLevelKey)
	if v.IsSet(LogDisplayLevelKey) && v.GetString(LogDisplayLevelKey) != "" {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey), os.Stdout.Fd())
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.MaxSize = int(v.GetUint(LogRotaterMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogRotaterMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogRotaterMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogRotaterCompressKey)
	loggingConfig.DisableWriterDisplaying = v.GetBool(LogDisableDisplayKey)
	return loggingConfig, nil
}

// GetConfig reads and validates the driver configuration from [v].
func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		Floor:             v.GetFloat64(MixtureFloorKey),
		RandomSource:      strings.ToLower(v.GetString(RandomSourceKey)),
		Seed:              v.GetUint64(SeedKey),
		Draws:             v.GetInt(DrawsKey),
		Workers:           v.GetInt(WorkersKey),
		ProgressFrequency: v.GetDuration(ProgressFrequencyKey),
		MetricsNamespace:  v.GetString(MetricsNamespaceKey),
		HTTPHost:          v.GetString(HTTPHostKey),
	}

	port := v.GetUint(HTTPPortKey)
	if port > math.MaxUint16 {
		return Config{}, fmt.Errorf("%w: %d", errInvalidPort, port)
	}
	config.HTTPPort = uint16(port)

	switch {
	case !(config.Floor > 0) || math.IsInf(config.Floor, 0):
		return Config{}, fmt.Errorf("%w: %v", errInvalidFloor, config.Floor)
	case config.Draws < 0:
		return Config{}, fmt.Errorf("%w: %d", errInvalidDraws, config.Draws)
	case config.Workers <= 0:
		return Config{}, fmt.Errorf("%w: %d", errInvalidWorkers, config.Workers)
	case config.ProgressFrequency <= 0:
		return Config{}, fmt.Errorf("%w: %s", errInvalidFrequency, config.ProgressFrequency)
	case config.RandomSource != MT19937Source && config.RandomSource != Ran1Source:
		return Config{}, fmt.Errorf("%w: %q", errUnknownRandomSource, config.RandomSource)
	}

	var err error
	config.Strategy, err = sampler.ParseStrategy(v.GetString(SamplerStrategyKey))
	if err != nil {
		return Config{}, err
	}

	config.Components, err = getComponents(v)
	if err != nil {
		return Config{}, err
	}

	config.Positions, err = getPositions(v)
	if err != nil {
		return Config{}, err
	}

	config.Logging, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}
