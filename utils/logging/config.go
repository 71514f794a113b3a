// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// RotatingWriterConfig controls the files a logger writes to.
type RotatingWriterConfig struct {
	// MaxSize is the maximum size of a log file in megabytes before it is
	// rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles is the number of rotated files to keep. 0 keeps all of them.
	MaxFiles int `json:"maxFiles"`
	// MaxAge is the number of days to keep rotated files. 0 keeps them
	// regardless of age.
	MaxAge   int  `json:"maxAge"`
	Compress bool `json:"compress"`
	// Directory holds the log files. File logging is disabled when empty.
	Directory string `json:"directory"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool   `json:"disableWriterDisplaying"`
	LogLevel                Level  `json:"logLevel"`
	DisplayLevel            Level  `json:"displayLevel"`
	LogFormat               Format `json:"logFormat"`
}

// DefaultConfig displays Info and above and logs Debug and above to files
// when a directory is set.
func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8,
			MaxFiles: 7,
			MaxAge:   0,
		},
		LogLevel:     Debug,
		DisplayLevel: Info,
		LogFormat:    Plain,
	}
}
