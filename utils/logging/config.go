// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "time"

// RotatingWriterConfig configures the lumberjack writer backing log files.
// An empty Directory disables file logging.
type RotatingWriterConfig struct {
	MaxSize   int           `json:"maxSize"` // in megabytes
	MaxFiles  int           `json:"maxFiles"`
	MaxAge    time.Duration `json:"maxAge"`
	Directory string        `json:"directory"`
	Compress  bool          `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool      `json:"disableWriterDisplaying"`
	LogLevel                Level     `json:"logLevel"`
	DisplayLevel            Level     `json:"displayLevel"`
	LogFormat               Highlight `json:"logFormat"`
	MsgPrefix               string    `json:"msgPrefix"`
	LoggerName              string    `json:"-"`
}

// DefaultConfig logs Info and above to the display and nothing to disk.
func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8,
			MaxFiles: 7,
			MaxAge:   24 * time.Hour,
		},
		LogLevel:     Debug,
		DisplayLevel: Info,
		LogFormat:    Plain,
	}
}
