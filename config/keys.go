// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey      = "config-file"
	EngineKey          = "engine"
	SeedKey            = "seed"
	SeedPhraseKey      = "seed-phrase"
	CountKey           = "count"
	MetricsEnabledKey  = "metrics"
	MetricsNamespace   = "metrics-namespace"
	LogsDirKey         = "log-dir"
	LogLevelKey        = "log-level"
	LogDisplayLevelKey = "log-display-level"
	LogFormatKey       = "log-format"
	LogMaxSizeKey      = "log-rotater-max-size"
	LogMaxFilesKey     = "log-rotater-max-files"
	LogMaxAgeKey       = "log-rotater-max-age"
	LogCompressKey     = "log-rotater-compress-enabled"
)
