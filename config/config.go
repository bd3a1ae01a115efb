// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"github.com/ava-labs/prng/utils/logging"
	"github.com/ava-labs/prng/utils/sampler"
)

var (
	errConflictingSeed = errors.New("seed and seed phrase are mutually exclusive")
	errInvalidCount    = errors.New("count must be positive")
	errInvalidMaxSize  = errors.New("log max size must be positive")
	errInvalidMaxFiles = errors.New("log max files must be non-negative")
	errInvalidMaxAge   = errors.New("log max age must be non-negative")
)

// Config is the parsed configuration of the prng command.
type Config struct {
	Engine sampler.Engine `json:"engine"`
	// Seed is nil when the generator should be seeded from entropy.
	Seed  *uint64 `json:"seed,omitempty"`
	Count int     `json:"count"`

	MetricsEnabled   bool   `json:"metricsEnabled"`
	MetricsNamespace string `json:"metricsNamespace"`

	LoggingConfig logging.Config `json:"loggingConfig"`
}

// SamplerConfig returns the generator configuration described by [c].
func (c Config) SamplerConfig(log logging.Logger, registerer prometheus.Registerer) sampler.Config {
	config := sampler.Config{
		Engine: c.Engine,
		Seed:   c.Seed,
		Log:    log,
	}
	if c.MetricsEnabled {
		config.Registerer = registerer
		config.Namespace = c.MetricsNamespace
	}
	return config
}

// GetConfig reads the values defined in the [v] environment.
func GetConfig(v *viper.Viper) (Config, error) {
	engine, err := sampler.ParseEngine(v.GetString(EngineKey))
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Engine:           engine,
		Count:            v.GetInt(CountKey),
		MetricsEnabled:   v.GetBool(MetricsEnabledKey),
		MetricsNamespace: v.GetString(MetricsNamespace),
	}
	switch {
	case v.IsSet(SeedKey) && v.IsSet(SeedPhraseKey):
		return Config{}, errConflictingSeed
	case v.IsSet(SeedKey):
		seed := v.GetUint64(SeedKey)
		config.Seed = &seed
	case v.IsSet(SeedPhraseKey):
		seed := sampler.PhraseSeed(v.GetString(SeedPhraseKey))
		config.Seed = &seed
	}
	if config.Count < 1 {
		return Config{}, fmt.Errorf("%w: %d", errInvalidCount, config.Count)
	}

	config.LoggingConfig, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()
	loggingConfig.LoggerName = appName
	if v.IsSet(LogsDirKey) {
		loggingConfig.Directory = os.ExpandEnv(v.GetString(LogsDirKey))
	}

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogLevelKey)
	if v.GetString(LogDisplayLevelKey) != "" {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.LogFormat, err = logging.ToHighlight(v.GetString(LogFormatKey), os.Stderr.Fd())
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.MaxSize = v.GetInt(LogMaxSizeKey)
	if loggingConfig.MaxSize <= 0 {
		return loggingConfig, errInvalidMaxSize
	}
	loggingConfig.MaxFiles = v.GetInt(LogMaxFilesKey)
	if loggingConfig.MaxFiles < 0 {
		return loggingConfig, errInvalidMaxFiles
	}
	loggingConfig.MaxAge = v.GetDuration(LogMaxAgeKey)
	if loggingConfig.MaxAge < 0 {
		return loggingConfig, errInvalidMaxAge
	}
	loggingConfig.Compress = v.GetBool(LogCompressKey)
	return loggingConfig, nil
}
