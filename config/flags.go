// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/prng/utils/sampler"
)

const (
	appName   = "prng"
	envPrefix = "prng"
)

// AddFlags registers every configuration flag on [fs].
func AddFlags(fs *pflag.FlagSet) {
	engines := make([]string, len(sampler.Engines))
	for i, engine := range sampler.Engines {
		engines[i] = engine.String()
	}

	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Values in the file are overridden by flags and %s_ environment variables", strings.ToUpper(envPrefix)))

	// Generator
	fs.String(EngineKey, sampler.MT19937.String(), fmt.Sprintf("Pseudo-random engine. Should be one of {%s}", strings.Join(engines, ", ")))
	fs.Uint64(SeedKey, 0, "Seed for a deterministic generator. If unset, the generator is seeded from the platform entropy source")
	fs.String(SeedPhraseKey, "", fmt.Sprintf("Phrase hashed into the seed of a deterministic generator. Mutually exclusive with --%s", SeedKey))
	fs.IntP(CountKey, "n", 1, "Number of samples to produce")

	// Metrics
	fs.Bool(MetricsEnabledKey, false, "If true, print the generator's counters to stderr on exit")
	fs.String(MetricsNamespace, appName, "Namespace of the generator's metrics")

	// Logging
	fs.String(LogsDirKey, "", "Logging directory. If empty, logs are only displayed")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", "The structure of log format. Should be one of {auto, plain, colors, json}")
	fs.Int(LogMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Int(LogMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Duration(LogMaxAgeKey, 24*time.Hour, "The maximum age to retain old log files. 0 means retain all old log files")
	fs.Bool(LogCompressKey, false, "If true, rotated log files are compressed with gzip")
}

// BuildFlagSet returns the complete set of flags for prng.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}

// BuildViper returns the viper environment layering [fs], environment
// variables and the optional config file, in that order of precedence.
// [fs] is parsed with [args] unless it has been parsed already.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if !fs.Parsed() {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return v, nil
}
