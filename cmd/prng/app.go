// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/prng/config"
	"github.com/ava-labs/prng/utils/logging"
	"github.com/ava-labs/prng/utils/sampler"
)

// app holds the state shared by every subcommand of a single invocation.
type app struct {
	config     config.Config
	logFactory logging.Factory
	log        logging.Logger
	registry   *prometheus.Registry
	generator  *sampler.Generator
}

func newCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:               "prng",
		Short:             "Sample numbers, booleans and values from a pseudo-random generator",
		SuggestFor:        []string{"rand", "random"},
		PersistentPreRunE: a.initialize,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	config.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		a.numberCommand(),
		a.indexCommand(),
		a.boolCommand(),
		a.pickCommand(),
		a.subsetCommand(),
		a.weightedCommand(),
	)
	return cmd
}

func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	v, err := config.BuildViper(cmd.Flags(), nil)
	if err != nil {
		return err
	}
	a.config, err = config.GetConfig(v)
	if err != nil {
		return err
	}

	a.logFactory = logging.NewFactory(a.config.LoggingConfig)
	a.log, err = a.logFactory.Make(a.config.LoggingConfig.LoggerName)
	if err != nil {
		a.logFactory.Close()
		return err
	}

	a.registry = prometheus.NewRegistry()
	a.generator, err = sampler.NewGenerator(a.config.SamplerConfig(a.log, a.registry))
	if err != nil {
		a.log.Error("couldn't create generator", zap.Error(err))
		a.logFactory.Close()
		return err
	}
	return nil
}

// runE wraps [sample] so that it runs [config.Config.Count] times and the
// invocation's resources are released afterwards. A panic in [sample] is
// logged before it propagates.
func (a *app) runE(sample func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.logFactory.Close()

		a.log.Debug("sampling",
			zap.String("command", cmd.Name()),
			zap.Int("count", a.config.Count),
		)
		for i := 0; i < a.config.Count; i++ {
			var err error
			a.log.RecoverAndPanic(func() {
				err = sample(cmd, args)
			})
			if err != nil {
				a.log.Debug("sampling failed",
					zap.String("command", cmd.Name()),
					zap.Error(err),
				)
				return err
			}
		}

		if !a.config.MetricsEnabled {
			return nil
		}
		return writeMetrics(cmd.ErrOrStderr(), a.registry)
	}
}
