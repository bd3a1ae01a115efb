// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/prng/utils/logging"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error {
	return nil
}

func TestGeneratorMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	seed := uint64(50)
	g, err := NewGenerator(Config{
		Seed:       &seed,
		Registerer: registry,
		Namespace:  "prng",
	})
	require.NoError(err)

	_, err = Number(g, 1, 6)
	require.NoError(err)
	_, err = g.Index(3)
	require.NoError(err)
	g.Bool()
	_, err = Value(g, []int{1, 2})
	require.NoError(err)

	_, err = g.Index(0)
	require.Error(err)
	_, err = g.Chance(-1)
	require.Error(err)

	require.Equal(1.0, testutil.ToFloat64(g.metrics.draws.WithLabelValues(opNumber)))
	require.Equal(1.0, testutil.ToFloat64(g.metrics.draws.WithLabelValues(opIndex)))
	require.Equal(1.0, testutil.ToFloat64(g.metrics.draws.WithLabelValues(opBool)))
	// Value draws its index internally without counting an index draw
	require.Equal(1.0, testutil.ToFloat64(g.metrics.draws.WithLabelValues(opValue)))
	require.Equal(1.0, testutil.ToFloat64(g.metrics.violations.WithLabelValues(opIndex)))
	require.Equal(1.0, testutil.ToFloat64(g.metrics.violations.WithLabelValues(opChance)))

	// a second generator cannot register the same metrics
	_, err = NewGenerator(Config{
		Seed:       &seed,
		Registerer: registry,
		Namespace:  "prng",
	})
	require.Error(err)
}

func TestGeneratorLogsViolations(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := logging.NewLogger("", logging.NewWrappedCore(logging.Verbo, buf, logging.Plain.ConsoleEncoder()))

	seed := uint64(51)
	g, err := NewGenerator(Config{
		Engine: Xoshiro256PlusPlus,
		Seed:   &seed,
		Log:    log,
	})
	require.NoError(err)
	require.Contains(buf.String(), "created generator")
	require.Contains(buf.String(), "xoshiro256++")

	_, err = Value(g, []string{})
	require.ErrorIs(err, ErrEmptySequence)
	require.Contains(buf.String(), "precondition violated")
	require.Contains(buf.String(), opValue)
}
