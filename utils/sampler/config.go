// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/prng/utils/logging"
)

type Config struct {
	// Engine defaults to MT19937.
	Engine Engine

	// Seed makes the generator deterministic. When nil, the generator is
	// seeded from the platform entropy source.
	Seed *uint64

	// Log defaults to logging.NoLog.
	Log logging.Logger

	// Registerer, if non-nil, receives the generator's metrics.
	Registerer prometheus.Registerer
	Namespace  string
}
