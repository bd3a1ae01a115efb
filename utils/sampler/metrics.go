// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/prng/utils/wrappers"
)

const opLabel = "op"

const (
	opNumber   = "number"
	opIndex    = "index"
	opBool     = "bool"
	opChance   = "chance"
	opValue    = "value"
	opPosition = "position"
	opSubset   = "subset"
	opWeighted = "weighted"
)

// A nil *metrics records nothing.
type metrics struct {
	draws      *prometheus.CounterVec
	violations *prometheus.CounterVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		draws: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "draws",
				Help:      "# of samples drawn",
			},
			[]string{opLabel},
		),
		violations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "precondition_violations",
				Help:      "# of calls rejected for invalid arguments",
			},
			[]string{opLabel},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.draws),
		registerer.Register(m.violations),
	)
	return m, errs.Err
}

func (m *metrics) draw(op string) {
	if m != nil {
		m.draws.WithLabelValues(op).Inc()
	}
}

func (m *metrics) violation(op string) {
	if m != nil {
		m.violations.WithLabelValues(op).Inc()
	}
}
