// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/ava-labs/prng/utils/logging"
)

var (
	defaultOnce      sync.Once
	defaultGenerator *Generator
)

// Default returns the process-wide generator.
//
// The generator is constructed on the first call, seeded from the platform
// entropy source at that moment, and reused for the rest of the process
// lifetime. It is never reseeded. If the entropy source fails, Default panics.
func Default() *Generator {
	defaultOnce.Do(func() {
		g, err := NewGenerator(Config{Engine: MT19937})
		if err != nil {
			panic(err)
		}
		defaultGenerator = g
	})
	return defaultGenerator
}

type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// Generator serializes access to a Source and derives every sample from it.
// Generator is safe for concurrent use.
type Generator struct {
	lock   sync.Mutex
	source Source

	log     logging.Logger
	metrics *metrics
}

// New returns a generator that draws from [source]. The source must not be
// used by anything else afterwards.
func New(source Source) *Generator {
	return &Generator{
		source: source,
		log:    logging.NoLog{},
	}
}

// NewGenerator builds a generator as described by [config].
func NewGenerator(config Config) (*Generator, error) {
	engine := config.Engine
	if engine == "" {
		engine = MT19937
	}

	var (
		source Source
		err    error
	)
	if config.Seed != nil {
		source, err = NewSource(engine, *config.Seed)
	} else {
		source, err = newEntropySource(engine)
	}
	if err != nil {
		return nil, err
	}

	g := New(source)
	if config.Log != nil {
		g.log = config.Log
	}
	if config.Registerer != nil {
		g.metrics, err = newMetrics(config.Namespace, config.Registerer)
		if err != nil {
			return nil, err
		}
	}

	g.log.Debug("created generator",
		zap.Stringer("engine", engine),
		zap.Bool("deterministic", config.Seed != nil),
	)
	return g, nil
}

// Uint64 returns a random number in [0, MaxUint64].
func (g *Generator) Uint64() uint64 {
	// Note: We must grab the lock here because Source.Uint64 internally
	// modifies state.
	g.lock.Lock()
	n := g.source.Uint64()
	g.lock.Unlock()
	return n
}

// Uint64Inclusive returns a pseudo-random number in [0,n].
func (g *Generator) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is power of two, so we can just mask
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of the
	// compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return g.Uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we get a
	// number in the requested range.
	case n > math.MaxInt64:
		v := g.Uint64()
		for v > n {
			v = g.Uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is less
	// than or equal to MaxUint64/2. We can't easily find k such that k*(n+1) is
	// less than or equal to MaxUint64 because the calculation would overflow.
	//
	// ref: https://github.com/golang/go/blob/ce10e9d84574112b224eae88dc4e0f43710808de/src/math/rand/rand.go#L127-L132
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := g.uint63()
		for v > maximum {
			v = g.uint63()
		}
		return v % (n + 1)
	}
}

// Float64 returns a pseudo-random number in [0,1) with 53 bits of precision.
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()>>11) * 0x1p-53
}

// Float64Inclusive returns a pseudo-random number in [0,1] with 53 bits of
// precision. Both endpoints are reachable.
func (g *Generator) Float64Inclusive() float64 {
	return float64(g.Uint64Inclusive(1<<53)) * 0x1p-53
}

// uint63 returns a random number in [0, MaxInt64]
func (g *Generator) uint63() uint64 {
	return g.Uint64() & math.MaxInt64
}

func (g *Generator) reject(op string, err error) error {
	g.metrics.violation(op)
	g.log.Verbo("precondition violated",
		zap.String("op", op),
		zap.Error(err),
	)
	return err
}
