// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Uniform samples values without replacement in the provided range
type Uniform interface {
	Initialize(length uint64)
	// Sample returns [length] distinct values. It calls Reset first.
	Sample(length int) ([]uint64, error)

	Reset()
	Next() (uint64, error)
}

// NewUniform returns a new sampler that draws from [g].
func NewUniform(g *Generator) Uniform {
	return &uniformResample{rng: g}
}
