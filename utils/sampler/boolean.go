// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// Bool returns true or false with equal probability. It consumes one draw
// from the source.
func (g *Generator) Bool() bool {
	g.metrics.draw(opBool)
	return g.Uint64()>>63 == 1
}

// Chance returns true with probability [chance].
//
// A uniform draw from [0, 1) is compared against [chance], consuming exactly
// one draw from the source. A chance of 0 is never true and a chance of 1 is
// always true.
func (g *Generator) Chance(chance float64) (bool, error) {
	if !(chance >= 0 && chance <= 1) {
		return false, g.reject(opChance, fmt.Errorf("%w: chance=%v", ErrInvalidChance, chance))
	}
	g.metrics.draw(opChance)
	return g.Float64() < chance, nil
}
