// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prng samples numbers, booleans and sequence elements from a single
// process-wide pseudo-random generator.
//
// The generator is created on first use, seeded once from the platform entropy
// source, and shared by every caller in the process. Draws are therefore not
// reproducible between runs. Code that needs a fixed seed, a different engine,
// metrics or logging should build its own generator with sampler.NewGenerator
// and use the functions of the sampler package directly.
//
// The generator is not suitable for cryptographic use.
package prng

import "github.com/ava-labs/prng/utils/sampler"

// Engine returns the process-wide generator.
func Engine() *sampler.Generator {
	return sampler.Default()
}

// Number returns a value uniformly distributed over [floor, ceil]. See
// sampler.Number.
func Number[T sampler.Numeric](floor, ceil T) (T, error) {
	return sampler.Number(sampler.Default(), floor, ceil)
}

// Index returns an index uniformly distributed over [0, size-1].
func Index(size int) (int, error) {
	return sampler.Default().Index(size)
}

// Bool returns true or false with equal probability.
func Bool() bool {
	return sampler.Default().Bool()
}

// Chance returns true with probability [chance], which must be in [0, 1].
func Chance(chance float64) (bool, error) {
	return sampler.Default().Chance(chance)
}

// Value returns a copy of a uniformly chosen element of [seq].
func Value[T any](seq []T) (T, error) {
	return sampler.Value(sampler.Default(), seq)
}

// Position returns a reference to a uniformly chosen element of [seq]. The
// reference is invalidated by any structural change the caller makes to [seq]
// afterwards.
func Position[T any](seq []T) (sampler.Position[T], error) {
	return sampler.PositionOf(sampler.Default(), seq)
}

// Subset returns [count] distinct elements of [seq].
func Subset[T any](seq []T, count int) ([]T, error) {
	return sampler.Subset(sampler.Default(), seq, count)
}

// WeightedIndex returns an index of [weights] drawn with probability
// proportional to its weight.
func WeightedIndex(weights []uint64) (int, error) {
	return sampler.WeightedIndex(sampler.Default(), weights)
}
