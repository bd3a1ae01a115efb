// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Numeric is any integer or floating-point type.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Number returns a value uniformly distributed over the closed interval
// [floor, ceil].
//
// For integer types every value in the interval is equally likely. For
// floating-point types the result is uniform over the real interval and both
// bounds are reachable; infinite bounds are rejected.
//
// Every call derives its sample from its own bounds. Nothing is cached
// between calls.
func Number[T Numeric](g *Generator, floor, ceil T) (T, error) {
	var (
		v   T
		err error
	)
	if isFloat[T]() {
		v, err = realNumber(g, floor, ceil)
	} else {
		v, err = integerNumber(g, floor, ceil)
	}
	if err != nil {
		return 0, g.reject(opNumber, err)
	}
	g.metrics.draw(opNumber)
	return v, nil
}

// Integer is Number restricted to integer types.
func Integer[T constraints.Integer](g *Generator, floor, ceil T) (T, error) {
	return Number(g, floor, ceil)
}

// Real is Number restricted to floating-point types.
func Real[T constraints.Float](g *Generator, floor, ceil T) (T, error) {
	return Number(g, floor, ceil)
}

// Index returns an index uniformly distributed over [0, size-1].
func (g *Generator) Index(size int) (int, error) {
	i, err := g.index(size)
	if err != nil {
		return 0, g.reject(opIndex, err)
	}
	g.metrics.draw(opIndex)
	return i, nil
}

func (g *Generator) index(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("%w: size=%d", ErrEmptySequence, size)
	}
	return int(g.Uint64Inclusive(uint64(size - 1))), nil
}

// integerNumber maps [floor, ceil] onto [0, ceil-floor] in uint64 space.
// Two's complement wrapping makes this correct for every signed and unsigned
// width.
func integerNumber[T Numeric](g *Generator, floor, ceil T) (T, error) {
	if floor > ceil {
		return 0, fmt.Errorf("%w: floor=%v ceil=%v", ErrInvalidRange, floor, ceil)
	}
	base := uint64(floor)
	span := uint64(ceil) - base
	return T(base + g.Uint64Inclusive(span)), nil
}

func realNumber[T Numeric](g *Generator, floor, ceil T) (T, error) {
	lo, hi := float64(floor), float64(ceil)
	if !(lo <= hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, fmt.Errorf("%w: floor=%v ceil=%v", ErrInvalidRange, floor, ceil)
	}

	// Interpolating instead of computing lo + (hi-lo)*u keeps hi-lo from
	// overflowing when the bounds span more than MaxFloat64.
	u := g.Float64Inclusive()
	v := T(lo*(1-u) + hi*u)

	// Rounding, especially into float32, may step just outside the interval.
	switch {
	case v < floor:
		return floor, nil
	case v > ceil:
		return ceil, nil
	default:
		return v, nil
	}
}

func isFloat[T Numeric]() bool {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
