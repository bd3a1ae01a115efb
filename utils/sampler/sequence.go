// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// Value returns a copy of a uniformly chosen element of [seq].
func Value[T any](g *Generator, seq []T) (T, error) {
	i, err := g.index(len(seq))
	if err != nil {
		var zero T
		return zero, g.reject(opValue, err)
	}
	g.metrics.draw(opValue)
	return seq[i], nil
}

// Position refers to one element of a caller-owned slice.
//
// A Position borrows the slice it was drawn from. It neither copies nor owns
// the elements, and writes through Set are visible to the caller. Any
// structural change the caller makes afterwards (an append that reallocates,
// a removal, re-slicing) invalidates the Position; ValidFor reports whether
// it still refers into a given slice.
type Position[T any] struct {
	seq   []T
	index int
}

// PositionOf returns a Position at a uniformly chosen index of [seq].
func PositionOf[T any](g *Generator, seq []T) (Position[T], error) {
	i, err := g.index(len(seq))
	if err != nil {
		return Position[T]{}, g.reject(opPosition, err)
	}
	g.metrics.draw(opPosition)
	return Position[T]{
		seq:   seq,
		index: i,
	}, nil
}

func (p Position[T]) Index() int {
	return p.index
}

// Value returns the element the position refers to. It panics on the zero
// Position.
func (p Position[T]) Value() T {
	return p.seq[p.index]
}

// Set overwrites the element in the caller's backing array.
func (p Position[T]) Set(v T) {
	p.seq[p.index] = v
}

// Valid is false only for the zero Position.
func (p Position[T]) Valid() bool {
	return p.index >= 0 && p.index < len(p.seq)
}

// ValidFor reports whether [seq] still shares the element this position refers
// to. It returns false once [seq] has been reallocated or shrunk below the
// position.
func (p Position[T]) ValidFor(seq []T) bool {
	return p.Valid() && p.index < len(seq) && &seq[p.index] == &p.seq[p.index]
}

// Subset returns [count] distinct elements of [seq] in random order.
func Subset[T any](g *Generator, seq []T, count int) ([]T, error) {
	switch {
	case count < 0:
		return nil, g.reject(opSubset, fmt.Errorf("%w: count=%d", ErrInvalidCount, count))
	case count > len(seq):
		return nil, g.reject(opSubset, fmt.Errorf("%w: count=%d len=%d", ErrOutOfRange, count, len(seq)))
	}

	u := NewUniform(g)
	u.Initialize(uint64(len(seq)))
	indices, err := u.Sample(count)
	if err != nil {
		return nil, err
	}

	subset := make([]T, count)
	for i, index := range indices {
		subset[i] = seq[index]
	}
	g.metrics.draw(opSubset)
	return subset, nil
}

// WeightedIndex returns an index of [weights] drawn with probability
// proportional to its weight.
func WeightedIndex(g *Generator, weights []uint64) (int, error) {
	return WeightedIndexFrom(g, NewWeighted(), weights)
}

// WeightedIndexFrom is WeightedIndex searching [weights] with [w].
func WeightedIndexFrom(g *Generator, w Weighted, weights []uint64) (int, error) {
	if err := w.Initialize(weights); err != nil {
		return 0, g.reject(opWeighted, err)
	}
	total := w.TotalWeight()
	if total == 0 {
		return 0, g.reject(opWeighted, fmt.Errorf("%w: no weight to sample", ErrOutOfRange))
	}

	index, err := w.Sample(g.Uint64Inclusive(total - 1))
	if err != nil {
		return 0, err
	}
	g.metrics.draw(opWeighted)
	return index, nil
}
