// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prng

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/prng/utils/sampler"
)

const iterations = 10_000

func TestEngineIsShared(t *testing.T) {
	require.Same(t, Engine(), Engine())
	require.Same(t, sampler.Default(), Engine())
}

func TestNumber(t *testing.T) {
	require := require.New(t)

	for i := 0; i < iterations; i++ {
		n, err := Number(-5, 5)
		require.NoError(err)
		require.GreaterOrEqual(n, -5)
		require.LessOrEqual(n, 5)

		f, err := Number(0.25, 0.5)
		require.NoError(err)
		require.GreaterOrEqual(f, 0.25)
		require.LessOrEqual(f, 0.5)
	}

	_, err := Number(uint(2), uint(1))
	require.ErrorIs(err, sampler.ErrInvalidRange)
}

func TestIndex(t *testing.T) {
	require := require.New(t)

	seen := make(map[int]struct{})
	for i := 0; i < iterations; i++ {
		index, err := Index(4)
		require.NoError(err)
		require.Less(index, 4)
		seen[index] = struct{}{}
	}
	require.Len(seen, 4)

	_, err := Index(0)
	require.ErrorIs(err, sampler.ErrEmptySequence)
}

func TestBoolAndChance(t *testing.T) {
	require := require.New(t)

	var sawTrue, sawFalse bool
	for i := 0; i < iterations; i++ {
		if Bool() {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	require.True(sawTrue)
	require.True(sawFalse)

	always, err := Chance(1)
	require.NoError(err)
	require.True(always)

	never, err := Chance(0)
	require.NoError(err)
	require.False(never)

	_, err = Chance(1.5)
	require.ErrorIs(err, sampler.ErrInvalidChance)
}

func TestSequence(t *testing.T) {
	require := require.New(t)

	seq := []string{"rock", "paper", "scissors"}

	v, err := Value(seq)
	require.NoError(err)
	require.Contains(seq, v)

	p, err := Position(seq)
	require.NoError(err)
	require.Equal(seq[p.Index()], p.Value())

	subset, err := Subset(seq, 2)
	require.NoError(err)
	require.Len(subset, 2)
	require.NotEqual(subset[0], subset[1])

	index, err := WeightedIndex([]uint64{0, 0, 1})
	require.NoError(err)
	require.Equal(2, index)

	_, err = Value([]string{})
	require.ErrorIs(err, sampler.ErrEmptySequence)

	_, err = Position([]string(nil))
	require.ErrorIs(err, sampler.ErrEmptySequence)
}
