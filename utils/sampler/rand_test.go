// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newSeededGenerator(t *testing.T, seed uint64) *Generator {
	g, err := NewGenerator(Config{Seed: &seed})
	require.NoError(t, err)
	return g
}

type testSource struct {
	values []uint64
	index  int
}

func (s *testSource) Uint64() uint64 {
	v := s.values[s.index]
	s.index++
	return v
}

func TestDefaultIsShared(t *testing.T) {
	require := require.New(t)

	g := Default()
	require.NotNil(g)
	require.Same(g, Default())
}

func TestDefaultConcurrentUse(t *testing.T) {
	const (
		numGoroutines = 8
		numDraws      = 1000
	)

	var eg errgroup.Group
	for i := 0; i < numGoroutines; i++ {
		eg.Go(func() error {
			g := Default()
			for j := 0; j < numDraws; j++ {
				if v := g.Uint64Inclusive(9); v > 9 {
					return fmt.Errorf("sampled %d outside [0, 9]", v)
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

func TestSeededGeneratorsMatch(t *testing.T) {
	require := require.New(t)

	a := newSeededGenerator(t, 5489)
	b := newSeededGenerator(t, 5489)
	for i := 0; i < 100; i++ {
		require.Equal(a.Uint64(), b.Uint64())
	}

	c := newSeededGenerator(t, 1)
	d := newSeededGenerator(t, 2)
	require.NotEqual(c.Uint64(), d.Uint64())
}

func TestUint64Inclusive(t *testing.T) {
	tests := []struct {
		name     string
		n        uint64
		values   []uint64
		expected uint64
	}{
		{
			name:     "mask power of two",
			n:        7,
			values:   []uint64{0xff},
			expected: 7,
		},
		{
			name:     "mask max",
			n:        math.MaxUint64,
			values:   []uint64{42},
			expected: 42,
		},
		{
			name:     "large n resamples",
			n:        math.MaxInt64 + 1,
			values:   []uint64{math.MaxUint64, math.MaxInt64 + 1},
			expected: math.MaxInt64 + 1,
		},
		{
			name:     "small n modulo",
			n:        9,
			values:   []uint64{23},
			expected: 3,
		},
		{
			name: "small n rejects biased tail",
			n:    2,
			// (1<<63)%3 == 2 so the two largest uint63 values are rejected
			values:   []uint64{math.MaxInt64, 4},
			expected: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			source := &testSource{values: test.values}
			g := New(source)
			require.Equal(test.expected, g.Uint64Inclusive(test.n))
			require.Equal(len(test.values), source.index)
		})
	}
}

func TestFloat64Bounds(t *testing.T) {
	require := require.New(t)

	ctrl := gomock.NewController(t)
	source := NewMockSource(ctrl)
	g := New(source)

	source.EXPECT().Uint64().Return(uint64(0))
	require.Zero(g.Float64())

	source.EXPECT().Uint64().Return(uint64(math.MaxUint64))
	f := g.Float64()
	require.Less(f, 1.0)
	require.Greater(f, 0.99)

	source.EXPECT().Uint64().Return(uint64(0))
	require.Zero(g.Float64Inclusive())
}

func TestFloat64InclusiveReachesOne(t *testing.T) {
	require := require.New(t)

	// v % (1<<53 + 1) == 1<<53 with v = 1<<53.
	g := New(&testSource{values: []uint64{1 << 53}})
	require.Equal(1.0, g.Float64Inclusive())
}
