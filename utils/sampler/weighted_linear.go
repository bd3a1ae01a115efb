// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sort"

	safemath "github.com/ava-labs/prng/utils/math"
)

var _ Weighted = (*weightedLinear)(nil)

type weightedLinearElement struct {
	cumulativeWeight uint64
	index            int
}

// Sampling is performed by executing a linear search over the provided elements
// in the order of their probabilistic occurrence.
//
// Initialization takes O(n * log(n)) time, where n is the number of elements
// that can be sampled.
// Sampling can take up to O(n) time. As the distribution becomes more biased,
// sampling will become faster in expectation.
type weightedLinear struct {
	arr []weightedLinearElement
}

// NewLinearWeighted returns a Weighted sampler that favors small or heavily
// skewed distributions.
func NewLinearWeighted() Weighted {
	return &weightedLinear{}
}

func (s *weightedLinear) Initialize(weights []uint64) error {
	numWeights := len(weights)
	if numWeights <= cap(s.arr) {
		s.arr = s.arr[:numWeights]
	} else {
		s.arr = make([]weightedLinearElement, numWeights)
	}

	for i, weight := range weights {
		s.arr[i] = weightedLinearElement{
			cumulativeWeight: weight,
			index:            i,
		}
	}

	// Optimize so that the most probable values are at the front of the array.
	// Note that this sorts in order of decreasing weight.
	sort.Slice(s.arr, func(i, j int) bool {
		return s.arr[i].cumulativeWeight > s.arr[j].cumulativeWeight
	})

	for i := 1; i < len(s.arr); i++ {
		newWeight, err := safemath.Add64(
			s.arr[i-1].cumulativeWeight,
			s.arr[i].cumulativeWeight,
		)
		if err != nil {
			s.arr = s.arr[:0]
			return err
		}
		s.arr[i].cumulativeWeight = newWeight
	}

	return nil
}

func (s *weightedLinear) TotalWeight() uint64 {
	if len(s.arr) == 0 {
		return 0
	}
	return s.arr[len(s.arr)-1].cumulativeWeight
}

func (s *weightedLinear) Sample(value uint64) (int, error) {
	if len(s.arr) == 0 || s.arr[len(s.arr)-1].cumulativeWeight <= value {
		return 0, ErrOutOfRange
	}

	index := 0
	for {
		if elem := s.arr[index]; value < elem.cumulativeWeight {
			return elem.index, nil
		}
		index++
	}
}
