// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Weighted defines how to sample a specified valued based on a provided
// weighted distribution
type Weighted interface {
	Initialize(weights []uint64) error
	// TotalWeight is the sum of the weights passed to Initialize.
	TotalWeight() uint64
	// Sample returns the index whose weight covers [sampleValue], which must
	// be in [0, TotalWeight()).
	Sample(sampleValue uint64) (int, error)
}

// NewWeighted returns a new sampler
func NewWeighted() Weighted {
	return &weightedHeap{}
}
