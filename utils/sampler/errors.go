// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by every precondition violation.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidRange  = fmt.Errorf("%w: invalid range", ErrInvalidArgument)
	ErrEmptySequence = fmt.Errorf("%w: empty sequence", ErrInvalidArgument)
	ErrInvalidChance = fmt.Errorf("%w: chance outside [0, 1]", ErrInvalidArgument)
	ErrInvalidCount  = fmt.Errorf("%w: negative count", ErrInvalidArgument)

	ErrOutOfRange    = errors.New("out of range")
	ErrUnknownEngine = errors.New("unknown engine")
)
