// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrsKeepsFirst(t *testing.T) {
	require := require.New(t)

	var (
		errFirst  = errors.New("first")
		errSecond = errors.New("second")
	)

	errs := Errs{}
	errs.Add(nil, nil)
	require.NoError(errs.Err)

	errs.Add(nil, errFirst, errSecond)
	require.ErrorIs(errs.Err, errFirst)

	errs.Add(errSecond)
	require.ErrorIs(errs.Err, errFirst)
}
