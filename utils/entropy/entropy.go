// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package entropy reads non-deterministic seed material from the platform.
//
// It is the only place in this module where true entropy enters a generator.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Reader is the platform entropy source. It is a variable so tests can
// simulate a failing source.
var Reader io.Reader = rand.Reader

// Uint64 returns 64 bits read from [Reader].
func Uint64() (uint64, error) {
	var b [8]byte
	if err := Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Read fills [b] from [Reader].
func Read(b []byte) error {
	if _, err := io.ReadFull(Reader, b); err != nil {
		return fmt.Errorf("read entropy: %w", err)
	}
	return nil
}
