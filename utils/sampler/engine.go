// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/spaolacci/murmur3"
	"golang.org/x/crypto/chacha20"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/ava-labs/prng/utils/entropy"
)

// Engine names the algorithm behind a Source.
type Engine string

const (
	// MT19937 is the 32-bit Mersenne Twister. Only the low 32 bits of a seed
	// are used.
	MT19937            Engine = "mt19937"
	MT19937_64         Engine = "mt19937_64"
	Xoshiro256PlusPlus Engine = "xoshiro256++"
	// ChaCha20 draws from a ChaCha20 keystream. An entropy seeded ChaCha20
	// source is keyed with a full 256 bits.
	ChaCha20 Engine = "chacha20"
)

// Engines lists every supported engine.
var Engines = []Engine{
	MT19937,
	MT19937_64,
	Xoshiro256PlusPlus,
	ChaCha20,
}

func (e Engine) String() string {
	return string(e)
}

// ParseEngine is the inverse of Engine.String(). Matching is case
// insensitive.
func ParseEngine(s string) (Engine, error) {
	for _, e := range Engines {
		if strings.EqualFold(s, string(e)) {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEngine, s)
}

// PhraseSeed hashes [phrase] into a seed, so that a memorable string can
// stand in for a number.
func PhraseSeed(phrase string) uint64 {
	return murmur3.Sum64([]byte(phrase))
}

// NewSource returns a deterministic [engine] source seeded with [seed].
func NewSource(engine Engine, seed uint64) (Source, error) {
	switch engine {
	case MT19937:
		source := prng.NewMT19937()
		source.Seed(seed)
		return source, nil
	case MT19937_64:
		source := prng.NewMT19937_64()
		source.Seed(seed)
		return source, nil
	case Xoshiro256PlusPlus:
		return prng.NewXoshiro256plusplus(seed), nil
	case ChaCha20:
		var key [chacha20.KeySize]byte
		binary.LittleEndian.PutUint64(key[:8], seed)
		return newChaCha20Source(key), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

func newEntropySource(engine Engine) (Source, error) {
	if engine == ChaCha20 {
		var key [chacha20.KeySize]byte
		if err := entropy.Read(key[:]); err != nil {
			return nil, err
		}
		return newChaCha20Source(key), nil
	}

	seed, err := entropy.Uint64()
	if err != nil {
		return nil, err
	}
	return NewSource(engine, seed)
}

// chacha20Source reads the keystream of a ChaCha20 cipher with a zero nonce.
// The cipher panics after 256 GiB of keystream, far beyond any sampling
// workload.
type chacha20Source struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

func newChaCha20Source(key [chacha20.KeySize]byte) *chacha20Source {
	var nonce [chacha20.NonceSize]byte

	// never errors with correct key and nonce sizes
	cipher, _ := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	return &chacha20Source{cipher: cipher}
}

func (s *chacha20Source) Uint64() uint64 {
	s.buf = [8]byte{}
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}
