// Package sampling implements the sampling of random bytes and integers.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// ReadUint64 returns a value uniformly distributed in [0, 0xFFFFFFFFFFFFFFFF] read from prng.
func ReadUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot ReadUint64: %w", err))
	}
	return binary.LittleEndian.Uint64(b)
}

// ReadUint64N returns a value in [0, n-1] read from prng.
// The distribution is uniform up to a bias of at most n/2^64.
func ReadUint64N(prng PRNG, n uint64) uint64 {
	if n == 0 {
		panic("cannot ReadUint64N: n must be positive")
	}
	return ReadUint64(prng) % n
}

// ReadInt64Bounded returns a value in [-bound, bound] read from prng.
// A bound of zero or a bound of math.MaxInt64 returns a value over the full int64 range.
func ReadInt64Bounded(prng PRNG, bound int64) int64 {
	if bound <= 0 || bound == 1<<63-1 {
		return int64(ReadUint64(prng))
	}
	return int64(ReadUint64N(prng, 2*uint64(bound)+1)) - bound
}
