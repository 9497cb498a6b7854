package poly

import (
	"bufio"
	"fmt"

	"github.com/zeebo/blake3"
)

// DigestSize is the size in bytes of a polynomial digest.
const DigestSize = 32

// Digest returns the blake3 hash of the binary encoding of p.
// Since canonical forms are unique, two polynomials are equal if and only if their digests are equal,
// up to hash collisions.
func (p Polynomial) Digest() (digest [DigestSize]byte) {

	hasher := blake3.New()

	// blake3.Hasher never fails to write.
	if err := p.encodeTo(bufio.NewWriter(hasher)); err != nil {
		panic(fmt.Errorf("cannot Digest: %w", err))
	}

	copy(digest[:], hasher.Sum(nil))

	return
}
