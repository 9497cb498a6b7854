package sampling

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// MaxKeySize is the largest key accepted by NewKeyedPRNG.
const MaxKeySize = blake2b.Size

type systemPRNG struct{}

func (systemPRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// NewPRNG returns a PRNG reading from crypto/rand. It is safe for concurrent use.
func NewPRNG() PRNG {
	return systemPRNG{}
}

// KeyedPRNG reads the extendable output of blake2b keyed with a seed.
// Two KeyedPRNG created with the same key produce the same stream, which makes sampled
// polynomials reproducible. A KeyedPRNG is not safe for concurrent use.
type KeyedPRNG struct {
	xof blake2b.XOF
}

// NewKeyedPRNG returns a KeyedPRNG seeded with key, which must be at most MaxKeySize bytes long.
// A nil key is the empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {

	if len(key) > MaxKeySize {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: key is %d bytes long but must be at most %d", len(key), MaxKeySize)
	}

	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}

	return &KeyedPRNG{xof: xof}, nil
}

// Read fills sum with the next bytes of the stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}
