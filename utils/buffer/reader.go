package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadUint8 reads a byte from r into c.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb [1]byte

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), err
	}

	*c = bb[0]

	return int64(nint), nil
}

// ReadUint32 reads a little-endian uint32 from r into c.
func ReadUint32(r Reader, c *uint32) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint32: c is nil")
	}

	var bb [4]byte

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint32(bb[:])

	return int64(nint), nil
}

// ReadUint64 reads a little-endian uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}
