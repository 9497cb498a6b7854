package buffer

import (
	"encoding/binary"
	"fmt"
)

// WriteUint8 writes a byte c to w.
func WriteUint8(w Writer, c uint8) (n int64, err error) {

	if err = reserve(w, 1, "WriteUint8"); err != nil {
		return
	}

	buf := append(w.AvailableBuffer(), c)
	nint, err := w.Write(buf)
	return int64(nint), err
}

// WriteUint32 writes a uint32 c to w, in little-endian order.
func WriteUint32(w Writer, c uint32) (n int64, err error) {

	if err = reserve(w, 4, "WriteUint32"); err != nil {
		return
	}

	buf := binary.LittleEndian.AppendUint32(w.AvailableBuffer(), c)
	nint, err := w.Write(buf)
	return int64(nint), err
}

// WriteUint64 writes a uint64 c to w, in little-endian order.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if err = reserve(w, 8, "WriteUint64"); err != nil {
		return
	}

	buf := binary.LittleEndian.AppendUint64(w.AvailableBuffer(), c)
	nint, err := w.Write(buf)
	return int64(nint), err
}

// reserve flushes w if fewer than size bytes are available in its internal buffer.
func reserve(w Writer, size int, op string) (err error) {

	if w.Available() >= size {
		return
	}

	if err = w.Flush(); err != nil {
		return
	}

	if w.Available() < size {
		return fmt.Errorf("cannot %s: available buffer is smaller than %d bytes even after flush", op, size)
	}

	return
}
