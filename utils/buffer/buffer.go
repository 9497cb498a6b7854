// Package buffer implements the writing and reading of fixed-size little-endian values to and from
// buffered writers and readers that expose their internal buffers.
package buffer

import (
	"fmt"
	"io"
)

// Writer is an interface for writers that expose their internal buffers.
// This interface is notably implemented by the bufio.Writer type and by the Buffer type.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is an interface for readers that expose the size of their internal buffers.
// This interface is notably implemented by the bufio.Reader type and by the Buffer type.
type Reader interface {
	io.Reader
	Size() int
}

// Buffer is a []byte-based buffer that complies to the Writer and Reader interfaces.
// Its backing slice has a fixed size: writes beyond capacity return an error.
type Buffer struct {
	buf []byte
	n   int
	off int
}

// NewBuffer creates a new Buffer with buf as a backing slice, for instance to read an encoding.
// The write offset is at the end of buf and the read offset at its start.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{buf: buf, n: len(buf)}
}

// NewBufferSize creates a new empty Buffer with size capacity.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// Write appends p to b. It returns an error if b has not enough capacity left.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p)+b.n > cap(b.buf) {
		return 0, fmt.Errorf("cannot Write: buffer too small")
	}
	b.buf = b.buf[:b.n+len(p)]
	n = copy(b.buf[b.n:], p) // optimized if p was obtained from AvailableBuffer
	b.n += n
	return
}

// Flush doesn't do anything on this slice-based buffer.
func (b *Buffer) Flush() (err error) {
	return nil
}

// AvailableBuffer returns an empty slice with b.Available() capacity, to be appended to and passed
// to Write. It is only valid until the next write on b.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.n:b.n]
}

// Available returns the number of bytes that can still be written on b.
func (b *Buffer) Available() int {
	return cap(b.buf) - b.n
}

// Bytes returns the written bytes.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

// Read reads len(p) bytes from the read offset of b into p. It returns io.EOF if fewer bytes
// are available.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.off:b.n])
	b.off += n
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Size returns the number of bytes left to read.
func (b *Buffer) Size() int {
	return b.n - b.off
}

// Reset empties b.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.n = 0
	b.off = 0
}
