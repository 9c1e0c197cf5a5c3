// Package prim implements the little-endian primitive codec that every
// higher-level yxdb section is built on: fixed-width integer reads/writes
// over a byte slice, plus an "isolate" helper that runs a sub-parser
// against a bounded window and fails loudly if it doesn't consume exactly
// that window.
package prim

import (
	"encoding/binary"

	"github.com/thestick613/yxdb-utils/internal/yxerr"
)

// Cursor reads sequentially from a byte slice, tracking an absolute file
// offset (base) for error reporting even when the slice itself is a
// sub-window carved out by Isolate.
type Cursor struct {
	data []byte
	pos  int
	base int64
}

// NewCursor wraps data for sequential reads. base is the absolute byte
// offset of data[0] within the file being decoded, used only to annotate
// errors.
func NewCursor(data []byte, base int64) *Cursor {
	return &Cursor{data: data, base: base}
}

// Offset returns the absolute offset of the cursor's current read position.
func (c *Cursor) Offset() int64 { return c.base + int64(c.pos) }

// Remaining returns the number of unread bytes left in the cursor.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// ReadBytes returns the next n bytes and advances the cursor, or fails
// with *yxerr.TruncatedError if fewer than n bytes remain.
func (c *Cursor) ReadBytes(n int, label string) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, &yxerr.TruncatedError{Offset: c.Offset(), Label: label, Need: n, Have: c.Remaining()}
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU16LE reads a little-endian uint16.
func (c *Cursor) ReadU16LE(label string) (uint16, error) {
	b, err := c.ReadBytes(2, label)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE reads a little-endian uint32.
func (c *Cursor) ReadU32LE(label string) (uint32, error) {
	b, err := c.ReadBytes(4, label)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64LE reads a little-endian uint64.
func (c *Cursor) ReadU64LE(label string) (uint64, error) {
	b, err := c.ReadBytes(8, label)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// WriteU16LE appends v to buf in little-endian form.
func WriteU16LE(buf []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(buf, b[:]...)
}

// WriteU32LE appends v to buf in little-endian form.
func WriteU32LE(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

// WriteU64LE appends v to buf in little-endian form.
func WriteU64LE(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

// Isolate carves exactly n bytes off c, hands them to parse as an
// independent bounded cursor, and fails with *yxerr.IsolationMismatchError
// if parse consumed fewer or more than n bytes. c advances past the whole
// n-byte window regardless of whether parse succeeds, so the caller's
// stream position stays consistent with the declared section length.
func Isolate[T any](c *Cursor, n int, label string, parse func(sub *Cursor) (T, error)) (T, error) {
	var zero T
	if n < 0 || c.Remaining() < n {
		return zero, &yxerr.TruncatedError{Offset: c.Offset(), Label: label, Need: n, Have: c.Remaining()}
	}
	sub := NewCursor(c.data[c.pos:c.pos+n], c.base+int64(c.pos))
	c.pos += n

	val, err := parse(sub)
	if err != nil {
		return zero, err
	}
	if sub.pos != n {
		return zero, &yxerr.IsolationMismatchError{Offset: sub.base, Label: label, Want: n, Consumed: sub.pos}
	}
	return val, nil
}
