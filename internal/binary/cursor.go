// Package binary provides low-level binary reading primitives for SPC file parsing.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrPrematureTermination is returned when fewer bytes remain in the buffer
// than a read requires.
var ErrPrematureTermination = errors.New("premature termination of input")

// Cursor reads fixed-width values sequentially from an in-memory buffer in a
// configured byte order. A failed read leaves the position unchanged, so the
// cursor stays usable for diagnostics.
type Cursor struct {
	buf   []byte
	order binary.ByteOrder
	pos   int
}

// NewCursor creates a cursor over buf reading in the given byte order.
// The buffer is not copied; callers must not mutate it while decoding.
func NewCursor(buf []byte, order binary.ByteOrder) *Cursor {
	return &Cursor{buf: buf, order: order}
}

// Pos returns the current read position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Exhausted reports whether the whole buffer has been consumed.
func (c *Cursor) Exhausted() bool {
	return c.pos >= len(c.buf)
}

// ByteOrder returns the configured byte order.
func (c *Cursor) ByteOrder() binary.ByteOrder {
	return c.order
}

// Seek moves the cursor to an absolute offset. Seeking to len(buf) is legal
// and leaves the cursor exhausted.
func (c *Cursor) Seek(offset int) error {
	if offset < 0 || offset > len(c.buf) {
		return fmt.Errorf("%w: seek to %d in %d-byte buffer", ErrPrematureTermination, offset, len(c.buf))
	}
	c.pos = offset
	return nil
}

// ReadBytes reads exactly n bytes from the current position.
// The returned slice aliases the underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	if n > c.Remaining() {
		return nil, fmt.Errorf("%w: requested %d bytes, %d remaining", ErrPrematureTermination, n, c.Remaining())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (c *Cursor) ReadUint8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads a signed 8-bit integer.
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads an unsigned 16-bit integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return c.order.Uint16(b), nil
}

// ReadInt16 reads a signed 16-bit integer.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return c.order.Uint32(b), nil
}

// ReadInt32 reads a signed 32-bit integer.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()
	return int32(v), err
}

// ReadFloat32 reads an IEEE 754 single-precision float.
func (c *Cursor) ReadFloat32() (float32, error) {
	v, err := c.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads an IEEE 754 double-precision float.
func (c *Cursor) ReadFloat64() (float64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(c.order.Uint64(b)), nil
}

// ReadString reads an n-byte fixed-length text field. SPC pads ASCII fields
// with embedded NULs, so the value is cut at the first zero byte and trimmed
// of surrounding whitespace.
func (c *Cursor) ReadString(n int) (string, error) {
	b, err := c.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return TrimPadded(b), nil
}

// TrimPadded converts a NUL-padded byte field to a string: the content stops
// at the first zero byte and surrounding whitespace is dropped.
func TrimPadded(b []byte) string {
	for i, v := range b {
		if v == 0 {
			b = b[:i]
			break
		}
	}
	return strings.TrimSpace(string(b))
}
