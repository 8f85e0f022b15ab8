package ase

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// bytesAllocStep caps the up-front allocation of a single Bytes read. Longer
// reads grow with the data actually present.
const bytesAllocStep = 64 * 1024

// Fixed is a 32-bit fixed point value as stored in the file: two unsigned
// 16-bit halves in read order. No combination formula is applied.
type Fixed struct {
	Lo uint16
	Hi uint16
}

// Cursor reads little-endian values from a byte source, tracking the offset
// and, for spans, the number of bytes left.
type Cursor struct {
	r      io.Reader
	off    int64
	remain int64 // -1 when unbounded
}

// NewCursor returns an unbounded cursor over r.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: r, remain: -1}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int64 { return c.off }

// Remaining returns the bytes left in a span, or -1 for an unbounded cursor.
func (c *Cursor) Remaining() int64 { return c.remain }

// Read implements io.Reader, stopping at the span limit.
func (c *Cursor) Read(p []byte) (int, error) {
	if c.remain == 0 {
		return 0, io.EOF
	}
	if c.remain > 0 && int64(len(p)) > c.remain {
		p = p[:c.remain]
	}

	n, err := c.r.Read(p)
	c.off += int64(n)
	if c.remain > 0 {
		c.remain -= int64(n)
	}

	return n, err
}

// Span returns a child cursor limited to the next n bytes of c. Reading from
// the child advances c.
func (c *Cursor) Span(n int64) (*Cursor, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}

	return &Cursor{r: c, remain: n}, nil
}

// need fails when a span cannot hold n more bytes.
func (c *Cursor) need(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrUnexpectedEndOfData, n)
	}
	if c.remain >= 0 && n > c.remain {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrUnexpectedEndOfData, n, c.off, c.remain)
	}

	return nil
}

func (c *Cursor) full(buf []byte) error {
	if err := c.need(int64(len(buf))); err != nil {
		return err
	}
	if _, err := io.ReadFull(c, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: need %d bytes at offset %d", ErrUnexpectedEndOfData, len(buf), c.off)
		}
		return err
	}

	return nil
}

// U8 reads an unsigned byte.
func (c *Cursor) U8() (uint8, error) {
	var b [1]byte
	if err := c.full(b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

// U16 reads a little-endian uint16.
func (c *Cursor) U16() (uint16, error) {
	var b [2]byte
	if err := c.full(b[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b[:]), nil
}

// U32 reads a little-endian uint32.
func (c *Cursor) U32() (uint32, error) {
	var b [4]byte
	if err := c.full(b[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b[:]), nil
}

// I8 reads a signed byte.
func (c *Cursor) I8() (int8, error) {
	v, err := c.U8()
	return int8(v), err
}

// I16 reads a little-endian two's-complement int16.
func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

// I32 reads a little-endian two's-complement int32.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// Fixed reads two consecutive uint16 halves.
func (c *Cursor) Fixed() (Fixed, error) {
	lo, err := c.U16()
	if err != nil {
		return Fixed{}, err
	}
	hi, err := c.U16()
	if err != nil {
		return Fixed{}, err
	}

	return Fixed{Lo: lo, Hi: hi}, nil
}

// Bytes reads exactly n bytes.
func (c *Cursor) Bytes(n int64) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	if n <= bytesAllocStep {
		buf := make([]byte, n)
		if err := c.full(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	buf, err := io.ReadAll(io.LimitReader(c, n))
	if err != nil {
		return nil, err
	}
	if int64(len(buf)) != n {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrUnexpectedEndOfData, n, len(buf))
	}

	return buf, nil
}

// Skip advances past n bytes without keeping them.
func (c *Cursor) Skip(n int64) error {
	if err := c.need(n); err != nil {
		return err
	}
	got, err := io.CopyN(io.Discard, c, n)
	if got != n {
		return fmt.Errorf("%w: skip %d bytes at offset %d: %v", ErrUnexpectedEndOfData, n, c.off, err)
	}

	return nil
}

// Text reads a uint16 length followed by that many bytes of text. Text
// that is not valid UTF-8 is decoded as Windows-1252.
func (c *Cursor) Text() (string, error) {
	n, err := c.U16()
	if err != nil {
		return "", err
	}
	buf, err := c.Bytes(int64(n))
	if err != nil {
		return "", err
	}
	if utf8.Valid(buf) {
		return string(buf), nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(buf)
	if err != nil {
		return string(buf), nil
	}

	return string(decoded), nil
}
