package ase

import "fmt"

// readHeader decodes the 128-byte file header.
func readHeader(c *Cursor) (Header, error) {
	var h Header

	c, err := c.Span(HeaderSize)
	if err != nil {
		return h, err
	}

	if h.FileSize, err = c.U32(); err != nil {
		return h, err
	}
	magic, err := c.U16()
	if err != nil {
		return h, err
	}
	if magic != FileMagic {
		return h, fmt.Errorf("%w: 0x%04X", ErrInvalidMagicNumber, magic)
	}

	if h.Frames, err = c.U16(); err != nil {
		return h, err
	}
	if h.Width, err = c.U16(); err != nil {
		return h, err
	}
	if h.Height, err = c.U16(); err != nil {
		return h, err
	}
	depth, err := c.U16()
	if err != nil {
		return h, err
	}
	h.Depth = ColorDepth(depth)
	if h.Depth.BytesPerPixel() == 0 {
		return h, fmt.Errorf("%w: %d", ErrInvalidColorDepth, depth)
	}
	flags, err := c.U32()
	if err != nil {
		return h, err
	}
	h.Flags = HeaderFlags(flags)
	if h.Speed, err = c.U16(); err != nil {
		return h, err
	}
	if err := c.Skip(8); err != nil {
		return h, err
	}
	if h.TransparentIndex, err = c.U8(); err != nil {
		return h, err
	}
	if err := c.Skip(3); err != nil {
		return h, err
	}
	if h.NumColors, err = c.U16(); err != nil {
		return h, err
	}
	if h.PixelWidth, err = c.U8(); err != nil {
		return h, err
	}
	if h.PixelHeight, err = c.U8(); err != nil {
		return h, err
	}

	var g Grid
	if g.X, err = c.I16(); err != nil {
		return h, err
	}
	if g.Y, err = c.I16(); err != nil {
		return h, err
	}
	if g.Width, err = c.U16(); err != nil {
		return h, err
	}
	if g.Height, err = c.U16(); err != nil {
		return h, err
	}
	if g.Width != 0 && g.Height != 0 {
		h.Grid = &g
	}

	if err := c.Skip(84); err != nil {
		return h, err
	}

	return h, nil
}

// frameHeader is the fixed part in front of every frame.
type frameHeader struct {
	Size     uint32
	Chunks   uint32
	Duration uint16
}

// readFrameHeader decodes a 16-byte frame header. The 4-byte chunk count
// wins unless it is zero, in which case the legacy 2-byte count is used.
func readFrameHeader(c *Cursor) (frameHeader, error) {
	var fh frameHeader

	c, err := c.Span(FrameHeaderSize)
	if err != nil {
		return fh, err
	}

	if fh.Size, err = c.U32(); err != nil {
		return fh, err
	}
	magic, err := c.U16()
	if err != nil {
		return fh, err
	}
	if magic != FrameMagic {
		return fh, fmt.Errorf("%w: 0x%04X", ErrInvalidFrameMagicNumber, magic)
	}
	oldChunks, err := c.U16()
	if err != nil {
		return fh, err
	}
	if fh.Duration, err = c.U16(); err != nil {
		return fh, err
	}
	if err := c.Skip(2); err != nil {
		return fh, err
	}
	if fh.Chunks, err = c.U32(); err != nil {
		return fh, err
	}
	if fh.Chunks == 0 {
		fh.Chunks = uint32(oldChunks)
	}

	return fh, nil
}
