package ase

import "fmt"

// maxPaletteEntries bounds palette sizes; indexed pixels are single bytes
// but the current format allows larger palettes for RGBA sprites.
const maxPaletteEntries = 1 << 16

var opaqueBlack = Color{A: 255}

// readPalette decodes a current-format palette chunk payload. Entries are
// stored at their index; slots outside [first, last] stay opaque black.
func readPalette(c *Cursor) (*Palette, error) {
	size, err := c.U32()
	if err != nil {
		return nil, err
	}
	first, err := c.U32()
	if err != nil {
		return nil, err
	}
	last, err := c.U32()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(8); err != nil {
		return nil, err
	}

	if first > last || last >= maxPaletteEntries || size > maxPaletteEntries {
		return nil, fmt.Errorf("%w: palette size %d range [%d, %d]", ErrSizeOverflow, size, first, last)
	}

	n := int(size)
	if int(last)+1 > n {
		n = int(last) + 1
	}
	p := &Palette{Size: size, Colors: make([]Color, n)}
	for i := range p.Colors {
		p.Colors[i] = opaqueBlack
	}

	for i := first; i <= last; i++ {
		flags, err := c.U16()
		if err != nil {
			return nil, err
		}
		col, err := readRGBA(c)
		if err != nil {
			return nil, err
		}
		if flags&paletteEntryName != 0 {
			if col.Name, err = c.Text(); err != nil {
				return nil, err
			}
			col.HasName = true
		}
		p.Colors[i] = col
	}

	return p, nil
}

// readOldPalette decodes the packet-based palette of chunks 0x0004 and
// 0x0011. Colors are appended in packet order with alpha 255.
func readOldPalette(c *Cursor) (*Palette, error) {
	packets, err := c.U16()
	if err != nil {
		return nil, err
	}

	p := &Palette{Legacy: true}
	for i := 0; i < int(packets); i++ {
		// entries to skip; positions are not used
		if err := c.Skip(1); err != nil {
			return nil, err
		}
		count, err := c.U8()
		if err != nil {
			return nil, err
		}
		n := int(count)
		if n == 0 {
			n = 256
		}

		for j := 0; j < n; j++ {
			rgb, err := c.Bytes(3)
			if err != nil {
				return nil, err
			}
			p.Colors = append(p.Colors, Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	p.Size = uint32(len(p.Colors))

	return p, nil
}

func readRGBA(c *Cursor) (Color, error) {
	rgba, err := c.Bytes(4)
	if err != nil {
		return Color{}, err
	}

	return Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
