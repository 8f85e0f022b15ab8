package ase

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
)

// digest feeds fixed-width little-endian values into an xxhash state.
type digest struct {
	h   *xxhash.Digest
	buf [8]byte
}

func newDigest() *digest { return &digest{h: xxhash.New()} }

func (d *digest) u8(v uint8) { _, _ = d.h.Write([]byte{v}) }

func (d *digest) u16(v uint16) {
	binary.LittleEndian.PutUint16(d.buf[:2], v)
	_, _ = d.h.Write(d.buf[:2])
}

func (d *digest) u32(v uint32) {
	binary.LittleEndian.PutUint32(d.buf[:4], v)
	_, _ = d.h.Write(d.buf[:4])
}

func (d *digest) u64(v uint64) {
	binary.LittleEndian.PutUint64(d.buf[:], v)
	_, _ = d.h.Write(d.buf[:])
}

// bytes writes a length prefix so adjacent fields cannot run together.
func (d *digest) bytes(b []byte) {
	d.u64(uint64(len(b)))
	_, _ = d.h.Write(b)
}

func (d *digest) str(s string) {
	d.u64(uint64(len(s)))
	_, _ = d.h.WriteString(s)
}

func (d *digest) color(c Color) {
	d.u8(c.R)
	d.u8(c.G)
	d.u8(c.B)
	d.u8(c.A)
	d.str(c.Name)
}

func (d *digest) userData(ud *UserData) {
	if ud == nil {
		d.u8(0)
		return
	}
	d.u8(1)
	if ud.Text != nil {
		d.u8(1)
		d.str(*ud.Text)
	} else {
		d.u8(0)
	}
	if ud.Color != nil {
		d.u8(1)
		d.color(*ud.Color)
	} else {
		d.u8(0)
	}
}

func (d *digest) fixed(f Fixed) {
	d.u16(f.Lo)
	d.u16(f.Hi)
}

func (d *digest) cel(c *Cel) {
	d.u16(c.Layer)
	d.u16(uint16(c.X))
	d.u16(uint16(c.Y))
	d.u8(c.Opacity)
	d.u16(uint16(c.ZIndex))
	d.u16(uint16(c.Type()))

	switch v := c.Content.(type) {
	case *ImageCel:
		d.u16(v.Width)
		d.u16(v.Height)
		d.bytes(v.Pixels)
	case *LinkedCel:
		d.u16(v.Frame)
	case *TilemapCel:
		d.u16(v.Width)
		d.u16(v.Height)
		d.u16(v.BitsPerTile)
		d.u32(v.TileIDMask)
		d.u32(v.XFlipMask)
		d.u32(v.YFlipMask)
		d.u32(v.DiagonalFlipMask)
		d.bytes(v.Data)
	}

	if c.Extra != nil {
		d.u8(1)
		d.u32(uint32(c.Extra.Flags))
		d.fixed(c.Extra.X)
		d.fixed(c.Extra.Y)
		d.fixed(c.Extra.Width)
		d.fixed(c.Extra.Height)
	} else {
		d.u8(0)
	}
	d.userData(c.UserData)
}

// Fingerprint returns an xxhash digest of the cel fields and payload.
func (c *Cel) Fingerprint() uint64 {
	d := newDigest()
	d.cel(c)
	return d.h.Sum64()
}

// Fingerprint returns an xxhash digest of the decoded document. Equal
// documents have equal fingerprints.
func (doc *Document) Fingerprint() uint64 {
	d := newDigest()

	h := &doc.Header
	d.u32(h.FileSize)
	d.u16(h.Frames)
	d.u16(h.Width)
	d.u16(h.Height)
	d.u16(uint16(h.Depth))
	d.u32(uint32(h.Flags))
	d.u16(h.Speed)
	d.u8(h.TransparentIndex)
	d.u16(h.NumColors)
	d.u8(h.PixelWidth)
	d.u8(h.PixelHeight)
	if h.Grid != nil {
		d.u8(1)
		d.u16(uint16(h.Grid.X))
		d.u16(uint16(h.Grid.Y))
		d.u16(h.Grid.Width)
		d.u16(h.Grid.Height)
	} else {
		d.u8(0)
	}

	d.u32(doc.Palette.Size)
	d.u64(uint64(len(doc.Palette.Colors)))
	for _, c := range doc.Palette.Colors {
		d.color(c)
	}

	d.u64(uint64(len(doc.Layers)))
	for _, l := range doc.Layers {
		d.u16(uint16(l.Flags))
		d.u16(uint16(l.Type))
		d.u16(l.ChildLevel)
		d.u16(uint16(l.BlendMode))
		d.u8(l.Opacity)
		d.str(l.Name)
		if l.TilesetIndex != nil {
			d.u32(*l.TilesetIndex)
		}
		if l.UUID != nil {
			_, _ = d.h.Write(l.UUID[:])
		}
		d.userData(l.UserData)
	}

	d.u64(uint64(len(doc.Frames)))
	for _, f := range doc.Frames {
		d.u64(uint64(f.Duration))
		d.u64(uint64(len(f.Cels)))
		for _, c := range f.Cels {
			d.cel(c)
		}
	}

	d.u64(uint64(len(doc.Tags)))
	for _, t := range doc.Tags {
		d.u16(t.From)
		d.u16(t.To)
		d.u8(uint8(t.Direction))
		d.u16(t.Repeat)
		d.str(t.Name)
		d.userData(t.UserData)
	}

	if p := doc.ColorProfile; p != nil {
		d.u8(1)
		d.u16(uint16(p.Type))
		d.u16(uint16(p.Flags))
		d.fixed(p.Gamma)
		d.bytes(p.ICC)
	} else {
		d.u8(0)
	}
	d.userData(doc.SpriteUserData)

	return d.h.Sum64()
}
