package ase

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zlib"
)

// wbuf is a little-endian writer for synthetic test files.
type wbuf struct {
	bytes.Buffer
}

func (b *wbuf) u8(v uint8) *wbuf {
	b.WriteByte(v)
	return b
}

func (b *wbuf) u16(v uint16) *wbuf {
	_ = binary.Write(&b.Buffer, binary.LittleEndian, v)
	return b
}

func (b *wbuf) i16(v int16) *wbuf {
	_ = binary.Write(&b.Buffer, binary.LittleEndian, v)
	return b
}

func (b *wbuf) u32(v uint32) *wbuf {
	_ = binary.Write(&b.Buffer, binary.LittleEndian, v)
	return b
}

func (b *wbuf) zero(n int) *wbuf {
	b.Write(make([]byte, n))
	return b
}

func (b *wbuf) raw(p []byte) *wbuf {
	b.Write(p)
	return b
}

func (b *wbuf) str(s string) *wbuf {
	b.u16(uint16(len(s)))
	b.WriteString(s)
	return b
}

func (b *wbuf) fixed(f Fixed) *wbuf {
	return b.u16(f.Lo).u16(f.Hi)
}

// testFile describes a synthetic Aseprite file. Zero values select a valid
// 32-bit sprite with correct magic numbers.
type testFile struct {
	Width, Height    uint16
	Depth            ColorDepth
	Flags            HeaderFlags
	TransparentIndex uint8
	Grid             *Grid
	Magic            uint16
	Frames           []testFrame
}

type testFrame struct {
	Duration uint16
	Chunks   [][]byte
	Magic    uint16
	// OldCount stores the chunk count only in the legacy 16-bit field.
	OldCount bool
}

func (f testFile) bytes() []byte {
	var frames wbuf
	for _, fr := range f.Frames {
		var body wbuf
		for _, c := range fr.Chunks {
			body.raw(c)
		}

		magic := fr.Magic
		if magic == 0 {
			magic = FrameMagic
		}
		n := uint32(len(fr.Chunks))
		frames.u32(uint32(FrameHeaderSize + body.Len())).u16(magic)
		switch {
		case fr.OldCount:
			frames.u16(uint16(n)).u16(fr.Duration).zero(2).u32(0)
		case n > 0:
			// a bogus legacy count that the 32-bit field must override
			frames.u16(0xFFFF).u16(fr.Duration).zero(2).u32(n)
		default:
			frames.u16(0).u16(fr.Duration).zero(2).u32(0)
		}
		frames.raw(body.Bytes())
	}

	depth := f.Depth
	if depth == 0 {
		depth = DepthRGBA
	}
	magic := f.Magic
	if magic == 0 {
		magic = FileMagic
	}
	w, h := f.Width, f.Height
	if w == 0 || h == 0 {
		w, h = 4, 4
	}
	grid := Grid{}
	if f.Grid != nil {
		grid = *f.Grid
	}

	var out wbuf
	out.u32(uint32(HeaderSize + frames.Len())).u16(magic).
		u16(uint16(len(f.Frames))).u16(w).u16(h).u16(uint16(depth)).
		u32(uint32(f.Flags)).u16(100).zero(8).
		u8(f.TransparentIndex).zero(3).u16(0).
		u8(1).u8(1).
		i16(grid.X).i16(grid.Y).u16(grid.Width).u16(grid.Height).
		zero(84)
	out.raw(frames.Bytes())

	return out.Bytes()
}

// chunk wraps payload in a chunk envelope with the correct size.
func chunk(typ ChunkType, payload []byte) []byte {
	return sizedChunk(uint32(len(payload)+ChunkHeaderSize), typ, payload)
}

// sizedChunk wraps payload in an envelope declaring size total bytes.
func sizedChunk(total uint32, typ ChunkType, payload []byte) []byte {
	var b wbuf
	b.u32(total).u16(uint16(typ)).raw(payload)
	return b.Bytes()
}

func layerChunk(typ LayerType, level uint16, name string) []byte {
	var b wbuf
	b.u16(uint16(LayerVisible|LayerEditable)).u16(uint16(typ)).u16(level).
		u16(0).u16(0).u16(uint16(BlendNormal)).u8(255).zero(3).str(name)
	if typ == LayerTilemap {
		b.u32(0)
	}
	return chunk(ChunkLayer, b.Bytes())
}

func celHead(b *wbuf, layer uint16, x, y int16, typ CelType) {
	b.u16(layer).i16(x).i16(y).u8(255).u16(uint16(typ)).i16(0).zero(5)
}

func rawCelChunk(layer uint16, w, h uint16, pix []byte) []byte {
	var b wbuf
	celHead(&b, layer, 0, 0, CelRaw)
	b.u16(w).u16(h).raw(pix)
	return chunk(ChunkCel, b.Bytes())
}

func compressedCelChunk(t *testing.T, layer uint16, w, h uint16, pix []byte) []byte {
	t.Helper()

	var b wbuf
	celHead(&b, layer, 1, 2, CelCompressedImage)
	b.u16(w).u16(h).raw(deflate(t, pix))
	return chunk(ChunkCel, b.Bytes())
}

func linkedCelChunk(layer, frame uint16) []byte {
	var b wbuf
	celHead(&b, layer, 0, 0, CelLinked)
	b.u16(frame)
	return chunk(ChunkCel, b.Bytes())
}

func celExtraChunk(x, y Fixed) []byte {
	var b wbuf
	b.u32(uint32(CelExtraPreciseBounds)).fixed(x).fixed(y).
		fixed(Fixed{Hi: 1}).fixed(Fixed{Hi: 1}).zero(16)
	return chunk(ChunkCelExtra, b.Bytes())
}

func paletteChunk(first uint32, colors []Color) []byte {
	var b wbuf
	last := first + uint32(len(colors)) - 1
	b.u32(first + uint32(len(colors))).u32(first).u32(last).zero(8)
	for _, c := range colors {
		if c.HasName {
			b.u16(paletteEntryName).u8(c.R).u8(c.G).u8(c.B).u8(c.A).str(c.Name)
			continue
		}
		b.u16(0).u8(c.R).u8(c.G).u8(c.B).u8(c.A)
	}
	return chunk(ChunkPalette, b.Bytes())
}

// oldPaletteChunk writes one packet; count 0 stands for 256 colors.
func oldPaletteChunk(typ ChunkType, count uint8, rgb []byte) []byte {
	var b wbuf
	b.u16(1).u8(0).u8(count).raw(rgb)
	return chunk(typ, b.Bytes())
}

func tagsChunk(tags ...Tag) []byte {
	var b wbuf
	b.u16(uint16(len(tags))).zero(8)
	for _, t := range tags {
		b.u16(t.From).u16(t.To).u8(uint8(t.Direction)).u16(t.Repeat).zero(10).str(t.Name)
	}
	return chunk(ChunkTags, b.Bytes())
}

func userDataChunk(text string, col *Color, properties bool) []byte {
	var flags UserDataFlags
	if text != "" {
		flags |= UserDataText
	}
	if col != nil {
		flags |= UserDataColor
	}
	if properties {
		flags |= UserDataProperties
	}

	var b wbuf
	b.u32(uint32(flags))
	if text != "" {
		b.str(text)
	}
	if col != nil {
		b.u8(col.R).u8(col.G).u8(col.B).u8(col.A)
	}
	if properties {
		// properties maps size and count
		b.u32(8).u32(0)
	}
	return chunk(ChunkUserData, b.Bytes())
}

func deflate(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}

func decodeBytes(t *testing.T, data []byte, opts *DecodeOptions) (*Document, error) {
	t.Helper()
	return DecodeWithOptions(bytes.NewReader(data), opts)
}

func mustDecode(t *testing.T, f testFile) *Document {
	t.Helper()

	doc, err := decodeBytes(t, f.bytes(), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return doc
}
