package texture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/woozymasta/bcn"
)

func testImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 20), //nolint:gosec // bounded
				G: uint8(y * 20), //nolint:gosec // bounded
				B: 90,
				A: 255,
			})
		}
	}
	return img
}

// unpackBlock expands an LZ4 chunk stream body produced by packBlock.
func unpackBlock(t *testing.T, body []byte, rawSize int) []byte {
	t.Helper()

	out := make([]byte, 0, rawSize)
	dst := make([]byte, ChunkSize)
	for len(body) > 0 {
		if len(body) < 4 {
			t.Fatalf("truncated chunk header")
		}
		n := int(body[0]) | int(body[1])<<8 | int(body[2])<<16
		last := body[3]&lastChunk != 0
		body = body[4:]

		got, err := lz4.UncompressBlockWithDict(body[:n], dst, nil)
		if err != nil {
			t.Fatalf("UncompressBlockWithDict: %v", err)
		}
		out = append(out, dst[:got]...)
		body = body[n:]

		if last {
			break
		}
	}
	if len(body) != 0 {
		t.Fatalf("%d bytes after last chunk", len(body))
	}

	return out
}

// readEDDS parses a written EDDS file and returns its header and the mip
// levels, largest first.
func readEDDS(t *testing.T, data []byte) (*bcn.DDSHeader, []string, [][]byte) {
	t.Helper()

	r := bytes.NewReader(data)
	hdr, err := bcn.ReadDDSHeader(r)
	if err != nil {
		t.Fatalf("ReadDDSHeader: %v", err)
	}

	n := int(hdr.MipMapCount)
	magics := make([]string, n)
	sizes := make([]int32, n)
	for i := 0; i < n; i++ {
		var magic [4]byte
		if _, err := io.ReadFull(r, magic[:]); err != nil {
			t.Fatalf("block magic: %v", err)
		}
		magics[i] = string(magic[:])
		if err := binary.Read(r, binary.LittleEndian, &sizes[i]); err != nil {
			t.Fatalf("block size: %v", err)
		}
	}

	levels := make([][]byte, n)
	for i := 0; i < n; i++ {
		switch magics[i] {
		case BlockMagicCOPY:
			body := make([]byte, sizes[i])
			if _, err := io.ReadFull(r, body); err != nil {
				t.Fatalf("COPY body: %v", err)
			}
			levels[n-1-i] = body
		case BlockMagicLZ4:
			var raw int32
			if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
				t.Fatalf("LZ4 raw size: %v", err)
			}
			body := make([]byte, sizes[i]-4)
			if _, err := io.ReadFull(r, body); err != nil {
				t.Fatalf("LZ4 body: %v", err)
			}
			levels[n-1-i] = unpackBlock(t, body, int(raw))
		default:
			t.Fatalf("unknown block magic %q", magics[i])
		}
	}
	if r.Len() != 0 {
		t.Fatalf("%d trailing bytes", r.Len())
	}

	return hdr, magics, levels
}

func TestPackBlockRoundTrip(t *testing.T) {
	t.Parallel()

	data := make([]byte, 3*ChunkSize+123)
	for i := range data {
		data[i] = byte((i / 64) & 0x0f)
	}

	b, err := packBlock(data)
	if err != nil {
		t.Fatalf("packBlock: %v", err)
	}
	if b.magic != BlockMagicLZ4 {
		t.Fatalf("magic = %q, want LZ4", b.magic)
	}
	if int(b.rawSize) != len(data) || int(b.size) != len(b.data)+4 {
		t.Fatalf("sizes: raw %d body %d data %d", b.rawSize, b.size, len(b.data))
	}

	if got := unpackBlock(t, b.data, len(data)); !bytes.Equal(got, data) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestPackBlockStoresWhenNotWorthIt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "small", data: bytes.Repeat([]byte{1}, minPackSize-1)},
		{name: "noise", data: noise(8 * 1024)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b, err := packBlock(tc.data)
			if err != nil {
				t.Fatalf("packBlock: %v", err)
			}
			if b.magic != BlockMagicCOPY || int(b.size) != len(tc.data) {
				t.Fatalf("got %q size %d, want COPY size %d", b.magic, b.size, len(tc.data))
			}
		})
	}
}

func noise(n int) []byte {
	out := make([]byte, n)
	x := uint32(2463534242)
	for i := range out {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		out[i] = byte(x)
	}
	return out
}

func TestWriteEDDSRoundTrip(t *testing.T) {
	t.Parallel()

	for _, store := range []bool{false, true} {
		store := store
		name := "lz4"
		if store {
			name = "copy"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			img := testImage(64, 32)
			var buf bytes.Buffer
			if err := WriteEDDS(&buf, img, &Options{Format: bcn.FormatBGRA8, Store: store}); err != nil {
				t.Fatalf("WriteEDDS: %v", err)
			}

			hdr, magics, levels := readEDDS(t, buf.Bytes())
			if hdr.Width != 64 || hdr.Height != 32 {
				t.Fatalf("header size %dx%d", hdr.Width, hdr.Height)
			}
			if hdr.MipMapCount < 2 || hdr.MipMapCount > 7 {
				t.Fatalf("mip count %d for 64x32", hdr.MipMapCount)
			}
			for i, level := range levels {
				want, _ := dataLength(bcn.FormatBGRA8, mipDimension(64, i), mipDimension(32, i))
				if len(level) != want {
					t.Fatalf("level %d: %d bytes, want %d", i, len(level), want)
				}
			}
			if hdr.Reserved1[1] != enfusionTag {
				t.Fatalf("missing ENF1 tag")
			}
			if store {
				for i, m := range magics {
					if m != BlockMagicCOPY {
						t.Fatalf("block %d magic %q with Store set", i, m)
					}
				}
			}

			got, err := bcn.DecodeImageWithOptions(levels[0], 64, 32, bcn.FormatBGRA8, nil)
			if err != nil {
				t.Fatalf("DecodeImageWithOptions: %v", err)
			}
			if !bytes.Equal(got.Pix, img.Pix) {
				t.Fatalf("pixel mismatch")
			}
		})
	}
}

func TestWriteDDS(t *testing.T) {
	t.Parallel()

	img := testImage(16, 16)
	var buf bytes.Buffer
	err := WriteDDS(&buf, img, &Options{
		Format:     bcn.FormatDXT5,
		MaxMipMaps: 2,
		Encode:     &bcn.EncodeOptions{QualityLevel: bcn.QualityLevelFast},
	})
	if err != nil {
		t.Fatalf("WriteDDS: %v", err)
	}

	r := bytes.NewReader(buf.Bytes())
	hdr, err := bcn.ReadDDSHeader(r)
	if err != nil {
		t.Fatalf("ReadDDSHeader: %v", err)
	}
	if hdr.MipMapCount != 2 || hdr.PixelFormat.FourCC != fourCC("DXT5") {
		t.Fatalf("header mips %d fourcc 0x%08x", hdr.MipMapCount, hdr.PixelFormat.FourCC)
	}
	if hdr.Reserved1[1] != 0 {
		t.Fatalf("plain DDS carries ENF1 tag")
	}
	// 16x16 and 8x8 DXT5 levels
	if want := 16*16 + 4*16; r.Len() != want {
		t.Fatalf("payload %d bytes, want %d", r.Len(), want)
	}
}

func TestWriteValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		img     image.Image
		opts    *Options
		wantErr error
	}{
		{name: "empty-image", img: image.NewNRGBA(image.Rect(0, 0, 0, 4)), wantErr: ErrEmptyImage},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			for _, write := range []func(io.Writer, image.Image, *Options) error{WriteDDS, WriteEDDS} {
				if err := write(io.Discard, tc.img, tc.opts); !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
			}
		})
	}
}

func TestDataLengthTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format bcn.Format
		w      int
		h      int
		want   int
	}{
		{name: "dxt1-4x4", format: bcn.FormatDXT1, w: 4, h: 4, want: 8},
		{name: "dxt1-5x7", format: bcn.FormatDXT1, w: 5, h: 7, want: 32},
		{name: "dxt5-4x4", format: bcn.FormatDXT5, w: 4, h: 4, want: 16},
		{name: "bgra8-1x1", format: bcn.FormatBGRA8, w: 1, h: 1, want: 4},
		{name: "bgra8-5x7", format: bcn.FormatBGRA8, w: 5, h: 7, want: 140},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := dataLength(tc.format, tc.w, tc.h)
			if err != nil || got != tc.want {
				t.Fatalf("dataLength(%v,%d,%d) = %d, %v; want %d", tc.format, tc.w, tc.h, got, err, tc.want)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := dataLength(bcn.FormatUnknown, 4, 4); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("dataLength: expected ErrInvalidFormat, got %v", err)
	}
	if _, err := ddsHeader(bcn.FormatUnknown, 4, 4, 1, true); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("ddsHeader: expected ErrInvalidFormat, got %v", err)
	}
}

func TestMipCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		w, h int
		want int
	}{
		{1, 1, 1},
		{2, 1, 2},
		{64, 32, 7},
		{5, 3, 3},
		{4096, 4096, maxMipLevels},
	}

	for _, tc := range tests {
		if got := mipCount(tc.w, tc.h); got != tc.want {
			t.Errorf("mipCount(%d, %d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("DXT5")
	if err != nil || f != bcn.FormatDXT5 {
		t.Fatalf("ParseFormat(DXT5) = %v, %v", f, err)
	}
	if _, err := ParseFormat("png"); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}
