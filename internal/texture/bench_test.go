package texture

import (
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/woozymasta/bcn"
)

// benchImage builds a deterministic image with mixed low and high frequencies.
func benchImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8((x*7 + y*3) & 0xff),        //nolint:gosec // bounded by mask
				G: uint8((x*13 + y*5) & 0xff),       //nolint:gosec // bounded by mask
				B: uint8((x ^ y ^ (x >> 2)) & 0xff), //nolint:gosec // bounded by mask
				A: 255,
			})
		}
	}
	return img
}

func BenchmarkWriteEDDSBGRA8(b *testing.B) {
	img := benchImage(512, 512)
	opts := &Options{Format: bcn.FormatBGRA8}

	b.ReportAllocs()
	b.SetBytes(int64(len(img.Pix)))
	for b.Loop() {
		if err := WriteEDDS(io.Discard, img, opts); err != nil {
			b.Fatalf("WriteEDDS: %v", err)
		}
	}
}

func BenchmarkWriteEDDSDXT5(b *testing.B) {
	img := benchImage(512, 512)
	opts := &Options{
		Format: bcn.FormatDXT5,
		Encode: &bcn.EncodeOptions{QualityLevel: bcn.QualityLevelFast},
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(img.Pix)))
	for b.Loop() {
		if err := WriteEDDS(io.Discard, img, opts); err != nil {
			b.Fatalf("WriteEDDS: %v", err)
		}
	}
}
