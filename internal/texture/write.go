package texture

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/woozymasta/bcn"
)

// Options configures texture export. A nil *Options writes BGRA8 with a
// full mip chain and LZ4 compression.
type Options struct {
	// Format is the pixel encoding. FormatUnknown selects BGRA8.
	Format bcn.Format
	// MaxMipMaps limits the mip chain; zero means full chain.
	MaxMipMaps int
	// Store disables LZ4 and writes every EDDS block as COPY.
	Store bool
	// Encode is passed to the bcn encoder.
	Encode *bcn.EncodeOptions
}

func (o *Options) format() bcn.Format {
	if o == nil || o.Format == bcn.FormatUnknown {
		return bcn.FormatBGRA8
	}
	return o.Format
}

// texture is an encoded mip chain, largest level first.
type texture struct {
	format bcn.Format
	width  int
	height int
	levels [][]byte
}

// encode builds the mip chain of img and encodes every level.
func encode(img image.Image, opts *Options) (*texture, error) {
	bounds := img.Bounds()
	t := &texture{format: opts.format(), width: bounds.Dx(), height: bounds.Dy()}
	if t.width <= 0 || t.height <= 0 {
		return nil, ErrEmptyImage
	}

	count := mipCount(t.width, t.height)
	if opts != nil && opts.MaxMipMaps > 0 && opts.MaxMipMaps < count {
		count = opts.MaxMipMaps
	}

	var enc *bcn.EncodeOptions
	if opts != nil {
		enc = opts.Encode
	}

	mips := bcn.GenerateMipmaps(toNRGBA(img), false)
	if len(mips) > count {
		mips = mips[:count]
	}

	t.levels = make([][]byte, len(mips))
	for i, mip := range mips {
		data, _, _, err := bcn.EncodeImageWithOptions(mip, t.format, enc)
		if err != nil {
			return nil, fmt.Errorf("%w: mipmap %d: %v", ErrEncodeMipmap, i, err)
		}

		want, err := dataLength(t.format, mipDimension(t.width, i), mipDimension(t.height, i))
		if err != nil {
			return nil, err
		}
		if len(data) != want {
			return nil, fmt.Errorf("%w: mipmap %d: expected %d, got %d", ErrMipmapSizeMismatch, i, want, len(data))
		}
		t.levels[i] = data
	}

	return t, nil
}

// toNRGBA returns img as an NRGBA image anchored at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

func (t *texture) writeHeader(w io.Writer, enfusion bool) error {
	hdr, err := ddsHeader(t.format, t.width, t.height, len(t.levels), enfusion)
	if err != nil {
		return err
	}
	if err := bcn.WriteDDSMagic(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHeader, err)
	}
	if err := bcn.WriteDDSHeader(w, hdr); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHeader, err)
	}

	return nil
}

// WriteDDS writes img as a plain DDS texture.
func WriteDDS(w io.Writer, img image.Image, opts *Options) error {
	t, err := encode(img, opts)
	if err != nil {
		return err
	}
	if err := t.writeHeader(w, false); err != nil {
		return err
	}

	for i, level := range t.levels {
		if _, err := w.Write(level); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWriteBlockData, i, err)
		}
	}

	return nil
}

// WriteEDDS writes img as an Enfusion EDDS texture. The block table and
// bodies run from the smallest mip level to the largest.
func WriteEDDS(w io.Writer, img image.Image, opts *Options) error {
	t, err := encode(img, opts)
	if err != nil {
		return err
	}
	store := opts != nil && opts.Store

	blocks := make([]*block, len(t.levels))
	for i, level := range t.levels {
		if store {
			size, err := i32FromInt(len(level))
			if err != nil {
				return err
			}
			blocks[i] = &block{magic: BlockMagicCOPY, size: size, data: level}
			continue
		}
		if blocks[i], err = packBlock(level); err != nil {
			return fmt.Errorf("mipmap %d: %w", i, err)
		}
	}

	if err := t.writeHeader(w, true); err != nil {
		return err
	}
	for i := len(blocks) - 1; i >= 0; i-- {
		if err := blocks[i].writeTableEntry(w); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWriteBlockTable, i, err)
		}
	}
	for i := len(blocks) - 1; i >= 0; i-- {
		if err := blocks[i].writeBody(w); err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrWriteBlockData, i, err)
		}
	}

	return nil
}
