package texture

import (
	"fmt"
	"strings"

	"github.com/woozymasta/bcn"
)

// pixelFormat describes how a bcn format is declared in a DDS header.
type pixelFormat struct {
	name   string
	fourCC string // empty for uncompressed formats
	// block is the byte size of a 4x4 block, or of one pixel when fourCC is empty
	block      int
	r, g, b, a uint32
}

var pixelFormats = map[bcn.Format]pixelFormat{
	bcn.FormatDXT1:  {name: "dxt1", fourCC: "DXT1", block: 8},
	bcn.FormatDXT3:  {name: "dxt3", fourCC: "DXT3", block: 16},
	bcn.FormatDXT5:  {name: "dxt5", fourCC: "DXT5", block: 16},
	bcn.FormatBC4:   {name: "bc4", fourCC: "ATI1", block: 8},
	bcn.FormatBC5:   {name: "bc5", fourCC: "ATI2", block: 16},
	bcn.FormatRGBA8: {name: "rgba8", block: 4, r: 0x000000ff, g: 0x0000ff00, b: 0x00ff0000, a: 0xff000000},
	bcn.FormatBGRA8: {name: "bgra8", block: 4, r: 0x00ff0000, g: 0x0000ff00, b: 0x000000ff, a: 0xff000000},
}

// ParseFormat maps a lowercase format name such as "bgra8" or "dxt5".
func ParseFormat(name string) (bcn.Format, error) {
	name = strings.ToLower(name)
	for f, pf := range pixelFormats {
		if pf.name == name {
			return f, nil
		}
	}

	return bcn.FormatUnknown, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
}

// dataLength returns the encoded size of one width x height level.
func dataLength(format bcn.Format, width, height int) (int, error) {
	pf, ok := pixelFormats[format]
	if !ok {
		return 0, ErrInvalidFormat
	}
	if pf.fourCC == "" {
		return width * height * pf.block, nil
	}

	return ((width + 3) / 4) * ((height + 3) / 4) * pf.block, nil
}

func fourCC(s string) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

// enfusionTag marks EDDS headers in the reserved area.
var enfusionTag = fourCC("ENF1")

// ddsHeader builds the DDS header for a texture of the given size and
// number of mip levels.
func ddsHeader(format bcn.Format, width, height, levels int, enfusion bool) (*bcn.DDSHeader, error) {
	pf, ok := pixelFormats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	}

	w32, err := u32FromInt(width)
	if err != nil {
		return nil, err
	}
	h32, err := u32FromInt(height)
	if err != nil {
		return nil, err
	}
	n32, err := u32FromInt(levels)
	if err != nil {
		return nil, err
	}

	flags := uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat)
	caps := uint32(bcn.DDSCapsTexture)
	if levels > 1 {
		flags |= bcn.DDSFlagMipmapCount
		caps |= bcn.DDSCapsComplex | bcn.DDSCapsMipmap
	}

	hdr := &bcn.DDSHeader{
		Size:        bcn.DDSHeaderSize,
		Flags:       flags,
		Height:      h32,
		Width:       w32,
		Depth:       1,
		MipMapCount: n32,
		Caps:        caps,
	}
	if enfusion {
		hdr.Reserved1[1] = enfusionTag
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize

	if pf.fourCC != "" {
		size, err := dataLength(format, width, height)
		if err != nil {
			return nil, err
		}
		linear, err := u32FromInt(size)
		if err != nil {
			return nil, err
		}
		hdr.Flags |= bcn.DDSFlagLinearSize
		hdr.PixelFormat.Flags = bcn.DDSPFFourCC
		hdr.PixelFormat.FourCC = fourCC(pf.fourCC)
		hdr.PitchOrLinearSize = linear
		return hdr, nil
	}

	hdr.Flags |= bcn.DDSFlagPitch
	hdr.PixelFormat.Flags = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
	hdr.PixelFormat.RGBBitCount = 32
	hdr.PixelFormat.RBitMask = pf.r
	hdr.PixelFormat.GBitMask = pf.g
	hdr.PixelFormat.BBitMask = pf.b
	hdr.PixelFormat.ABitMask = pf.a
	hdr.PitchOrLinearSize = w32 * 4

	return hdr, nil
}
