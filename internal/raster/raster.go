// Package raster turns decoded cels into standard library images.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/woozymasta/ase"
)

var (
	// ErrNoCel indicates the layer has no cel in the frame.
	ErrNoCel = errors.New("no cel")
	// ErrNotImage indicates a cel without pixel data (tilemap).
	ErrNotImage = errors.New("cel has no pixel data")
	// ErrPixelSize indicates a pixel buffer that does not match the cel size.
	ErrPixelSize = errors.New("pixel buffer size mismatch")
)

// CelImage returns the pixels layer contributes to frame, following linked
// cels. The image bounds are the cel bounds in canvas coordinates.
func CelImage(doc *ase.Document, frame, layer int) (image.Image, error) {
	cel := doc.ResolveCel(frame, layer)
	if cel == nil {
		return nil, fmt.Errorf("%w: frame %d layer %d", ErrNoCel, frame, layer)
	}

	transparent := true
	if layer >= 0 && layer < len(doc.Layers) {
		transparent = !doc.Layers[layer].Flags.Background()
	}

	return Image(doc, cel, transparent)
}

// Image converts one image cel. For indexed sprites the header transparent
// index is cleared unless transparent is false (background layers).
func Image(doc *ase.Document, cel *ase.Cel, transparent bool) (image.Image, error) {
	img, ok := cel.Content.(*ase.ImageCel)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, cel.Type())
	}

	w, h := int(img.Width), int(img.Height)
	bpp := doc.Header.BytesPerPixel()
	if len(img.Pixels) != w*h*bpp {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes per pixel, got %d bytes", ErrPixelSize, w, h, bpp, len(img.Pixels))
	}
	rect := image.Rect(int(cel.X), int(cel.Y), int(cel.X)+w, int(cel.Y)+h)

	switch doc.Header.Depth {
	case ase.DepthRGBA:
		out := image.NewNRGBA(rect)
		copy(out.Pix, img.Pixels)
		return out, nil

	case ase.DepthGrayscale:
		out := image.NewNRGBA(rect)
		for i := 0; i < w*h; i++ {
			v, a := img.Pixels[i*2], img.Pixels[i*2+1]
			out.Pix[i*4+0] = v
			out.Pix[i*4+1] = v
			out.Pix[i*4+2] = v
			out.Pix[i*4+3] = a
		}
		return out, nil

	case ase.DepthIndexed:
		out := image.NewPaletted(rect, Palette(doc, transparent))
		copy(out.Pix, img.Pixels)
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %s", ase.ErrInvalidColorDepth, doc.Header.Depth)
	}
}

// Palette returns the sprite palette padded to 256 entries so every index
// byte resolves. With transparent set the header transparent index maps to
// a fully transparent color.
func Palette(doc *ase.Document, transparent bool) color.Palette {
	pal := doc.Palette.ColorPalette()
	for len(pal) < 256 {
		pal = append(pal, color.NRGBA{})
	}
	if transparent {
		pal[doc.Header.TransparentIndex] = color.NRGBA{}
	}

	return pal
}
