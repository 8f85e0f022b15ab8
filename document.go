package ase

import (
	"image/color"
	"time"
)

// Grid is the editor grid stored in the file header.
type Grid struct {
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

// Header is the decoded 128-byte file header.
type Header struct {
	FileSize         uint32
	Frames           uint16
	Width            uint16
	Height           uint16
	Depth            ColorDepth
	Flags            HeaderFlags
	Speed            uint16 // deprecated, superseded by frame durations
	TransparentIndex uint8
	NumColors        uint16
	PixelWidth       uint8
	PixelHeight      uint8
	Grid             *Grid
}

// BytesPerPixel returns the size of one pixel for the header depth.
func (h *Header) BytesPerPixel() int { return h.Depth.BytesPerPixel() }

// PixelRatio returns the pixel aspect ratio; zero fields mean 1:1.
func (h *Header) PixelRatio() (int, int) {
	if h.PixelWidth == 0 || h.PixelHeight == 0 {
		return 1, 1
	}
	return int(h.PixelWidth), int(h.PixelHeight)
}

// Color is a palette or user data color, not premultiplied.
type Color struct {
	R, G, B, A uint8
	Name       string
	HasName    bool
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Palette is the sprite palette.
type Palette struct {
	// Size is the declared number of entries.
	Size   uint32
	Colors []Color
	// Legacy is set when the palette came from an old palette chunk.
	Legacy bool
}

// ColorPalette converts the entries to a color.Palette.
func (p *Palette) ColorPalette() color.Palette {
	pal := make(color.Palette, len(p.Colors))
	for i, c := range p.Colors {
		pal[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return pal
}

// Layer is one entry of the layer list. Layers are stored in declaration
// order; nesting is expressed by ChildLevel and resolved into Parent.
type Layer struct {
	Flags        LayerFlags
	Type         LayerType
	ChildLevel   uint16
	BlendMode    BlendMode
	Opacity      uint8
	Name         string
	TilesetIndex *uint32
	UUID         *[16]byte

	// Parent is the index of the enclosing group layer, or -1 at the root.
	Parent   int
	UserData *UserData
}

// CelContent is the payload of a cel: *ImageCel, *LinkedCel or *TilemapCel.
type CelContent interface {
	celType() CelType
}

// ImageCel holds decoded pixels in the file's color depth, row-major.
type ImageCel struct {
	Width      uint16
	Height     uint16
	Pixels     []byte
	Compressed bool
}

func (c *ImageCel) celType() CelType {
	if c.Compressed {
		return CelCompressedImage
	}
	return CelRaw
}

// LinkedCel reuses the cel of the same layer in an earlier frame.
type LinkedCel struct {
	Frame uint16
}

func (*LinkedCel) celType() CelType { return CelLinked }

// TilemapCel holds an inflated tilemap payload. Tile semantics are not
// interpreted.
type TilemapCel struct {
	Width            uint16
	Height           uint16
	BitsPerTile      uint16
	TileIDMask       uint32
	XFlipMask        uint32
	YFlipMask        uint32
	DiagonalFlipMask uint32
	Data             []byte
}

func (*TilemapCel) celType() CelType { return CelCompressedTilemap }

// Tiles is not implemented for tilemap cels.
func (c *TilemapCel) Tiles() ([]uint32, error) {
	return nil, ErrUnsupportedFeature
}

// CelExtra carries the precise bounds of a cel.
type CelExtra struct {
	Flags  CelExtraFlags
	X      Fixed
	Y      Fixed
	Width  Fixed
	Height Fixed
}

// Cel is the content one layer contributes to one frame.
type Cel struct {
	Layer   uint16
	X       int16
	Y       int16
	Opacity uint8
	ZIndex  int16
	Content CelContent

	Extra    *CelExtra
	UserData *UserData
}

// Type returns the cel type of the content.
func (c *Cel) Type() CelType { return c.Content.celType() }

// Frame is one animation step.
type Frame struct {
	// Size is the declared byte length of the frame.
	Size     uint32
	Duration time.Duration
	Cels     []*Cel
}

// Tag names an inclusive frame range.
type Tag struct {
	From      uint16
	To        uint16
	Direction LoopDirection
	// Repeat is the number of plays; 0 means forever.
	Repeat   uint16
	Name     string
	UserData *UserData
}

// ColorProfile describes the sprite color space.
type ColorProfile struct {
	Type  ProfileType
	Flags ProfileFlags
	Gamma Fixed
	ICC   []byte
}

// TargetKind is the kind of object a user data chunk describes.
type TargetKind uint8

// User data targets.
const (
	TargetNone TargetKind = iota
	TargetSprite
	TargetLayer
	TargetCel
	TargetTag
)

// UserDataTarget addresses the object a user data chunk belongs to. Frame
// and Index select the cel for TargetCel; Index alone selects a layer or tag.
type UserDataTarget struct {
	Kind  TargetKind
	Frame int
	Index int
}

// UserData is free-form text and color attached to a sprite object.
type UserData struct {
	Text   *string
	Color  *Color
	Target UserDataTarget
}

// Document is a fully decoded Aseprite file.
type Document struct {
	Header         Header
	Palette        Palette
	Layers         []*Layer
	Frames         []*Frame
	ColorProfile   *ColorProfile
	Tags           []*Tag
	UserData       []*UserData
	SpriteUserData *UserData

	// Defects lists non-fatal problems found while assembling.
	Defects []error
}

// Parent returns the parent layer index of layer i, or -1.
func (d *Document) Parent(i int) int {
	if i < 0 || i >= len(d.Layers) {
		return -1
	}
	return d.Layers[i].Parent
}

// Children returns the indices of the direct children of layer i. Pass -1
// for the root level.
func (d *Document) Children(i int) []int {
	var out []int
	for j, l := range d.Layers {
		if l.Parent == i {
			out = append(out, j)
		}
	}
	return out
}

// Cel returns the cel of layer in frame, or nil.
func (d *Document) Cel(frame, layer int) *Cel {
	if frame < 0 || frame >= len(d.Frames) {
		return nil
	}
	for _, c := range d.Frames[frame].Cels {
		if int(c.Layer) == layer {
			return c
		}
	}
	return nil
}

// ResolveCel returns the cel of layer in frame, following links to the cel
// holding the pixels. The returned cel keeps the position and opacity of
// the source cel.
func (d *Document) ResolveCel(frame, layer int) *Cel {
	for hops := 0; hops <= len(d.Frames); hops++ {
		c := d.Cel(frame, layer)
		if c == nil {
			return nil
		}
		link, ok := c.Content.(*LinkedCel)
		if !ok {
			return c
		}
		frame = int(link.Frame)
	}
	return nil
}
