package ase

import "fmt"

const (
	// FileMagic identifies an Aseprite file.
	FileMagic = 0xA5E0
	// FrameMagic identifies a frame header.
	FrameMagic = 0xF1FA

	// HeaderSize is the fixed size of the file header.
	HeaderSize = 128
	// FrameHeaderSize is the fixed size of a frame header.
	FrameHeaderSize = 16
	// ChunkHeaderSize is the size+type envelope in front of every chunk payload.
	ChunkHeaderSize = 6
)

// ChunkType tags a chunk inside a frame.
type ChunkType uint16

// Chunk types.
const (
	ChunkOldPalette    ChunkType = 0x0004
	ChunkOldPalette11  ChunkType = 0x0011
	ChunkLayer         ChunkType = 0x2004
	ChunkCel           ChunkType = 0x2005
	ChunkCelExtra      ChunkType = 0x2006
	ChunkColorProfile  ChunkType = 0x2007
	ChunkExternalFiles ChunkType = 0x2008
	ChunkMask          ChunkType = 0x2016
	ChunkPath          ChunkType = 0x2017
	ChunkTags          ChunkType = 0x2018
	ChunkPalette       ChunkType = 0x2019
	ChunkUserData      ChunkType = 0x2020
	ChunkSlice         ChunkType = 0x2022
	ChunkTileset       ChunkType = 0x2023
)

var chunkTypeNames = map[ChunkType]string{
	ChunkOldPalette:    "old palette (0x0004)",
	ChunkOldPalette11:  "old palette (0x0011)",
	ChunkLayer:         "layer",
	ChunkCel:           "cel",
	ChunkCelExtra:      "cel extra",
	ChunkColorProfile:  "color profile",
	ChunkExternalFiles: "external files",
	ChunkMask:          "mask",
	ChunkPath:          "path",
	ChunkTags:          "tags",
	ChunkPalette:       "palette",
	ChunkUserData:      "user data",
	ChunkSlice:         "slice",
	ChunkTileset:       "tileset",
}

func (t ChunkType) String() string {
	if name, ok := chunkTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("chunk 0x%04x", uint16(t))
}

// ColorDepth is the header bit depth.
type ColorDepth uint16

// Color depths.
const (
	DepthIndexed   ColorDepth = 8
	DepthGrayscale ColorDepth = 16
	DepthRGBA      ColorDepth = 32
)

// BytesPerPixel returns the pixel size of the depth, or 0 if unknown.
func (d ColorDepth) BytesPerPixel() int {
	switch d {
	case DepthIndexed:
		return 1
	case DepthGrayscale:
		return 2
	case DepthRGBA:
		return 4
	default:
		return 0
	}
}

func (d ColorDepth) String() string {
	switch d {
	case DepthIndexed:
		return "indexed"
	case DepthGrayscale:
		return "grayscale"
	case DepthRGBA:
		return "rgba"
	default:
		return fmt.Sprintf("depth(%d)", uint16(d))
	}
}

// HeaderFlags is the file header flags word.
type HeaderFlags uint32

// Header flags.
const (
	HeaderLayerOpacity HeaderFlags = 1 << iota
	HeaderGroupOpacity
	HeaderLayerUUID
)

// LayerOpacityValid reports whether layer opacity fields carry real values.
func (f HeaderFlags) LayerOpacityValid() bool { return f&HeaderLayerOpacity != 0 }

// GroupOpacityValid reports whether group blend mode and opacity are valid.
func (f HeaderFlags) GroupOpacityValid() bool { return f&HeaderGroupOpacity != 0 }

// HasLayerUUID reports whether layer chunks end with a 16-byte UUID.
func (f HeaderFlags) HasLayerUUID() bool { return f&HeaderLayerUUID != 0 }

// LayerFlags is the layer chunk flags word.
type LayerFlags uint16

// Layer flags.
const (
	LayerVisible LayerFlags = 1 << iota
	LayerEditable
	LayerLockMovement
	LayerBackground
	LayerPreferLinkedCels
	LayerCollapsed
	LayerReference
)

// Visible reports whether the layer is shown.
func (f LayerFlags) Visible() bool { return f&LayerVisible != 0 }

// Editable reports whether the layer can be edited.
func (f LayerFlags) Editable() bool { return f&LayerEditable != 0 }

// MovementLocked reports whether the layer position is locked.
func (f LayerFlags) MovementLocked() bool { return f&LayerLockMovement != 0 }

// Background reports whether the layer is the opaque background.
func (f LayerFlags) Background() bool { return f&LayerBackground != 0 }

// PrefersLinkedCels reports whether new cels on the layer are linked.
func (f LayerFlags) PrefersLinkedCels() bool { return f&LayerPreferLinkedCels != 0 }

// Collapsed reports whether the group is shown collapsed.
func (f LayerFlags) Collapsed() bool { return f&LayerCollapsed != 0 }

// Reference reports whether the layer is a reference layer.
func (f LayerFlags) Reference() bool { return f&LayerReference != 0 }

// LayerType is the kind of a layer.
type LayerType uint16

// Layer types.
const (
	LayerNormal  LayerType = 0
	LayerGroup   LayerType = 1
	LayerTilemap LayerType = 2
)

func (t LayerType) String() string {
	switch t {
	case LayerNormal:
		return "normal"
	case LayerGroup:
		return "group"
	case LayerTilemap:
		return "tilemap"
	default:
		return fmt.Sprintf("layer type %d", uint16(t))
	}
}

// BlendMode identifies a layer blend mode.
type BlendMode uint16

// Blend modes.
const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendAddition
	BlendSubtract
	BlendDivide
)

var blendModeNames = [...]string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color dodge", "color burn", "hard light", "soft light", "difference",
	"exclusion", "hue", "saturation", "color", "luminosity", "addition",
	"subtract", "divide",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return fmt.Sprintf("blend mode %d", uint16(m))
}

// CelType tags the payload layout of a cel chunk.
type CelType uint16

// Cel types.
const (
	CelRaw               CelType = 0
	CelLinked            CelType = 1
	CelCompressedImage   CelType = 2
	CelCompressedTilemap CelType = 3
)

func (t CelType) String() string {
	switch t {
	case CelRaw:
		return "raw"
	case CelLinked:
		return "linked"
	case CelCompressedImage:
		return "compressed image"
	case CelCompressedTilemap:
		return "compressed tilemap"
	default:
		return fmt.Sprintf("cel type %d", uint16(t))
	}
}

// CelExtraFlags is the cel extra chunk flags word.
type CelExtraFlags uint32

// CelExtraPreciseBounds marks the precise bounds as set.
const CelExtraPreciseBounds CelExtraFlags = 1

// PreciseBounds reports whether the precise position and size are set.
func (f CelExtraFlags) PreciseBounds() bool { return f&CelExtraPreciseBounds != 0 }

// LoopDirection is the animation direction of a tag.
type LoopDirection uint8

// Loop directions.
const (
	LoopForward LoopDirection = iota
	LoopReverse
	LoopPingPong
	LoopPingPongReverse
)

func (d LoopDirection) String() string {
	switch d {
	case LoopForward:
		return "forward"
	case LoopReverse:
		return "reverse"
	case LoopPingPong:
		return "ping-pong"
	case LoopPingPongReverse:
		return "ping-pong reverse"
	default:
		return fmt.Sprintf("direction %d", uint8(d))
	}
}

// ProfileType is the color profile kind.
type ProfileType uint16

// Color profile types.
const (
	ProfileNone ProfileType = 0
	ProfileSRGB ProfileType = 1
	ProfileICC  ProfileType = 2
)

func (t ProfileType) String() string {
	switch t {
	case ProfileNone:
		return "none"
	case ProfileSRGB:
		return "sRGB"
	case ProfileICC:
		return "ICC"
	default:
		return fmt.Sprintf("profile type %d", uint16(t))
	}
}

// ProfileFlags is the color profile flags word.
type ProfileFlags uint16

// ProfileFixedGamma marks the gamma field as a special fixed gamma.
const ProfileFixedGamma ProfileFlags = 1

// FixedGamma reports whether the profile uses its fixed gamma value.
func (f ProfileFlags) FixedGamma() bool { return f&ProfileFixedGamma != 0 }

// UserDataFlags is the user data chunk flags word.
type UserDataFlags uint32

// User data flags.
const (
	UserDataText UserDataFlags = 1 << iota
	UserDataColor
	UserDataProperties
)

// paletteEntryName flags a current-format palette entry that carries a name.
const paletteEntryName = 1
