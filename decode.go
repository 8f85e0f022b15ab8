package ase

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"
)

// DecodeOptions configures decoding. A nil *DecodeOptions uses defaults.
type DecodeOptions struct {
	// Logger receives chunk-level debug records. Nil disables logging.
	Logger *slog.Logger
	// StrictTagRanges fails the decode on a tag whose range is reversed or
	// past the last frame. Otherwise the problem is kept in Document.Defects.
	StrictTagRanges bool
	// AllowChunkPadding skips bytes a chunk decoder leaves unread instead of
	// failing with ErrChunkSizeMismatch.
	AllowChunkPadding bool
	// MaxCelBytes bounds one decoded cel or tilemap payload.
	// Zero uses DefaultMaxCelBytes, negative disables the limit.
	MaxCelBytes int64
}

// chunkState carries the objects later chunks in the stream refer to.
type chunkState struct {
	frame int
	// lastCel is the cel a cel extra chunk applies to; reset every frame.
	lastCel *Cel
	// target is where the next user data chunk goes.
	target UserDataTarget
	// tagEnd is one past the last tag of the latest tags chunk.
	tagEnd int
}

// consumeTarget returns the current user data target and advances past it
// when a tags chunk queued one target per tag.
func (st *chunkState) consumeTarget() UserDataTarget {
	t := st.target
	if t.Kind == TargetTag {
		st.target.Index++
		if st.target.Index >= st.tagEnd {
			st.target = UserDataTarget{}
		}
	}
	return t
}

type decoder struct {
	c           *Cursor
	opts        DecodeOptions
	log         *slog.Logger
	doc         *Document
	havePalette bool
}

// Decode decodes an Aseprite file from r.
func Decode(r io.Reader) (*Document, error) {
	return DecodeWithOptions(r, nil)
}

// DecodeWithOptions decodes an Aseprite file from r with the given options.
// Either the complete Document or the first error is returned.
func DecodeWithOptions(r io.Reader, opts *DecodeOptions) (*Document, error) {
	d := &decoder{c: NewCursor(r), doc: &Document{}}
	if opts != nil {
		d.opts = *opts
	}
	d.log = d.opts.Logger
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}

	if err := d.decode(); err != nil {
		return nil, err
	}

	return d.doc, nil
}

// DecodeHeader decodes only the file header.
func DecodeHeader(r io.Reader) (*Header, error) {
	h, err := readHeader(NewCursor(r))
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	return &h, nil
}

func (d *decoder) maxCelBytes() int64 {
	switch {
	case d.opts.MaxCelBytes == 0:
		return DefaultMaxCelBytes
	case d.opts.MaxCelBytes < 0:
		return 0
	default:
		return d.opts.MaxCelBytes
	}
}

func (d *decoder) decode() error {
	h, err := readHeader(d.c)
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}
	d.doc.Header = h
	d.log.Debug("header",
		"frames", h.Frames, "width", h.Width, "height", h.Height,
		"depth", h.Depth.String(), "flags", uint32(h.Flags))

	d.doc.Frames = make([]*Frame, 0, h.Frames)
	st := &chunkState{}
	for i := 0; i < int(h.Frames); i++ {
		frame, err := d.decodeFrame(i, st)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		d.doc.Frames = append(d.doc.Frames, frame)
	}

	return assemble(d.doc, d.opts.StrictTagRanges)
}

func (d *decoder) decodeFrame(index int, st *chunkState) (*Frame, error) {
	fh, err := readFrameHeader(d.c)
	if err != nil {
		return nil, err
	}
	d.log.Debug("frame", "index", index, "size", fh.Size, "chunks", fh.Chunks, "duration", fh.Duration)

	frame := &Frame{
		Size:     fh.Size,
		Duration: time.Duration(fh.Duration) * time.Millisecond,
	}
	st.frame = index
	st.lastCel = nil

	for j := uint32(0); j < fh.Chunks; j++ {
		if err := d.decodeChunk(frame, st); err != nil {
			return nil, fmt.Errorf("chunk %d: %w", j, err)
		}
	}
	frame.Cels = slices.Clip(frame.Cels)

	return frame, nil
}

// decodeChunk reads one chunk envelope and decodes its payload from a span
// of exactly the declared size.
func (d *decoder) decodeChunk(frame *Frame, st *chunkState) error {
	offset := d.c.Offset()
	total, err := d.c.U32()
	if err != nil {
		return err
	}
	raw, err := d.c.U16()
	if err != nil {
		return err
	}
	typ := ChunkType(raw)

	n := payloadSize(total)
	if n < 0 {
		return fmt.Errorf("%w: %s size %d below the %d-byte chunk header", ErrUnexpectedEndOfData, typ, total, ChunkHeaderSize)
	}
	span, err := d.c.Span(n)
	if err != nil {
		return err
	}
	d.log.Debug("chunk", "frame", st.frame, "type", typ.String(), "size", total, "offset", offset)

	if err := d.dispatch(typ, span, frame, st); err != nil {
		return fmt.Errorf("%s: %w", typ, err)
	}

	if left := span.Remaining(); left > 0 {
		if !d.opts.AllowChunkPadding {
			return fmt.Errorf("%w: %s left %d of %d bytes unread", ErrChunkSizeMismatch, typ, left, n)
		}
		d.log.Debug("chunk padding", "type", typ.String(), "bytes", left)
		if err := span.Skip(left); err != nil {
			return err
		}
	}

	return nil
}

func (d *decoder) dispatch(typ ChunkType, c *Cursor, frame *Frame, st *chunkState) error {
	switch typ {
	case ChunkLayer:
		l, err := readLayer(c, d.doc.Header.Flags)
		if err != nil {
			return err
		}
		d.doc.Layers = append(d.doc.Layers, l)
		st.target = UserDataTarget{Kind: TargetLayer, Index: len(d.doc.Layers) - 1}

	case ChunkCel:
		cel, err := readCel(c, d.doc.Header.Depth, d.maxCelBytes())
		if err != nil {
			return err
		}
		frame.Cels = append(frame.Cels, cel)
		st.lastCel = cel
		st.target = UserDataTarget{Kind: TargetCel, Frame: st.frame, Index: len(frame.Cels) - 1}

	case ChunkCelExtra:
		if st.lastCel == nil {
			return ErrDanglingCelExtra
		}
		ex, err := readCelExtra(c)
		if err != nil {
			return err
		}
		st.lastCel.Extra = ex

	case ChunkColorProfile:
		p, err := readColorProfile(c)
		if err != nil {
			return err
		}
		if d.doc.ColorProfile == nil {
			d.doc.ColorProfile = p
		}
		st.target = UserDataTarget{}

	case ChunkTags:
		tags, err := readTags(c)
		if err != nil {
			return err
		}
		base := len(d.doc.Tags)
		d.doc.Tags = append(d.doc.Tags, tags...)
		st.target = UserDataTarget{}
		if len(tags) > 0 {
			st.target = UserDataTarget{Kind: TargetTag, Index: base}
			st.tagEnd = len(d.doc.Tags)
		}

	case ChunkPalette:
		p, err := readPalette(c)
		if err != nil {
			return err
		}
		d.setPalette(p)
		st.target = UserDataTarget{Kind: TargetSprite}

	case ChunkOldPalette, ChunkOldPalette11:
		p, err := readOldPalette(c)
		if err != nil {
			return err
		}
		d.setPalette(p)
		st.target = UserDataTarget{}

	case ChunkUserData:
		ud, err := readUserData(c)
		if err != nil {
			return err
		}
		ud.Target = st.consumeTarget()
		d.doc.UserData = append(d.doc.UserData, ud)

	default:
		return fmt.Errorf("%w: 0x%04X", ErrUnsupportedChunkType, uint16(typ))
	}

	return nil
}

// setPalette keeps the first palette seen, except that a current-format
// palette replaces one taken from a legacy chunk.
func (d *decoder) setPalette(p *Palette) {
	if d.havePalette && !(d.doc.Palette.Legacy && !p.Legacy) {
		d.log.Debug("palette ignored", "legacy", p.Legacy, "size", p.Size)
		return
	}
	d.doc.Palette = *p
	d.havePalette = true
}
