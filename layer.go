package ase

import "fmt"

// readLayer decodes a layer chunk payload.
func readLayer(c *Cursor, hf HeaderFlags) (*Layer, error) {
	l := &Layer{Parent: -1}

	flags, err := c.U16()
	if err != nil {
		return nil, err
	}
	l.Flags = LayerFlags(flags)

	typ, err := c.U16()
	if err != nil {
		return nil, err
	}
	l.Type = LayerType(typ)
	switch l.Type {
	case LayerNormal, LayerGroup, LayerTilemap:
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayerType, typ)
	}

	if l.ChildLevel, err = c.U16(); err != nil {
		return nil, err
	}
	// default layer width and height, ignored
	if err := c.Skip(4); err != nil {
		return nil, err
	}
	blend, err := c.U16()
	if err != nil {
		return nil, err
	}
	l.BlendMode = BlendMode(blend)
	if l.Opacity, err = c.U8(); err != nil {
		return nil, err
	}
	if err := c.Skip(3); err != nil {
		return nil, err
	}
	if l.Name, err = c.Text(); err != nil {
		return nil, err
	}

	if l.Type == LayerTilemap {
		idx, err := c.U32()
		if err != nil {
			return nil, err
		}
		l.TilesetIndex = &idx
	}

	if hf.HasLayerUUID() {
		raw, err := c.Bytes(16)
		if err != nil {
			return nil, err
		}
		var uuid [16]byte
		copy(uuid[:], raw)
		l.UUID = &uuid
	}

	return l, nil
}
