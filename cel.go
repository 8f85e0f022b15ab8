package ase

import "fmt"

// readCel decodes a cel chunk payload. The cursor must be a span over
// exactly the payload: image cels take every byte left in it.
func readCel(c *Cursor, depth ColorDepth, maxBytes int64) (*Cel, error) {
	cel := &Cel{}

	var err error
	if cel.Layer, err = c.U16(); err != nil {
		return nil, err
	}
	if cel.X, err = c.I16(); err != nil {
		return nil, err
	}
	if cel.Y, err = c.I16(); err != nil {
		return nil, err
	}
	if cel.Opacity, err = c.U8(); err != nil {
		return nil, err
	}
	typ, err := c.U16()
	if err != nil {
		return nil, err
	}
	if cel.ZIndex, err = c.I16(); err != nil {
		return nil, err
	}
	if err := c.Skip(5); err != nil {
		return nil, err
	}

	switch CelType(typ) {
	case CelRaw:
		cel.Content, err = readImageCel(c, depth, maxBytes, false)
	case CelCompressedImage:
		cel.Content, err = readImageCel(c, depth, maxBytes, true)
	case CelLinked:
		var frame uint16
		frame, err = c.U16()
		cel.Content = &LinkedCel{Frame: frame}
	case CelCompressedTilemap:
		cel.Content, err = readTilemapCel(c, maxBytes)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCelType, typ)
	}
	if err != nil {
		return nil, err
	}

	return cel, nil
}

func readImageCel(c *Cursor, depth ColorDepth, maxBytes int64, compressed bool) (*ImageCel, error) {
	img := &ImageCel{Compressed: compressed}

	var err error
	if img.Width, err = c.U16(); err != nil {
		return nil, err
	}
	if img.Height, err = c.U16(); err != nil {
		return nil, err
	}

	size, err := bufferSize(img.Width, img.Height, depth.BytesPerPixel(), maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: cel %dx%d", err, img.Width, img.Height)
	}

	if !compressed {
		if img.Pixels, err = c.Bytes(int64(size)); err != nil {
			return nil, err
		}
		return img, nil
	}

	data, err := c.Bytes(c.Remaining())
	if err != nil {
		return nil, err
	}
	if img.Pixels, err = inflate(data, size); err != nil {
		return nil, err
	}

	return img, nil
}

func readTilemapCel(c *Cursor, maxBytes int64) (*TilemapCel, error) {
	tm := &TilemapCel{}

	var err error
	if tm.Width, err = c.U16(); err != nil {
		return nil, err
	}
	if tm.Height, err = c.U16(); err != nil {
		return nil, err
	}
	if tm.BitsPerTile, err = c.U16(); err != nil {
		return nil, err
	}
	if tm.TileIDMask, err = c.U32(); err != nil {
		return nil, err
	}
	if tm.XFlipMask, err = c.U32(); err != nil {
		return nil, err
	}
	if tm.YFlipMask, err = c.U32(); err != nil {
		return nil, err
	}
	if tm.DiagonalFlipMask, err = c.U32(); err != nil {
		return nil, err
	}
	if err := c.Skip(10); err != nil {
		return nil, err
	}

	size, err := bufferSize(tm.Width, tm.Height, (int(tm.BitsPerTile)+7)/8, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: tilemap %dx%d@%d", err, tm.Width, tm.Height, tm.BitsPerTile)
	}
	data, err := c.Bytes(c.Remaining())
	if err != nil {
		return nil, err
	}
	if tm.Data, err = inflate(data, size); err != nil {
		return nil, err
	}

	return tm, nil
}

// readCelExtra decodes a cel extra chunk payload.
func readCelExtra(c *Cursor) (*CelExtra, error) {
	ex := &CelExtra{}

	flags, err := c.U32()
	if err != nil {
		return nil, err
	}
	ex.Flags = CelExtraFlags(flags)
	if ex.X, err = c.Fixed(); err != nil {
		return nil, err
	}
	if ex.Y, err = c.Fixed(); err != nil {
		return nil, err
	}
	if ex.Width, err = c.Fixed(); err != nil {
		return nil, err
	}
	if ex.Height, err = c.Fixed(); err != nil {
		return nil, err
	}
	if err := c.Skip(16); err != nil {
		return nil, err
	}

	return ex, nil
}
