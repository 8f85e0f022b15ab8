package ase

// readColorProfile decodes a color profile chunk payload.
func readColorProfile(c *Cursor) (*ColorProfile, error) {
	p := &ColorProfile{}

	typ, err := c.U16()
	if err != nil {
		return nil, err
	}
	p.Type = ProfileType(typ)
	flags, err := c.U16()
	if err != nil {
		return nil, err
	}
	p.Flags = ProfileFlags(flags)
	if p.Gamma, err = c.Fixed(); err != nil {
		return nil, err
	}
	if err := c.Skip(8); err != nil {
		return nil, err
	}

	if p.Type == ProfileICC {
		n, err := c.U32()
		if err != nil {
			return nil, err
		}
		if p.ICC, err = c.Bytes(int64(n)); err != nil {
			return nil, err
		}
	}

	return p, nil
}
