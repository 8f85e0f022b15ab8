package ase

// readTags decodes a tags chunk payload.
func readTags(c *Cursor) ([]*Tag, error) {
	count, err := c.U16()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(8); err != nil {
		return nil, err
	}

	tags := make([]*Tag, 0, count)
	for i := 0; i < int(count); i++ {
		t := &Tag{}
		if t.From, err = c.U16(); err != nil {
			return nil, err
		}
		if t.To, err = c.U16(); err != nil {
			return nil, err
		}
		dir, err := c.U8()
		if err != nil {
			return nil, err
		}
		t.Direction = LoopDirection(dir)
		if t.Repeat, err = c.U16(); err != nil {
			return nil, err
		}
		// 6 reserved, 3 deprecated tag color, 1 extra
		if err := c.Skip(10); err != nil {
			return nil, err
		}
		if t.Name, err = c.Text(); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, nil
}
