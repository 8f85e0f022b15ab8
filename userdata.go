package ase

import "fmt"

// readUserData decodes a user data chunk payload. Properties maps are
// rejected.
func readUserData(c *Cursor) (*UserData, error) {
	raw, err := c.U32()
	if err != nil {
		return nil, err
	}
	flags := UserDataFlags(raw)
	ud := &UserData{}

	if flags&UserDataText != 0 {
		text, err := c.Text()
		if err != nil {
			return nil, err
		}
		ud.Text = &text
	}
	if flags&UserDataColor != 0 {
		col, err := readRGBA(c)
		if err != nil {
			return nil, err
		}
		ud.Color = &col
	}
	if flags&UserDataProperties != 0 {
		return nil, fmt.Errorf("%w: user data properties map", ErrUnsupportedFeature)
	}

	return ud, nil
}
