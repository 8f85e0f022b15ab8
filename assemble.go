package ase

import "fmt"

// assemble resolves cross references once every frame is decoded.
func assemble(doc *Document, strictTags bool) error {
	if err := checkCels(doc); err != nil {
		return err
	}
	linkLayers(doc)
	attachUserData(doc)

	return checkTags(doc, strictTags)
}

// checkCels validates layer indices and linked cel sources.
func checkCels(doc *Document) error {
	for i, frame := range doc.Frames {
		for j, cel := range frame.Cels {
			if int(cel.Layer) >= len(doc.Layers) {
				return fmt.Errorf("%w: frame %d cel %d references layer %d of %d",
					ErrInvalidLayerIndex, i, j, cel.Layer, len(doc.Layers))
			}

			link, ok := cel.Content.(*LinkedCel)
			if !ok {
				continue
			}
			if int(link.Frame) >= i {
				return fmt.Errorf("%w: frame %d layer %d links to frame %d",
					ErrInvalidCelLink, i, cel.Layer, link.Frame)
			}
			if doc.Cel(int(link.Frame), int(cel.Layer)) == nil {
				return fmt.Errorf("%w: frame %d layer %d links to frame %d with no cel",
					ErrInvalidCelLink, i, cel.Layer, link.Frame)
			}
		}
	}

	return nil
}

// linkLayers sets each layer's parent to the nearest preceding layer whose
// child level is exactly one less.
func linkLayers(doc *Document) {
	for i, l := range doc.Layers {
		l.Parent = -1
		if l.ChildLevel == 0 {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if doc.Layers[j].ChildLevel+1 == l.ChildLevel {
				l.Parent = j
				break
			}
		}
	}
}

func attachUserData(doc *Document) {
	for _, ud := range doc.UserData {
		t := ud.Target
		switch t.Kind {
		case TargetSprite:
			doc.SpriteUserData = ud
		case TargetLayer:
			if t.Index < len(doc.Layers) {
				doc.Layers[t.Index].UserData = ud
			}
		case TargetCel:
			if t.Frame < len(doc.Frames) && t.Index < len(doc.Frames[t.Frame].Cels) {
				doc.Frames[t.Frame].Cels[t.Index].UserData = ud
			}
		case TargetTag:
			if t.Index < len(doc.Tags) {
				doc.Tags[t.Index].UserData = ud
			}
		}
	}
}

// checkTags reports tags whose range is reversed or past the last frame.
func checkTags(doc *Document, strict bool) error {
	for i, t := range doc.Tags {
		if t.From <= t.To && int(t.To) < len(doc.Frames) {
			continue
		}

		err := fmt.Errorf("%w: tag %d %q range [%d, %d] with %d frames",
			ErrSemanticRangeViolation, i, t.Name, t.From, t.To, len(doc.Frames))
		if strict {
			return err
		}
		doc.Defects = append(doc.Defects, err)
	}

	return nil
}
