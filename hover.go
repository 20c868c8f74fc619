package uno

// ImageSizer reports the pixel size of a loaded image. ok is false while the
// image is still loading or failed to load.
type ImageSizer interface {
	Size(path string) (w, h int, ok bool)
}

// UpdateHover sets the hover state of every Hoverable entity from the world
// pointer position p. An entity is Hovered when p lies inside its bounds,
// edges included. Entities that are Clicked, or whose image is not loaded
// yet, keep their current state. Transitions are appended to buf as
// EventHoverEnter / EventHoverLeave.
func UpdateHover(buf []InteractionEvent, entities []*Entity, p Vec2, images ImageSizer) []InteractionEvent {
	for _, e := range entities {
		if !e.Caps.Has(Hoverable) || e.Click == Clicked {
			continue
		}
		w, h, ok := images.Size(e.Texture)
		if !ok {
			continue
		}

		next := NotHovered
		if e.bounds(w, h).Contains(p.X, p.Y) {
			next = Hovered
		}
		if next == e.Hover {
			continue
		}
		e.Hover = next

		typ := EventHoverLeave
		if next == Hovered {
			typ = EventHoverEnter
		}
		buf = append(buf, InteractionEvent{Type: typ, EntityID: e.ID, X: p.X, Y: p.Y})
	}
	return buf
}
