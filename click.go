package uno

// UpdateClick applies this frame's button edges to the entities, in queue
// order. A left press marks every Hovered and Clickable entity as Clicked. A
// left release clears every Clicked entity, whether or not it is still
// hovered. Other buttons are ignored. Transitions are appended to buf as
// EventClickPress / EventClickRelease.
//
// Several overlapping entities can be Clicked by the same press; there is no
// topmost-wins arbitration.
func UpdateClick(buf []InteractionEvent, entities []*Entity, events []InputEvent, p Vec2) []InteractionEvent {
	for _, ev := range events {
		if ev.Button != MouseButtonLeft {
			continue
		}
		switch ev.Type {
		case InputButtonPress:
			for _, e := range entities {
				if e.Hover != Hovered || !e.Caps.Has(Clickable) || e.Click == Clicked {
					continue
				}
				e.Click = Clicked
				buf = append(buf, InteractionEvent{
					Type: EventClickPress, EntityID: e.ID, X: p.X, Y: p.Y, Button: ev.Button,
				})
			}
		case InputButtonRelease:
			for _, e := range entities {
				if e.Click != Clicked {
					continue
				}
				e.Click = NotClicked
				buf = append(buf, InteractionEvent{
					Type: EventClickRelease, EntityID: e.ID, X: p.X, Y: p.Y, Button: ev.Button,
				})
			}
		}
	}
	return buf
}
