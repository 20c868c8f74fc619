package uno

import "math"

// PointerState holds the last known cursor position in two spaces: UI
// (window pixels) and World (camera space, truncated toward zero). Both keep
// their previous value on frames without a motion event.
type PointerState struct {
	UI    Vec2
	World Vec2
}

// UpdateUI sets the UI position from every motion event in events. The last
// motion of the frame wins.
func (p *PointerState) UpdateUI(events []InputEvent) {
	for _, ev := range events {
		if ev.Type == InputPointerMotion {
			p.UI = Vec2{X: ev.ScreenX, Y: ev.ScreenY}
		}
	}
}

// UpdateWorld unprojects the UI position through cam when events contain a
// motion event. Must run after UpdateUI for the same frame.
func (p *PointerState) UpdateWorld(cam *Camera, events []InputEvent) {
	for _, ev := range events {
		if ev.Type != InputPointerMotion {
			continue
		}
		wx, wy := cam.ScreenToWorld(p.UI.X, p.UI.Y)
		p.World = Vec2{X: math.Trunc(wx), Y: math.Trunc(wy)}
		return
	}
}
