package uno

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for ebiten calls.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// CenteredRect returns the rectangle of size (w, h) centered on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Capability is a bitmask of the interactions an entity takes part in.
type Capability uint8

const (
	Hoverable Capability = 1 << iota // hover detection runs on the entity
	Clickable                        // press/release detection runs on the entity
)

// Has reports whether every bit of other is set.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventHoverEnter   EventType = iota // entity became Hovered
	EventHoverLeave                    // entity stopped being Hovered
	EventClickPress                    // entity became Clicked
	EventClickRelease                  // entity stopped being Clicked
	EventCardDrawn                     // a card left the deck
)

func (t EventType) String() string {
	switch t {
	case EventHoverEnter:
		return "hover-enter"
	case EventHoverLeave:
		return "hover-leave"
	case EventClickPress:
		return "click-press"
	case EventClickRelease:
		return "click-release"
	case EventCardDrawn:
		return "card-drawn"
	default:
		return "unknown"
	}
}
