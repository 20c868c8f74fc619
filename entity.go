package uno

// HoverState records whether the world pointer is over an entity.
type HoverState uint8

const (
	NotHovered HoverState = iota
	Hovered
)

func (h HoverState) String() string {
	if h == Hovered {
		return "hovered"
	}
	return "not-hovered"
}

// ClickState records whether an entity is held down by the left button.
type ClickState uint8

const (
	NotClicked ClickState = iota
	Clicked
)

func (c ClickState) String() string {
	if c == Clicked {
		return "clicked"
	}
	return "not-clicked"
}

// Entity is a textured object on the table. X and Y are the world position of
// the image center.
type Entity struct {
	// ID is assigned by the table and never reused.
	ID uint32
	// Name is a human-readable label used in debug output.
	Name string

	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	// ZIndex orders drawing; higher values draw on top. Ties keep spawn order.
	ZIndex int
	// Visible controls drawing only. Invisible entities still take part in
	// hover and click detection.
	Visible bool
	Color   Color

	// Texture is the asset path drawn for this entity.
	Texture string
	Caps    Capability
	Hover   HoverState
	Click   ClickState

	// Card is the identity of a face-up card, nil for other entities.
	Card *Card

	// UserData is an arbitrary value for the caller.
	UserData any

	removed bool
}

// EntitySpec describes an entity to spawn. Zero scale is treated as 1.
type EntitySpec struct {
	Name           string
	X, Y           float64
	ScaleX, ScaleY float64
	ZIndex         int
	Texture        string
	Caps           Capability
	Card           *Card
}

// CardSpec returns a spec for a face-up, interactive card at (x, y).
func CardSpec(c Card, x, y float64) EntitySpec {
	card := c
	return EntitySpec{
		Name:    c.String(),
		X:       x,
		Y:       y,
		Texture: c.TexturePath(),
		Caps:    Hoverable | Clickable,
		Card:    &card,
	}
}

// Removed reports whether the entity has been removed from its table.
func (e *Entity) Removed() bool {
	return e.removed
}

// bounds returns the world-space box used for hover tests: the entity
// position plus or minus half the scaled image size. Rotation is ignored.
func (e *Entity) bounds(w, h int) Rect {
	return CenteredRect(e.X, e.Y, float64(w)*abs(e.ScaleX), float64(h)*abs(e.ScaleY))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
