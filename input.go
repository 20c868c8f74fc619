package uno

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputEventType identifies a raw platform input occurrence.
type InputEventType uint8

const (
	InputPointerMotion InputEventType = iota // cursor moved within the window
	InputButtonPress                         // a mouse button went down
	InputButtonRelease                       // a mouse button went up
	InputKeyPress                            // a watched keyboard key went down
)

// InputEvent is a single edge event delivered once per occurrence. ScreenX and
// ScreenY are window pixel coordinates; for button events they are the cursor
// position at the time of the edge.
type InputEvent struct {
	Type    InputEventType
	ScreenX float64
	ScreenY float64
	Button  MouseButton
	Key     ebiten.Key // valid for InputKeyPress
}

// InputSource produces the input events observed since the previous frame.
// Implementations append to buf and return it.
type InputSource interface {
	PollEvents(buf []InputEvent) []InputEvent
}

// EbitenInput turns Ebitengine's polled mouse state into edge events: a
// motion event whenever the cursor position changed since the last poll, and
// press/release events from inpututil's just-pressed/just-released queries.
// Keys listed in WatchKeys produce InputKeyPress events.
type EbitenInput struct {
	WatchKeys []ebiten.Key

	lastX, lastY int
	seen         bool
}

// NewEbitenInput returns an input source reading the live Ebitengine state,
// watching the dev-mode toggle key.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{WatchKeys: []ebiten.Key{DevToggleKey}}
}

var ebitenButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// PollEvents implements InputSource. Must be called from ebiten's Update.
func (in *EbitenInput) PollEvents(buf []InputEvent) []InputEvent {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	if !in.seen || mx != in.lastX || my != in.lastY {
		in.seen = true
		in.lastX, in.lastY = mx, my
		buf = append(buf, InputEvent{Type: InputPointerMotion, ScreenX: sx, ScreenY: sy})
	}

	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			buf = append(buf, InputEvent{Type: InputButtonPress, ScreenX: sx, ScreenY: sy, Button: b.btn})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			buf = append(buf, InputEvent{Type: InputButtonRelease, ScreenX: sx, ScreenY: sy, Button: b.btn})
		}
	}
	for _, k := range in.WatchKeys {
		if inpututil.IsKeyJustPressed(k) {
			buf = append(buf, InputEvent{Type: InputKeyPress, ScreenX: sx, ScreenY: sy, Key: k})
		}
	}
	return buf
}

// collectInput fills the frame's event buffer. A pending injected batch takes
// precedence over the live source so scripted frames are reproducible.
func (t *Table) collectInput() {
	t.events = t.events[:0]
	if t.popInjected() {
		return
	}
	if t.input != nil {
		t.events = t.input.PollEvents(t.events)
	}
}

// Events returns this frame's input events. The returned slice MUST NOT be
// mutated and is only valid until the next Update.
func (t *Table) Events() []InputEvent {
	return t.events
}
