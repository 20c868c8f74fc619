package uno

import "github.com/hajimehoshi/ebiten/v2"

// Synthetic input is queued as frames: each Inject* call appends one batch,
// and every Update consumes at most one batch in place of the live source.
// Screen coordinates are used, exactly like real mouse input.

// InjectMove queues a pointer motion to the given screen coordinates.
func (t *Table) InjectMove(x, y float64) {
	t.injectQueue = append(t.injectQueue, []InputEvent{
		{Type: InputPointerMotion, ScreenX: x, ScreenY: y},
	})
}

// InjectPress queues a left-button press at the given screen coordinates.
// The cursor moves there in the same frame, before the press.
func (t *Table) InjectPress(x, y float64) {
	t.injectQueue = append(t.injectQueue, []InputEvent{
		{Type: InputPointerMotion, ScreenX: x, ScreenY: y},
		{Type: InputButtonPress, ScreenX: x, ScreenY: y, Button: MouseButtonLeft},
	})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (t *Table) InjectRelease(x, y float64) {
	t.injectQueue = append(t.injectQueue, []InputEvent{
		{Type: InputPointerMotion, ScreenX: x, ScreenY: y},
		{Type: InputButtonRelease, ScreenX: x, ScreenY: y, Button: MouseButtonLeft},
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (t *Table) InjectClick(x, y float64) {
	t.InjectPress(x, y)
	t.InjectRelease(x, y)
}

// InjectKey queues a key press.
func (t *Table) InjectKey(k ebiten.Key) {
	t.injectQueue = append(t.injectQueue, []InputEvent{{Type: InputKeyPress, Key: k}})
}

// InjectEvents queues an arbitrary batch of events as one frame.
func (t *Table) InjectEvents(events ...InputEvent) {
	t.injectQueue = append(t.injectQueue, append([]InputEvent(nil), events...))
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (t *Table) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	t.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps+1)
		t.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	t.InjectRelease(toX, toY)
}

// PendingInjected returns the number of queued synthetic frames.
func (t *Table) PendingInjected() int {
	return len(t.injectQueue)
}

// popInjected moves the next injected batch into the frame's event buffer.
// Returns true if a batch was consumed.
func (t *Table) popInjected() bool {
	if len(t.injectQueue) == 0 {
		return false
	}
	batch := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue[len(t.injectQueue)-1] = nil
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]
	t.events = append(t.events, batch...)
	return true
}
