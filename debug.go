package uno

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// DevToggleKey shows or hides the dev overlay.
const DevToggleKey = ebiten.KeyF

// gizmoPadding is added to the image size of the hover outline.
const gizmoPadding = 2

// debugStats holds a per-frame summary of the table for the dev overlay and
// debug log.
type debugStats struct {
	entities int
	hovered  int
	clicked  int
	loaded   int
	deck     int
	tweens   int
}

func (t *Table) collectStats() debugStats {
	s := debugStats{
		entities: len(t.entities),
		loaded:   t.assets.Count(),
		deck:     t.deck.Len(),
		tweens:   len(t.tweens),
	}
	for _, e := range t.entities {
		if e.Hover == Hovered {
			s.hovered++
		}
		if e.Click == Clicked {
			s.clicked++
		}
	}
	return s
}

func (s debugStats) String() string {
	return fmt.Sprintf("entities: %d | hovered: %d | clicked: %d | textures: %d | deck: %d | tweens: %d",
		s.entities, s.hovered, s.clicked, s.loaded, s.deck, s.tweens)
}

// debugf prints a [uno] line to stderr when debug mode is on.
func (t *Table) debugf(format string, args ...any) {
	if !t.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[uno] "+format+"\n", args...)
}

// debugEvent logs one interaction event.
func (t *Table) debugEvent(ev InteractionEvent) {
	if !t.debug {
		return
	}
	name := "?"
	if e := t.byID[ev.EntityID]; e != nil {
		name = e.Name
	}
	if ev.Type == EventCardDrawn {
		t.debugf("%s: %s (entity %d), %d left", ev.Type, ev.Card, ev.EntityID, ev.Remaining)
		return
	}
	t.debugf("%s: %q (entity %d) at (%g, %g)", ev.Type, name, ev.EntityID, ev.X, ev.Y)
}

// gizmoBounds returns the world-space outline drawn around a hovered entity:
// its hover bounds grown by gizmoPadding on each axis.
func gizmoBounds(e *Entity, w, h int) Rect {
	return e.bounds(w+gizmoPadding, h+gizmoPadding)
}

// outlined reports whether the dev overlay outlines e.
func outlined(e *Entity) bool {
	return e.Hover == Hovered && e.Click == NotClicked
}
