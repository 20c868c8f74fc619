package uno

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields together, usually on an Entity.
// Create one with TweenPosition, TweenScale or TweenRotation and either call
// Update(dt) yourself or hand it to Table.AddTween. If the target entity is
// removed, the group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Entity
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields. If the target entity has been removed, Done is set to true
// and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.removed {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that moves e to (toX, toY).
func TweenPosition(e *Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tweenPair(e, &e.X, &e.Y, toX, toY, duration, fn)
}

// TweenScale creates a TweenGroup that animates e.ScaleX and e.ScaleY.
func TweenScale(e *Entity, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return tweenPair(e, &e.ScaleX, &e.ScaleY, toSX, toSY, duration, fn)
}

// tweenPair animates two fields together. target may be nil for fields that
// do not belong to an entity.
func tweenPair(target *Entity, x, y *float64, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: target}
	g.tweens[0] = gween.New(float32(*x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(*y), float32(toY), duration, fn)
	g.fields[0] = x
	g.fields[1] = y
	return g
}

// TweenRotation creates a TweenGroup that animates e.Rotation.
func TweenRotation(e *Entity, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: e}
	g.tweens[0] = gween.New(float32(e.Rotation), float32(to), duration, fn)
	g.fields[0] = &e.Rotation
	return g
}

// AddTween registers g to be advanced by Update until it is done.
func (t *Table) AddTween(g *TweenGroup) {
	t.tweens = append(t.tweens, g)
}

// ActiveTweens returns the number of running tween groups.
func (t *Table) ActiveTweens() int {
	return len(t.tweens)
}

// updateTweens advances every tween and drops the finished ones in place.
func (t *Table) updateTweens(dt float32) {
	n := 0
	for _, g := range t.tweens {
		g.Update(dt)
		if !g.Done {
			t.tweens[n] = g
			n++
		}
	}
	for i := n; i < len(t.tweens); i++ {
		t.tweens[i] = nil
	}
	t.tweens = t.tweens[:n]
}
