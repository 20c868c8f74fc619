package uno

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	e := &Entity{X: 0, Y: 0, ScaleX: 1, ScaleY: 1}
	g := TweenPosition(e, 100, 200, 1.0, ease.Linear)

	for i := 0; i < 100; i++ {
		g.Update(0.02)
		if g.Done {
			break
		}
	}
	if !g.Done {
		t.Fatal("tween should be done")
	}
	if math.Abs(e.X-100) > 0.01 || math.Abs(e.Y-200) > 0.01 {
		t.Errorf("position = (%f, %f), want (100, 200)", e.X, e.Y)
	}
}

func TestTweenPositionInterpolates(t *testing.T) {
	e := &Entity{X: -50, Y: 10}
	g := TweenPosition(e, 50, 30, 2.0, ease.Linear)
	g.Update(1.0)
	if g.Done {
		t.Error("tween should not be done halfway")
	}
	if math.Abs(e.X) > 0.01 || math.Abs(e.Y-20) > 0.01 {
		t.Errorf("halfway = (%f, %f), want (0, 20)", e.X, e.Y)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	e := &Entity{ScaleX: 1, ScaleY: 1}
	g := TweenScale(e, 1.5, 0.5, 0.5, ease.OutCubic)
	for i := 0; i < 10; i++ {
		g.Update(0.1)
	}
	if !g.Done {
		t.Fatal("tween should be done")
	}
	if math.Abs(e.ScaleX-1.5) > 0.001 || math.Abs(e.ScaleY-0.5) > 0.001 {
		t.Errorf("scale = (%f, %f), want (1.5, 0.5)", e.ScaleX, e.ScaleY)
	}
}

func TestTweenRotation(t *testing.T) {
	e := &Entity{}
	g := TweenRotation(e, math.Pi, 1.0, ease.Linear)
	g.Update(1.0)
	if !g.Done {
		t.Fatal("tween should be done")
	}
	if math.Abs(e.Rotation-math.Pi) > 1e-5 {
		t.Errorf("rotation = %f, want pi", e.Rotation)
	}
}

func TestTweenStopsOnRemovedEntity(t *testing.T) {
	e := &Entity{X: 5}
	g := TweenPosition(e, 100, 100, 1.0, ease.Linear)
	e.removed = true
	g.Update(0.5)
	if !g.Done {
		t.Error("tween on removed entity should be done")
	}
	if e.X != 5 {
		t.Errorf("X = %f, want 5 (no writes after removal)", e.X)
	}
}

func TestTweenUpdateAfterDoneIsNoOp(t *testing.T) {
	e := &Entity{}
	g := TweenPosition(e, 10, 10, 0.1, ease.Linear)
	g.Update(1)
	e.X = 42
	g.Update(1)
	if e.X != 42 {
		t.Errorf("X = %f, want 42", e.X)
	}
}

func TestTableUpdateTweensDropsFinished(t *testing.T) {
	tbl := &Table{}
	a := &Entity{}
	b := &Entity{}
	tbl.AddTween(TweenPosition(a, 1, 1, 0.01, ease.Linear))
	tbl.AddTween(TweenPosition(b, 1, 1, 10, ease.Linear))

	tbl.updateTweens(0.5)
	if tbl.ActiveTweens() != 1 {
		t.Fatalf("ActiveTweens = %d, want 1", tbl.ActiveTweens())
	}
	if a.X != 1 || a.Y != 1 {
		t.Errorf("a = (%f, %f), want (1, 1)", a.X, a.Y)
	}
}
