package uno

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.Viewport.Width != 800 || cam.Viewport.Height != 600 {
		t.Errorf("Viewport = %v, want 800x600", cam.Viewport)
	}
	if cam.Scrolling() {
		t.Error("new camera should not be scrolling")
	}
}

func TestCameraIdentityViewMatrix(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	vm := cam.computeViewMatrix()
	// The world origin is drawn at the viewport center.
	sx, sy := transformPoint(vm, 0, 0)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(0,0) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.X = 100
	cam.Y = 50
	sx, sy := cam.WorldToScreen(100, 50)
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("WorldToScreen(100,50) with cam at (100,50) = (%f,%f), want (400,300)", sx, sy)
	}
}

func TestCameraFieldWriteInvalidatesMatrix(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.computeViewMatrix()
	cam.X = 10
	sx, _ := cam.WorldToScreen(0, 0)
	if !approxEqual(sx, 390, epsilon) {
		t.Errorf("WorldToScreen after X write = %f, want 390", sx)
	}
	cam.Viewport = Rect{Width: 200, Height: 100}
	sx, sy := cam.WorldToScreen(10, 0)
	if !approxEqual(sx, 100, epsilon) || !approxEqual(sy, 50, epsilon) {
		t.Errorf("WorldToScreen after viewport write = (%f,%f), want (100,50)", sx, sy)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2.0

	sx1, _ := cam.WorldToScreen(1, 0)
	sx0, _ := cam.WorldToScreen(0, 0)
	if !approxEqual(sx1-sx0, 2.0, epsilon) {
		t.Errorf("screen distance = %f, want 2.0", sx1-sx0)
	}
}

func TestCameraRotation(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Rotation = math.Pi / 2

	sx, sy := cam.WorldToScreen(10, 0)
	// Rotating the camera clockwise turns the world counter-clockwise on screen.
	if !approxEqual(sx, 400, 1e-9) || !approxEqual(sy, 290, 1e-9) {
		t.Errorf("WorldToScreen(10,0) = (%f,%f), want (400,290)", sx, sy)
	}
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{X: 20, Y: 10, Width: 640, Height: 480})
	cam.X, cam.Y = -35, 120
	cam.Zoom = 1.5
	cam.Rotation = 0.3

	for _, p := range []Vec2{{0, 0}, {100, -200}, {-3.5, 7.25}} {
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		wx, wy := cam.ScreenToWorld(sx, sy)
		if !approxEqual(wx, p.X, 1e-9) || !approxEqual(wy, p.Y, 1e-9) {
			t.Errorf("round trip of %v = (%f,%f)", p, wx, wy)
		}
	}
}

func TestCameraScreenToWorldViewportCenter(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	wx, wy := cam.ScreenToWorld(400, 300)
	if !approxEqual(wx, 0, epsilon) || !approxEqual(wy, 0, epsilon) {
		t.Errorf("ScreenToWorld(400,300) = (%f,%f), want (0,0)", wx, wy)
	}
	wx, wy = cam.ScreenToWorld(0, 0)
	if !approxEqual(wx, -400, epsilon) || !approxEqual(wy, -300, epsilon) {
		t.Errorf("ScreenToWorld(0,0) = (%f,%f), want (-400,-300)", wx, wy)
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.Zoom = 2
	b := cam.VisibleBounds()
	want := Rect{X: -200, Y: -150, Width: 400, Height: 300}
	if !approxEqual(b.X, want.X, epsilon) || !approxEqual(b.Y, want.Y, epsilon) ||
		!approxEqual(b.Width, want.Width, epsilon) || !approxEqual(b.Height, want.Height, epsilon) {
		t.Errorf("VisibleBounds = %v, want %v", b, want)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	cam.ScrollTo(100, -40, 1.0, ease.Linear)
	if !cam.Scrolling() {
		t.Fatal("expected Scrolling after ScrollTo")
	}

	cam.update(0.5)
	if !approxEqual(cam.X, 50, 1e-3) || !approxEqual(cam.Y, -20, 1e-3) {
		t.Errorf("halfway = (%f,%f), want (50,-20)", cam.X, cam.Y)
	}

	cam.update(0.6)
	if cam.Scrolling() {
		t.Error("scroll should be finished")
	}
	if !approxEqual(cam.X, 100, 1e-3) || !approxEqual(cam.Y, -40, 1e-3) {
		t.Errorf("end = (%f,%f), want (100,-40)", cam.X, cam.Y)
	}
}
