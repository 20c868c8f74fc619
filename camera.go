package uno

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Camera is the view onto the table. The point (X, Y) is drawn at the center
// of Viewport; Zoom and Rotation apply around it. Fields may be written
// directly, the view matrix is rebuilt on the next use.
type Camera struct {
	X, Y float64
	// Zoom > 1 magnifies the table.
	Zoom float64
	// Rotation in radians, clockwise.
	Rotation float64
	// Viewport is the window rectangle the table is drawn into.
	Viewport Rect

	view, inv [6]float64
	baked     cameraPose
	valid     bool

	scroll *TweenGroup
}

// cameraPose is the set of fields the view matrix depends on.
type cameraPose struct {
	x, y, zoom, rot float64
	viewport        Rect
}

func (c *Camera) pose() cameraPose {
	return cameraPose{x: c.X, y: c.Y, zoom: c.Zoom, rot: c.Rotation, viewport: c.Viewport}
}

// NewCamera returns a camera at the world origin with zoom 1.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport}
}

// ScrollTo moves the camera to (x, y) over duration seconds. A new call
// replaces a scroll in progress.
func (c *Camera) ScrollTo(x, y float64, duration float32, fn ease.TweenFunc) {
	c.scroll = tweenPair(nil, &c.X, &c.Y, x, y, duration, fn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

func (c *Camera) update(dt float32) {
	if c.scroll == nil {
		return
	}
	c.scroll.Update(dt)
	if c.scroll.Done {
		c.scroll = nil
	}
}

// computeViewMatrix returns the world-to-screen matrix
//
//	Translate(viewport center) * Scale(Zoom) * Rotate(-Rotation) * Translate(-X, -Y)
//
// rebuilding it only when a field changed since the last call.
func (c *Camera) computeViewMatrix() [6]float64 {
	p := c.pose()
	if c.valid && p == c.baked {
		return c.view
	}
	center := translateAffine(p.viewport.X+p.viewport.Width/2, p.viewport.Y+p.viewport.Height/2)
	c.view = multiplyAffine(center,
		multiplyAffine(scaleRotateAffine(p.zoom, -p.rot), translateAffine(-p.x, -p.y)))
	c.inv = invertAffine(c.view)
	c.baked, c.valid = p, true
	return c.view
}

// WorldToScreen converts table coordinates to window pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.computeViewMatrix(), wx, wy)
}

// ScreenToWorld converts window pixels to table coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.inv, sx, sy)
}

// VisibleBounds returns the world-space box around everything the viewport
// shows.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	vp := c.Viewport
	corners := [4]Vec2{
		{vp.X, vp.Y},
		{vp.X + vp.Width, vp.Y},
		{vp.X + vp.Width, vp.Y + vp.Height},
		{vp.X, vp.Y + vp.Height},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		x, y := transformPoint(c.inv, p.X, p.Y)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
