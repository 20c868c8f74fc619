package uno

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Background is the table felt color.
var Background = Color{R: 0.07, G: 0.33, B: 0.18, A: 1}

var (
	gizmoColor      = color.RGBA{255, 214, 51, 255}
	tooltipBG       = color.RGBA{0, 0, 0, 180}
	tooltipPadding  = 4.0
	devTextPosition = image.Pt(8, 8)
)

// Draw renders the table into screen: entities in ZIndex order through the
// camera, then hover outlines and the pointer readout when the dev overlay is
// on, then the deck tooltip. Queued screenshots are captured last.
func (t *Table) Draw(screen *ebiten.Image) {
	screen.Fill(Background.toRGBA())

	view := t.camera.computeViewMatrix()
	vp := t.camera.Viewport
	target := screen.SubImage(image.Rect(
		int(vp.X), int(vp.Y),
		int(vp.X+vp.Width), int(vp.Y+vp.Height),
	)).(*ebiten.Image)

	for _, e := range t.sortedEntities() {
		if !e.Visible {
			continue
		}
		img := t.assets.Image(e.Texture)
		if img == nil {
			continue
		}
		b := img.Bounds()
		m := multiplyAffine(view, spriteTransform(e, float64(b.Dx()), float64(b.Dy())))

		var op ebiten.DrawImageOptions
		op.GeoM.SetElement(0, 0, m[0])
		op.GeoM.SetElement(1, 0, m[1])
		op.GeoM.SetElement(0, 1, m[2])
		op.GeoM.SetElement(1, 1, m[3])
		op.GeoM.SetElement(0, 2, m[4])
		op.GeoM.SetElement(1, 2, m[5])
		if e.Color != ColorWhite {
			op.ColorScale.ScaleWithColor(e.Color.toRGBA())
		}
		op.Filter = ebiten.FilterLinear
		target.DrawImage(img, &op)
	}

	if t.devMode {
		t.drawGizmos(target)
		t.drawDevText(screen)
	}
	t.drawTooltip(screen)

	t.flushScreenshots(screen)
}

// sortedEntities returns the entities ordered by ZIndex, ties in spawn order.
func (t *Table) sortedEntities() []*Entity {
	t.drawOrder = append(t.drawOrder[:0], t.entities...)
	slices.SortStableFunc(t.drawOrder, func(a, b *Entity) int {
		return a.ZIndex - b.ZIndex
	})
	return t.drawOrder
}

// drawGizmos outlines every hovered, not clicked entity.
func (t *Table) drawGizmos(dst *ebiten.Image) {
	for _, e := range t.entities {
		if !outlined(e) {
			continue
		}
		w, h, ok := t.assets.Size(e.Texture)
		if !ok {
			continue
		}
		r := gizmoBounds(e, w, h)
		x0, y0 := t.camera.WorldToScreen(r.X, r.Y)
		x1, y1 := t.camera.WorldToScreen(r.X+r.Width, r.Y+r.Height)
		vector.StrokeRect(dst,
			float32(math.Min(x0, x1)), float32(math.Min(y0, y1)),
			float32(math.Abs(x1-x0)), float32(math.Abs(y1-y0)),
			1, gizmoColor, false)
	}
}

func (t *Table) drawDevText(screen *ebiten.Image) {
	p := t.pointer
	msg := fmt.Sprintf("ui: (%.0f, %.0f)\nworld: (%.0f, %.0f)\n%s",
		p.UI.X, p.UI.Y, p.World.X, p.World.Y, t.collectStats())
	ebitenutil.DebugPrintAt(screen, msg, devTextPosition.X, devTextPosition.Y)
}

func (t *Table) drawTooltip(screen *ebiten.Image) {
	pos, visible := t.Tooltip()
	if !visible {
		return
	}
	f := t.tooltipFont()
	s := t.TooltipText()
	w, h := f.MeasureString(s)
	vector.DrawFilledRect(screen,
		float32(pos.X-tooltipPadding), float32(pos.Y-tooltipPadding),
		float32(w+2*tooltipPadding), float32(h+2*tooltipPadding),
		tooltipBG, false)
	f.drawText(screen, s, pos.X, pos.Y, ColorWhite)
}
