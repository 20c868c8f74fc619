package uno

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// Screenshot asks for the next drawn frame to be saved as
// ScreenshotDir/<time>_f<frame>_<label>.png. Several labels queued in the
// same frame share one capture.
func (t *Table) Screenshot(label string) {
	t.screenshotQueue = append(t.screenshotQueue, label)
}

// PendingScreenshots returns the number of labels waiting for a frame.
func (t *Table) PendingScreenshots() int {
	return len(t.screenshotQueue)
}

// flushScreenshots runs at the end of Draw. The queue is cleared even when
// writing fails; failures are logged.
func (t *Table) flushScreenshots(screen *ebiten.Image) {
	if len(t.screenshotQueue) == 0 {
		return
	}
	labels := t.screenshotQueue
	t.screenshotQueue = t.screenshotQueue[:0]

	if err := os.MkdirAll(t.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[uno] screenshot: %v\n", err)
		return
	}
	img := capture(screen)
	prefix := fmt.Sprintf("%s_f%05d", time.Now().Format("20060102_150405"), t.frame)
	for _, label := range labels {
		path := filepath.Join(t.ScreenshotDir, prefix+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[uno] screenshot: %v\n", err)
			continue
		}
		t.debugf("screenshot: %s", path)
	}
}

// capture copies the frame off the GPU.
func capture(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, b.Dx(), b.Dy())
}

// unpremultiply converts Ebitengine's premultiplied pixels to a straight
// alpha image for PNG encoding.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	src := &image.RGBA{Pix: pixels, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, image.Point{}, draw.Src)
	return dst
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("uno: screenshot %s: %w", path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("uno: encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', and replaces
// everything else with '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
