package uno

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultLoadConcurrency bounds the number of images decoded at once.
const DefaultLoadConcurrency = 4

type assetState uint8

const (
	assetLoading assetState = iota + 1
	assetLoaded
	assetFailed
)

type loadResult struct {
	path string
	img  image.Image
	err  error
}

// Assets loads images from a file system in the background. Request starts a
// load; Poll, called once per frame, publishes finished loads. Until then the
// image reports as not loaded. A failed load is reported once and the path
// stays unloaded.
//
// All methods except the background decode run on the frame thread.
type Assets struct {
	fsys  fs.FS
	group errgroup.Group

	mu       sync.Mutex
	finished []loadResult

	pending []string
	state   map[string]assetState
	decoded map[string]image.Image
	images  map[string]*ebiten.Image
	loaded  []string
	failed  []error
}

// NewAssets creates an asset loader reading from fsys. concurrency <= 0 uses
// DefaultLoadConcurrency.
func NewAssets(fsys fs.FS, concurrency int) *Assets {
	if concurrency <= 0 {
		concurrency = DefaultLoadConcurrency
	}
	a := &Assets{
		fsys:    fsys,
		state:   make(map[string]assetState),
		decoded: make(map[string]image.Image),
		images:  make(map[string]*ebiten.Image),
	}
	a.group.SetLimit(concurrency)
	return a
}

// Request starts loading path unless it is already loading or done. When the
// concurrency limit is reached the load is started by a later Poll.
func (a *Assets) Request(path string) {
	if path == "" {
		return
	}
	if _, seen := a.state[path]; seen {
		return
	}
	a.state[path] = assetLoading
	if !a.group.TryGo(a.loadFunc(path)) {
		a.pending = append(a.pending, path)
	}
}

// RequestAll requests every path.
func (a *Assets) RequestAll(paths ...string) {
	for _, p := range paths {
		a.Request(p)
	}
}

func (a *Assets) loadFunc(path string) func() error {
	return func() error {
		img, err := decodeImage(a.fsys, path)
		a.mu.Lock()
		a.finished = append(a.finished, loadResult{path: path, img: img, err: err})
		a.mu.Unlock()
		// Failures are reported through Poll, never through the group.
		return nil
	}
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("uno: open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("uno: decode %s: %w", path, err)
	}
	return img, nil
}

// Poll starts queued loads the concurrency limit allows and publishes every
// load that finished since the last call. It returns the paths that became
// loaded and the errors of loads that failed during this call. The returned
// slices are only valid until the next Poll.
func (a *Assets) Poll() (loaded []string, failed []error) {
	for len(a.pending) > 0 && a.group.TryGo(a.loadFunc(a.pending[0])) {
		a.pending = a.pending[1:]
	}

	a.mu.Lock()
	done := a.finished
	a.finished = nil
	a.mu.Unlock()

	a.loaded = a.loaded[:0]
	a.failed = a.failed[:0]
	for _, r := range done {
		if r.err != nil {
			a.state[r.path] = assetFailed
			a.failed = append(a.failed, r.err)
			_, _ = fmt.Fprintf(os.Stderr, "[uno] asset: %v\n", r.err)
			continue
		}
		a.state[r.path] = assetLoaded
		a.decoded[r.path] = r.img
		a.loaded = append(a.loaded, r.path)
	}
	return a.loaded, a.failed
}

// Wait blocks until every requested load has finished, then publishes them
// as Poll does. Intended for startup and tests.
func (a *Assets) Wait() (loaded []string, failed []error) {
	for len(a.pending) > 0 {
		a.group.Go(a.loadFunc(a.pending[0]))
		a.pending = a.pending[1:]
	}
	_ = a.group.Wait()
	return a.Poll()
}

// Loaded reports whether path finished loading successfully.
func (a *Assets) Loaded(path string) bool {
	return a.state[path] == assetLoaded
}

// Failed reports whether loading path failed.
func (a *Assets) Failed(path string) bool {
	return a.state[path] == assetFailed
}

// Size implements ImageSizer.
func (a *Assets) Size(path string) (w, h int, ok bool) {
	img, ok := a.decoded[path]
	if !ok {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}

// Image returns the GPU image for a loaded path, creating it on first use.
// Returns nil while the path is not loaded. Must be called from Draw.
func (a *Assets) Image(path string) *ebiten.Image {
	if img, ok := a.images[path]; ok {
		return img
	}
	src, ok := a.decoded[path]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	a.images[path] = img
	return img
}

// Count returns the number of loaded images.
func (a *Assets) Count() int {
	return len(a.decoded)
}
