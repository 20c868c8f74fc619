package uno

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrNoCamera is returned when a table is created without a camera.
	// Pointer world coordinates cannot be computed without one.
	ErrNoCamera = errors.New("uno: no camera")
	// ErrInvalidWindow is returned for a zero or negative window size.
	ErrInvalidWindow = errors.New("invalid window size")
	// ErrNoAssets is returned when a table is created without an asset loader.
	ErrNoAssets = errors.New("uno: no asset loader")
)

// EntityStore is the interface for optional ECS integration.
// When set on a Table, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// FrameStore is an EntityStore that also wants a call after each frame's
// events have been emitted, for example to dispatch queued ECS events.
type FrameStore interface {
	EntityStore
	EndFrame()
}

// InteractionEvent reports a hover, click, or deck change. X and Y are the
// world pointer position at the time of the event.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	X, Y     float64
	Button   MouseButton
	// Card is set for EventCardDrawn.
	Card Card
	// Remaining is the deck size after an EventCardDrawn.
	Remaining int
}

// TableConfig holds the collaborators and settings for NewTable.
type TableConfig struct {
	// Camera maps window pixels to table coordinates. Required.
	Camera *Camera
	// Width and Height are the window size in pixels.
	Width, Height int
	// Assets loads card textures. Required.
	Assets *Assets
	// Input produces per-frame events. Nil means injected input only.
	Input InputSource
	// Composition is the deck count table. Nil uses DefaultComposition.
	Composition *Composition
	// Rand shuffles the deck. Nil uses a time-seeded source.
	Rand *rand.Rand
	// Debug enables [uno] debug logging on stderr.
	Debug bool
}

// Table is the top-level object that owns the entities, the camera, pointer
// state, the deck, and the per-frame systems.
type Table struct {
	entities []*Entity
	byID     map[uint32]*Entity
	nextID   uint32

	camera  *Camera
	width   int
	height  int
	assets  *Assets
	input   InputSource
	pointer PointerState
	deck    Deck
	view    deckView
	store   EntityStore

	events       []InputEvent
	interactions []InteractionEvent
	injectQueue  [][]InputEvent
	tweens       []*TweenGroup

	runner      *ScriptRunner
	exitOnDone  bool
	debug       bool
	devMode     bool
	frame       uint64
	drawOrder   []*Entity
	tooltipFace *TTFFont

	// ScreenshotDir is the directory where screenshots are saved.
	// Defaults to "screenshots".
	ScreenshotDir   string
	screenshotQueue []string
}

// NewTable validates cfg, generates and shuffles the deck, and spawns the
// deck entity. Every card texture is requested from the asset loader.
func NewTable(cfg TableConfig) (*Table, error) {
	if cfg.Camera == nil {
		return nil, ErrNoCamera
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("uno: new table %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidWindow)
	}
	if cfg.Assets == nil {
		return nil, ErrNoAssets
	}
	comp := DefaultComposition
	if cfg.Composition != nil {
		comp = *cfg.Composition
	}
	if err := comp.Validate(); err != nil {
		return nil, fmt.Errorf("uno: new table: %w", err)
	}
	if cfg.Camera.Viewport.Width <= 0 || cfg.Camera.Viewport.Height <= 0 {
		cfg.Camera.Viewport = Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	}

	t := &Table{
		byID:          make(map[uint32]*Entity),
		camera:        cfg.Camera,
		width:         cfg.Width,
		height:        cfg.Height,
		assets:        cfg.Assets,
		input:         cfg.Input,
		debug:         cfg.Debug,
		ScreenshotDir: "screenshots",
	}
	t.deck = comp.Generate(cfg.Rand)

	t.assets.Request(CardBackPath)
	for _, c := range AllCards() {
		t.assets.Request(c.TexturePath())
	}
	t.spawnDeck()
	t.debugf("table ready: %d cards in deck", t.deck.Len())
	return t, nil
}

// Update runs one frame of the table systems in a fixed order: input, script,
// asset poll, pointer UI, pointer world, hover, click, deck view, tweens,
// camera, dev toggle. Interaction events are forwarded to the entity store
// at the end of the frame.
func (t *Table) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	t.frame++
	t.interactions = t.interactions[:0]

	t.collectInput()
	if t.runner != nil {
		t.runner.step(t)
	}
	t.assets.Poll()

	t.pointer.UpdateUI(t.events)
	t.pointer.UpdateWorld(t.camera, t.events)
	t.interactions = UpdateHover(t.interactions, t.entities, t.pointer.World, t.assets)
	t.interactions = UpdateClick(t.interactions, t.entities, t.events, t.pointer.World)
	t.updateDeckView()
	t.updateTweens(dt)
	t.camera.update(dt)
	t.updateDevToggle()

	t.flushInteractions()

	if t.exitOnDone && t.runner != nil && t.runner.Done() && len(t.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (t *Table) flushInteractions() {
	for _, ev := range t.interactions {
		t.debugEvent(ev)
		if t.store != nil {
			t.store.EmitEvent(ev)
		}
	}
	if fs, ok := t.store.(FrameStore); ok {
		fs.EndFrame()
	}
}

func (t *Table) updateDevToggle() {
	for _, ev := range t.events {
		if ev.Type == InputKeyPress && ev.Key == DevToggleKey {
			t.devMode = !t.devMode
			t.debugf("dev mode: %v", t.devMode)
		}
	}
}

// Spawn adds an entity built from spec and requests its texture.
func (t *Table) Spawn(spec EntitySpec) *Entity {
	t.nextID++
	e := &Entity{
		ID:      t.nextID,
		Name:    spec.Name,
		X:       spec.X,
		Y:       spec.Y,
		ScaleX:  orOne(spec.ScaleX),
		ScaleY:  orOne(spec.ScaleY),
		ZIndex:  spec.ZIndex,
		Visible: true,
		Color:   ColorWhite,
		Texture: spec.Texture,
		Caps:    spec.Caps,
		Card:    spec.Card,
	}
	t.entities = append(t.entities, e)
	t.byID[e.ID] = e
	t.assets.Request(e.Texture)
	return e
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// Remove deletes e from the table. Tweens targeting e stop on their next
// update.
func (t *Table) Remove(e *Entity) {
	if e == nil || e.removed {
		return
	}
	e.removed = true
	delete(t.byID, e.ID)
	for i, o := range t.entities {
		if o == e {
			copy(t.entities[i:], t.entities[i+1:])
			t.entities[len(t.entities)-1] = nil
			t.entities = t.entities[:len(t.entities)-1]
			break
		}
	}
}

// Entity returns the entity with the given ID, or nil.
func (t *Table) Entity(id uint32) *Entity {
	return t.byID[id]
}

// Entities returns the entities in spawn order. The returned slice MUST NOT
// be mutated.
func (t *Table) Entities() []*Entity {
	return t.entities
}

// Camera returns the table camera.
func (t *Table) Camera() *Camera {
	return t.camera
}

// Assets returns the table's asset loader.
func (t *Table) Assets() *Assets {
	return t.assets
}

// Pointer returns the current pointer positions.
func (t *Table) Pointer() PointerState {
	return t.pointer
}

// Interactions returns the interaction events produced by the last Update.
// The returned slice MUST NOT be mutated.
func (t *Table) Interactions() []InteractionEvent {
	return t.interactions
}

// Size returns the window size the table was created with.
func (t *Table) Size() (w, h int) {
	return t.width, t.height
}

// SetEntityStore sets the optional ECS bridge.
func (t *Table) SetEntityStore(store EntityStore) {
	t.store = store
}

// SetInputSource replaces the live input source.
func (t *Table) SetInputSource(in InputSource) {
	t.input = in
}

// SetDebugMode enables or disables [uno] debug logging on stderr.
func (t *Table) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// DevMode reports whether the dev overlay is shown.
func (t *Table) DevMode() bool {
	return t.devMode
}

// SetDevMode shows or hides the dev overlay.
func (t *Table) SetDevMode(enabled bool) {
	t.devMode = enabled
}

// Frame returns the number of updates run so far.
func (t *Table) Frame() uint64 {
	return t.frame
}
