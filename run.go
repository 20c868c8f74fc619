package uno

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// NewTableFromConfig builds a table for cfg: a camera over the whole window,
// live Ebitengine input, card textures read from fsys, and the showcase
// cards laid out.
func NewTableFromConfig(cfg RunConfig, fsys fs.FS) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	comp := cfg.Deck
	t, err := NewTable(TableConfig{
		Camera:      NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Assets:      NewAssets(fsys, cfg.LoadConcurrency),
		Input:       NewEbitenInput(),
		Composition: &comp,
		Rand:        rng,
		Debug:       cfg.Debug,
	})
	if err != nil {
		return nil, err
	}
	if cfg.ScreenshotDir != "" {
		t.ScreenshotDir = cfg.ScreenshotDir
	}
	t.SetDevMode(cfg.DevMode)
	t.SpawnShowcase()
	return t, nil
}

// game adapts a Table to ebiten.Game.
type game struct {
	table         *Table
	width, height int
	fps           *fpsWidget
}

func (g *game) Update() error {
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return g.table.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.table.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and runs t until the window is closed or Update returns
// an error. ebiten.Termination ends the loop without an error.
func Run(t *Table, cfg RunConfig) error {
	if t == nil {
		return errors.New("uno: run: nil table")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	g := &game{table: t, width: cfg.Width, height: cfg.Height}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("uno: run: %w", err)
	}
	return nil
}
