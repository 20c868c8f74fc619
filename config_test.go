package uno

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRunConfig(t *testing.T) {
	cfg := DefaultRunConfig()
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, "assets", cfg.AssetDir)
	assert.Equal(t, DefaultComposition, cfg.Deck)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
title: Test Table
width: 640
height: 480
show_fps: true
seed: 42
assets: testdata
deck:
  wild: 8
`))
	require.NoError(t, err)
	assert.Equal(t, "Test Table", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.True(t, cfg.ShowFPS)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "testdata", cfg.AssetDir)
	assert.Equal(t, 8, cfg.Deck.Wild)
	assert.Equal(t, DefaultComposition.Numbers, cfg.Deck.Numbers, "unset deck counts keep their default")
	assert.Equal(t, 112, cfg.Deck.Size())
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultRunConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		is   error
	}{
		{"unknown key", "colour: red\n", nil},
		{"bad yaml", "width: [\n", nil},
		{"zero width", "width: 0\n", ErrInvalidWindow},
		{"negative deck count", "deck:\n  zero: -2\n", ErrInvalidComposition},
		{"empty deck", "deck: {zero: 0, numbers: 0, invert: 0, block: 0, plus_two: 0, plus_four: 0, wild: 0}\n", ErrInvalidComposition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.yaml))
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "got %v", err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uno.yaml")
	require.NoError(t, os.WriteFile(path, []byte("height: 600\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Height)

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
