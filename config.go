package uno

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds window and table settings for Run and the CLI. It can be
// loaded from YAML:
//
//	title: Uno
//	width: 1280
//	height: 720
//	assets: assets
//	seed: 42
//	deck:
//	  zero: 1
//	  numbers: 2
type RunConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`
	Debug   bool   `yaml:"debug"`
	// DevMode starts with the dev overlay visible.
	DevMode bool `yaml:"dev_mode"`
	// AssetDir is the directory holding the cards/ texture tree.
	AssetDir string `yaml:"assets"`
	// Seed shuffles the deck deterministically. Zero means time-seeded.
	Seed          int64  `yaml:"seed"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	// LoadConcurrency bounds parallel image decoding.
	LoadConcurrency int         `yaml:"load_concurrency"`
	Deck            Composition `yaml:"deck"`
}

// DefaultRunConfig returns the settings used when no config file is given.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:           "Uno",
		Width:           1280,
		Height:          720,
		AssetDir:        "assets",
		ScreenshotDir:   "screenshots",
		LoadConcurrency: DefaultLoadConcurrency,
		Deck:            DefaultComposition,
	}
}

// Validate checks the window size and deck table.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("uno: config %dx%d: %w", c.Width, c.Height, ErrInvalidWindow)
	}
	if err := c.Deck.Validate(); err != nil {
		return fmt.Errorf("uno: config: %w", err)
	}
	return nil
}

// LoadConfig reads YAML from r on top of DefaultRunConfig. Unknown keys are
// rejected. An empty document yields the defaults.
func LoadConfig(r io.Reader) (RunConfig, error) {
	cfg := DefaultRunConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return RunConfig{}, fmt.Errorf("uno: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config file. See LoadConfig.
func LoadConfigFile(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("uno: read config: %w", err)
	}
	return LoadConfig(bytes.NewReader(data))
}
