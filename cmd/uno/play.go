package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/uno"
)

var (
	playConfig string
	playAssets string
	playSeed   int64
	playScript string
	playExit   bool
	playDebug  bool
	playFPS    bool
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the card table window",
	Long: `Open the card table window.

Settings come from the defaults, then the --config YAML file, then flags.
An input script (--script) replays mouse input and takes screenshots:

  {"steps": [{"action": "click", "x": 640, "y": 60},
             {"action": "screenshot", "label": "drawn"}]}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := playSettings(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg.Debug)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		table, err := uno.NewTableFromConfig(cfg, os.DirFS(cfg.AssetDir))
		if err != nil {
			return err
		}
		if playScript != "" {
			data, err := os.ReadFile(playScript)
			if err != nil {
				return err
			}
			runner, err := uno.LoadScript(data)
			if err != nil {
				return err
			}
			table.SetScriptRunner(runner, playExit)
		}

		world, store := newDeckWorld(table)
		table.SetEntityStore(store)
		watchDraws(world, logger)

		logger.Info("table ready",
			zap.Int("width", cfg.Width),
			zap.Int("height", cfg.Height),
			zap.Int("cards", table.Deck().Len()),
			zap.String("assets", cfg.AssetDir),
			zap.Int64("seed", cfg.Seed),
		)
		if err := uno.Run(table, cfg); err != nil {
			logger.Error("table stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

// playSettings layers the config file and the flags that were set on top of
// the defaults.
func playSettings(cmd *cobra.Command) (uno.RunConfig, error) {
	cfg := uno.DefaultRunConfig()
	if playConfig != "" {
		var err error
		if cfg, err = uno.LoadConfigFile(playConfig); err != nil {
			return uno.RunConfig{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("assets") {
		cfg.AssetDir = playAssets
	}
	if flags.Changed("seed") {
		cfg.Seed = playSeed
	}
	if flags.Changed("debug") {
		cfg.Debug = playDebug
	}
	if flags.Changed("fps") {
		cfg.ShowFPS = playFPS
	}
	return cfg, cfg.Validate()
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().StringVarP(&playConfig, "config", "c", "", "YAML config file")
	playCmd.Flags().StringVarP(&playAssets, "assets", "a", "assets", "Directory containing the cards/ textures")
	playCmd.Flags().Int64VarP(&playSeed, "seed", "s", 0, "Shuffle seed (0 = random)")
	playCmd.Flags().StringVar(&playScript, "script", "", "JSON input script to replay")
	playCmd.Flags().BoolVar(&playExit, "exit", false, "Quit when the input script finishes")
	playCmd.Flags().BoolVarP(&playDebug, "debug", "d", false, "Log table events to stderr")
	playCmd.Flags().BoolVar(&playFPS, "fps", false, "Show the FPS counter")
}
