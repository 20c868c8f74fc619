package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/uno"
)

var (
	texturesAssets string
	texturesCheck  bool
)

// texturesCmd represents the textures command
var texturesCmd = &cobra.Command{
	Use:   "textures",
	Short: "List every texture path a deck can use",
	Long: `List every texture path a deck can use, one per line, card back last.

With --check, every path is looked up under --assets and missing files are
reported; the command fails if any are missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := texturePaths()
		out := cmd.OutOrStdout()
		if !texturesCheck {
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}
			return nil
		}
		missing := missingTextures(os.DirFS(texturesAssets), paths)
		for _, p := range missing {
			fmt.Fprintf(out, "missing: %s\n", p)
		}
		if len(missing) > 0 {
			return fmt.Errorf("%d of %d textures missing under %s", len(missing), len(paths), texturesAssets)
		}
		fmt.Fprintf(out, "all %d textures present\n", len(paths))
		return nil
	},
}

func texturePaths() []string {
	cards := uno.AllCards()
	paths := make([]string, 0, len(cards)+1)
	for _, c := range cards {
		paths = append(paths, c.TexturePath())
	}
	return append(paths, uno.CardBackPath)
}

func missingTextures(fsys fs.FS, paths []string) []string {
	var missing []string
	for _, p := range paths {
		if _, err := fs.Stat(fsys, p); err != nil {
			missing = append(missing, p)
		}
	}
	return missing
}

func init() {
	rootCmd.AddCommand(texturesCmd)

	texturesCmd.Flags().StringVarP(&texturesAssets, "assets", "a", "assets", "Directory containing the cards/ textures")
	texturesCmd.Flags().BoolVar(&texturesCheck, "check", false, "Report textures missing from --assets")
}
