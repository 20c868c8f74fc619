// Command uno opens the card table and inspects decks and textures.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uno",
	Short: "An Uno-style card table",
	Long: `uno shows a shuffled deck and a few face-up cards on a table.

Hover the deck to see how many cards remain and press it to draw.
F toggles the dev overlay with pointer coordinates and hover outlines.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
