package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/uno"
)

var (
	deckSeed   int64
	deckConfig string
	deckTop    int
)

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Print a shuffled deck and its composition",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		comp := uno.DefaultComposition
		if deckConfig != "" {
			cfg, err := uno.LoadConfigFile(deckConfig)
			if err != nil {
				return err
			}
			comp = cfg.Deck
		}
		seed := deckSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		deck := comp.Generate(rand.New(rand.NewSource(seed)))
		return printDeck(cmd.OutOrStdout(), &deck, seed, deckTop)
	},
}

// printDeck writes the top n cards (all when n <= 0) and a per-card summary.
func printDeck(w io.Writer, deck *uno.Deck, seed int64, n int) error {
	cards := deck.Cards()
	if _, err := fmt.Fprintf(w, "seed %d, %d cards, top first:\n", seed, len(cards)); err != nil {
		return err
	}
	shown := 0
	for i := len(cards) - 1; i >= 0; i-- {
		if n > 0 && shown == n {
			break
		}
		fmt.Fprintf(w, "%4d  %s\n", shown+1, cards[i])
		shown++
	}

	counts := deck.Counts()
	fmt.Fprintln(w, "\ncomposition:")
	for _, c := range uno.AllCards() {
		if counts[c] > 0 {
			fmt.Fprintf(w, "  %-20s x%d\n", c, counts[c])
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(deckCmd)

	deckCmd.Flags().Int64VarP(&deckSeed, "seed", "s", 0, "Shuffle seed (0 = random)")
	deckCmd.Flags().StringVarP(&deckConfig, "config", "c", "", "YAML config file with a deck table")
	deckCmd.Flags().IntVarP(&deckTop, "top", "n", 0, "Only print the top N cards")
}
