package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/deckhand/internal/script"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec [operation...]",
	Short: "Run a sequence of deck operations",
	Long: `Exec builds a deck and applies each operation in order, printing the
result of every step and the final state of the draw, held and discard piles.

Operations:
  ` + strings.Join(script.Names(), "\n  ") + `

Cards are named by their short text (A♠, 10♥, XXI) or full name (Ace of spades).

Examples:
  deckhand exec draw:5 discard:A♠ find:2♠
  deckhand exec --deck tarot --shuffle draw:3 discard-held shuffle-discard`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("deck")
		shuffle, _ := cmd.Flags().GetBool("shuffle")

		t, err := openTable(name, os.Stdout)
		if err != nil {
			return err
		}
		defer t.Close()

		if shuffle {
			t.deck.ShuffleAll()
		}

		session := script.NewSession(t.deck, os.Stdout, t.render, logger)
		runErr := session.Exec(args)

		fmt.Println()
		fmt.Print(t.render.Deck(t.deck))
		if len(session.Loose) > 0 {
			fmt.Print(t.render.Pile("removed", session.Loose))
		}

		return runErr
	},
}

func init() {
	RootCmd.AddCommand(execCmd)

	execCmd.Flags().StringP("deck", "d", "", "Preset or deck file to use (defaults to the configured deck)")
	execCmd.Flags().Bool("shuffle", false, "Shuffle the deck before running")
}
