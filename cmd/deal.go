package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dealCmd = &cobra.Command{
	Use:   "deal [deck_name]",
	Short: "Shuffle a deck and deal hands",
	Long: `Deal shuffles a preset or deck file and deals cards one at a time to each
hand in turn. If the deck runs out, dealing stops early.

Examples:
  deckhand deal
  deckhand deal --hands 4 --hand-size 13 standard
  deckhand deal --seed 42 tarot`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}

		t, err := openTable(name, os.Stdout)
		if err != nil {
			return err
		}
		defer t.Close()

		hands := t.config.Hands
		if cmd.Flags().Changed("hands") {
			hands, _ = cmd.Flags().GetInt("hands")
		}
		handSize := t.config.HandSize
		if cmd.Flags().Changed("hand-size") {
			handSize, _ = cmd.Flags().GetInt("hand-size")
		}
		if hands < 1 {
			return fmt.Errorf("--hands must be at least 1")
		}

		t.deck.ShuffleAll()
		dealt, err := deal(t.deck, hands, handSize)
		if err != nil {
			return err
		}

		printHands(os.Stdout, t, dealt)
		return nil
	},
}

// deal draws one card per hand per round. Running out of cards ends the deal.
func deal(d *deck.Deck, hands, handSize int) ([][]*card.Card, error) {
	dealt := make([][]*card.Card, hands)

	for round := 0; round < handSize; round++ {
		for h := range dealt {
			drawn, err := d.Draw(1)
			if errors.Is(err, deck.ErrEmptyDrawPile) {
				logger.Warn("deck ran out while dealing", zap.Int("round", round+1), zap.Int("hand", h+1))
				return dealt, nil
			}
			if err != nil {
				return nil, err
			}
			dealt[h] = append(dealt[h], drawn...)
		}
	}

	return dealt, nil
}

func printHands(out io.Writer, t *table, dealt [][]*card.Card) {
	fmt.Fprintf(out, "Dealing from %s\n\n", t.title)
	for i, hand := range dealt {
		fmt.Fprintf(out, "Hand %d (%d): %s\n", i+1, len(hand), t.render.Labels(hand))
	}
	fmt.Fprintf(out, "\n%d cards remaining\n", t.deck.RemainingLength())
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().IntP("hands", "n", 2, "Number of hands to deal")
	dealCmd.Flags().IntP("hand-size", "s", 5, "Cards per hand")
}
