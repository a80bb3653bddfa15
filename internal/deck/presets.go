package deck

import (
	"fmt"
	"sort"

	"github.com/arcanaland/deckhand/internal/card"
)

// Preset builds a fresh list of cards for a well-known deck
type Preset struct {
	Name        string
	Description string
	Build       func() []*card.Card
}

var presets = map[string]Preset{
	"standard": {
		Name:        "standard",
		Description: "52 French-suited cards",
		Build:       Standard,
	},
	"jokers": {
		Name:        "jokers",
		Description: "52 French-suited cards and two jokers",
		Build:       func() []*card.Card { return WithJokers(Standard(), 2) },
	},
	"pinochle": {
		Name:        "pinochle",
		Description: "48 cards, two of each nine through ace",
		Build:       Pinochle,
	},
	"tarot": {
		Name:        "tarot",
		Description: "78 cards, major arcana and four minor arcana suits",
		Build:       Tarot,
	},
	"nouveau": {
		Name:        "nouveau",
		Description: "78 cards, French tarot trumps and four suits with cavaliers",
		Build:       Nouveau,
	},
}

// LookupPreset finds a preset by name
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset: %s", name)
	}
	return p, nil
}

// Presets returns every preset, sorted by name
func Presets() []Preset {
	list := make([]Preset, 0, len(presets))
	for _, p := range presets {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Build creates one card per suit and rank combination, suit by suit
func Build(suits []*card.Suit, ranks []*card.Rank) []*card.Card {
	cards := make([]*card.Card, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			cards = append(cards, card.MustNew(s, r))
		}
	}
	return cards
}

// Standard returns the 52 cards of a French-suited deck
func Standard() []*card.Card {
	return Build(card.FrenchSuits, card.StandardRanks)
}

// WithJokers appends n jokers to cards
func WithJokers(cards []*card.Card, n int) []*card.Card {
	for i := 0; i < n; i++ {
		cards = append(cards, card.MustNew(card.Jokers, card.Joker))
	}
	return cards
}

// Pinochle returns two copies of nine through ace in each French suit
func Pinochle() []*card.Card {
	ranks := []*card.Rank{card.Nine, card.Ten, card.Jack, card.Queen, card.King, card.Ace}
	return append(Build(card.FrenchSuits, ranks), Build(card.FrenchSuits, ranks)...)
}

// Tarot returns the 22 major arcana followed by the 56 minor arcana
func Tarot() []*card.Card {
	ranks := []*card.Rank{
		card.Ace, card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven,
		card.Eight, card.Nine, card.Ten, card.Page, card.Knight, card.Queen, card.King,
	}
	cards := Build([]*card.Suit{card.Trump}, card.Arcana)
	return append(cards, Build(card.TarotSuits, ranks)...)
}

// Nouveau returns a French tarot deck: 22 trumps and 56 suited cards
func Nouveau() []*card.Card {
	ranks := []*card.Rank{
		card.Ace, card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven,
		card.Eight, card.Nine, card.Ten, card.Jack, card.Cavalier, card.Queen, card.King,
	}
	cards := Build([]*card.Suit{card.Trump}, card.Trumps)
	return append(cards, Build(card.FrenchSuits, ranks)...)
}
