package deckfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
)

// SchemaVersion is the only deck file schema understood
const SchemaVersion = "1.0"

// DeckConfig is the on-disk layout of a deck definition file
type DeckConfig struct {
	Deck          DeckSection          `toml:"deck"`
	CustomSuits   []CustomSuit         `toml:"custom_suits"`
	CustomRanks   []CustomRank         `toml:"custom_ranks"`
	ExcludedCards *ExcludedCardSection `toml:"excluded_cards"`
}

type DeckSection struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	SchemaVersion string   `toml:"schema_version"`
	Author        string   `toml:"author"`
	Description   string   `toml:"description"`
	Preset        string   `toml:"preset"`
	Suits         []string `toml:"suits"`
	Ranks         []string `toml:"ranks"`
	Copies        int      `toml:"copies"`
	Jokers        int      `toml:"jokers"`
	Tags          []string `toml:"tags"`
}

type CustomSuit struct {
	Name   string `toml:"name"`
	Symbol string `toml:"symbol"`
}

type CustomRank struct {
	Short string `toml:"short"`
	Long  string `toml:"long"`
}

type ExcludedCardSection struct {
	Cards  []string `toml:"cards"`
	Reason string   `toml:"reason"`
}

// Definition is a decoded deck definition file
type Definition struct {
	Path   string
	Config DeckConfig

	suits map[string]*card.Suit
	ranks map[string]*card.Rank
}

// Load reads a deck definition from path
func Load(path string) (*Definition, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	var config DeckConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return newDefinition(path, config), nil
}

// Parse decodes a deck definition held in memory
func Parse(data string) (*Definition, error) {
	var config DeckConfig
	if _, err := toml.Decode(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing deck definition: %w", err)
	}
	return newDefinition("", config), nil
}

func newDefinition(path string, config DeckConfig) *Definition {
	d := &Definition{
		Path:   path,
		Config: config,
		suits:  make(map[string]*card.Suit),
		ranks:  make(map[string]*card.Rank),
	}
	if d.Config.Deck.Copies == 0 {
		d.Config.Deck.Copies = 1
	}

	for _, s := range config.CustomSuits {
		if s.Name != "" {
			d.suits[strings.ToLower(s.Name)] = card.NewSuit(s.Name, s.Symbol, nil)
		}
	}
	for _, r := range config.CustomRanks {
		if r.Short != "" {
			long := r.Long
			if long == "" {
				long = r.Short
			}
			d.ranks[r.Short] = card.NewRank(r.Short, long)
		}
	}

	return d
}

// Suit resolves a suit name, custom suits first
func (d *Definition) Suit(name string) (*card.Suit, bool) {
	if s, ok := d.suits[strings.ToLower(name)]; ok {
		return s, true
	}
	return card.LookupSuit(name)
}

// Rank resolves a rank short name, custom ranks first
func (d *Definition) Rank(short string) (*card.Rank, bool) {
	if r, ok := d.ranks[short]; ok {
		return r, true
	}
	return card.LookupRank(short)
}

// Cards builds a fresh card list from the definition: the preset base, then
// every suit and rank combination once per copy, then the jokers, minus any
// excluded cards.
func (d *Definition) Cards() ([]*card.Card, error) {
	section := d.Config.Deck
	var cards []*card.Card

	if section.Preset != "" {
		p, err := deck.LookupPreset(section.Preset)
		if err != nil {
			return nil, err
		}
		cards = p.Build()
	}

	suits := make([]*card.Suit, 0, len(section.Suits))
	for _, name := range section.Suits {
		s, ok := d.Suit(name)
		if !ok {
			return nil, fmt.Errorf("unknown suit: %s", name)
		}
		suits = append(suits, s)
	}

	ranks := make([]*card.Rank, 0, len(section.Ranks))
	for _, short := range section.Ranks {
		r, ok := d.Rank(short)
		if !ok {
			return nil, fmt.Errorf("unknown rank: %s", short)
		}
		ranks = append(ranks, r)
	}

	for i := 0; i < section.Copies; i++ {
		cards = append(cards, deck.Build(suits, ranks)...)
	}
	cards = deck.WithJokers(cards, section.Jokers)

	if d.Config.ExcludedCards != nil && len(d.Config.ExcludedCards.Cards) > 0 {
		excluded := make(map[string]bool, len(d.Config.ExcludedCards.Cards))
		for _, text := range d.Config.ExcludedCards.Cards {
			excluded[text] = true
		}
		kept := cards[:0]
		for _, c := range cards {
			if !excluded[c.ShortText()] {
				kept = append(kept, c)
			}
		}
		cards = kept
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("deck %q defines no cards", section.ID)
	}

	return cards, nil
}
