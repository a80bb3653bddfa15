package cmd

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/deckfile"
	"github.com/arcanaland/deckhand/internal/render"
	"github.com/arcanaland/deckhand/internal/rng"
)

// loadCards builds the cards for a preset name or a deck definition file.
// An empty name falls back to the configured default deck.
func loadCards(cfg *config.Config, name string) ([]*card.Card, string, error) {
	if name == "" {
		name = cfg.DefaultDeck
	}

	if p, err := deck.LookupPreset(name); err == nil {
		return p.Build(), p.Name, nil
	}

	path, err := config.GetDeckPath(name)
	if err != nil {
		return nil, "", fmt.Errorf("%s is neither a preset nor a deck file: %w", name, err)
	}

	def, err := deckfile.Load(path)
	if err != nil {
		return nil, "", err
	}

	cards, err := def.Cards()
	if err != nil {
		return nil, "", fmt.Errorf("error building deck %s: %w", path, err)
	}

	title := def.Config.Deck.Name
	if title == "" {
		title = name
	}
	return cards, title, nil
}

// newShuffler picks the randomness source: --entropy, then --seed, then the
// config file, then a random seed. The returned closer releases any opened file.
func newShuffler(cfg *config.Config) (rng.Shuffler, io.Closer, error) {
	entropy := entropyFlag
	if entropy == "" {
		entropy = cfg.Entropy
	}
	if entropy != "" {
		f, err := os.Open(entropy)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening entropy source: %w", err)
		}
		logger.Debug("using entropy source", zap.String("path", entropy))
		return rng.NewFromReader(f), f, nil
	}

	seed := seedFlag
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed != 0 {
		logger.Debug("using fixed seed", zap.Uint64("seed", seed))
		return rng.NewSeeded(seed), io.NopCloser(nil), nil
	}

	return rng.New(), io.NopCloser(nil), nil
}

func newRenderer(cfg *config.Config, out io.Writer) (*render.Renderer, error) {
	return render.New(out, cfg.Color && !noColor, render.Palette(cfg.Colors))
}

// table is a deck ready for a command to work with
type table struct {
	deck   *deck.Deck
	title  string
	render *render.Renderer
	config *config.Config
	closer io.Closer
}

func (t *table) Close() {
	_ = t.closer.Close()
}

// openTable loads config, cards and randomness and builds a ready deck
func openTable(name string, out io.Writer) (*table, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	cards, title, err := loadCards(cfg, name)
	if err != nil {
		return nil, err
	}

	r, err := newRenderer(cfg, out)
	if err != nil {
		return nil, err
	}

	shuffler, closer, err := newShuffler(cfg)
	if err != nil {
		return nil, err
	}

	d, err := deck.New(cards, deck.WithShuffler(shuffler), deck.WithLogger(logger))
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	logger.Debug("deck ready", zap.String("deck", title), zap.String("id", d.ID().String()), zap.Int("cards", d.TotalLength()))
	return &table{deck: d, title: title, render: r, config: cfg, closer: closer}, nil
}
