package deck

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/rng"
)

// Deck owns a set of cards partitioned across the draw, held and discard piles.
// Every member sits in exactly one pile and has this deck as its owner.
// A Deck is not safe for concurrent use.
type Deck struct {
	id       uuid.UUID
	members  map[*card.Card]struct{}
	piles    [3][]*card.Card
	shuffler rng.Shuffler
	log      *zap.Logger
}

// Position is the current location of a card within a deck
type Position struct {
	Pile  Pile
	Index int
	Card  *card.Card
}

// Option configures a Deck
type Option func(*Deck)

// WithShuffler sets the permutation source used by the shuffle operations
func WithShuffler(s rng.Shuffler) Option {
	return func(d *Deck) {
		if s != nil {
			d.shuffler = s
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(l *zap.Logger) Option {
	return func(d *Deck) {
		if l != nil {
			d.log = l
		}
	}
}

// New creates a deck with every given card placed in the draw pile, in order
func New(cards []*card.Card, opts ...Option) (*Deck, error) {
	d := &Deck{
		id:      uuid.New(),
		members: make(map[*card.Card]struct{}, len(cards)),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.shuffler == nil {
		d.shuffler = rng.New()
	}
	d.log = d.log.With(zap.String("deck", d.id.String()))

	for i, c := range cards {
		if err := d.Add(c, Draw); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
	}

	return d, nil
}

// ID returns the identifier used to tell decks apart in logs
func (d *Deck) ID() uuid.UUID {
	return d.id
}

// TotalLength is the number of cards belonging to the deck, in any pile
func (d *Deck) TotalLength() int {
	return len(d.members)
}

// RemainingLength is the number of cards left in the draw pile
func (d *Deck) RemainingLength() int {
	return len(d.piles[Draw])
}

// Len is the number of cards in the given pile
func (d *Deck) Len(p Pile) int {
	if !p.valid() {
		return 0
	}
	return len(d.piles[p])
}

// Cards returns a copy of the given pile, top first
func (d *Deck) Cards(p Pile) []*card.Card {
	if !p.valid() {
		return nil
	}
	return slices.Clone(d.piles[p])
}

// Members returns every card of the deck in pile order
func (d *Deck) Members() []*card.Card {
	all := make([]*card.Card, 0, len(d.members))
	for _, p := range Piles {
		all = append(all, d.piles[p]...)
	}
	return all
}

// Contains reports whether c belongs to the deck
func (d *Deck) Contains(c *card.Card) bool {
	_, ok := d.members[c]
	return ok
}

// Add places c at the tail of pile p, taking it from any deck that held it
// before. A card that already belongs to this deck is moved to p.
func (d *Deck) Add(c *card.Card, p Pile) error {
	if !p.valid() {
		return &UnknownPileError{Pile: p.String()}
	}
	if c == nil {
		return ErrNotACard
	}

	if d.Contains(c) {
		d.takeFromPiles(c)
	}
	c.SetDeck(d)

	d.members[c] = struct{}{}
	d.piles[p] = append(d.piles[p], c)

	d.log.Debug("card added", zap.String("card", c.ShortText()), zap.Stringer("pile", p))
	return nil
}

// Remove takes c out of the deck entirely. Removing a card that is not a
// member does nothing.
func (d *Deck) Remove(c *card.Card) {
	if c == nil {
		return
	}

	if d.Contains(c) {
		delete(d.members, c)
		d.takeFromPiles(c)
		d.log.Debug("card removed", zap.String("card", c.ShortText()))
	}

	if c.Deck() == card.Owner(d) {
		c.SetDeck(nil)
	}
}

// Draw moves up to count cards from the top of the draw pile to the held
// pile and returns them in the order they were drawn.
func (d *Deck) Draw(count int) ([]*card.Card, error) {
	return d.drawTo(Held, count)
}

// DrawToDiscard is like Draw but the cards go straight to the discard pile
func (d *Deck) DrawToDiscard(count int) ([]*card.Card, error) {
	return d.drawTo(Discard, count)
}

func (d *Deck) drawTo(dest Pile, count int) ([]*card.Card, error) {
	if len(d.piles[Draw]) == 0 {
		return nil, ErrEmptyDrawPile
	}
	if count < 0 {
		return []*card.Card{}, nil
	}

	n := min(count, len(d.piles[Draw]))
	drawn := slices.Clone(d.piles[Draw][:n])
	d.piles[Draw] = slices.Delete(d.piles[Draw], 0, n)
	d.piles[dest] = append(d.piles[dest], drawn...)

	d.log.Debug("cards drawn", zap.Int("count", n), zap.Stringer("to", dest))
	return drawn, nil
}

// Discard moves each card from the draw or held pile to the discard pile.
// Cards already discarded are left where they are. Every card is attempted;
// the failures, if any, are combined into the returned error.
func (d *Deck) Discard(cards ...*card.Card) error {
	var errs error
	for i, c := range cards {
		if err := d.discard(c); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("discard card %d: %w", i, err))
		}
	}
	return errs
}

func (d *Deck) discard(c *card.Card) error {
	if c == nil {
		return ErrNotACard
	}
	if !d.Contains(c) {
		return ErrCardNotOwned
	}

	for _, p := range []Pile{Draw, Held} {
		if i := slices.Index(d.piles[p], c); i >= 0 {
			d.piles[p] = slices.Delete(d.piles[p], i, i+1)
			d.piles[Discard] = append(d.piles[Discard], c)
			return nil
		}
	}
	return nil
}

// Find returns the pile and index of c, searching draw, held and discard in turn
func (d *Deck) Find(c *card.Card) (Position, error) {
	if c == nil {
		return Position{}, ErrNotACard
	}
	if !d.Contains(c) {
		return Position{}, ErrCardNotOwned
	}

	for _, p := range Piles {
		if i := slices.Index(d.piles[p], c); i >= 0 {
			return Position{Pile: p, Index: i, Card: c}, nil
		}
	}

	panic(fmt.Sprintf("deck %s: member %s is in no pile", d.id, c))
}

// ShuffleAll returns the held and discarded cards to the draw pile and
// shuffles the whole of it.
func (d *Deck) ShuffleAll() {
	d.piles[Draw] = append(d.piles[Draw], d.piles[Held]...)
	d.piles[Draw] = append(d.piles[Draw], d.piles[Discard]...)
	d.piles[Held] = nil
	d.piles[Discard] = nil

	d.shuffle(Draw)
}

// ShuffleRemaining shuffles the draw pile only
func (d *Deck) ShuffleRemaining() {
	d.shuffle(Draw)
}

// ShuffleDiscard shuffles the discard pile and places it under the draw pile
func (d *Deck) ShuffleDiscard() {
	d.shuffle(Discard)
	d.piles[Draw] = append(d.piles[Draw], d.piles[Discard]...)
	d.piles[Discard] = nil
}

// ShuffleDeckAndDiscard puts the discard pile under the draw pile and
// shuffles the result.
func (d *Deck) ShuffleDeckAndDiscard() {
	d.piles[Draw] = append(d.piles[Draw], d.piles[Discard]...)
	d.piles[Discard] = nil

	d.shuffle(Draw)
}

// DiscardAllHeld moves every held card to the discard pile, in order
func (d *Deck) DiscardAllHeld() {
	d.piles[Discard] = append(d.piles[Discard], d.piles[Held]...)
	d.piles[Held] = nil
}

func (d *Deck) shuffle(p Pile) {
	rng.Shuffle(d.shuffler, d.piles[p])
	d.log.Debug("pile shuffled", zap.Stringer("pile", p), zap.Int("cards", len(d.piles[p])))
}

// takeFromPiles drops c from whichever pile holds it
func (d *Deck) takeFromPiles(c *card.Card) {
	for _, p := range Piles {
		if i := slices.Index(d.piles[p], c); i >= 0 {
			d.piles[p] = slices.Delete(d.piles[p], i, i+1)
		}
	}
}

// AddNamed is Add for a pile given by name, as read from user input
func (d *Deck) AddNamed(c *card.Card, pile string) error {
	p, err := ParsePile(pile)
	if err != nil {
		return err
	}
	return d.Add(c, p)
}
