package card

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSuit is returned when a card is constructed without a suit
	ErrInvalidSuit = errors.New("invalid card suit provided")
	// ErrInvalidRank is returned when a card is constructed without a rank
	ErrInvalidRank = errors.New("invalid card rank provided")
)

// Owner is whatever currently holds a card's membership, normally a deck.
// A card only records its owner; it never keeps the owner alive on its own.
type Owner interface {
	Remove(c *Card)
}

// Card represents a single playing card. Suit and rank are fixed at
// construction, the owner is maintained by the deck that holds the card.
type Card struct {
	suit *Suit
	rank *Rank

	shortText string
	longText  string

	owner Owner
}

// NewCard creates a card of the given suit and rank
func NewCard(suit *Suit, rank *Rank) (*Card, error) {
	if suit == nil {
		return nil, ErrInvalidSuit
	}
	if rank == nil {
		return nil, ErrInvalidRank
	}

	return &Card{
		suit:      suit,
		rank:      rank,
		shortText: rank.ShortName(),
		longText:  rank.LongName(),
	}, nil
}

// MustNew is like NewCard but panics when suit or rank is nil
func MustNew(suit *Suit, rank *Rank) *Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Card) Suit() *Suit { return c.suit }

func (c *Card) Rank() *Rank { return c.rank }

// ShortText returns the compact label, e.g. "A♠" or "Joker"
func (c *Card) ShortText() string {
	if !c.suit.Plain() {
		return c.shortText
	}
	return c.shortText + c.suit.Symbol()
}

// LongText returns the full label, e.g. "Ace of spades" or "The Fool"
func (c *Card) LongText() string {
	if !c.suit.Plain() {
		return c.longText
	}
	return fmt.Sprintf("%s of %s", c.longText, c.suit.Name())
}

// Unicode returns the single-glyph playing card for this card, if one exists
func (c *Card) Unicode() string {
	return c.suit.Glyph(c.rank)
}

func (c *Card) String() string {
	return fmt.Sprintf("<Card suit=%s value=%s>", c.suit, c.rank)
}

// Deck returns the current owner of the card, or nil
func (c *Card) Deck() Owner {
	return c.owner
}

// SetDeck records a new owner. When a different owner already holds the card,
// the card is first removed from it. Passing nil only clears the reference.
//
// SetDeck is bookkeeping for the owner itself: only Deck.Add and Deck.Remove
// should call it. Calling it directly leaves the new owner's membership
// untouched, so the card points at a deck that does not list it.
func (c *Card) SetDeck(o Owner) {
	if o == nil {
		c.owner = nil
		return
	}

	prev := c.owner
	c.owner = nil
	if prev != nil && prev != o {
		prev.Remove(c)
	}

	c.owner = o
}
