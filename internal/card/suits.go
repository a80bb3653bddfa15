package card

import "strings"

// Unicode playing card blocks start at these code points; rank offsets follow
// the Ace=1 ... King=14 layout with the knight at 12.
const (
	spadesBlock   = 0x1F0A0
	heartsBlock   = 0x1F0B0
	diamondsBlock = 0x1F0C0
	clubsBlock    = 0x1F0D0
	trumpBlock    = 0x1F0E0
)

var (
	Spades   = NewSuit("spades", "♠", frenchGlyphs(spadesBlock))
	Hearts   = NewSuit("hearts", "♥", frenchGlyphs(heartsBlock))
	Diamonds = NewSuit("diamonds", "♦", frenchGlyphs(diamondsBlock))
	Clubs    = NewSuit("clubs", "♣", frenchGlyphs(clubsBlock))

	Wands     = NewSuit("wands", "♣", nil)
	Cups      = NewSuit("cups", "♥", nil)
	Swords    = NewSuit("swords", "♠", nil)
	Pentacles = NewSuit("pentacles", "♦", nil)

	Trump  = NewSuit(TrumpSuit, "", trumpGlyphs())
	Jokers = NewSuit(JokerSuit, "", map[*Rank]string{Joker: "\U0001F0CF"})
	None   = NewSuit(NoSuit, "", nil)
)

// FrenchSuits are the four suits of a standard deck
var FrenchSuits = []*Suit{Spades, Hearts, Diamonds, Clubs}

// TarotSuits are the four minor arcana suits
var TarotSuits = []*Suit{Wands, Cups, Swords, Pentacles}

// LookupSuit finds a catalogue suit by name, ignoring case
func LookupSuit(name string) (*Suit, bool) {
	for _, s := range []*Suit{Spades, Hearts, Diamonds, Clubs, Wands, Cups, Swords, Pentacles, Trump, Jokers} {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}
	return nil, false
}

func frenchGlyphs(block rune) map[*Rank]string {
	offsets := map[*Rank]rune{
		Ace: 1, Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7,
		Eight: 8, Nine: 9, Ten: 10, Jack: 11, Page: 11,
		Cavalier: 12, Knight: 12, Queen: 13, King: 14,
	}

	glyphs := make(map[*Rank]string, len(offsets))
	for r, off := range offsets {
		glyphs[r] = string(block + off)
	}
	return glyphs
}

func trumpGlyphs() map[*Rank]string {
	glyphs := make(map[*Rank]string, len(Arcana)+len(Trumps))
	for i := range Arcana {
		glyphs[Arcana[i]] = string(trumpBlock + rune(i))
		glyphs[Trumps[i]] = string(trumpBlock + rune(i))
	}
	return glyphs
}
