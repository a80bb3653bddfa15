package card

// Suit categories that have no plain suit notion. Cards in these suits are
// labelled by their rank alone.
const (
	NoSuit    = ""
	TrumpSuit = "trump"
	JokerSuit = "joker"
)

// Suit is a card suit together with its display symbol and, optionally,
// the Unicode playing card glyph for each rank.
type Suit struct {
	name   string
	symbol string
	glyphs map[*Rank]string
}

// NewSuit creates a suit. The glyph table may be nil.
func NewSuit(name, symbol string, glyphs map[*Rank]string) *Suit {
	g := make(map[*Rank]string, len(glyphs))
	for r, s := range glyphs {
		g[r] = s
	}
	return &Suit{name: name, symbol: symbol, glyphs: g}
}

func (s *Suit) Name() string { return s.name }

func (s *Suit) Symbol() string { return s.symbol }

// Plain reports whether the suit is a regular suit whose name and symbol are
// part of a card's label.
func (s *Suit) Plain() bool {
	switch s.name {
	case NoSuit, TrumpSuit, JokerSuit:
		return false
	default:
		return true
	}
}

// Glyph returns the Unicode card for the rank in this suit, or ""
func (s *Suit) Glyph(r *Rank) string {
	return s.glyphs[r]
}

func (s *Suit) String() string { return s.name }
