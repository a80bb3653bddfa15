package card

// Standard ranks
var (
	Ace   = NewRank("A", "Ace")
	Two   = NewRank("2", "Two")
	Three = NewRank("3", "Three")
	Four  = NewRank("4", "Four")
	Five  = NewRank("5", "Five")
	Six   = NewRank("6", "Six")
	Seven = NewRank("7", "Seven")
	Eight = NewRank("8", "Eight")
	Nine  = NewRank("9", "Nine")
	Ten   = NewRank("10", "Ten")
	Jack  = NewRank("J", "Jack")
	Queen = NewRank("Q", "Queen")
	King  = NewRank("K", "King")
	Joker = NewRank("Joker", "Joker")
)

// Non-standard ranks
var (
	One      = NewRank("1", "One")
	Cavalier = NewRank("C", "Cavalier")
	Knight   = NewRank("KN", "Knight")
	Page     = NewRank("P", "Page")
)

// Arcana holds the major arcana, indexed by number
var Arcana = newNumbered([]string{
	"The Fool", "The Magician", "The High Priestess", "The Empress",
	"The Emperor", "The Hierophant", "The Lovers", "The Chariot",
	"Strength", "The Hermit", "Wheel of Fortune", "Justice",
	"The Hanged Man", "Death", "Temperance", "The Devil",
	"The Tower", "The Star", "The Moon", "The Sun",
	"Judgement", "The World",
})

// Trumps holds the French tarot trumps, indexed by number
var Trumps = newNumbered([]string{
	"The Fool", "The Individual", "Childhood", "Youth",
	"Maturity", "Old Age", "Morning", "Afternoon",
	"Evening", "Night", "Earth & Air", "Water & Fire",
	"Dance", "Shopping", "The Outdoors", "Visual Arts",
	"Spring", "Summer", "Autumn", "Winter",
	"The Game", "The Collective",
})

// StandardRanks is Ace through King in order
var StandardRanks = []*Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var romanNumerals = []string{
	"0", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX", "XXI",
}

func newNumbered(names []string) []*Rank {
	ranks := make([]*Rank, len(names))
	for i, name := range names {
		ranks[i] = NewRank(romanNumerals[i], name)
	}
	return ranks
}

// LookupRank finds a catalogue rank by its short name. Numbered tarot ranks
// are not included since their short names are shared.
func LookupRank(short string) (*Rank, bool) {
	for _, r := range namedRanks() {
		if r.ShortName() == short {
			return r, true
		}
	}
	return nil, false
}

func namedRanks() []*Rank {
	ranks := append([]*Rank{}, StandardRanks...)
	return append(ranks, Joker, One, Cavalier, Knight, Page)
}
