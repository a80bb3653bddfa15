package deck

import (
	"fmt"
	"strings"
)

// Pile identifies one of the three ordered zones of a deck
type Pile int

const (
	// Draw holds the cards still available to be dealt; index 0 is the top
	Draw Pile = iota
	// Held holds cards drawn out into a player's hand
	Held
	// Discard holds cards set aside
	Discard
)

var pileNames = [...]string{"draw", "held", "discard"}

// Piles lists every pile in search order
var Piles = []Pile{Draw, Held, Discard}

func (p Pile) String() string {
	if !p.valid() {
		return fmt.Sprintf("Pile(%d)", int(p))
	}
	return pileNames[p]
}

func (p Pile) valid() bool {
	return p >= Draw && p <= Discard
}

// ParsePile converts a pile name into a Pile. "deck" is accepted as an
// alias for the draw pile.
func ParsePile(name string) (Pile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "draw", "deck":
		return Draw, nil
	case "held":
		return Held, nil
	case "discard":
		return Discard, nil
	}
	return 0, &UnknownPileError{Pile: name}
}
