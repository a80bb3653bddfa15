package deck

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDrawPile = errors.New("cannot draw from deck, no cards remaining")
	ErrNotACard      = errors.New("value provided is not a card")
	ErrCardNotOwned  = errors.New("card does not belong to this deck")
)

// UnknownPileError is returned when a card is added to a pile that does not exist
type UnknownPileError struct {
	Pile string
}

func (e *UnknownPileError) Error() string {
	return fmt.Sprintf("cannot add card to unknown pile %q", e.Pile)
}
