package script

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/render"
)

var (
	ErrUnknownOp  = errors.New("unknown operation")
	ErrNoSuchCard = errors.New("no such card")
)

// Op is a single parsed deck operation, e.g. "draw:2" or "add:A♠:held"
type Op struct {
	Name  string
	Count int
	Card  string
	Pile  deck.Pile
}

type opSpec struct {
	counted  bool
	needCard bool
	takePile bool
}

var ops = map[string]opSpec{
	"draw":                     {counted: true},
	"burn":                     {counted: true},
	"discard":                  {needCard: true},
	"discard-held":             {},
	"find":                     {needCard: true},
	"remove":                   {needCard: true},
	"add":                      {needCard: true, takePile: true},
	"shuffle-all":              {},
	"shuffle-remaining":        {},
	"shuffle-discard":          {},
	"shuffle-deck-and-discard": {},
	"show":                     {},
}

// Names lists the recognised operation names
func Names() []string {
	return []string{
		"draw[:n]", "burn[:n]", "discard:<card>", "discard-held", "find:<card>",
		"remove:<card>", "add:<card>[:pile]", "shuffle-all", "shuffle-remaining",
		"shuffle-discard", "shuffle-deck-and-discard", "show",
	}
}

// Parse reads an operation of the form name[:arg[:pile]]
func Parse(s string) (Op, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	name := strings.ToLower(parts[0])

	spec, ok := ops[name]
	if !ok {
		return Op{}, fmt.Errorf("%w: %q", ErrUnknownOp, s)
	}

	op := Op{Name: name, Count: 1, Pile: deck.Draw}
	args := parts[1:]

	switch {
	case spec.counted:
		if len(args) > 1 {
			return Op{}, fmt.Errorf("%s takes at most one argument", name)
		}
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return Op{}, fmt.Errorf("%s: count must be an integer: %q", name, args[0])
			}
			op.Count = n
		}

	case spec.needCard:
		if len(args) == 0 || args[0] == "" {
			return Op{}, fmt.Errorf("%s needs a card", name)
		}
		if len(args) > 1 && !spec.takePile {
			return Op{}, fmt.Errorf("%s takes exactly one card", name)
		}
		op.Card = args[0]
		if len(args) == 2 {
			p, err := deck.ParsePile(args[1])
			if err != nil {
				return Op{}, err
			}
			op.Pile = p
		}

	default:
		if len(args) > 0 {
			return Op{}, fmt.Errorf("%s takes no arguments", name)
		}
	}

	return op, nil
}

// Session runs operations against one deck. Cards removed from the deck are
// kept aside so they can be added back.
type Session struct {
	Deck  *deck.Deck
	Loose []*card.Card

	out io.Writer
	r   *render.Renderer
	log *zap.Logger
}

// NewSession creates a session that reports to out
func NewSession(d *deck.Deck, out io.Writer, r *render.Renderer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{Deck: d, out: out, r: r, log: log}
}

// Exec parses every operation first and then runs them in order, stopping at
// the first failure.
func (s *Session) Exec(lines []string) error {
	parsed := make([]Op, 0, len(lines))
	for _, line := range lines {
		op, err := Parse(line)
		if err != nil {
			return err
		}
		parsed = append(parsed, op)
	}

	for i, op := range parsed {
		if err := s.Run(op); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, lines[i], err)
		}
	}
	return nil
}

// Run applies a single operation
func (s *Session) Run(op Op) error {
	s.log.Debug("running operation", zap.String("op", op.Name), zap.Int("count", op.Count), zap.String("card", op.Card))

	switch op.Name {
	case "draw", "burn":
		draw := s.Deck.Draw
		verb := "drew"
		if op.Name == "burn" {
			draw = s.Deck.DrawToDiscard
			verb = "burned"
		}
		cards, err := draw(op.Count)
		if err != nil {
			return err
		}
		s.printf("%s %d: %s\n", verb, len(cards), s.r.Labels(cards))

	case "discard":
		c, err := s.member(op.Card)
		if err != nil {
			return err
		}
		if err := s.Deck.Discard(c); err != nil {
			return err
		}
		s.printf("discarded %s\n", s.r.Card(c))

	case "discard-held":
		n := s.Deck.Len(deck.Held)
		s.Deck.DiscardAllHeld()
		s.printf("discarded %d held\n", n)

	case "find":
		c, err := s.member(op.Card)
		if err != nil {
			return err
		}
		pos, err := s.Deck.Find(c)
		if err != nil {
			return err
		}
		s.printf("%s\n", s.r.Position(pos))

	case "remove":
		c, err := s.member(op.Card)
		if err != nil {
			return err
		}
		s.Deck.Remove(c)
		s.Loose = append(s.Loose, c)
		s.printf("removed %s\n", s.r.Card(c))

	case "add":
		i, c, err := s.loose(op.Card)
		if err != nil {
			return err
		}
		if err := s.Deck.Add(c, op.Pile); err != nil {
			return err
		}
		s.Loose = append(s.Loose[:i], s.Loose[i+1:]...)
		s.printf("added %s to %s\n", s.r.Card(c), op.Pile)

	case "shuffle-all":
		s.Deck.ShuffleAll()
		s.printf("shuffled all %d cards\n", s.Deck.RemainingLength())

	case "shuffle-remaining":
		s.Deck.ShuffleRemaining()
		s.printf("shuffled %d remaining\n", s.Deck.RemainingLength())

	case "shuffle-discard":
		n := s.Deck.Len(deck.Discard)
		s.Deck.ShuffleDiscard()
		s.printf("shuffled %d discarded under the deck\n", n)

	case "shuffle-deck-and-discard":
		s.Deck.ShuffleDeckAndDiscard()
		s.printf("shuffled deck and discard, %d remaining\n", s.Deck.RemainingLength())

	case "show":
		s.printf("%s", s.r.Deck(s.Deck))

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Name)
	}

	return nil
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// member finds a deck card by short or long text
func (s *Session) member(text string) (*card.Card, error) {
	for _, c := range s.Deck.Members() {
		if matches(c, text) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w in deck: %s", ErrNoSuchCard, text)
}

func (s *Session) loose(text string) (int, *card.Card, error) {
	for i, c := range s.Loose {
		if matches(c, text) {
			return i, c, nil
		}
	}
	return 0, nil, fmt.Errorf("%w among removed cards: %s", ErrNoSuchCard, text)
}

func matches(c *card.Card, text string) bool {
	return c.ShortText() == text || strings.EqualFold(c.LongText(), text)
}
