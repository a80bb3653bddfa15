package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
)

const defaultWidth = 80

// Palette maps suit names to hex colours
type Palette map[string]string

// DefaultPalette colours the red suits red, trumps gold and jokers purple
func DefaultPalette() Palette {
	return Palette{
		"hearts":       "#d0312d",
		"diamonds":     "#d0312d",
		"cups":         "#d0312d",
		"pentacles":    "#d0312d",
		card.TrumpSuit: "#d4a017",
		card.JokerSuit: "#8e44ad",
	}
}

// Renderer formats cards and piles for a terminal
type Renderer struct {
	width  int
	color  bool
	styles map[string]*colorize.Color
}

// New creates a renderer sized for out. Entries in palette override the
// default palette; an invalid hex colour is an error.
func New(out io.Writer, useColor bool, palette Palette) (*Renderer, error) {
	r := &Renderer{
		width:  TerminalWidth(out),
		color:  useColor,
		styles: make(map[string]*colorize.Color),
	}

	merged := DefaultPalette()
	for suit, hex := range palette {
		merged[strings.ToLower(suit)] = hex
	}

	for suit, hex := range merged {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("colour for suit %q: %w", suit, err)
		}
		red, green, blue := c.RGB255()
		style := colorize.New(38, 2, colorize.Attribute(red), colorize.Attribute(green), colorize.Attribute(blue))
		if useColor {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
		r.styles[suit] = style
	}

	return r, nil
}

// TerminalWidth returns the width of out when it is a terminal, or 80
func TerminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// SetWidth overrides the detected line width
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// Card returns the short text of c, coloured by suit
func (r *Renderer) Card(c *card.Card) string {
	if style, ok := r.styles[c.Suit().Name()]; ok {
		return style.Sprint(c.ShortText())
	}
	return c.ShortText()
}

// Labels renders cards on a single line, separated by spaces
func (r *Renderer) Labels(cards []*card.Card) string {
	return strings.Join(r.labels(cards), " ")
}

// Cards lays out cards separated by spaces, wrapped to the line width
func (r *Renderer) Cards(cards []*card.Card) []string {
	return wrap(r.labels(cards), r.width)
}

func (r *Renderer) labels(cards []*card.Card) []string {
	words := make([]string, len(cards))
	for i, c := range cards {
		words[i] = r.Card(c)
	}
	return words
}

// Pile renders a named pile with its size and contents
func (r *Renderer) Pile(name string, cards []*card.Card) string {
	var b strings.Builder
	header := fmt.Sprintf("%s (%d):", name, len(cards))
	if r.color {
		style := colorize.New(colorize.FgCyan)
		style.EnableColor()
		header = style.Sprint(header)
	}
	b.WriteString(header)
	b.WriteString("\n")

	if len(cards) == 0 {
		b.WriteString("  -\n")
		return b.String()
	}
	for _, line := range r.Cards(cards) {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Deck renders all three piles of d
func (r *Renderer) Deck(d *deck.Deck) string {
	var b strings.Builder
	for _, p := range deck.Piles {
		b.WriteString(r.Pile(p.String(), d.Cards(p)))
	}
	return b.String()
}

// Position describes where a card sits
func (r *Renderer) Position(pos deck.Position) string {
	return fmt.Sprintf("%s (%s) is in %s at index %d", r.Card(pos.Card), pos.Card.LongText(), pos.Pile, pos.Index)
}

// wrap joins words with spaces into lines no wider than width. Width is
// measured without ANSI escapes.
func wrap(words []string, width int) []string {
	if width < 10 {
		width = 40
	}

	var lines []string
	var current string
	currentWidth := 0

	for _, word := range words {
		w := visibleWidth(word)
		switch {
		case currentWidth == 0:
			current, currentWidth = word, w
		case currentWidth+1+w <= width:
			current += " " + word
			currentWidth += 1 + w
		default:
			lines = append(lines, current)
			current, currentWidth = word, w
		}
	}

	if currentWidth > 0 {
		lines = append(lines, current)
	}
	return lines
}

func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
