package script

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/render"
	"github.com/arcanaland/deckhand/internal/rng"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Op
	}{
		{"draw", Op{Name: "draw", Count: 1, Pile: deck.Draw}},
		{"draw:3", Op{Name: "draw", Count: 3, Pile: deck.Draw}},
		{"burn:-1", Op{Name: "burn", Count: -1, Pile: deck.Draw}},
		{"discard:A♠", Op{Name: "discard", Count: 1, Card: "A♠", Pile: deck.Draw}},
		{"add:A♠:held", Op{Name: "add", Count: 1, Card: "A♠", Pile: deck.Held}},
		{" Shuffle-All ", Op{Name: "shuffle-all", Count: 1, Pile: deck.Draw}},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Parse(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("deal")
	assert.ErrorIs(t, err, ErrUnknownOp)

	_, err = Parse("add:A♠:burn")
	var pileErr *deck.UnknownPileError
	assert.True(t, errors.As(err, &pileErr))

	for _, in := range []string{"draw:x", "draw:1:2", "discard", "find:", "remove:A♠:held", "show:now"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func newSession(t *testing.T, size int) (*Session, *bytes.Buffer) {
	t.Helper()
	d, err := deck.New(deck.Standard()[:size], deck.WithShuffler(rng.NewSeeded(5)))
	require.NoError(t, err)

	r, err := render.New(&bytes.Buffer{}, false, nil)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return NewSession(d, out, r, nil), out
}

func TestExecScenario(t *testing.T) {
	s, out := newSession(t, 3)

	err := s.Exec([]string{"draw:2", "discard:A♠", "find:2♠", "find:ace of spades"})
	require.NoError(t, err)

	assert.Equal(t, "drew 2: A♠ 2♠\ndiscarded A♠\n"+
		"2♠ (Two of spades) is in held at index 0\n"+
		"A♠ (Ace of spades) is in discard at index 0\n", out.String())
	assert.Equal(t, 1, s.Deck.RemainingLength())
}

func TestExecRemoveAndAdd(t *testing.T) {
	s, out := newSession(t, 3)

	require.NoError(t, s.Exec([]string{"remove:2♠", "add:2♠:discard"}))

	assert.Equal(t, "removed 2♠\nadded 2♠ to discard\n", out.String())
	assert.Empty(t, s.Loose)
	assert.Equal(t, 3, s.Deck.TotalLength())
	assert.Equal(t, 1, s.Deck.Len(deck.Discard))
}

func TestExecShuffles(t *testing.T) {
	s, _ := newSession(t, 10)

	require.NoError(t, s.Exec([]string{
		"draw:3", "burn:2", "shuffle-discard", "discard-held",
		"shuffle-deck-and-discard", "shuffle-remaining", "draw", "shuffle-all", "show",
	}))

	assert.Equal(t, 10, s.Deck.RemainingLength())
	assert.Equal(t, 10, s.Deck.TotalLength())
}

func TestExecStopsAtFirstFailure(t *testing.T) {
	s, out := newSession(t, 1)

	err := s.Exec([]string{"draw", "draw", "shuffle-all"})
	assert.ErrorIs(t, err, deck.ErrEmptyDrawPile)
	assert.Contains(t, err.Error(), "step 2 (draw)")
	assert.Equal(t, 0, s.Deck.RemainingLength())
	assert.Equal(t, "drew 1: A♠\n", out.String())
}

func TestExecRejectsBadScriptBeforeRunning(t *testing.T) {
	s, out := newSession(t, 3)

	err := s.Exec([]string{"draw", "juggle"})
	assert.ErrorIs(t, err, ErrUnknownOp)
	assert.Empty(t, out.String())
	assert.Equal(t, 3, s.Deck.RemainingLength())
}

func TestUnknownCards(t *testing.T) {
	s, _ := newSession(t, 3)

	assert.ErrorIs(t, s.Exec([]string{"discard:K♥"}), ErrNoSuchCard)
	assert.ErrorIs(t, s.Exec([]string{"add:A♠"}), ErrNoSuchCard)
}

func TestDrawOutputIgnoresLineWidth(t *testing.T) {
	s, out := newSession(t, 8)
	s.r.SetWidth(10)

	require.NoError(t, s.Exec([]string{"draw:8"}))
	assert.Equal(t, "drew 8: A♠ 2♠ 3♠ 4♠ 5♠ 6♠ 7♠ 8♠\n", out.String())
}
