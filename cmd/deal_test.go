package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/render"
	"github.com/arcanaland/deckhand/internal/rng"
)

func TestDealRoundRobin(t *testing.T) {
	cards := deck.Standard()[:6]
	d, err := deck.New(cards, deck.WithShuffler(rng.NewSeeded(1)))
	require.NoError(t, err)

	dealt, err := deal(d, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, [][]*card.Card{
		{cards[0], cards[2], cards[4]},
		{cards[1], cards[3], cards[5]},
	}, dealt)
	assert.Equal(t, 6, d.Len(deck.Held))
}

func TestDealStopsWhenDeckRunsOut(t *testing.T) {
	d, err := deck.New(deck.Standard()[:5], deck.WithShuffler(rng.NewSeeded(1)))
	require.NoError(t, err)

	dealt, err := deal(d, 2, 5)
	require.NoError(t, err)

	assert.Len(t, dealt[0], 3)
	assert.Len(t, dealt[1], 2)
	assert.Zero(t, d.RemainingLength())
}

func TestPrintHands(t *testing.T) {
	cards := deck.Standard()[:3]
	d, err := deck.New(cards)
	require.NoError(t, err)
	r, err := render.New(&bytes.Buffer{}, false, nil)
	require.NoError(t, err)

	dealt, err := deal(d, 1, 2)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	printHands(out, &table{deck: d, title: "standard", render: r}, dealt)
	assert.Equal(t, "Dealing from standard\n\nHand 1 (2): A♠ 2♠\n\n1 cards remaining\n", out.String())
}

func TestPrintHandsKeepsEachHandOnOneLine(t *testing.T) {
	d, err := deck.New(deck.Standard()[:8])
	require.NoError(t, err)
	r, err := render.New(&bytes.Buffer{}, false, nil)
	require.NoError(t, err)
	r.SetWidth(10)

	dealt, err := deal(d, 1, 8)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	printHands(out, &table{deck: d, title: "standard", render: r}, dealt)
	assert.Contains(t, out.String(), "Hand 1 (8): A♠ 2♠ 3♠ 4♠ 5♠ 6♠ 7♠ 8♠\n")
}
