package deckfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const euchre = `
[deck]
id = "euchre"
name = "Euchre"
version = "1.0"
schema_version = "1.0"
suits = ["spades", "Hearts", "diamonds", "clubs"]
ranks = ["9", "10", "J", "Q", "K", "A"]
jokers = 1
`

func TestParseEuchre(t *testing.T) {
	def, err := Parse(euchre)
	require.NoError(t, err)

	cards, err := def.Cards()
	require.NoError(t, err)
	require.Len(t, cards, 25)
	assert.Equal(t, "9♠", cards[0].ShortText())
	assert.Equal(t, "Ace of clubs", cards[23].LongText())
	assert.Equal(t, "Joker", cards[24].ShortText())
}

func TestCopiesAndExclusions(t *testing.T) {
	def, err := Parse(`
[deck]
id = "double"
suits = ["hearts"]
ranks = ["A", "K"]
copies = 2

[excluded_cards]
cards = ["K♥"]
reason = "house rule"
`)
	require.NoError(t, err)

	cards, err := def.Cards()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "A♥", cards[0].ShortText())
	assert.Equal(t, "A♥", cards[1].ShortText())
	assert.NotSame(t, cards[0], cards[1])
}

func TestPresetBase(t *testing.T) {
	def, err := Parse(`
[deck]
id = "big"
preset = "standard"
jokers = 2
`)
	require.NoError(t, err)

	cards, err := def.Cards()
	require.NoError(t, err)
	assert.Len(t, cards, 54)
}

func TestCustomSuitsAndRanks(t *testing.T) {
	def, err := Parse(`
[deck]
id = "stars"
suits = ["stars"]
ranks = ["11", "A"]

[[custom_suits]]
name = "stars"
symbol = "★"

[[custom_ranks]]
short = "11"
long = "Eleven"
`)
	require.NoError(t, err)

	cards, err := def.Cards()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "11★", cards[0].ShortText())
	assert.Equal(t, "Eleven of stars", cards[0].LongText())
}

func TestCardsErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown suit", "[deck]\nsuits = [\"stars\"]\nranks = [\"A\"]\n"},
		{"unknown rank", "[deck]\nsuits = [\"hearts\"]\nranks = [\"Z\"]\n"},
		{"unknown preset", "[deck]\npreset = \"uno\"\n"},
		{"no cards", "[deck]\nid = \"empty\"\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			def, err := Parse(c.data)
			require.NoError(t, err)
			_, err = def.Cards()
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "euchre.toml")
	require.NoError(t, os.WriteFile(path, []byte(euchre), 0644))

	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, def.Path)
	assert.Equal(t, "Euchre", def.Config.Deck.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[deck\n"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}
