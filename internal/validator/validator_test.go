package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/deckhand/internal/deckfile"
)

func validate(t *testing.T, data string) ValidationResults {
	t.Helper()
	def, err := deckfile.Parse(data)
	require.NoError(t, err)

	results, err := ForDefinition(def).Validate()
	require.NoError(t, err)
	return results
}

func TestValidDeck(t *testing.T) {
	results := validate(t, `
[deck]
id = "euchre"
name = "Euchre"
version = "1.0"
schema_version = "1.0"
suits = ["spades", "hearts", "diamonds", "clubs"]
ranks = ["9", "10", "J", "Q", "K", "A"]
`)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestDeckSectionErrors(t *testing.T) {
	results := validate(t, `
[deck]
schema_version = "2.0"
copies = -1
preset = "uno"
`)
	assert.Contains(t, results.Errors, "deck.id is required")
	assert.Contains(t, results.Errors, "deck.name is required")
	assert.Contains(t, results.Errors, "unsupported schema_version: 2.0 (supported: 1.0)")
	assert.Contains(t, results.Errors, "deck.copies must not be negative, got -1")
	assert.Contains(t, results.Errors, "deck.preset: unknown preset: uno")
	assert.Contains(t, results.Warnings, "deck.version is not set")
}

func TestCompositionErrors(t *testing.T) {
	results := validate(t, `
[deck]
id = "x"
name = "X"
schema_version = "1.0"
version = "1"
suits = ["stars"]
ranks = ["Z"]
`)
	assert.Contains(t, results.Errors, "unknown suit: stars")
	assert.Contains(t, results.Errors, "unknown rank: Z")
}

func TestNoCards(t *testing.T) {
	results := validate(t, `
[deck]
id = "x"
name = "X"
schema_version = "1.0"
version = "1"
suits = ["hearts"]
`)
	assert.Len(t, results.Errors, 1)
	assert.Contains(t, results.Warnings, "deck.suits is set but deck.ranks is empty, no suited cards will be created")
}

func TestCustomDefinitions(t *testing.T) {
	results := validate(t, `
[deck]
id = "x"
name = "X"
schema_version = "1.0"
version = "1"
suits = ["stars"]
ranks = ["11"]

[[custom_suits]]
name = "stars"

[[custom_suits]]
name = "Stars"
symbol = "*"

[[custom_suits]]
symbol = "?"

[[custom_ranks]]
short = "11"
`)
	assert.Contains(t, results.Errors, `custom suit "Stars" is defined more than once`)
	assert.Contains(t, results.Errors, "custom_suits[2].name is required")
	assert.Contains(t, results.Warnings, `custom suit "stars" has no symbol`)
	assert.Contains(t, results.Warnings, `custom rank "11" has no long name, using "11"`)
}

func TestExcludedCards(t *testing.T) {
	results := validate(t, `
[deck]
id = "x"
name = "X"
schema_version = "1.0"
version = "1"
suits = ["hearts"]
ranks = ["A", "K"]

[excluded_cards]
cards = ["K♥", "Q♥"]
`)
	assert.Empty(t, results.Errors)
	assert.Contains(t, results.Warnings, "excluded_cards.reason is not set")
	assert.Contains(t, results.Warnings, "excluded card Q♥ is not part of the deck")
	assert.NotContains(t, results.Warnings, "excluded card K♥ is not part of the deck")
}

func TestExcludingEverything(t *testing.T) {
	results := validate(t, `
[deck]
id = "x"
name = "X"
schema_version = "1.0"
version = "1"
suits = ["hearts"]
ranks = ["A"]

[excluded_cards]
cards = ["A♥"]
reason = "testing"
`)
	assert.Equal(t, []string{`deck "x" defines no cards`}, results.Errors)
}

func TestValidateFromPath(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.toml")).Validate()
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "deck.toml")
	require.NoError(t, os.WriteFile(path, []byte("[deck]\nid = \"p\"\nname = \"P\"\nversion = \"1\"\nschema_version = \"1.0\"\npreset = \"tarot\"\n"), 0644))

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
}
