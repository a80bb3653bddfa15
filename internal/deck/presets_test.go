package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/deckhand/internal/card"
)

func TestPresets(t *testing.T) {
	cases := []struct {
		name  string
		count int
	}{
		{"jokers", 54},
		{"nouveau", 78},
		{"pinochle", 48},
		{"standard", 52},
		{"tarot", 78},
	}

	presets := Presets()
	require.Len(t, presets, len(cases))

	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.name, presets[i].Name)

			p, err := LookupPreset(c.name)
			require.NoError(t, err)
			assert.Len(t, p.Build(), c.count)
		})
	}

	_, err := LookupPreset("uno")
	assert.Error(t, err)
}

func TestPresetsBuildFreshCards(t *testing.T) {
	a, b := Standard(), Standard()
	assert.NotSame(t, a[0], b[0])
	assert.Equal(t, a[0].ShortText(), b[0].ShortText())
}

func TestStandardIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Standard() {
		require.False(t, seen[c.LongText()], "duplicate card: %s", c.LongText())
		seen[c.LongText()] = true
	}
	assert.Len(t, seen, 52)
}

func TestTarotLayout(t *testing.T) {
	cards := Tarot()
	assert.Equal(t, "The Fool", cards[0].LongText())
	assert.Equal(t, "The World", cards[21].LongText())
	assert.Equal(t, "Ace of wands", cards[22].LongText())
	assert.Same(t, card.Knight, cards[22+11].Rank())
}
