package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/deckfile"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults

	def *deckfile.Definition
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

// ForDefinition validates an already decoded definition
func ForDefinition(def *deckfile.Definition) *Validator {
	return &Validator{DeckPath: def.Path, def: def}
}

// Validate checks the deck definition. The returned error is only set when
// the file cannot be read at all; problems with its contents are reported
// in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if v.def == nil {
		def, err := deckfile.Load(v.DeckPath)
		if err != nil {
			return v.Results, err
		}
		v.def = def
	}

	v.validateDeckSection()
	v.validateCustomSuits()
	v.validateCustomRanks()
	v.validateComposition()
	v.validateExcludedCards()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateDeckSection() {
	section := v.def.Config.Deck

	if section.ID == "" {
		v.errorf("deck.id is required")
	}

	if section.Name == "" {
		v.errorf("deck.name is required")
	}

	if section.Version == "" {
		v.warnf("deck.version is not set")
	}

	if section.SchemaVersion == "" {
		v.errorf("deck.schema_version is required")
	} else if section.SchemaVersion != deckfile.SchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", section.SchemaVersion, deckfile.SchemaVersion)
	}

	if section.Copies < 0 {
		v.errorf("deck.copies must not be negative, got %d", section.Copies)
	}

	if section.Jokers < 0 {
		v.errorf("deck.jokers must not be negative, got %d", section.Jokers)
	}

	if section.Preset != "" {
		if _, err := deck.LookupPreset(section.Preset); err != nil {
			v.errorf("deck.preset: %v", err)
		}
	}
}

func (v *Validator) validateCustomSuits() {
	seen := map[string]bool{}
	for i, s := range v.def.Config.CustomSuits {
		if s.Name == "" {
			v.errorf("custom_suits[%d].name is required", i)
			continue
		}

		key := strings.ToLower(s.Name)
		if seen[key] {
			v.errorf("custom suit %q is defined more than once", s.Name)
		}
		seen[key] = true

		if s.Symbol == "" {
			v.warnf("custom suit %q has no symbol", s.Name)
		}
	}
}

func (v *Validator) validateCustomRanks() {
	seen := map[string]bool{}
	for i, r := range v.def.Config.CustomRanks {
		if r.Short == "" {
			v.errorf("custom_ranks[%d].short is required", i)
			continue
		}

		if seen[r.Short] {
			v.errorf("custom rank %q is defined more than once", r.Short)
		}
		seen[r.Short] = true

		if r.Long == "" {
			v.warnf("custom rank %q has no long name, using %q", r.Short, r.Short)
		}
	}
}

func (v *Validator) validateComposition() {
	section := v.def.Config.Deck

	for _, name := range section.Suits {
		if _, ok := v.def.Suit(name); !ok {
			v.errorf("unknown suit: %s", name)
		}
	}

	for _, short := range section.Ranks {
		if _, ok := v.def.Rank(short); !ok {
			v.errorf("unknown rank: %s", short)
		}
	}

	if len(section.Suits) > 0 && len(section.Ranks) == 0 {
		v.warnf("deck.suits is set but deck.ranks is empty, no suited cards will be created")
	}

	if len(section.Ranks) > 0 && len(section.Suits) == 0 {
		v.warnf("deck.ranks is set but deck.suits is empty, no suited cards will be created")
	}

	if section.Preset == "" && section.Jokers <= 0 && (len(section.Suits) == 0 || len(section.Ranks) == 0) {
		v.errorf("deck defines no cards: set deck.preset, or deck.suits and deck.ranks, or deck.jokers")
	}
}

func (v *Validator) validateExcludedCards() {
	excluded := v.def.Config.ExcludedCards
	if excluded == nil || len(excluded.Cards) == 0 {
		return
	}

	if excluded.Reason == "" {
		v.warnf("excluded_cards.reason is not set")
	}

	if len(v.Results.Errors) > 0 {
		return
	}

	// excluded cards no longer appear, so look them up in the full deck
	v.def.Config.ExcludedCards = nil
	all, err := v.def.Cards()
	v.def.Config.ExcludedCards = excluded
	if err != nil {
		v.errorf("%v", err)
		return
	}

	known := map[string]bool{}
	for _, c := range all {
		known[c.ShortText()] = true
	}

	for _, text := range excluded.Cards {
		if !known[text] {
			v.warnf("excluded card %s is not part of the deck", text)
		}
	}

	if _, err := v.def.Cards(); err != nil {
		v.errorf("%v", err)
	}
}
