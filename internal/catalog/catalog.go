package catalog

import (
	"voicegen/internal/classify"
	"voicegen/internal/registry"
)

// Entry is one ranked voice in the catalog.
type Entry struct {
	Lang        string // detector language code
	VoiceID     string // provider voice identifier
	Description string // human-readable language description
	Pitch       classify.Pitch
}

// Catalog holds the four ordered voice tables. Order within each slice is
// the order the host's selection routine tries voices in, so it must be
// preserved exactly through emission.
type Catalog struct {
	Overrides []Entry
	Standard  []Entry
	Enhanced  []Entry
	Premium   []Entry
}

// Tier returns the table for a quality tier.
func (c *Catalog) Tier(t classify.Tier) []Entry {
	switch t {
	case classify.TierEnhanced:
		return c.Enhanced
	case classify.TierPremium:
		return c.Premium
	default:
		return c.Standard
	}
}

func (c *Catalog) tierRef(t classify.Tier) *[]Entry {
	switch t {
	case classify.TierEnhanced:
		return &c.Enhanced
	case classify.TierPremium:
		return &c.Premium
	default:
		return &c.Standard
	}
}

// Len returns the total number of entries across all four tables. Voices on
// the override list are counted twice, once per table they appear in.
func (c *Catalog) Len() int {
	return len(c.Overrides) + len(c.Standard) + len(c.Enhanced) + len(c.Premium)
}

// Rules is the static configuration a build runs under. It is passed in
// explicitly so Build stays a pure function of (voices, rules).
type Rules struct {
	// Registry resolves provider tags to descriptions and detector codes.
	Registry *registry.Registry

	// MostCommonVariants anchors the default regional variant per base
	// language: its voices are placed at the front of their tier so the
	// selection routine tries them before other variants of equal tier.
	MostCommonVariants []string

	// OverrideVoiceIDs are voices also placed on the override table, which
	// the selection routine consults before any tier. They exist because
	// tier ordering alone would rank premium voices of a non-default
	// variant above these preferred voices of the default variant.
	OverrideVoiceIDs []string
}

// DefaultRules returns the curated build configuration.
func DefaultRules() Rules {
	return Rules{
		Registry:           registry.Default(),
		MostCommonVariants: []string{"en-US", "fr-FR", "es-US", "cmn-CN", "pt-BR", "nl-NL"},
		OverrideVoiceIDs:   []string{"en-US-Wavenet-B", "en-US-Wavenet-C"},
	}
}
