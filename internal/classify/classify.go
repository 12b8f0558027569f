package classify

import "strings"

// Tier is a provider-assigned synthesis fidelity class, ordered from lowest
// to highest.
type Tier int

const (
	TierStandard Tier = iota
	TierEnhanced
	TierPremium
)

func (t Tier) String() string {
	switch t {
	case TierEnhanced:
		return "enhanced"
	case TierPremium:
		return "premium"
	default:
		return "standard"
	}
}

// Pitch buckets a voice by its provider gender attribute. This is a crude
// two-way split, not a measurement of actual pitch.
type Pitch int

const (
	PitchLow Pitch = iota
	PitchHigh
)

func (p Pitch) String() string {
	if p == PitchLow {
		return "low"
	}
	return "high"
}

// Quality name markers in decreasing fidelity order. A name matching more
// than one marker takes the first (highest) match, so classification never
// depends on marker order within the name itself.
var tierMarkers = []struct {
	marker string
	tier   Tier
}{
	{"Neural2", TierPremium},
	{"Wavenet", TierEnhanced},
}

// TierOf infers the quality tier from the provider voice name. Names with
// no recognized marker fall back to the standard tier.
func TierOf(name string) Tier {
	for _, m := range tierMarkers {
		if strings.Contains(name, m.marker) {
			return m.tier
		}
	}
	return TierStandard
}

// PitchOf buckets the provider gender attribute into the two pitch
// categories: "MALE" maps to the low register, everything else to the high
// one.
func PitchOf(ssmlGender string) Pitch {
	if ssmlGender == "MALE" {
		return PitchLow
	}
	return PitchHigh
}
