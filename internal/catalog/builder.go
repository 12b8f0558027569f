package catalog

import (
	"errors"
	"fmt"
	"strings"

	"voicegen/internal/classify"
	"voicegen/internal/googletts"
)

// ErrInconsistentRules marks authoring errors in the curated build
// configuration or impossible provider input. Nothing is emitted when it
// fires.
var ErrInconsistentRules = errors.New("inconsistent catalog rules")

// Build folds the provider voice inventory into the four ordered catalog
// tables.
//
// Voices are processed in reverse provider order. The provider lists
// regional variants of a base language in tag order (en-AU, en-GB, en-IN,
// en-US...), which would surface a non-default accent first; reversing
// restores default-accent-first precedence among entries of equal tier and
// language. Most-common-variant voices are additionally prepended to their
// tier so they lead it outright.
//
// Voices whose tag has no detector mapping are silently dropped: the host
// can never route a detected language to them.
func Build(voices []googletts.Voice, rules Rules) (*Catalog, error) {
	if err := rules.validate(); err != nil {
		return nil, err
	}
	if err := checkDuplicateIDs(voices); err != nil {
		return nil, err
	}

	mostCommon := make(map[string]struct{}, len(rules.MostCommonVariants))
	for _, tag := range rules.MostCommonVariants {
		mostCommon[tag] = struct{}{}
	}
	overrideIDs := make(map[string]struct{}, len(rules.OverrideVoiceIDs))
	for _, id := range rules.OverrideVoiceIDs {
		overrideIDs[id] = struct{}{}
	}

	cat := &Catalog{}
	for i := len(voices) - 1; i >= 0; i-- {
		voice := voices[i]
		tag := voice.LanguageTag()

		lang, ok := rules.Registry.DetectedLanguage(tag)
		if !ok {
			continue
		}
		desc, err := rules.Registry.Describe(tag)
		if err != nil {
			return nil, err
		}

		entry := Entry{
			Lang:        lang,
			VoiceID:     voice.Name,
			Description: desc,
			Pitch:       classify.PitchOf(voice.SSMLGender),
		}

		table := cat.tierRef(classify.TierOf(voice.Name))
		if _, anchored := mostCommon[tag]; anchored {
			*table = append([]Entry{entry}, *table...)
		} else {
			*table = append(*table, entry)
		}

		if _, promoted := overrideIDs[voice.Name]; promoted {
			cat.Overrides = append(cat.Overrides, entry)
		}
	}
	return cat, nil
}

// validate fails fast on curated-list authoring errors rather than letting
// them silently produce an incomplete catalog.
func (r Rules) validate() error {
	if r.Registry == nil {
		return fmt.Errorf("%w: registry required", ErrInconsistentRules)
	}
	if err := r.Registry.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistentRules, err)
	}
	seenTags := make(map[string]struct{}, len(r.MostCommonVariants))
	for _, tag := range r.MostCommonVariants {
		if !r.Registry.Contains(tag) {
			return fmt.Errorf("%w: most-common variant %q is not in the registry", ErrInconsistentRules, tag)
		}
		if _, dup := seenTags[tag]; dup {
			return fmt.Errorf("%w: most-common variant %q listed twice", ErrInconsistentRules, tag)
		}
		seenTags[tag] = struct{}{}
	}
	seenIDs := make(map[string]struct{}, len(r.OverrideVoiceIDs))
	for _, id := range r.OverrideVoiceIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: empty override voice id", ErrInconsistentRules)
		}
		if _, dup := seenIDs[id]; dup {
			return fmt.Errorf("%w: override voice %q listed twice", ErrInconsistentRules, id)
		}
		seenIDs[id] = struct{}{}
	}
	return nil
}

// checkDuplicateIDs flags a provider payload that lists the same voice
// identifier twice. The provider has never been observed doing this, so it
// is treated as corrupt input rather than something to deduplicate.
func checkDuplicateIDs(voices []googletts.Voice) error {
	seen := make(map[string]struct{}, len(voices))
	for _, voice := range voices {
		if voice.Name == "" {
			continue
		}
		if _, dup := seen[voice.Name]; dup {
			return fmt.Errorf("%w: provider listed voice %q twice", ErrInconsistentRules, voice.Name)
		}
		seen[voice.Name] = struct{}{}
	}
	return nil
}
