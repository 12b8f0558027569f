package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownTag is returned when a lookup references a tag that was never
// registered.
var ErrUnknownTag = errors.New("unknown language tag")

// Entry describes one provider language tag.
type Entry struct {
	Tag      string // IETF BCP 47 tag as reported by the voice provider
	English  string // official English expansion, "Language (Country)"
	Detected string // ISO 639-3 code used by the language detector; empty when unsupported
}

// Registry is an immutable tag lookup table.
type Registry struct {
	entries []Entry
	byTag   map[string]*Entry
}

// New builds a registry from the supplied entries.
func New(entries []Entry) *Registry {
	reg := &Registry{
		entries: make([]Entry, len(entries)),
		byTag:   make(map[string]*Entry, len(entries)),
	}
	copy(reg.entries, entries)
	for i := range reg.entries {
		e := &reg.entries[i]
		reg.byTag[e.Tag] = e
	}
	return reg
}

// Describe returns the English description for a tag.
func (r *Registry) Describe(tag string) (string, error) {
	if e, ok := r.byTag[tag]; ok {
		return e.English, nil
	}
	return "", fmt.Errorf("describe %q: %w", tag, ErrUnknownTag)
}

// DetectedLanguage maps a tag to the detector's language code. The second
// return is false when the detector has no category for the language.
func (r *Registry) DetectedLanguage(tag string) (string, bool) {
	e, ok := r.byTag[tag]
	if !ok || e.Detected == "" {
		return "", false
	}
	return e.Detected, true
}

// Contains reports whether the tag is registered at all, supported by the
// detector or not.
func (r *Registry) Contains(tag string) bool {
	_, ok := r.byTag[tag]
	return ok
}

// Tags returns every registered tag in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.entries))
	for i := range r.entries {
		tags = append(tags, r.entries[i].Tag)
	}
	sort.Strings(tags)
	return tags
}

// Len returns the number of registered tags.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Validate asserts the curated table is internally consistent: tags are
// unique, well-formed BCP 47, and carry a description. Meant to run once at
// startup so authoring mistakes fail the run instead of producing a partial
// catalog.
func (r *Registry) Validate() error {
	seen := make(map[string]struct{}, len(r.entries))
	for i := range r.entries {
		e := &r.entries[i]
		if strings.TrimSpace(e.Tag) == "" {
			return fmt.Errorf("registry entry %d: empty tag", i)
		}
		if _, dup := seen[e.Tag]; dup {
			return fmt.Errorf("registry entry %d: duplicate tag %q", i, e.Tag)
		}
		seen[e.Tag] = struct{}{}
		if _, err := language.Parse(e.Tag); err != nil {
			// ValueError marks a well-formed tag with an unknown subtag,
			// which covers private-use regions such as "ar-XA".
			var verr language.ValueError
			if !errors.As(err, &verr) {
				return fmt.Errorf("registry entry %q: malformed BCP 47 tag: %w", e.Tag, err)
			}
		}
		if strings.TrimSpace(e.English) == "" {
			return fmt.Errorf("registry entry %q: empty description", e.Tag)
		}
	}
	return nil
}
