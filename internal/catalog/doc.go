// Package catalog turns the raw provider voice inventory into the four
// ordered tables the host application's voice selection consults: an
// override table plus one table per quality tier.
//
// Ordering is the whole point. Within a tier the selection routine takes
// the first entry matching the detected language, so the builder controls
// which regional accent wins by where it places each entry, and the
// override table lets specific voices outrank their nominal tier entirely.
package catalog
