// Package config loads, normalizes, and validates voicegen configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the GOOGLE_TTS_API_KEY
// environment fallback. The Config type centralizes every knob the CLI
// needs: API connection settings, the generated-file destination, the
// curated ranking lists, and fetch cache placement.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
