package config

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// Validate ensures the configuration is usable. The API key is deliberately
// not required here: offline runs replay cached payloads without one, so
// the fetch path checks it at the point of use instead.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !token.IsIdentifier(c.Output.Package) {
		return fmt.Errorf("output.package %q is not a valid Go package name", c.Output.Package)
	}
	if c.Output.Path == "" {
		return errors.New("output.path must be set")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	seenTags := make(map[string]struct{}, len(c.Catalog.MostCommonVariants))
	for _, tag := range c.Catalog.MostCommonVariants {
		if _, dup := seenTags[tag]; dup {
			return fmt.Errorf("catalog.most_common_variants lists %q twice", tag)
		}
		seenTags[tag] = struct{}{}
	}
	seenIDs := make(map[string]struct{}, len(c.Catalog.OverrideVoiceIDs))
	for _, id := range c.Catalog.OverrideVoiceIDs {
		if strings.TrimSpace(id) == "" {
			return errors.New("catalog.override_voice_ids contains an empty entry")
		}
		if _, dup := seenIDs[id]; dup {
			return fmt.Errorf("catalog.override_voice_ids lists %q twice", id)
		}
		seenIDs[id] = struct{}{}
	}
	return nil
}

// RequireAPIKey returns an actionable error when no API key is configured.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.GoogleTTS.APIKey) != "" {
		return nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/voicegen/config.toml"
	}
	return fmt.Errorf("google_tts.api_key is required. Set GOOGLE_TTS_API_KEY env var or edit %s (create with 'voicegen config init')", defaultPath)
}
