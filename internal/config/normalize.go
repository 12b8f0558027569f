package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeGoogleTTS(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeCatalog()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeGoogleTTS() error {
	c.GoogleTTS.APIKey = strings.TrimSpace(c.GoogleTTS.APIKey)
	if c.GoogleTTS.APIKey == "" {
		if value := strings.TrimSpace(os.Getenv("GOOGLE_TTS_API_KEY")); value != "" {
			c.GoogleTTS.APIKey = value
		} else if value := strings.TrimSpace(os.Getenv("API_KEY")); value != "" {
			c.GoogleTTS.APIKey = value
		}
	}
	c.GoogleTTS.BaseURL = strings.TrimSpace(c.GoogleTTS.BaseURL)
	if c.GoogleTTS.BaseURL == "" {
		c.GoogleTTS.BaseURL = defaultBaseURL
	}
	if c.GoogleTTS.TimeoutSeconds <= 0 {
		c.GoogleTTS.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeOutput() error {
	c.Output.Path = strings.TrimSpace(c.Output.Path)
	if c.Output.Path == "" {
		c.Output.Path = defaultOutputPath
	}
	// "-" means stdout and must not be expanded to a filesystem path.
	if c.Output.Path != "-" {
		expanded, err := expandPath(c.Output.Path)
		if err != nil {
			return fmt.Errorf("output.path: %w", err)
		}
		c.Output.Path = expanded
	}
	c.Output.Package = strings.TrimSpace(c.Output.Package)
	if c.Output.Package == "" {
		c.Output.Package = defaultOutputPackage
	}
	return nil
}

func (c *Config) normalizeCatalog() {
	c.Catalog.MostCommonVariants = trimList(c.Catalog.MostCommonVariants)
	c.Catalog.OverrideVoiceIDs = trimList(c.Catalog.OverrideVoiceIDs)
}

func (c *Config) normalizeCache() error {
	if strings.TrimSpace(c.Cache.Dir) == "" {
		c.Cache.Dir = defaultCacheDir()
	}
	expanded, err := expandPath(c.Cache.Dir)
	if err != nil {
		return fmt.Errorf("cache.dir: %w", err)
	}
	c.Cache.Dir = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func defaultCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "voicegen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.cache/voicegen"
	}
	return filepath.Join(home, ".cache", "voicegen")
}
