package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"voicegen/internal/config"
	"voicegen/internal/fetchcache"
	"voicegen/internal/googletts"
	"voicegen/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// loadVoices resolves the voice inventory either from the provider or from
// the newest cached fetch. The returned source string describes where the
// inventory came from, for logging and display.
func (c *commandContext) loadVoices(ctx context.Context, offline bool) ([]googletts.Voice, string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, "", err
	}
	logger := c.ensureLogger()

	if offline {
		if !cfg.Cache.Enabled {
			return nil, "", fmt.Errorf("offline mode requires cache.enabled")
		}
		store, err := fetchcache.Open(cfg.Cache.Dir)
		if err != nil {
			return nil, "", err
		}
		defer store.Close()

		run, err := store.LatestRun(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("offline mode: %w", err)
		}
		voices, err := googletts.DecodePayload(run.Payload)
		if err != nil {
			return nil, "", err
		}
		logger.Info("loaded cached inventory", "run", run.ID, "fetched_at", run.FetchedAt, "voices", len(voices))
		return voices, fmt.Sprintf("cache run %s", run.ID), nil
	}

	if err := cfg.RequireAPIKey(); err != nil {
		return nil, "", err
	}
	client, err := googletts.New(
		cfg.GoogleTTS.APIKey,
		cfg.GoogleTTS.BaseURL,
		googletts.WithTimeout(time.Duration(cfg.GoogleTTS.TimeoutSeconds)*time.Second),
	)
	if err != nil {
		return nil, "", err
	}

	voices, raw, err := client.ListVoicesRaw(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("fetch voice inventory: %w", err)
	}
	logger.Info("fetched voice inventory", "voices", len(voices))

	if cfg.Cache.Enabled {
		store, err := fetchcache.Open(cfg.Cache.Dir)
		if err != nil {
			logger.Warn("fetch cache unavailable", "error", err)
			return voices, "provider", nil
		}
		defer store.Close()
		run, err := store.SaveRun(ctx, raw, len(voices))
		if err != nil {
			logger.Warn("failed to record fetch run", "error", err)
		} else {
			logger.Debug("recorded fetch run", "run", run.ID)
		}
	}
	return voices, "provider", nil
}
