package config

const (
	defaultBaseURL        = "https://texttospeech.googleapis.com"
	defaultTimeoutSeconds = 30
	defaultOutputPath     = "voicetable/voicetable.go"
	defaultOutputPackage  = "voicetable"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults. The curated
// catalog lists mirror the provider inventory the generated tables were
// designed around: the most widely spoken regional variant per multi-region
// language, and the two US English voices promoted above tier ordering.
func Default() Config {
	return Config{
		GoogleTTS: GoogleTTS{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Output: Output{
			Path:    defaultOutputPath,
			Package: defaultOutputPackage,
		},
		Catalog: Catalog{
			MostCommonVariants: []string{"en-US", "fr-FR", "es-US", "cmn-CN", "pt-BR", "nl-NL"},
			OverrideVoiceIDs:   []string{"en-US-Wavenet-B", "en-US-Wavenet-C"},
		},
		Cache: Cache{
			Enabled: true,
			Dir:     defaultCacheDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
