package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Server configuration
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Cache store configuration
	DBPath string `long:"db-path" env:"DB_PATH" default:"./cache.db" description:"Path to the SQLite article cache"`

	// Generative backend configuration
	GoogleAPIKey   string `long:"google-api-key" env:"GOOGLE_API_KEY" description:"Google Generative AI API key (required)" required:"true"`
	Model          string `long:"model" env:"MODEL" default:"gemini-2.0-flash" description:"Default generative model"`
	MaxRetries     int    `long:"max-retries" env:"MAX_RETRIES" default:"3" description:"Maximum attempts per backend call"`
	InitialBackoff int    `long:"initial-backoff" env:"INITIAL_BACKOFF" default:"2" description:"Initial retry backoff in seconds"`

	// Pipeline configuration
	ProfilesDir string `long:"profiles-dir" env:"PROFILES_DIR" description:"Directory with agent profile overrides (optional)"`
	BatchPause  int    `long:"batch-pause" env:"BATCH_PAUSE" default:"1" description:"Pause between batch topics in seconds"`
	RSSFallback bool   `long:"rss-fallback" env:"RSS_FALLBACK" description:"Enable Google News RSS fallback when the model yields no news"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"NewsDesk/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:           raw.Port,
		DBPath:         raw.DBPath,
		GoogleAPIKey:   raw.GoogleAPIKey,
		Model:          raw.Model,
		MaxRetries:     raw.MaxRetries,
		InitialBackoff: raw.InitialBackoff,
		ProfilesDir:    raw.ProfilesDir,
		BatchPause:     raw.BatchPause,
		RSSFallback:    raw.RSSFallback,
		UserAgent:      raw.UserAgent,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// Set replaces the global configuration. Intended for tests.
func Set(c *Cfg) {
	globalCfg = c
}
