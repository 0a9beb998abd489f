// Package config loads the promptdeck configuration: a YAML file with
// per-concern sections, overlaid with environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all promptdeck configuration.
type Config struct {
	API APIConfig `yaml:"api"`
	UI  UIConfig  `yaml:"ui"`
}

// APIConfig configures the remote data gateway.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	BotPrefix string `yaml:"bot_prefix"`
	Timeout   string `yaml:"timeout"`
	PageLimit int    `yaml:"page_limit"`
}

// UIConfig configures the terminal client.
type UIConfig struct {
	// DebounceMS is the quiet period before a search keystroke burst is
	// applied to the projection.
	DebounceMS int `yaml:"debounce_ms"`
	// TutorialDelayMS is how long after startup the tutorial overlay
	// appears (once per session).
	TutorialDelayMS int `yaml:"tutorial_delay_ms"`
	// BotUsername builds the referral link: https://t.me/<bot>?start=ref_<code>
	BotUsername string `yaml:"bot_username"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "https://api.iiava.koshelev.agency",
			BotPrefix: "/women",
			Timeout:   "15s",
			PageLimit: 200,
		},
		UI: UIConfig{
			DebounceMS:      300,
			TutorialDelayMS: 1000,
			BotUsername:     "iiavabot",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults only.
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, cfg.Validate()
}

// Validate checks the fields other code relies on.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.PageLimit <= 0 {
		return fmt.Errorf("api.page_limit must be positive")
	}
	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		return fmt.Errorf("api.timeout: %w", err)
	}
	return nil
}

// HTTPTimeout returns the parsed gateway timeout.
func (c Config) HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// Debounce returns the search debounce as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.UI.DebounceMS) * time.Millisecond
}

// TutorialDelay returns the tutorial delay as a duration.
func (c Config) TutorialDelay() time.Duration {
	return time.Duration(c.UI.TutorialDelayMS) * time.Millisecond
}

// InitData returns the viewer auth token from the environment. The embedding
// surface (Telegram) exports it; absence means anonymous mode.
func InitData() string {
	return os.Getenv("PROMPTDECK_INIT_DATA")
}

// applyEnvOverrides overlays PROMPTDECK_* environment variables on top of the
// file values, one variable per overridable field.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PROMPTDECK_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("PROMPTDECK_API_BOT_PREFIX"); v != "" {
		cfg.API.BotPrefix = v
	}
	if v := os.Getenv("PROMPTDECK_API_TIMEOUT"); v != "" {
		cfg.API.Timeout = v
	}
	if v := os.Getenv("PROMPTDECK_API_PAGE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.PageLimit = n
		}
	}
	if v := os.Getenv("PROMPTDECK_BOT_USERNAME"); v != "" {
		cfg.UI.BotUsername = v
	}
}
