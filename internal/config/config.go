// Package config loads runtime settings from an optional YAML file with
// environment-variable overrides. A missing file is fine; the defaults are
// complete except for the API key.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration unmarshals from Go duration strings ("300ms", "2s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the plain time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds every runtime setting.
type Config struct {
	GeminiAPIKey   string   `yaml:"gemini_api_key"`
	ChatModel      string   `yaml:"chat_model"`
	TTSModel       string   `yaml:"tts_model"`
	Voice          string   `yaml:"voice"`
	CatalogLatency Duration `yaml:"catalog_latency"`
	SearchDebounce Duration `yaml:"search_debounce"`
	PrefsPath      string   `yaml:"prefs_path"`
	Debug          bool     `yaml:"debug"`
}

// Default returns the built-in settings. The API key has no default; it
// comes from the file or GEMINI_API_KEY.
func Default() Config {
	return Config{
		ChatModel:      "gemini-2.5-flash",
		TTSModel:       "gemini-2.5-flash-preview-tts",
		Voice:          "Kore",
		CatalogLatency: Duration(500 * time.Millisecond),
		SearchDebounce: Duration(300 * time.Millisecond),
		PrefsPath:      "cosmos.db",
	}
}

// Load reads the YAML file at path (missing file is not an error, empty path
// skips the file entirely) and then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	for env, dst := range map[string]*string{
		"GEMINI_API_KEY":    &cfg.GeminiAPIKey,
		"COSMOS_CHAT_MODEL": &cfg.ChatModel,
		"COSMOS_TTS_MODEL":  &cfg.TTSModel,
		"COSMOS_VOICE":      &cfg.Voice,
		"COSMOS_PREFS":      &cfg.PrefsPath,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	if os.Getenv("COSMOS_DEBUG") == "1" {
		cfg.Debug = true
	}
}
