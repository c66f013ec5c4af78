package ctl

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Content sources, matching the server's content_source key.
const (
	SourceEmbedded = "embedded"
	SourceMongo    = "mongo"
)

// Config is the subset of the server configuration the CLI needs. Keys and
// environment variables are the same ones the server reads.
type Config struct {
	ContentSource string `koanf:"content_source"`
	MongoURI      string `koanf:"mongo_uri"`
	MongoDatabase string `koanf:"mongo_database"`
	HeaderOffset  int    `koanf:"header_offset"`
}

// DefaultConfig mirrors the server defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentSource: SourceEmbedded,
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "fedl",
		HeaderOffset:  80,
	}
}

// LoadConfig reads the optional YAML file at path, then LABSITE_* environment
// variables, then any explicit overrides (already-set flags). Later sources win.
func LoadConfig(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// LABSITE_MONGO_URI -> mongo_uri, etc.
	if err := k.Load(env.Provider("LABSITE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LABSITE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	for key, val := range overrides {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("applying flag %s: %w", key, err)
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.ContentSource = strings.ToLower(strings.TrimSpace(cfg.ContentSource))
	return cfg, nil
}

// Validate checks the values the commands depend on.
func (c *Config) Validate() error {
	switch c.ContentSource {
	case SourceEmbedded, SourceMongo:
	default:
		return fmt.Errorf("invalid content_source %q: must be embedded or mongo", c.ContentSource)
	}
	if c.HeaderOffset < 0 {
		return fmt.Errorf("header_offset must be non-negative")
	}
	return nil
}

// RequireMongo checks that a Mongo target is configured.
func (c *Config) RequireMongo() error {
	if c.MongoURI == "" {
		return fmt.Errorf("mongo_uri is required")
	}
	if c.MongoDatabase == "" {
		return fmt.Errorf("mongo_database is required")
	}
	return nil
}
