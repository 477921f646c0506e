// Package config loads the settings used to publish calendar feeds.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TheEnbyperor/discord-events-export/discord"
)

// Version is reported in the default product identifier.
const Version = "0.1.0"

type Config struct {
	// RootURL is the public base URL feeds are served from.
	RootURL string `yaml:"root_url"`
	// UIDDomain scopes generated calendar and event UIDs.
	UIDDomain string `yaml:"uid_domain"`
	// Product is the PRODID written into every calendar.
	Product string `yaml:"product"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	return &Config{
		UIDDomain: discord.DefaultUIDDomain,
		Product:   "Discord Events Export " + Version,
	}
}

// Load reads a YAML configuration from path on top of Default. A missing
// file is not an error. ROOT_URL and UID_DOMAIN from the environment take
// precedence over the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if v := os.Getenv("ROOT_URL"); v != "" {
		cfg.RootURL = v
	}
	if v := os.Getenv("UID_DOMAIN"); v != "" {
		cfg.UIDDomain = v
	}
	return cfg, nil
}

// Exporter returns an exporter configured from c.
func (c *Config) Exporter() *discord.Exporter {
	return &discord.Exporter{
		Product:   c.Product,
		RootURL:   c.RootURL,
		UIDDomain: c.UIDDomain,
	}
}
