// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Gateway names accepted by SHOPLIST_GATEWAY.
const (
	GatewaySnapshot = "snapshot"
	GatewayResource = "resource"
	GatewayRemote   = "remote"
	GatewayMemory   = "memory"
)

// Config controls the server.
type Config struct {
	Addr          string        `env:"SHOPLIST_ADDR"           envDefault:":8080"`
	DBPath        string        `env:"SHOPLIST_DB_PATH"        envDefault:"./data/shoppinglist.db"`
	Gateway       string        `env:"SHOPLIST_GATEWAY"        envDefault:"snapshot"`
	RemoteURL     string        `env:"SHOPLIST_REMOTE_URL"`
	CurrentUser   string        `env:"SHOPLIST_CURRENT_USER"   envDefault:"Me"`
	RemoteTimeout time.Duration `env:"SHOPLIST_REMOTE_TIMEOUT" envDefault:"5s"`
	Seed          bool          `env:"SHOPLIST_SEED"           envDefault:"true"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that depend on each other.
func (c Config) Validate() error {
	switch c.Gateway {
	case GatewaySnapshot, GatewayResource, GatewayMemory:
	case GatewayRemote:
		if c.RemoteURL == "" {
			return fmt.Errorf("SHOPLIST_REMOTE_URL is required for the %q gateway", GatewayRemote)
		}
	default:
		return fmt.Errorf("unknown gateway %q", c.Gateway)
	}
	if c.CurrentUser == "" {
		return fmt.Errorf("SHOPLIST_CURRENT_USER must not be empty")
	}
	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("SHOPLIST_REMOTE_TIMEOUT must be positive, got %s", c.RemoteTimeout)
	}
	return nil
}
