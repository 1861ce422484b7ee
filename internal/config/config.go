// Package config loads peoplectl settings from PEOPLE_* environment variables.
package config

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the client configuration.
// Environment variables are parsed with the PEOPLE_ prefix, e.g. PEOPLE_BASE_URL.
type Config struct {
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:3000/people/"`

	// Token is sent as-is. When empty and TokenSecret is set, the token is
	// derived from the secret (see DeriveToken).
	Token       string `envconfig:"TOKEN"`
	TokenSecret string `envconfig:"TOKEN_SECRET"`

	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"console"`
	Debug     bool          `envconfig:"DEBUG" default:"false"`
}

// New parses the environment. Callers layer their own overrides on top and
// then call ResolveDefaults, which validates and derives the token.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("PEOPLE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Bool("token_present", cfg.Token != "").
		Dur("timeout", cfg.Timeout).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")
	return &cfg, nil
}

// ResolveDefaults derives Token from TokenSecret when needed and checks the
// remaining values.
func (c *Config) ResolveDefaults() error {
	if c.BaseURL == "" {
		return fmt.Errorf("PEOPLE_BASE_URL must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("PEOPLE_TIMEOUT must be > 0, got %s", c.Timeout)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported PEOPLE_LOG_FORMAT: %s", c.LogFormat)
	}
	if c.Token == "" && c.TokenSecret != "" {
		c.Token = DeriveToken(c.TokenSecret)
	}
	return nil
}

// DeriveToken returns the hex MD5 digest of secret, the token scheme the
// people service issues to clients.
func DeriveToken(secret string) string {
	sum := md5.Sum([]byte(secret))
	return hex.EncodeToString(sum[:])
}
