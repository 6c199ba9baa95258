package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config carries the process configuration, read from the environment.
type Config struct {
	Port            int    `env:"PORT" envDefault:"8080"`
	ContractAccount string `env:"CONTRACT_ACCOUNT" envDefault:"market"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	GinMode         string `env:"GIN_MODE" envDefault:"release"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
