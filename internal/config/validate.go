package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Client.DialTimeout <= 0 {
		return errors.New("client.dial_timeout must be positive")
	}
	if c.Client.RetryDelay <= 0 {
		return errors.New("client.retry_delay must be positive")
	}
	if c.Client.ReadTimeout < 0 {
		return errors.New("client.read_timeout cannot be negative")
	}
	if c.Client.ChunkSize < 1 {
		return errors.New("client.chunk_size must be >= 1")
	}

	if c.Health.Port < 0 || c.Health.Port > 65535 {
		return fmt.Errorf("health.port must be between 0 and 65535, got %d", c.Health.Port)
	}

	return nil
}
