package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultHost        = "localhost"
	DefaultPort        = 8080
	DefaultDialTimeout = 5 * time.Second
	DefaultRetryDelay  = 5 * time.Second
	DefaultChunkSize   = 1024
	DefaultHealthPath  = "/health"
)

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}

	if c.Client.DialTimeout == 0 {
		c.Client.DialTimeout = DefaultDialTimeout
	}
	if c.Client.RetryDelay == 0 {
		c.Client.RetryDelay = DefaultRetryDelay
	}
	if c.Client.ChunkSize == 0 {
		c.Client.ChunkSize = DefaultChunkSize
	}

	if c.Health.Path == "" {
		c.Health.Path = DefaultHealthPath
	}
}
