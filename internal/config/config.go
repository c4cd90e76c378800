package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root configuration for a surge client instance.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Client ClientConfig `yaml:"client"`
	Health HealthConfig `yaml:"health"`
}

// ServerConfig identifies the remote Surge Protocol server.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Address returns the host:port dial target.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ClientConfig holds dial and receive settings.
type ClientConfig struct {
	DialTimeout time.Duration `yaml:"dial_timeout"`
	RetryDelay  time.Duration `yaml:"retry_delay"`
	ReadTimeout time.Duration `yaml:"read_timeout"` // 0 disables the per-read deadline
	ChunkSize   int           `yaml:"chunk_size"`
}

// HealthConfig holds the HTTP health endpoint settings.
type HealthConfig struct {
	Port int    `yaml:"port"` // 0 disables the health server
	Path string `yaml:"path"`
}
