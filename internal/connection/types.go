package connection

import "time"

// DialerConfig configures the TCP dialer.
type DialerConfig struct {
	Host        string
	Port        int
	DialTimeout time.Duration // Per-attempt deadline for establishing a connection
	RetryDelay  time.Duration // Fixed wait between failed attempts
}

// DefaultDialerConfig returns sensible defaults.
func DefaultDialerConfig() DialerConfig {
	return DialerConfig{
		Host:        "localhost",
		Port:        8080,
		DialTimeout: 5 * time.Second,
		RetryDelay:  5 * time.Second,
	}
}

// ReceiverConfig configures the receive loop.
type ReceiverConfig struct {
	ChunkSize   int           // Max bytes per read; one read yields one message
	ReadTimeout time.Duration // 0 means reads block until data arrives
}

// DefaultReceiverConfig returns sensible defaults.
func DefaultReceiverConfig() ReceiverConfig {
	return ReceiverConfig{
		ChunkSize: 1024,
	}
}
