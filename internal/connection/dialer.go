package connection

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"sync/atomic"
	"time"
)

// Dialer establishes TCP connections to the Surge Protocol server. A failed
// attempt is never surfaced to the caller; the Dialer retries until it
// succeeds or the context is cancelled.
type Dialer struct {
	cfg    DialerConfig
	logger *slog.Logger

	// dialContext is swappable in tests.
	dialContext func(ctx context.Context, network, address string) (net.Conn, error)

	attempts atomic.Int64
}

// NewDialer creates a Dialer. Zero config fields fall back to defaults.
func NewDialer(cfg DialerConfig, logger *slog.Logger) *Dialer {
	if logger == nil {
		logger = slog.Default()
	}

	def := DefaultDialerConfig()
	if cfg.Host == "" {
		cfg.Host = def.Host
	}
	if cfg.Port == 0 {
		cfg.Port = def.Port
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = def.DialTimeout
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = def.RetryDelay
	}

	nd := &net.Dialer{Timeout: cfg.DialTimeout}
	return &Dialer{
		cfg:         cfg,
		logger:      logger,
		dialContext: nd.DialContext,
	}
}

// Address returns the host:port this dialer targets.
func (d *Dialer) Address() string {
	return net.JoinHostPort(d.cfg.Host, strconv.Itoa(d.cfg.Port))
}

// Attempts returns the total number of connection attempts so far.
func (d *Dialer) Attempts() int64 {
	return d.attempts.Load()
}

// Connect dials until a connection is established. Transport failures
// (refused, unreachable, DNS, timeout) are logged and retried after the
// configured delay; the only error ever returned is the context's.
func (d *Dialer) Connect(ctx context.Context) (net.Conn, error) {
	addr := d.Address()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d.attempts.Add(1)
		d.logger.Info("attempting to connect", "address", addr)

		conn, err := d.dialContext(ctx, "tcp", addr)
		if err == nil {
			d.logger.Info("connected", "address", addr)
			return conn, nil
		}

		d.logger.Warn("connection failed",
			"address", addr,
			"error", err,
			"retry_in", d.cfg.RetryDelay,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d.cfg.RetryDelay):
		}
	}
}
