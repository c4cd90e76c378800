package connection

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"
)

// Receiver drains a single connection, surfacing each received chunk as one
// printed message. A message boundary is whatever one read returns; partial
// lines are not reassembled.
type Receiver struct {
	cfg    ReceiverConfig
	logger *slog.Logger
	out    io.Writer
}

// NewReceiver creates a Receiver. Messages are written to out; os.Stdout
// is used when out is nil.
func NewReceiver(cfg ReceiverConfig, logger *slog.Logger, out io.Writer) *Receiver {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = DefaultReceiverConfig().ChunkSize
	}

	return &Receiver{
		cfg:    cfg,
		logger: logger,
		out:    out,
	}
}

// Receive reads from conn until the server closes the connection or a read
// fails. A clean remote close returns nil; any transport error is logged
// and returned. Retry is the caller's responsibility, not the Receiver's.
func (r *Receiver) Receive(conn net.Conn) error {
	buf := make([]byte, r.cfg.ChunkSize)

	for {
		if r.cfg.ReadTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(r.cfg.ReadTimeout)); err != nil {
				err = fmt.Errorf("set read deadline: %w", err)
				r.logger.Warn("connection error", "error", err)
				return err
			}
		}

		n, err := conn.Read(buf)
		if n > 0 {
			msg := strings.TrimRight(string(buf[:n]), " \t\r\n")
			fmt.Fprintf(r.out, "Received from server: %s\n", msg)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				r.logger.Info("server closed the connection")
				return nil
			}
			r.logger.Warn("connection error", "error", err)
			return err
		}
	}
}
