package session

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Connector establishes a connection, blocking (and retrying internally)
// until one is available or ctx is cancelled.
type Connector interface {
	Connect(ctx context.Context) (net.Conn, error)
}

// Receiver drains a connection until the remote end closes it or a read
// fails. A clean close returns nil.
type Receiver interface {
	Receive(conn net.Conn) error
}

// Stats is a snapshot of the session loop's state.
type Stats struct {
	Connected bool  `json:"connected"`
	Sessions  int64 `json:"sessions"`
}

// Session composes a Connector and a Receiver into the perpetual
// connect-receive-reconnect cycle.
type Session struct {
	connector Connector
	receiver  Receiver
	logger    *slog.Logger

	connected atomic.Bool
	sessions  atomic.Int64
}

// New creates a Session.
func New(connector Connector, receiver Receiver, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		connector: connector,
		receiver:  receiver,
		logger:    logger,
	}
}

// Connected reports whether a connection is currently open.
func (s *Session) Connected() bool {
	return s.connected.Load()
}

// Stats returns a snapshot of loop state.
func (s *Session) Stats() Stats {
	return Stats{
		Connected: s.connected.Load(),
		Sessions:  s.sessions.Load(),
	}
}

// Run loops forever: obtain a connection, receive until it ends, close it,
// reconnect. Every failure inside the cycle is absorbed into a retry; the
// only way out is ctx cancellation, whose error is returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		conn, err := s.connector.Connect(ctx)
		if err != nil {
			return err
		}

		logger := s.logger.With("session_id", uuid.NewString())
		s.sessions.Add(1)
		s.connected.Store(true)
		logger.Info("session started", "remote", conn.RemoteAddr())

		// Cancellation has to unblock a Receiver parked in a read, so a
		// watcher closes the connection when ctx ends. The Once keeps the
		// close-exactly-once guarantee on the normal path.
		var closeOnce sync.Once
		closeConn := func() { closeOnce.Do(func() { conn.Close() }) }

		watchCtx, stopWatch := context.WithCancel(ctx)
		go func() {
			<-watchCtx.Done()
			closeConn()
		}()

		rerr := s.receiver.Receive(conn)

		// The connection is released here on every path.
		closeConn()
		stopWatch()
		s.connected.Store(false)

		if rerr != nil {
			logger.Warn("session ended", "error", rerr)
		} else {
			logger.Info("session ended")
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		logger.Info("connection lost, reconnecting")
	}
}
