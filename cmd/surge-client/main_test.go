package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/surgeprotocol/surge-client/internal/connection"
	"github.com/surgeprotocol/surge-client/internal/session"
)

type healthResponse struct {
	Status    string `json:"status"`
	Connected bool   `json:"connected"`
	Sessions  int64  `json:"sessions"`
	Attempts  int64  `json:"attempts"`
	Server    string `json:"server"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func getHealth(t *testing.T, handler http.Handler) (int, healthResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var health healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	return rec.Code, health
}

func TestHealthHandler_BeforeFirstSession(t *testing.T) {
	dialer := connection.NewDialer(connection.DialerConfig{Host: "localhost", Port: 8080}, testLogger())
	receiver := connection.NewReceiver(connection.DefaultReceiverConfig(), testLogger(), &bytes.Buffer{})
	sess := session.New(dialer, receiver, testLogger())

	handler := createHealthHandler("/health", sess, dialer)

	code, health := getHealth(t, handler)

	if code != http.StatusServiceUnavailable {
		t.Errorf("status code = %d, want %d", code, http.StatusServiceUnavailable)
	}
	if health.Status != "reconnecting" {
		t.Errorf("status = %q, want %q", health.Status, "reconnecting")
	}
	if health.Connected {
		t.Error("connected = true before first session, want false")
	}
	if health.Sessions != 0 {
		t.Errorf("sessions = %d, want 0", health.Sessions)
	}
	if health.Server != "localhost:8080" {
		t.Errorf("server = %q, want %q", health.Server, "localhost:8080")
	}
}

func TestHealthHandler_Connected(t *testing.T) {
	// A server that accepts and holds the connection open, silently.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	var mu sync.Mutex
	var held []net.Conn
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			held = append(held, conn)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()
		for _, conn := range held {
			conn.Close()
		}
	})

	host, portStr, _ := net.SplitHostPort(ln.Addr().String())
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("atoi %q: %v", portStr, err)
	}

	dialer := connection.NewDialer(connection.DialerConfig{
		Host:        host,
		Port:        port,
		DialTimeout: time.Second,
		RetryDelay:  10 * time.Millisecond,
	}, testLogger())
	receiver := connection.NewReceiver(connection.DefaultReceiverConfig(), testLogger(), &bytes.Buffer{})
	sess := session.New(dialer, receiver, testLogger())

	handler := createHealthHandler("/health", sess, dialer)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for !sess.Connected() {
		if time.Now().After(deadline) {
			t.Fatal("session never connected")
		}
		time.Sleep(5 * time.Millisecond)
	}

	code, health := getHealth(t, handler)

	if code != http.StatusOK {
		t.Errorf("status code = %d, want %d", code, http.StatusOK)
	}
	if health.Status != "connected" {
		t.Errorf("status = %q, want %q", health.Status, "connected")
	}
	if !health.Connected {
		t.Error("connected = false during an open session, want true")
	}
	if health.Sessions != 1 {
		t.Errorf("sessions = %d, want 1", health.Sessions)
	}
	if health.Attempts < 1 {
		t.Errorf("attempts = %d, want >= 1", health.Attempts)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
