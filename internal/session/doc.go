// Package session implements the client's main loop: connect, receive
// until the connection ends, close, reconnect. The loop owns at most one
// connection at a time and runs until its context is cancelled.
package session
