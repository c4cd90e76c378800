// Package connection implements the transport layer of the surge client.
//
// The Dialer:
//   - Resolves the host:port dial target
//   - Bounds each attempt with a dial timeout
//   - Retries forever with a fixed delay between failures
//
// The Receiver:
//   - Reads fixed-size chunks from an established connection
//   - Surfaces each chunk as one printed message
//   - Classifies the end of a session as clean close or transport error
package connection
