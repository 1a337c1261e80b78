package core

// Frame is a single encoded event on the wire.
type Frame []byte

// SessionID is the opaque connection identifier assigned at accept time.
type SessionID string

// SignalConnection abstracts for a system messaging transport.
// Owned by the adapter; the adapter must Close() it. TrySend never
// blocks — a full buffer is reported as an error and the frame dropped.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
