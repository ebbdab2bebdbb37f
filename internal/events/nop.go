package events

import "github.com/backkem/sspsim/internal/btaddr"

// NopEmitter is a no-op emitter that discards all pairing events.
// It has zero overhead when a harness run isn't asked to record a trace.
type NopEmitter struct{}

// Emit does nothing.
func (NopEmitter) Emit(EventType, interface{}) {}

// EmitPairingStarted does nothing.
func (NopEmitter) EmitPairingStarted(btaddr.Addr, string) {}

// EmitPairingComplete does nothing.
func (NopEmitter) EmitPairingComplete(btaddr.Addr, string, string) {}

// EmitPairingFailed does nothing.
func (NopEmitter) EmitPairingFailed(btaddr.Addr, string) {}

// Close does nothing and returns nil.
func (NopEmitter) Close() error { return nil }
