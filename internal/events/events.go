// Package events provides structured event emission for pairing runs.
package events

import (
	"time"

	"github.com/backkem/sspsim/internal/btaddr"
)

// EventType identifies the kind of event.
type EventType string

const (
	EventPairingStarted  EventType = "pairing_started"
	EventMethodSelected  EventType = "method_selected"
	EventHCIEvent        EventType = "hci_event"
	EventLMPPacket       EventType = "lmp_packet"
	EventPairingComplete EventType = "pairing_complete"
	EventPairingFailed   EventType = "pairing_failed"
)

// Envelope wraps every emitted event with type and timestamp.
type Envelope struct {
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// PairingStartedData is the payload for pairing_started events.
type PairingStartedData struct {
	PeerAddr string `json:"peer_addr"`
	Role     string `json:"role"`
}

// MethodSelectedData is the payload for method_selected events.
type MethodSelectedData struct {
	PeerAddr string `json:"peer_addr"`
	Method   string `json:"method"`
}

// HCIEventData is the payload for hci_event events, naming the Go type of
// the event value sent to the host without encoding its fields.
type HCIEventData struct {
	PeerAddr string `json:"peer_addr"`
	Kind     string `json:"kind"`
}

// LMPPacketData is the payload for lmp_packet events.
type LMPPacketData struct {
	PeerAddr string `json:"peer_addr"`
	Opcode   string `json:"opcode"`
}

// PairingCompleteData is the payload for pairing_complete events.
type PairingCompleteData struct {
	PeerAddr string `json:"peer_addr"`
	Method   string `json:"method"`
	KeyType  string `json:"key_type"`
}

// PairingFailedData is the payload for pairing_failed events.
type PairingFailedData struct {
	PeerAddr string `json:"peer_addr"`
	Reason   string `json:"reason"`
}

// Emitter is the interface for emitting structured events. Beyond the
// generic Emit, it exposes the three pairing-lifecycle shapes every caller
// in this module actually constructs, so callers work with btaddr.Addr and
// plain strings instead of building envelope payload structs by hand.
type Emitter interface {
	Emit(eventType EventType, data interface{})
	EmitPairingStarted(peer btaddr.Addr, role string)
	EmitPairingComplete(peer btaddr.Addr, method, keyType string)
	EmitPairingFailed(peer btaddr.Addr, reason string)
	Close() error
}
