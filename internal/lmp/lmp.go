// Package lmp holds the typed LMP packet values exchanged between the two
// pairing state machines. Like internal/hci, this models values, not the
// byte-level wire format — packet encode/decode is an external codec and
// out of scope for this core.
package lmp

import "fmt"

// Opcode identifies an LMP packet's kind. It is also used as the payload of
// Accepted/NotAccepted, which reference the opcode of the packet they
// answer.
type Opcode int

const (
	IoCapabilityReq Opcode = iota
	IoCapabilityRes
	EncapsulatedHeader
	EncapsulatedPayload
	SimplePairingConfirm
	SimplePairingNumber
	DhkeyCheck
	NumericComparaisonFailed
	Accepted
	NotAccepted
)

func (o Opcode) String() string {
	switch o {
	case IoCapabilityReq:
		return "IoCapabilityReq"
	case IoCapabilityRes:
		return "IoCapabilityRes"
	case EncapsulatedHeader:
		return "EncapsulatedHeader"
	case EncapsulatedPayload:
		return "EncapsulatedPayload"
	case SimplePairingConfirm:
		return "SimplePairingConfirm"
	case SimplePairingNumber:
		return "SimplePairingNumber"
	case DhkeyCheck:
		return "DhkeyCheck"
	case NumericComparaisonFailed:
		return "NumericComparaisonFailed"
	case Accepted:
		return "Accepted"
	case NotAccepted:
		return "NotAccepted"
	default:
		return fmt.Sprintf("Opcode(%d)", int(o))
	}
}

// Packet is the common interface satisfied by every LMP packet value. Every
// packet carries its own opcode via Op() so a receiver can discriminate a
// union of expected packet types without a type switch on interface{}.
type Packet interface {
	Op() Opcode
}

// IoCapabilityReqPacket advertises the sender's IO capability to its peer.
type IoCapabilityReqPacket struct {
	TransactionID              uint8
	IoCapabilities              uint8
	OobAuthenticationData       uint8
	AuthenticationRequirement   uint8
}

// IoCapabilityResPacket answers IoCapabilityReqPacket.
type IoCapabilityResPacket struct {
	TransactionID              uint8
	IoCapabilities              uint8
	OobAuthenticationData       uint8
	AuthenticationRequirement   uint8
}

// EncapsulatedHeaderPacket announces an upcoming public-key transfer.
type EncapsulatedHeaderPacket struct {
	TransactionID  uint8
	MajorType      uint8
	MinorType      uint8
	PayloadLength  uint8
}

// EncapsulatedPayloadPacket carries one 16-byte chunk of a public key.
type EncapsulatedPayloadPacket struct {
	TransactionID uint8
	Data          [16]byte
}

// SimplePairingConfirmPacket carries a Stage-1 commitment value.
type SimplePairingConfirmPacket struct {
	TransactionID   uint8
	CommitmentValue [16]byte
}

// SimplePairingNumberPacket carries a Stage-1 nonce.
type SimplePairingNumberPacket struct {
	TransactionID uint8
	Nonce         [16]byte
}

// DhkeyCheckPacket carries the Stage-2 DH-key confirmation value.
type DhkeyCheckPacket struct {
	TransactionID     uint8
	ConfirmationValue [16]byte
}

// NumericComparaisonFailedPacket tells the peer that the local side rejected
// Stage 1.
type NumericComparaisonFailedPacket struct{ TransactionID uint8 }

// AcceptedPacket acknowledges a previously-received packet of AcceptedOpcode.
type AcceptedPacket struct {
	TransactionID  uint8
	AcceptedOpcode Opcode
}

// NotAcceptedPacket rejects a previously-received packet of
// NotAcceptedOpcode, carrying an HCI-style error code.
type NotAcceptedPacket struct {
	TransactionID     uint8
	NotAcceptedOpcode Opcode
	ErrorCode         uint8
}

func (IoCapabilityReqPacket) Op() Opcode          { return IoCapabilityReq }
func (IoCapabilityResPacket) Op() Opcode          { return IoCapabilityRes }
func (EncapsulatedHeaderPacket) Op() Opcode       { return EncapsulatedHeader }
func (EncapsulatedPayloadPacket) Op() Opcode      { return EncapsulatedPayload }
func (SimplePairingConfirmPacket) Op() Opcode     { return SimplePairingConfirm }
func (SimplePairingNumberPacket) Op() Opcode      { return SimplePairingNumber }
func (DhkeyCheckPacket) Op() Opcode               { return DhkeyCheck }
func (NumericComparaisonFailedPacket) Op() Opcode { return NumericComparaisonFailed }
func (AcceptedPacket) Op() Opcode                 { return Accepted }
func (NotAcceptedPacket) Op() Opcode              { return NotAccepted }
