package ssp

import (
	"github.com/backkem/sspsim/internal/btaddr"
	"github.com/backkem/sspsim/internal/hci"
	"github.com/backkem/sspsim/internal/lmp"
)

// UserPasskeyCommandKind discriminates the three HCI commands a host may
// send in response to a UserPasskeyRequest.
type UserPasskeyCommandKind int

const (
	PasskeyReply UserPasskeyCommandKind = iota
	PasskeyNegativeReply
	PasskeyKeypress
)

// UserPasskeyCommand is the tagged union ctx.ReceiveUserPasskeyCommand
// resolves to. Only Passkey is meaningful when Kind == PasskeyReply.
type UserPasskeyCommand struct {
	Kind    UserPasskeyCommandKind
	Passkey uint32
}

// UserDecision is the tagged union shared by ctx.ReceiveUserConfirmationDecision and
// ctx.ReceiveRemoteOobDecision: both round-trips resolve to either a
// positive or a negative reply from the host.
type UserDecision struct {
	Negative bool
}

// DhkeyCheckOrFailed is the tagged union ctx.ReceiveDhkeyCheckOrFailed
// resolves to, used at the responder's Stage-2 gate.
type DhkeyCheckOrFailed struct {
	Failed bool
	Dhkey  lmp.DhkeyCheckPacket
}

// Context is the collaborator the pairing coordinator and its Stage-1
// sub-protocols drive. Every method below corresponds to one row of the
// capability table this core depends on; receive methods suspend the
// calling goroutine until a matching value arrives. Implementations must
// guarantee that a Send followed by SendAccepted observes the next inbound
// LMP packet as the corresponding Accepted/NotAccepted (see
// internal/pairctx).
type Context interface {
	// PeerAddress returns the BD_ADDR of the remote device.
	PeerAddress() btaddr.Addr

	// SendHCIEvent emits one HCI event to the host; non-blocking.
	SendHCIEvent(event hci.Event)

	// SendLMPPacket emits one LMP packet to the peer; non-blocking.
	SendLMPPacket(packet lmp.Packet)

	// SendAcceptedLMPPacket emits packet and suspends until the peer's
	// Accepted or NotAccepted for the same opcode arrives. Returns an error
	// on NotAccepted.
	SendAcceptedLMPPacket(packet lmp.Packet) error

	// ReceiveIoCapabilityRequestReply suspends for the host's reply to an
	// IoCapabilityRequest.
	ReceiveIoCapabilityRequestReply() hci.IoCapabilityRequestReply

	// ReceiveIoCapabilityRes suspends for the peer's IoCapabilityRes.
	ReceiveIoCapabilityRes() lmp.IoCapabilityResPacket

	// ReceiveEncapsulatedHeader suspends for the peer's EncapsulatedHeader.
	ReceiveEncapsulatedHeader() lmp.EncapsulatedHeaderPacket

	// ReceiveEncapsulatedPayload suspends for the peer's next
	// EncapsulatedPayload chunk.
	ReceiveEncapsulatedPayload() lmp.EncapsulatedPayloadPacket

	// ReceiveSimplePairingConfirm suspends for the peer's
	// SimplePairingConfirm.
	ReceiveSimplePairingConfirm() lmp.SimplePairingConfirmPacket

	// ReceiveSimplePairingNumber suspends for the peer's
	// SimplePairingNumber.
	ReceiveSimplePairingNumber() lmp.SimplePairingNumberPacket

	// ReceiveUserConfirmationDecision suspends for the host's reply to a
	// UserConfirmationRequest.
	ReceiveUserConfirmationDecision() UserDecision

	// ReceiveUserPasskeyCommand suspends for the host's next command in
	// response to a UserPasskeyRequest (may be called repeatedly across
	// keypress notifications).
	ReceiveUserPasskeyCommand() UserPasskeyCommand

	// ReceiveRemoteOobDecision suspends for the host's reply to a
	// RemoteOobDataRequest.
	ReceiveRemoteOobDecision() UserDecision

	// ReceiveDhkeyCheckOrFailed suspends for the responder's Stage-2 gate:
	// either a NumericComparaisonFailed or a DhkeyCheck from the peer.
	ReceiveDhkeyCheckOrFailed() DhkeyCheckOrFailed

	// ReceiveDhkeyCheck suspends for the initiator's own receipt of the
	// peer's DhkeyCheck (step 7 of Initiate).
	ReceiveDhkeyCheck() lmp.DhkeyCheckPacket

	// SupportedOnBothPage1 reports whether bit is set on LMP features page
	// 1 for both the local controller and the peer (features collaborator).
	SupportedOnBothPage1(bit hci.LMPFeaturesPage1Bit) bool

	// SendChallenge and ReceiveChallenge are the authentication
	// collaborator's mutual-challenge round trip (see
	// internal/authentication). tid is always 0 in this core.
	SendChallenge(tid uint8, linkKey [16]byte) error
	ReceiveChallenge(linkKey [16]byte)
}
