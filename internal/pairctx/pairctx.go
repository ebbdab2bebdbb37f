// Package pairctx provides the concrete ssp.Context backing a simulated
// pairing: a matched pair of contexts wired directly to each other over Go
// channels, standing in for the over-the-air LMP link and the per-side HCI
// transport to a host.
package pairctx

import (
	"fmt"

	"github.com/backkem/sspsim/internal/authentication"
	"github.com/backkem/sspsim/internal/btaddr"
	"github.com/backkem/sspsim/internal/features"
	"github.com/backkem/sspsim/internal/hci"
	"github.com/backkem/sspsim/internal/lmp"
	"github.com/backkem/sspsim/internal/ssp"
)

// lmpQueueSize bounds the number of in-flight LMP packets buffered between
// the two sides. The protocol is strictly request/reply, so a handful of
// slots is generous headroom, not a backpressure knob.
const lmpQueueSize = 4

// hciQueueSize bounds the number of in-flight HCI events/commands buffered
// between a side and its host script.
const hciQueueSize = 8

// Context is one side of a simulated pairing link. It satisfies
// ssp.Context and authentication.ChallengeContext.
type Context struct {
	self btaddr.Addr
	peer btaddr.Addr

	lmpIn     chan lmp.Packet
	peerLmpIn chan<- lmp.Packet
	hciEvents chan hci.Event
	hostCmds  chan hci.Command

	challengeIn   chan [16]byte
	peerChallenge chan<- [16]byte

	features *features.Registry
}

// NewPair returns two Contexts wired to each other: a's peer is b's address
// and vice versa. Both share the same features registry so a caller can
// record page-1 bits once for the pair.
func NewPair(a, b btaddr.Addr, reg *features.Registry) (*Context, *Context) {
	aToB := make(chan lmp.Packet, lmpQueueSize)
	bToA := make(chan lmp.Packet, lmpQueueSize)
	challengeAToB := make(chan [16]byte, 1)
	challengeBToA := make(chan [16]byte, 1)

	ctxA := &Context{
		self:          a,
		peer:          b,
		lmpIn:         bToA,
		peerLmpIn:     aToB,
		hciEvents:     make(chan hci.Event, hciQueueSize),
		hostCmds:      make(chan hci.Command, hciQueueSize),
		challengeIn:   challengeBToA,
		peerChallenge: challengeAToB,
		features:      reg,
	}
	ctxB := &Context{
		self:          b,
		peer:          a,
		lmpIn:         aToB,
		peerLmpIn:     bToA,
		hciEvents:     make(chan hci.Event, hciQueueSize),
		hostCmds:      make(chan hci.Command, hciQueueSize),
		challengeIn:   challengeAToB,
		peerChallenge: challengeBToA,
		features:      reg,
	}
	return ctxA, ctxB
}

// Events returns the channel of HCI events this side sends to its host.
func (c *Context) Events() <-chan hci.Event { return c.hciEvents }

// Commands returns the channel a host script uses to answer HCI requests.
func (c *Context) Commands() chan<- hci.Command { return c.hostCmds }

func (c *Context) PeerAddress() btaddr.Addr { return c.peer }

func (c *Context) SendHCIEvent(event hci.Event) {
	c.hciEvents <- event
}

func (c *Context) SendLMPPacket(packet lmp.Packet) {
	c.peerLmpIn <- packet
}

func (c *Context) SendAcceptedLMPPacket(packet lmp.Packet) error {
	c.peerLmpIn <- packet
	switch r := (<-c.lmpIn).(type) {
	case lmp.AcceptedPacket:
		return nil
	case lmp.NotAcceptedPacket:
		return fmt.Errorf("pairctx: %s not accepted: %s", packet.Op(), hci.ErrorCode(r.ErrorCode))
	default:
		return fmt.Errorf("pairctx: unexpected reply to %s: %T", packet.Op(), r)
	}
}

func (c *Context) ReceiveIoCapabilityRequestReply() hci.IoCapabilityRequestReply {
	return (<-c.hostCmds).(hci.IoCapabilityRequestReply)
}

func (c *Context) ReceiveIoCapabilityRes() lmp.IoCapabilityResPacket {
	return (<-c.lmpIn).(lmp.IoCapabilityResPacket)
}

// ReceiveIoCapabilityReq waits for the peer's opening IoCapabilityReq. It
// sits outside ssp.Context because Respond takes that packet as an
// argument rather than receiving it itself (a responder only exists once a
// request has already arrived); a harness calls this to obtain it first.
func (c *Context) ReceiveIoCapabilityReq() lmp.IoCapabilityReqPacket {
	return (<-c.lmpIn).(lmp.IoCapabilityReqPacket)
}

func (c *Context) ReceiveEncapsulatedHeader() lmp.EncapsulatedHeaderPacket {
	return (<-c.lmpIn).(lmp.EncapsulatedHeaderPacket)
}

func (c *Context) ReceiveEncapsulatedPayload() lmp.EncapsulatedPayloadPacket {
	return (<-c.lmpIn).(lmp.EncapsulatedPayloadPacket)
}

func (c *Context) ReceiveSimplePairingConfirm() lmp.SimplePairingConfirmPacket {
	return (<-c.lmpIn).(lmp.SimplePairingConfirmPacket)
}

func (c *Context) ReceiveSimplePairingNumber() lmp.SimplePairingNumberPacket {
	return (<-c.lmpIn).(lmp.SimplePairingNumberPacket)
}

func (c *Context) ReceiveUserConfirmationDecision() ssp.UserDecision {
	switch c.nextHostCmd().(type) {
	case hci.UserConfirmationRequestNegativeReply:
		return ssp.UserDecision{Negative: true}
	default:
		return ssp.UserDecision{Negative: false}
	}
}

func (c *Context) ReceiveRemoteOobDecision() ssp.UserDecision {
	switch c.nextHostCmd().(type) {
	case hci.RemoteOobDataRequestNegativeReply:
		return ssp.UserDecision{Negative: true}
	default:
		return ssp.UserDecision{Negative: false}
	}
}

func (c *Context) ReceiveUserPasskeyCommand() ssp.UserPasskeyCommand {
	switch cmd := c.nextHostCmd().(type) {
	case hci.UserPasskeyRequestReply:
		return ssp.UserPasskeyCommand{Kind: ssp.PasskeyReply, Passkey: cmd.Passkey}
	case hci.UserPasskeyRequestNegativeReply:
		return ssp.UserPasskeyCommand{Kind: ssp.PasskeyNegativeReply}
	case hci.SendKeypressNotification:
		return ssp.UserPasskeyCommand{Kind: ssp.PasskeyKeypress}
	default:
		panic(fmt.Sprintf("pairctx: unexpected user passkey command %T", cmd))
	}
}

func (c *Context) ReceiveDhkeyCheckOrFailed() ssp.DhkeyCheckOrFailed {
	switch pkt := (<-c.lmpIn).(type) {
	case lmp.NumericComparaisonFailedPacket:
		return ssp.DhkeyCheckOrFailed{Failed: true}
	case lmp.DhkeyCheckPacket:
		return ssp.DhkeyCheckOrFailed{Dhkey: pkt}
	default:
		panic(fmt.Sprintf("pairctx: unexpected Stage-2 gate packet %T", pkt))
	}
}

func (c *Context) ReceiveDhkeyCheck() lmp.DhkeyCheckPacket {
	return (<-c.lmpIn).(lmp.DhkeyCheckPacket)
}

func (c *Context) SupportedOnBothPage1(bit hci.LMPFeaturesPage1Bit) bool {
	return c.features.SupportedOnBothPage1(c.self, c.peer, bit)
}

func (c *Context) SendChallenge(transactionID uint8, linkKey [16]byte) error {
	return authentication.SendChallenge(c, transactionID, linkKey)
}

func (c *Context) ReceiveChallenge(linkKey [16]byte) {
	authentication.ReceiveChallenge(c, linkKey)
}

// SendLMPChallenge and ReceiveLMPChallenge implement
// authentication.ChallengeContext over a dedicated token channel, separate
// from the LMP packet bus: this core treats mutual challenge/response as an
// opaque follow-on procedure rather than a set of named LMP opcodes (see
// DESIGN.md).
func (c *Context) SendLMPChallenge(transactionID uint8, token [16]byte) {
	c.peerChallenge <- token
}

func (c *Context) ReceiveLMPChallenge() [16]byte {
	return <-c.challengeIn
}

func (c *Context) nextHostCmd() hci.Command {
	return <-c.hostCmds
}

var _ ssp.Context = (*Context)(nil)
var _ authentication.ChallengeContext = (*Context)(nil)
