package ssp

import (
	"github.com/backkem/sspsim/internal/btaddr"
	"github.com/backkem/sspsim/internal/hci"
	"github.com/backkem/sspsim/internal/lmp"
)

// fakeContext is a scripted Context for exercising one sub-protocol at a
// time: inbound LMP packets and host decisions are queued up front, and
// every outbound call is recorded for assertions.
type fakeContext struct {
	peer btaddr.Addr

	inboundLMP []lmp.Packet
	decisions  []UserDecision
	passkeys   []UserPasskeyCommand

	sentLMP      []lmp.Packet
	sentAccepted []lmp.Packet
	sentEvents   []hci.Event

	acceptedReplies []error
}

func (f *fakeContext) PeerAddress() btaddr.Addr { return f.peer }

func (f *fakeContext) SendHCIEvent(event hci.Event) {
	f.sentEvents = append(f.sentEvents, event)
}

func (f *fakeContext) SendLMPPacket(packet lmp.Packet) {
	f.sentLMP = append(f.sentLMP, packet)
}

func (f *fakeContext) SendAcceptedLMPPacket(packet lmp.Packet) error {
	f.sentAccepted = append(f.sentAccepted, packet)
	if len(f.acceptedReplies) == 0 {
		return nil
	}
	err := f.acceptedReplies[0]
	f.acceptedReplies = f.acceptedReplies[1:]
	return err
}

func (f *fakeContext) popLMP() lmp.Packet {
	if len(f.inboundLMP) == 0 {
		panic("fakeContext: no more inbound LMP packets queued")
	}
	p := f.inboundLMP[0]
	f.inboundLMP = f.inboundLMP[1:]
	return p
}

func (f *fakeContext) ReceiveIoCapabilityRequestReply() hci.IoCapabilityRequestReply {
	panic("not used by this test")
}

func (f *fakeContext) ReceiveIoCapabilityRes() lmp.IoCapabilityResPacket {
	return f.popLMP().(lmp.IoCapabilityResPacket)
}

func (f *fakeContext) ReceiveEncapsulatedHeader() lmp.EncapsulatedHeaderPacket {
	return f.popLMP().(lmp.EncapsulatedHeaderPacket)
}

func (f *fakeContext) ReceiveEncapsulatedPayload() lmp.EncapsulatedPayloadPacket {
	return f.popLMP().(lmp.EncapsulatedPayloadPacket)
}

func (f *fakeContext) ReceiveSimplePairingConfirm() lmp.SimplePairingConfirmPacket {
	return f.popLMP().(lmp.SimplePairingConfirmPacket)
}

func (f *fakeContext) ReceiveSimplePairingNumber() lmp.SimplePairingNumberPacket {
	return f.popLMP().(lmp.SimplePairingNumberPacket)
}

func (f *fakeContext) ReceiveUserConfirmationDecision() UserDecision {
	return f.popDecision()
}

func (f *fakeContext) ReceiveRemoteOobDecision() UserDecision {
	return f.popDecision()
}

func (f *fakeContext) popDecision() UserDecision {
	if len(f.decisions) == 0 {
		panic("fakeContext: no more decisions queued")
	}
	d := f.decisions[0]
	f.decisions = f.decisions[1:]
	return d
}

func (f *fakeContext) ReceiveUserPasskeyCommand() UserPasskeyCommand {
	if len(f.passkeys) == 0 {
		panic("fakeContext: no more passkey commands queued")
	}
	c := f.passkeys[0]
	f.passkeys = f.passkeys[1:]
	return c
}

func (f *fakeContext) ReceiveDhkeyCheckOrFailed() DhkeyCheckOrFailed {
	panic("not used by this test")
}

func (f *fakeContext) ReceiveDhkeyCheck() lmp.DhkeyCheckPacket {
	panic("not used by this test")
}

func (f *fakeContext) SupportedOnBothPage1(bit hci.LMPFeaturesPage1Bit) bool {
	return false
}

func (f *fakeContext) SendChallenge(transactionID uint8, linkKey [16]byte) error {
	return nil
}

func (f *fakeContext) ReceiveChallenge(linkKey [16]byte) {}

func countOp(packets []lmp.Packet, op lmp.Opcode) int {
	n := 0
	for _, p := range packets {
		if p.Op() == op {
			n++
		}
	}
	return n
}

var _ Context = (*fakeContext)(nil)
