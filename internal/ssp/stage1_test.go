package ssp

import (
	"testing"

	"github.com/backkem/sspsim/internal/lmp"
)

func TestUserConfirmationRequest_Accept(t *testing.T) {
	f := &fakeContext{decisions: []UserDecision{{Negative: false}}}
	if err := userConfirmationRequest(f); err != nil {
		t.Fatalf("userConfirmationRequest: %v", err)
	}
	if len(f.sentEvents) != 2 {
		t.Fatalf("sent %d events, want 2", len(f.sentEvents))
	}
}

func TestUserConfirmationRequest_Reject(t *testing.T) {
	f := &fakeContext{decisions: []UserDecision{{Negative: true}}}
	if err := userConfirmationRequest(f); err != ErrUserRejected {
		t.Fatalf("err = %v, want ErrUserRejected", err)
	}
}

func TestUserPasskeyRequest_KeypressThenAccept(t *testing.T) {
	f := &fakeContext{passkeys: []UserPasskeyCommand{
		{Kind: PasskeyKeypress},
		{Kind: PasskeyKeypress},
		{Kind: PasskeyReply, Passkey: 123456},
	}}
	if err := userPasskeyRequest(f); err != nil {
		t.Fatalf("userPasskeyRequest: %v", err)
	}
	// One request event, two keypress acks, one reply-complete.
	if len(f.sentEvents) != 4 {
		t.Fatalf("sent %d events, want 4", len(f.sentEvents))
	}
}

func TestUserPasskeyRequest_NegativeReply(t *testing.T) {
	f := &fakeContext{passkeys: []UserPasskeyCommand{{Kind: PasskeyNegativeReply}}}
	if err := userPasskeyRequest(f); err != ErrUserRejected {
		t.Fatalf("err = %v, want ErrUserRejected", err)
	}
}

func TestRemoteOobDataRequest_Accept(t *testing.T) {
	f := &fakeContext{decisions: []UserDecision{{Negative: false}}}
	if err := remoteOobDataRequest(f); err != nil {
		t.Fatalf("remoteOobDataRequest: %v", err)
	}
}

func TestSendCommitment_SkipFirst_AcksNonce(t *testing.T) {
	f := &fakeContext{
		inboundLMP: []lmp.Packet{
			lmp.SimplePairingConfirmPacket{},
			lmp.SimplePairingNumberPacket{},
		},
	}
	if err := sendCommitment(f, true); err != nil {
		t.Fatalf("sendCommitment: %v", err)
	}
	if len(f.sentLMP) != 1 || f.sentLMP[0].Op() != lmp.Accepted {
		t.Fatalf("expected exactly one Accepted(SimplePairingNumber) send, got %+v", f.sentLMP)
	}
	if len(f.sentAccepted) != 1 || f.sentAccepted[0].Op() != lmp.SimplePairingNumber {
		t.Fatalf("expected one accepted SimplePairingNumber send, got %+v", f.sentAccepted)
	}
}

func TestSendCommitment_MismatchedConfirm(t *testing.T) {
	f := &fakeContext{
		inboundLMP: []lmp.Packet{
			lmp.SimplePairingConfirmPacket{CommitmentValue: [16]byte{1}},
		},
	}
	if err := sendCommitment(f, true); err != ErrCommitmentMismatch {
		t.Fatalf("err = %v, want ErrCommitmentMismatch", err)
	}
}

func TestReceiveCommitment_SkipFirst(t *testing.T) {
	f := &fakeContext{
		inboundLMP: []lmp.Packet{
			lmp.SimplePairingNumberPacket{},
		},
	}
	if err := receiveCommitment(f, true); err != nil {
		t.Fatalf("receiveCommitment: %v", err)
	}
	if len(f.sentLMP) != 2 {
		t.Fatalf("expected a SimplePairingConfirm send and an Accepted send, got %+v", f.sentLMP)
	}
}
