package ssp

import (
	"github.com/backkem/sspsim/internal/hci"
	"github.com/backkem/sspsim/internal/lmp"
)

// CommitmentValueSize, NonceSize and ConfirmationValueSize are all
// zero-stubbed in this core; only their size matters for frame sequencing
// (see DESIGN.md — real cryptography is out of scope).
const (
	CommitmentValueSize  = 16
	NonceSize            = 16
	ConfirmationValueSize = 16
)

// PasskeyEntryRepeatNumber is the number of commitment rounds the Passkey
// Entry method replays.
const PasskeyEntryRepeatNumber = 20

// receiveCommitment is the responder side of one Stage-1 commitment round.
func receiveCommitment(ctx Context, skipFirst bool) error {
	var commitmentValue [CommitmentValueSize]byte

	if !skipFirst {
		confirm := ctx.ReceiveSimplePairingConfirm()
		if confirm.CommitmentValue != commitmentValue {
			return ErrCommitmentMismatch
		}
	}

	ctx.SendLMPPacket(lmp.SimplePairingConfirmPacket{TransactionID: 0, CommitmentValue: commitmentValue})

	ctx.ReceiveSimplePairingNumber()
	ctx.SendLMPPacket(lmp.AcceptedPacket{TransactionID: 0, AcceptedOpcode: lmp.SimplePairingNumber})

	var nonce [NonceSize]byte
	return ctx.SendAcceptedLMPPacket(lmp.SimplePairingNumberPacket{TransactionID: 0, Nonce: nonce})
}

// sendCommitment is the initiator side of one Stage-1 commitment round.
func sendCommitment(ctx Context, skipFirst bool) error {
	var commitmentValue [CommitmentValueSize]byte

	if !skipFirst {
		ctx.SendLMPPacket(lmp.SimplePairingConfirmPacket{TransactionID: 0, CommitmentValue: commitmentValue})
	}

	confirm := ctx.ReceiveSimplePairingConfirm()
	if confirm.CommitmentValue != commitmentValue {
		return ErrCommitmentMismatch
	}

	var nonce [NonceSize]byte
	if err := ctx.SendAcceptedLMPPacket(lmp.SimplePairingNumberPacket{TransactionID: 0, Nonce: nonce}); err != nil {
		return err
	}

	ctx.ReceiveSimplePairingNumber()
	ctx.SendLMPPacket(lmp.AcceptedPacket{TransactionID: 0, AcceptedOpcode: lmp.SimplePairingNumber})
	return nil
}

// userConfirmationRequest drives the Numeric Comparison HCI round trip.
// Returns ErrUserRejected if the host answers negatively.
func userConfirmationRequest(ctx Context) error {
	addr := ctx.PeerAddress()
	ctx.SendHCIEvent(hci.UserConfirmationRequest{BdAddr: addr})

	decision := ctx.ReceiveUserConfirmationDecision()
	if decision.Negative {
		ctx.SendHCIEvent(hci.UserConfirmationRequestNegativeReplyComplete{BdAddr: addr})
		return ErrUserRejected
	}
	ctx.SendHCIEvent(hci.UserConfirmationRequestReplyComplete{BdAddr: addr})
	return nil
}

// userPasskeyRequest drives the Passkey Entry HCI round trip, looping over
// any number of SendKeypressNotification commands before the host finally
// replies or rejects.
func userPasskeyRequest(ctx Context) error {
	addr := ctx.PeerAddress()
	ctx.SendHCIEvent(hci.UserPasskeyRequest{BdAddr: addr})

	for {
		cmd := ctx.ReceiveUserPasskeyCommand()
		switch cmd.Kind {
		case PasskeyReply:
			ctx.SendHCIEvent(hci.UserPasskeyRequestReplyComplete{BdAddr: addr})
			return nil
		case PasskeyNegativeReply:
			ctx.SendHCIEvent(hci.UserPasskeyRequestNegativeReplyComplete{BdAddr: addr})
			return ErrUserRejected
		case PasskeyKeypress:
			ctx.SendHCIEvent(hci.SendKeypressNotificationComplete{BdAddr: addr})
			// Deliberately does not forward an LMP keypress notification to
			// the peer.
		}
	}
}

// remoteOobDataRequest drives the Out-Of-Band HCI round trip.
func remoteOobDataRequest(ctx Context) error {
	addr := ctx.PeerAddress()
	ctx.SendHCIEvent(hci.RemoteOobDataRequest{BdAddr: addr})

	decision := ctx.ReceiveRemoteOobDecision()
	if decision.Negative {
		ctx.SendHCIEvent(hci.RemoteOobDataRequestNegativeReplyComplete{BdAddr: addr})
		return ErrUserRejected
	}
	ctx.SendHCIEvent(hci.RemoteOobDataRequestReplyComplete{BdAddr: addr})
	return nil
}
