package ssp

import (
	"fmt"

	"github.com/backkem/sspsim/internal/hci"
	"github.com/backkem/sspsim/internal/lmp"
)

// Stats summarizes the outcome of one Initiate or Respond run, for harnesses
// that want a structured result instead of walking the HCI event trace.
type Stats struct {
	Method  AuthenticationMethod
	KeyType hci.KeyType
	Failed  bool
}

func requirementsToCommand(p AuthenticationParams) (uint8, uint8, uint8) {
	return uint8(p.IoCapability), uint8(p.OobDataPresent), uint8(p.AuthenticationRequirements)
}

// stage1Initiate runs the Stage-1 sub-protocol the authentication method
// selects, from the initiating side. initiator holds the local side's own
// parameters, needed to decide who holds the keyboard / who supplies OOB
// data.
func stage1Initiate(ctx Context, method AuthenticationMethod, initiator AuthenticationParams) error {
	switch method {
	case NumericComparisonJustWork, NumericComparisonUserConfirm:
		if err := sendCommitment(ctx, true); err != nil {
			return err
		}
		return userConfirmationRequest(ctx)

	case PasskeyEntry:
		if initiator.IoCapability == hci.KeyboardOnly {
			if err := userPasskeyRequest(ctx); err != nil {
				return err
			}
		} else {
			ctx.SendHCIEvent(hci.UserPasskeyNotification{BdAddr: ctx.PeerAddress(), Passkey: 0})
		}
		for i := 0; i < PasskeyEntryRepeatNumber; i++ {
			if err := sendCommitment(ctx, false); err != nil {
				return err
			}
		}
		return nil

	default: // OutOfBand
		if initiator.OobDataPresent != hci.NotPresent {
			if err := remoteOobDataRequest(ctx); err != nil {
				return err
			}
		}
		return sendCommitment(ctx, false)
	}
}

// stage1Respond is stage1Initiate's mirror image from the responding side.
// It never returns an error for a negative user decision; instead it
// reports the decision so the caller can fold it into the Stage-2 gate
// alongside the peer's own DhkeyCheck/NumericComparaisonFailed choice,
// exactly as the responding side does in this protocol.
func stage1Respond(ctx Context, method AuthenticationMethod, responder AuthenticationParams) bool {
	switch method {
	case NumericComparisonJustWork, NumericComparisonUserConfirm:
		if err := receiveCommitment(ctx, true); err != nil {
			return true
		}
		return userConfirmationRequest(ctx) != nil

	case PasskeyEntry:
		if responder.IoCapability == hci.KeyboardOnly {
			_ = userPasskeyRequest(ctx)
		} else {
			ctx.SendHCIEvent(hci.UserPasskeyNotification{BdAddr: ctx.PeerAddress(), Passkey: 0})
		}
		for i := 0; i < PasskeyEntryRepeatNumber; i++ {
			if err := receiveCommitment(ctx, false); err != nil {
				return true
			}
		}
		return false

	default: // OutOfBand
		if responder.OobDataPresent != hci.NotPresent {
			_ = remoteOobDataRequest(ctx)
		}
		return receiveCommitment(ctx, false) != nil
	}
}

// Initiate drives the local side of a pairing that the local controller
// started, exchanging IO capabilities, public keys, Stage-1 commitments and
// the Stage-2 DH-key check before deriving and reporting a link key.
func Initiate(ctx Context) (Stats, error) {
	addr := ctx.PeerAddress()

	ctx.SendHCIEvent(hci.IoCapabilityRequest{BdAddr: addr})
	reply := ctx.ReceiveIoCapabilityRequestReply()
	ctx.SendHCIEvent(hci.IoCapabilityRequestReplyComplete{Status: hci.Success, BdAddr: addr})

	ioCap, oob, authReq := requirementsToCommand(AuthenticationParams{
		IoCapability:               reply.IoCapability,
		OobDataPresent:             reply.OobPresent,
		AuthenticationRequirements: reply.AuthenticationRequirements,
	})
	ctx.SendLMPPacket(lmp.IoCapabilityReqPacket{
		TransactionID:             0,
		IoCapabilities:            ioCap,
		OobAuthenticationData:     oob,
		AuthenticationRequirement: authReq,
	})

	initiator := AuthenticationParams{
		IoCapability:               reply.IoCapability,
		OobDataPresent:             reply.OobPresent,
		AuthenticationRequirements: reply.AuthenticationRequirements,
	}

	response := ctx.ReceiveIoCapabilityRes()
	responder := AuthenticationParams{
		IoCapability:               hci.IoCapability(response.IoCapabilities),
		OobDataPresent:             hci.OobDataPresent(response.OobAuthenticationData),
		AuthenticationRequirements: hci.AuthenticationRequirements(response.AuthenticationRequirement),
	}
	ctx.SendHCIEvent(hci.IoCapabilityResponse{
		BdAddr:                     addr,
		IoCapability:               responder.IoCapability,
		OobDataPresent:             responder.OobDataPresent,
		AuthenticationRequirements: responder.AuthenticationRequirements,
	})

	// Public key exchange.
	keySize := P192PublicKeySize
	if ctx.SupportedOnBothPage1(hci.SecureConnectionsHostSupport) {
		keySize = P256PublicKeySize
	}
	localKey, err := GeneratePublicKey(keySize)
	if err != nil {
		return Stats{}, err
	}
	if err := sendPublicKey(ctx, 0, localKey); err != nil {
		return Stats{}, err
	}
	peerKey, err := receivePublicKey(ctx, 0)
	if err != nil {
		return Stats{}, err
	}

	method := SelectAuthenticationMethod(initiator, responder)
	stats := Stats{Method: method, KeyType: LinkKeyType(method, peerKey)}

	if err := stage1Initiate(ctx, method, initiator); err != nil {
		ctx.SendLMPPacket(lmp.NumericComparaisonFailedPacket{TransactionID: 0})
		ctx.SendHCIEvent(hci.SimplePairingComplete{Status: hci.AuthenticationFailure, BdAddr: addr})
		stats.Failed = true
		return stats, err
	}

	// Authentication Stage 2.
	var confirmationValue [ConfirmationValueSize]byte
	if err := ctx.SendAcceptedLMPPacket(lmp.DhkeyCheckPacket{TransactionID: 0, ConfirmationValue: confirmationValue}); err != nil {
		ctx.SendHCIEvent(hci.SimplePairingComplete{Status: hci.AuthenticationFailure, BdAddr: addr})
		stats.Failed = true
		return stats, fmt.Errorf("%w: %v", ErrStage2Rejected, err)
	}

	ctx.ReceiveDhkeyCheck()
	ctx.SendLMPPacket(lmp.AcceptedPacket{TransactionID: 0, AcceptedOpcode: lmp.DhkeyCheck})

	ctx.SendHCIEvent(hci.SimplePairingComplete{Status: hci.Success, BdAddr: addr})

	var linkKey [16]byte
	authErr := ctx.SendChallenge(0, linkKey)
	ctx.ReceiveChallenge(linkKey)
	if authErr != nil {
		stats.Failed = true
		return stats, fmt.Errorf("%w: %v", ErrAuthenticationFailed, authErr)
	}

	ctx.SendHCIEvent(hci.LinkKeyNotification{BdAddr: addr, KeyType: stats.KeyType, LinkKey: linkKey})
	return stats, nil
}

// Respond drives the local side of a pairing the peer started, mirroring
// Initiate's exchanges with the opposite send/receive order where the
// protocol calls for it.
func Respond(ctx Context, request lmp.IoCapabilityReqPacket) (Stats, error) {
	addr := ctx.PeerAddress()

	initiator := AuthenticationParams{
		IoCapability:               hci.IoCapability(request.IoCapabilities),
		OobDataPresent:             hci.OobDataPresent(request.OobAuthenticationData),
		AuthenticationRequirements: hci.AuthenticationRequirements(request.AuthenticationRequirement),
	}
	ctx.SendHCIEvent(hci.IoCapabilityResponse{
		BdAddr:                     addr,
		IoCapability:               initiator.IoCapability,
		OobDataPresent:             initiator.OobDataPresent,
		AuthenticationRequirements: initiator.AuthenticationRequirements,
	})

	ctx.SendHCIEvent(hci.IoCapabilityRequest{BdAddr: addr})
	reply := ctx.ReceiveIoCapabilityRequestReply()
	ctx.SendHCIEvent(hci.IoCapabilityRequestReplyComplete{Status: hci.Success, BdAddr: addr})

	responder := AuthenticationParams{
		IoCapability:               reply.IoCapability,
		OobDataPresent:             reply.OobPresent,
		AuthenticationRequirements: reply.AuthenticationRequirements,
	}
	ioCap, oob, authReq := requirementsToCommand(responder)
	ctx.SendLMPPacket(lmp.IoCapabilityResPacket{
		TransactionID:             0,
		IoCapabilities:            ioCap,
		OobAuthenticationData:     oob,
		AuthenticationRequirement: authReq,
	})

	// Public key exchange: the responder receives first.
	peerKey, err := receivePublicKey(ctx, 0)
	if err != nil {
		return Stats{}, err
	}
	localKey, err := GeneratePublicKey(peerKey.Size())
	if err != nil {
		return Stats{}, err
	}
	if err := sendPublicKey(ctx, 0, localKey); err != nil {
		return Stats{}, err
	}

	method := SelectAuthenticationMethod(initiator, responder)
	stats := Stats{Method: method, KeyType: LinkKeyType(method, peerKey)}

	negativeUserConfirmation := stage1Respond(ctx, method, responder)

	gate := ctx.ReceiveDhkeyCheckOrFailed()
	if gate.Failed {
		ctx.SendHCIEvent(hci.SimplePairingComplete{Status: hci.AuthenticationFailure, BdAddr: addr})
		stats.Failed = true
		return stats, ErrPeerAborted
	}

	if negativeUserConfirmation {
		ctx.SendLMPPacket(lmp.NotAcceptedPacket{
			TransactionID:     0,
			NotAcceptedOpcode: lmp.DhkeyCheck,
			ErrorCode:         uint8(hci.AuthenticationFailure),
		})
		ctx.SendHCIEvent(hci.SimplePairingComplete{Status: hci.AuthenticationFailure, BdAddr: addr})
		stats.Failed = true
		return stats, ErrStage2Rejected
	}

	// Authentication Stage 2.
	var confirmationValue [ConfirmationValueSize]byte
	ctx.SendLMPPacket(lmp.AcceptedPacket{TransactionID: 0, AcceptedOpcode: lmp.DhkeyCheck})
	if err := ctx.SendAcceptedLMPPacket(lmp.DhkeyCheckPacket{TransactionID: 0, ConfirmationValue: confirmationValue}); err != nil {
		ctx.SendHCIEvent(hci.SimplePairingComplete{Status: hci.AuthenticationFailure, BdAddr: addr})
		stats.Failed = true
		return stats, err
	}

	ctx.SendHCIEvent(hci.SimplePairingComplete{Status: hci.Success, BdAddr: addr})

	var linkKey [16]byte
	ctx.ReceiveChallenge(linkKey)
	if err := ctx.SendChallenge(0, linkKey); err != nil {
		stats.Failed = true
		return stats, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	ctx.SendHCIEvent(hci.LinkKeyNotification{BdAddr: addr, KeyType: stats.KeyType, LinkKey: linkKey})
	return stats, nil
}
