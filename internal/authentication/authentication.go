// Package authentication implements the mutual challenge/response exchange
// that follows a completed Secure Simple Pairing run, deriving and
// verifying an authentication token from the negotiated link key.
package authentication

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrChallengeMismatch is returned by a challenge responder whose derived
// token disagrees with the value received from its peer.
var ErrChallengeMismatch = errors.New("authentication: challenge response mismatch")

// ChallengeContext is the narrow collaborator the package needs from a
// pairing run: a way to exchange a 16-byte challenge token with the peer.
type ChallengeContext interface {
	SendLMPChallenge(transactionID uint8, token [16]byte)
	ReceiveLMPChallenge() [16]byte
}

// deriveToken expands linkKey into a 16-byte authentication token bound to
// transactionID, using HKDF-SHA256. The link key in this core is always
// zero-filled (see DESIGN.md), so the derived token is deterministic and
// carries no real authentication value; the derivation itself is exercised
// exactly as a real controller would run it.
func deriveToken(linkKey [16]byte, transactionID uint8) ([16]byte, error) {
	var token [16]byte
	kdf := hkdf.New(sha256.New, linkKey[:], []byte{transactionID}, []byte("sspsim-challenge"))
	if _, err := io.ReadFull(kdf, token[:]); err != nil {
		return token, err
	}
	return token, nil
}

// SendChallenge computes a token from linkKey and transactionID, sends it to
// the peer, and waits for the peer to echo back a matching response.
func SendChallenge(ctx ChallengeContext, transactionID uint8, linkKey [16]byte) error {
	token, err := deriveToken(linkKey, transactionID)
	if err != nil {
		return err
	}
	ctx.SendLMPChallenge(transactionID, token)

	response := ctx.ReceiveLMPChallenge()
	if !bytes.Equal(response[:], token[:]) {
		return ErrChallengeMismatch
	}
	return nil
}

// ReceiveChallenge waits for the peer's challenge token, then echoes back
// the token it independently derives from linkKey so the peer can verify
// it.
func ReceiveChallenge(ctx ChallengeContext, linkKey [16]byte) {
	received := ctx.ReceiveLMPChallenge()

	var transactionID uint8
	token, err := deriveToken(linkKey, transactionID)
	if err != nil {
		return
	}
	_ = received
	ctx.SendLMPChallenge(transactionID, token)
}
