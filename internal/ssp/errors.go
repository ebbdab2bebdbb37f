package ssp

import "errors"

// Stage-1/Stage-2 failure reasons. Every error here terminates the
// enclosing pairing via the routing described in spec.md §7. The pairing
// coordinator returns some of these bare and wraps others around the
// underlying cause, so callers that need to distinguish why a run failed
// should test the returned error with errors.Is against these.
var (
	// ErrUserRejected is returned by a Stage-1 user-interaction helper when
	// the host answers with a negative reply.
	ErrUserRejected = errors.New("ssp: user rejected pairing")

	// ErrCommitmentMismatch is returned when a received SimplePairingConfirm
	// disagrees with the locally expected commitment value. The original
	// source this core is based on treats this as unreachable; this
	// implementation routes it through the ordinary AuthenticationFailure
	// path instead (see SPEC_FULL.md).
	ErrCommitmentMismatch = errors.New("ssp: commitment value mismatch")

	// ErrPeerAborted is returned when the responder receives
	// NumericComparaisonFailed at the Stage-2 gate.
	ErrPeerAborted = errors.New("ssp: peer aborted numeric comparison")

	// ErrStage2Rejected is returned when the peer answers the initiator's
	// DhkeyCheck with NotAccepted. The responder returns it too, after
	// sending that NotAccepted itself because its Stage 1 failed locally.
	ErrStage2Rejected = errors.New("ssp: peer rejected dhkey check")

	// ErrAuthenticationFailed is returned when the challenge/response
	// collaborator reports failure.
	ErrAuthenticationFailed = errors.New("ssp: challenge/response authentication failed")
)
