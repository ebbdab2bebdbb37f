package ssp

import "github.com/backkem/sspsim/internal/hci"

// AuthenticationParams mirrors the three HCI fields the host supplies in its
// IO Capability Reply. It is constructed once per side during capability
// exchange and never mutated afterward.
type AuthenticationParams struct {
	IoCapability               hci.IoCapability
	OobDataPresent             hci.OobDataPresent
	AuthenticationRequirements hci.AuthenticationRequirements
}

// AuthenticationMethod is the Stage-1 sub-protocol selected for a pairing.
type AuthenticationMethod int

const (
	OutOfBand AuthenticationMethod = iota
	NumericComparisonJustWork
	NumericComparisonUserConfirm
	PasskeyEntry
)

func (m AuthenticationMethod) String() string {
	switch m {
	case OutOfBand:
		return "OutOfBand"
	case NumericComparisonJustWork:
		return "NumericComparisonJustWork"
	case NumericComparisonUserConfirm:
		return "NumericComparisonUserConfirm"
	case PasskeyEntry:
		return "PasskeyEntry"
	default:
		return "AuthenticationMethod(unknown)"
	}
}

// SelectAuthenticationMethod computes the authentication method from both
// sides' capability parameters. It is a pure, total function: the initiator
// and responder's view of the same pair always yield the same result
// (Bluetooth Core, Vol 2, Part C, 4.2.7.3).
func SelectAuthenticationMethod(initiator, responder AuthenticationParams) AuthenticationMethod {
	if initiator.OobDataPresent != hci.NotPresent || responder.OobDataPresent != hci.NotPresent {
		return OutOfBand
	}
	if !initiator.AuthenticationRequirements.HasMITM() && !responder.AuthenticationRequirements.HasMITM() {
		return NumericComparisonJustWork
	}
	if (initiator.IoCapability == hci.KeyboardOnly && responder.IoCapability != hci.NoInputNoOutput) ||
		(responder.IoCapability == hci.KeyboardOnly && initiator.IoCapability != hci.NoInputNoOutput) {
		return PasskeyEntry
	}
	if initiator.IoCapability == hci.DisplayYesNo && responder.IoCapability == hci.DisplayYesNo {
		return NumericComparisonUserConfirm
	}
	return NumericComparisonJustWork
}

// LinkKeyType classifies the negotiated link key from the authentication
// method used and the peer's public key variant (Bluetooth Core, Vol 3,
// Part C, 5.2.2.6).
func LinkKeyType(method AuthenticationMethod, peerKey PublicKey) hci.KeyType {
	switch method {
	case OutOfBand, PasskeyEntry, NumericComparisonUserConfirm:
		if peerKey.IsP256() {
			return hci.AuthenticatedP256
		}
		return hci.AuthenticatedP192
	default: // NumericComparisonJustWork
		if peerKey.IsP256() {
			return hci.UnauthenticatedP256
		}
		return hci.UnauthenticatedP192
	}
}
