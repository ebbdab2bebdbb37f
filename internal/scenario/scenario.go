// Package scenario provides canned host scripts for the Secure Simple
// Pairing conformance scenarios a harness drives: fixed IO-capability
// profiles that answer every HCI request a pairing run can issue, either
// always accepting or always rejecting the user-facing prompts.
package scenario

import (
	"github.com/backkem/sspsim/internal/harness"
	"github.com/backkem/sspsim/internal/hci"
)

// Params names the fixed capability profile a scripted host presents.
type Params struct {
	IoCapability               hci.IoCapability
	OobDataPresent             hci.OobDataPresent
	AuthenticationRequirements hci.AuthenticationRequirements
}

// DisplayYesNoMITM is the profile used by both sides of the Numeric
// Comparison User Confirm conformance scenarios (BV-06-C through BV-11-C in
// the original Bluetooth SIG numbering this core's procedure file enumerates
// in its test names).
func DisplayYesNoMITM() Params {
	return Params{
		IoCapability:               hci.DisplayYesNo,
		OobDataPresent:             hci.NotPresent,
		AuthenticationRequirements: hci.DedicatedBondingMitmProtection,
	}
}

// NoInputNoOutputNoMITM is the profile that selects Numeric Comparison Just
// Works against a like-configured peer.
func NoInputNoOutputNoMITM() Params {
	return Params{
		IoCapability:               hci.NoInputNoOutput,
		OobDataPresent:             hci.NotPresent,
		AuthenticationRequirements: hci.NoBonding,
	}
}

// KeyboardOnlyMITM is the profile used by the keyboard-holding side of a
// Passkey Entry scenario.
func KeyboardOnlyMITM() Params {
	return Params{
		IoCapability:               hci.KeyboardOnly,
		OobDataPresent:             hci.NotPresent,
		AuthenticationRequirements: hci.DedicatedBondingMitmProtection,
	}
}

// DisplayOnlyMITM is the profile used by the display-only side of a Passkey
// Entry scenario (it receives a UserPasskeyNotification instead of a
// request).
func DisplayOnlyMITM() Params {
	return Params{
		IoCapability:               hci.DisplayOnly,
		OobDataPresent:             hci.NotPresent,
		AuthenticationRequirements: hci.DedicatedBondingMitmProtection,
	}
}

// OutOfBandMITM is the profile used by both sides of the Out of Band
// scenarios: OOB data being present on either side overrides IO capability
// entirely when selecting the authentication method, so the IO capability
// here is arbitrary.
func OutOfBandMITM() Params {
	return Params{
		IoCapability:               hci.NoInputNoOutput,
		OobDataPresent:             hci.P192Present,
		AuthenticationRequirements: hci.DedicatedBondingMitmProtection,
	}
}

// AcceptAll returns a host script that answers every user-facing prompt
// positively: it is the host behind a successful pairing run.
func AcceptAll(p Params) harness.HostScript {
	return script(p, true)
}

// RejectUserPrompts returns a host script identical to AcceptAll except
// that it answers UserConfirmationRequest, UserPasskeyRequest, and
// RemoteOobDataRequest negatively, modeling a user declining to pair.
func RejectUserPrompts(p Params) harness.HostScript {
	return script(p, false)
}

func script(p Params, accept bool) harness.HostScript {
	return func(in <-chan hci.Event, out chan<- hci.Command) {
		for event := range in {
			switch e := event.(type) {
			case hci.IoCapabilityRequest:
				out <- hci.IoCapabilityRequestReply{
					BdAddr:                     e.BdAddr,
					IoCapability:               p.IoCapability,
					OobPresent:                 p.OobDataPresent,
					AuthenticationRequirements: p.AuthenticationRequirements,
				}

			case hci.UserConfirmationRequest:
				if accept {
					out <- hci.UserConfirmationRequestReply{BdAddr: e.BdAddr}
				} else {
					out <- hci.UserConfirmationRequestNegativeReply{BdAddr: e.BdAddr}
				}

			case hci.UserPasskeyRequest:
				if accept {
					out <- hci.UserPasskeyRequestReply{BdAddr: e.BdAddr, Passkey: 0}
				} else {
					out <- hci.UserPasskeyRequestNegativeReply{BdAddr: e.BdAddr}
				}

			case hci.RemoteOobDataRequest:
				if accept {
					out <- hci.RemoteOobDataRequestReply{BdAddr: e.BdAddr}
				} else {
					out <- hci.RemoteOobDataRequestNegativeReply{BdAddr: e.BdAddr}
				}

			case hci.UserPasskeyNotification, hci.IoCapabilityResponse,
				hci.IoCapabilityRequestReplyComplete,
				hci.UserConfirmationRequestReplyComplete, hci.UserConfirmationRequestNegativeReplyComplete,
				hci.UserPasskeyRequestReplyComplete, hci.UserPasskeyRequestNegativeReplyComplete,
				hci.RemoteOobDataRequestReplyComplete, hci.RemoteOobDataRequestNegativeReplyComplete,
				hci.SendKeypressNotificationComplete:
				// Informational; no reply expected.

			case hci.SimplePairingComplete:
				if e.Status == hci.AuthenticationFailure {
					return
				}

			case hci.LinkKeyNotification:
				return
			}
		}
	}
}
