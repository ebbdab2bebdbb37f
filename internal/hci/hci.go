// Package hci holds the typed HCI command and event values the pairing
// coordinator exchanges with its host. It is a value-type stand-in for the
// real Host Controller Interface wire codec, which is out of scope for this
// core (the byte-level frame format is defined by an external codec per the
// specification this package implements).
package hci

import "fmt"

// IoCapability is the host's declared input/output capability, supplied in
// an IoCapabilityRequestReply.
type IoCapability int

const (
	DisplayOnly IoCapability = iota
	DisplayYesNo
	KeyboardOnly
	NoInputNoOutput
)

func (c IoCapability) String() string {
	switch c {
	case DisplayOnly:
		return "DisplayOnly"
	case DisplayYesNo:
		return "DisplayYesNo"
	case KeyboardOnly:
		return "KeyboardOnly"
	case NoInputNoOutput:
		return "NoInputNoOutput"
	default:
		return fmt.Sprintf("IoCapability(%d)", int(c))
	}
}

// OobDataPresent indicates whether out-of-band authentication data is
// available, and for which public key curve.
type OobDataPresent int

const (
	NotPresent OobDataPresent = iota
	P192Present
	P256Present
	P192AndP256Present
)

func (o OobDataPresent) String() string {
	switch o {
	case NotPresent:
		return "NotPresent"
	case P192Present:
		return "P192Present"
	case P256Present:
		return "P256Present"
	case P192AndP256Present:
		return "P192AndP256Present"
	default:
		return fmt.Sprintf("OobDataPresent(%d)", int(o))
	}
}

// AuthenticationRequirements is one of six bonding/MITM combinations the
// host may request.
type AuthenticationRequirements int

const (
	NoBonding AuthenticationRequirements = iota
	NoBondingMitmProtection
	DedicatedBonding
	DedicatedBondingMitmProtection
	GeneralBonding
	GeneralBondingMitmProtection
)

func (r AuthenticationRequirements) String() string {
	switch r {
	case NoBonding:
		return "NoBonding"
	case NoBondingMitmProtection:
		return "NoBondingMitmProtection"
	case DedicatedBonding:
		return "DedicatedBonding"
	case DedicatedBondingMitmProtection:
		return "DedicatedBondingMitmProtection"
	case GeneralBonding:
		return "GeneralBonding"
	case GeneralBondingMitmProtection:
		return "GeneralBondingMitmProtection"
	default:
		return fmt.Sprintf("AuthenticationRequirements(%d)", int(r))
	}
}

// HasMITM reports whether the requirements variant carries the
// MITM-protection flag.
func (r AuthenticationRequirements) HasMITM() bool {
	switch r {
	case NoBondingMitmProtection, DedicatedBondingMitmProtection, GeneralBondingMitmProtection:
		return true
	default:
		return false
	}
}

// KeyType is the link key classification reported to the host in a
// LinkKeyNotification.
type KeyType int

const (
	UnauthenticatedP192 KeyType = iota
	UnauthenticatedP256
	AuthenticatedP192
	AuthenticatedP256
)

func (k KeyType) String() string {
	switch k {
	case UnauthenticatedP192:
		return "UnauthenticatedP192"
	case UnauthenticatedP256:
		return "UnauthenticatedP256"
	case AuthenticatedP192:
		return "AuthenticatedP192"
	case AuthenticatedP256:
		return "AuthenticatedP256"
	default:
		return fmt.Sprintf("KeyType(%d)", int(k))
	}
}

// ErrorCode is the HCI status carried by completion and complete events.
// Only the two values the pairing coordinator ever emits are modeled.
type ErrorCode int

const (
	Success ErrorCode = iota
	AuthenticationFailure
)

func (e ErrorCode) String() string {
	switch e {
	case Success:
		return "Success"
	case AuthenticationFailure:
		return "AuthenticationFailure"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(e))
	}
}

// LMPFeaturesPage1Bit names a bit position on LMP features page 1.
type LMPFeaturesPage1Bit int

// SecureConnectionsHostSupport is the only page-1 bit this core consults.
const SecureConnectionsHostSupport LMPFeaturesPage1Bit = 3
