package hci

import "github.com/backkem/sspsim/internal/btaddr"

// Event is the common interface satisfied by every HCI event value the
// pairing coordinator sends to the host. It carries no behavior; it exists
// so pairctx.Context.SendHCIEvent has a single parameter type to accept.
type Event interface {
	hciEvent()
}

// Command is the common interface satisfied by every HCI command value the
// host sends to the pairing coordinator.
type Command interface {
	hciCommand()
}

// IoCapabilityRequest asks the host for its local IO capability.
type IoCapabilityRequest struct{ BdAddr btaddr.Addr }

// IoCapabilityRequestReply is the host's answer to IoCapabilityRequest.
type IoCapabilityRequestReply struct {
	BdAddr                     btaddr.Addr
	IoCapability               IoCapability
	OobPresent                 OobDataPresent
	AuthenticationRequirements AuthenticationRequirements
}

// IoCapabilityRequestReplyComplete acknowledges IoCapabilityRequestReply.
type IoCapabilityRequestReplyComplete struct {
	Status ErrorCode
	BdAddr btaddr.Addr
}

// IoCapabilityResponse reports the peer's IO capability to the host.
type IoCapabilityResponse struct {
	BdAddr                     btaddr.Addr
	IoCapability               IoCapability
	OobDataPresent             OobDataPresent
	AuthenticationRequirements AuthenticationRequirements
}

// UserConfirmationRequest asks the host to confirm or reject a numeric
// comparison value (always 0 in this core; the real value is out of scope).
type UserConfirmationRequest struct {
	BdAddr       btaddr.Addr
	NumericValue uint32
}

// UserConfirmationRequestReply is a positive answer to UserConfirmationRequest.
type UserConfirmationRequestReply struct{ BdAddr btaddr.Addr }

// UserConfirmationRequestNegativeReply is a negative answer to
// UserConfirmationRequest.
type UserConfirmationRequestNegativeReply struct{ BdAddr btaddr.Addr }

// UserConfirmationRequestReplyComplete acknowledges a positive reply.
type UserConfirmationRequestReplyComplete struct {
	Status ErrorCode
	BdAddr btaddr.Addr
}

// UserConfirmationRequestNegativeReplyComplete acknowledges a negative reply.
type UserConfirmationRequestNegativeReplyComplete struct {
	Status ErrorCode
	BdAddr btaddr.Addr
}

// UserPasskeyRequest asks a KeyboardOnly host to collect a passkey from its
// user.
type UserPasskeyRequest struct{ BdAddr btaddr.Addr }

// UserPasskeyRequestReply answers UserPasskeyRequest with a (stubbed) passkey.
type UserPasskeyRequestReply struct {
	BdAddr  btaddr.Addr
	Passkey uint32
}

// UserPasskeyRequestNegativeReply rejects UserPasskeyRequest.
type UserPasskeyRequestNegativeReply struct{ BdAddr btaddr.Addr }

// UserPasskeyRequestReplyComplete acknowledges UserPasskeyRequestReply.
type UserPasskeyRequestReplyComplete struct {
	Status ErrorCode
	BdAddr btaddr.Addr
}

// UserPasskeyRequestNegativeReplyComplete acknowledges the negative reply.
type UserPasskeyRequestNegativeReplyComplete struct {
	Status ErrorCode
	BdAddr btaddr.Addr
}

// SendKeypressNotification reports a passkey keystroke from the host while
// the host is collecting a passkey (the peer-facing LMP keypress
// notification is deliberately not forwarded).
type SendKeypressNotification struct{ BdAddr btaddr.Addr }

// SendKeypressNotificationComplete acknowledges SendKeypressNotification.
type SendKeypressNotificationComplete struct {
	Status ErrorCode
	BdAddr btaddr.Addr
}

// UserPasskeyNotification tells a non-KeyboardOnly host the passkey it
// should display (always 0 in this core).
type UserPasskeyNotification struct {
	BdAddr  btaddr.Addr
	Passkey uint32
}

// RemoteOobDataRequest asks the host to supply OOB data received out of band
// from the peer.
type RemoteOobDataRequest struct{ BdAddr btaddr.Addr }

// RemoteOobDataRequestReply is a positive answer to RemoteOobDataRequest.
type RemoteOobDataRequestReply struct{ BdAddr btaddr.Addr }

// RemoteOobDataRequestNegativeReply is a negative answer.
type RemoteOobDataRequestNegativeReply struct{ BdAddr btaddr.Addr }

// RemoteOobDataRequestReplyComplete acknowledges the positive reply.
type RemoteOobDataRequestReplyComplete struct {
	Status ErrorCode
	BdAddr btaddr.Addr
}

// RemoteOobDataRequestNegativeReplyComplete acknowledges the negative reply.
type RemoteOobDataRequestNegativeReplyComplete struct {
	Status ErrorCode
	BdAddr btaddr.Addr
}

// SimplePairingComplete reports the Stage-1/Stage-2 outcome to the host.
type SimplePairingComplete struct {
	Status ErrorCode
	BdAddr btaddr.Addr
}

// LinkKeyNotification delivers the negotiated link key and its type.
type LinkKeyNotification struct {
	BdAddr  btaddr.Addr
	KeyType KeyType
	LinkKey [16]byte
}

func (IoCapabilityRequest) hciEvent()                               {}
func (IoCapabilityResponse) hciEvent()                               {}
func (IoCapabilityRequestReplyComplete) hciEvent()                    {}
func (UserConfirmationRequest) hciEvent()                             {}
func (UserConfirmationRequestReplyComplete) hciEvent()                {}
func (UserConfirmationRequestNegativeReplyComplete) hciEvent()        {}
func (UserPasskeyRequest) hciEvent()                                  {}
func (UserPasskeyRequestReplyComplete) hciEvent()                     {}
func (UserPasskeyRequestNegativeReplyComplete) hciEvent()             {}
func (SendKeypressNotificationComplete) hciEvent()                    {}
func (UserPasskeyNotification) hciEvent()                             {}
func (RemoteOobDataRequest) hciEvent()                                {}
func (RemoteOobDataRequestReplyComplete) hciEvent()                   {}
func (RemoteOobDataRequestNegativeReplyComplete) hciEvent()           {}
func (SimplePairingComplete) hciEvent()                               {}
func (LinkKeyNotification) hciEvent()                                 {}

func (IoCapabilityRequestReply) hciCommand()              {}
func (UserConfirmationRequestReply) hciCommand()          {}
func (UserConfirmationRequestNegativeReply) hciCommand()  {}
func (UserPasskeyRequestReply) hciCommand()               {}
func (UserPasskeyRequestNegativeReply) hciCommand()       {}
func (SendKeypressNotification) hciCommand()              {}
func (RemoteOobDataRequestReply) hciCommand()             {}
func (RemoteOobDataRequestNegativeReply) hciCommand()     {}
