// Package btaddr provides the BD_ADDR value type shared by the HCI and LMP
// packages.
package btaddr

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// Size is the length in bytes of a Bluetooth device address.
const Size = 6

// ErrInvalidLength is returned by Parse when the input is not 6 bytes.
var ErrInvalidLength = errors.New("btaddr: address must be 6 bytes")

// Addr is a 48-bit Bluetooth device address (BD_ADDR).
type Addr [Size]byte

// Zero is the all-zero BD_ADDR, used as a placeholder in tests and scenarios
// that do not care about a specific peer identity.
var Zero Addr

// Parse builds an Addr from a 6-byte slice.
func Parse(b []byte) (Addr, error) {
	var a Addr
	if len(b) != Size {
		return a, fmt.Errorf("%w: got %d", ErrInvalidLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// Random returns a locally-administered unicast BD_ADDR, suitable for tests
// and scenario fixtures that need a stable-looking but arbitrary address.
func Random() Addr {
	var a Addr
	_, _ = rand.Read(a[:])
	a[0] = (a[0] | 0x02) & 0xFE // locally administered, unicast
	return a
}

// String renders the address in the conventional colon-hex form, most
// significant byte first.
func (a Addr) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[0], a[1], a[2], a[3], a[4], a[5])
}
