package ssp

import "fmt"

// Sizes of the two public key curves this core transfers. Both exceed the
// Encapsulated chunk size evenly, so key transfer never needs a short final
// chunk (spec invariant).
const (
	P192PublicKeySize = 48
	P256PublicKeySize = 64
)

// EncapsulatedChunkSize is the fixed LMP EncapsulatedPayload chunk size.
const EncapsulatedChunkSize = 16

// PublicKey is a zero-stubbed P-192 or P-256 public key. Real key material
// is out of scope for this core (see DESIGN.md); only the size and variant
// that flow through the wire frames matter here.
type PublicKey struct {
	p256  bool
	bytes []byte
}

// GeneratePublicKey returns a zero-filled key of the variant selected by
// size. Sizes other than P192PublicKeySize and P256PublicKeySize fail.
func GeneratePublicKey(size int) (PublicKey, error) {
	switch size {
	case P192PublicKeySize:
		return PublicKey{p256: false, bytes: make([]byte, P192PublicKeySize)}, nil
	case P256PublicKeySize:
		return PublicKey{p256: true, bytes: make([]byte, P256PublicKeySize)}, nil
	default:
		return PublicKey{}, fmt.Errorf("ssp: invalid public key size %d", size)
	}
}

// Size returns the key's declared byte length (48 or 64).
func (k PublicKey) Size() int { return len(k.bytes) }

// IsP256 reports whether this key is the P-256 variant.
func (k PublicKey) IsP256() bool { return k.p256 }

// AsSlice exposes the key bytes for reading.
func (k PublicKey) AsSlice() []byte { return k.bytes }

// AsMutSlice exposes the key bytes for writing, used by receivePublicKey
// to fill in chunks as they arrive.
func (k PublicKey) AsMutSlice() []byte { return k.bytes }
