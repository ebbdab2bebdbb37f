package ssp

import "testing"

func TestGeneratePublicKey_Sizes(t *testing.T) {
	p192, err := GeneratePublicKey(P192PublicKeySize)
	if err != nil {
		t.Fatalf("P192: %v", err)
	}
	if p192.Size() != P192PublicKeySize || p192.IsP256() {
		t.Errorf("p192 = %+v", p192)
	}

	p256, err := GeneratePublicKey(P256PublicKeySize)
	if err != nil {
		t.Fatalf("P256: %v", err)
	}
	if p256.Size() != P256PublicKeySize || !p256.IsP256() {
		t.Errorf("p256 = %+v", p256)
	}
}

func TestGeneratePublicKey_InvalidSize(t *testing.T) {
	if _, err := GeneratePublicKey(32); err == nil {
		t.Fatal("expected an error for an unrecognized key size")
	}
}
