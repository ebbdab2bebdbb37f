package ssp

import (
	"testing"

	"github.com/backkem/sspsim/internal/lmp"
)

func chunkedKeyFrames(key PublicKey) []lmp.Packet {
	payload := key.AsSlice()
	frames := []lmp.Packet{
		lmp.EncapsulatedHeaderPacket{TransactionID: 0, MajorType: 1, MinorType: 1, PayloadLength: uint8(key.Size())},
	}
	for offset := 0; offset < len(payload); offset += EncapsulatedChunkSize {
		var chunk [EncapsulatedChunkSize]byte
		copy(chunk[:], payload[offset:offset+EncapsulatedChunkSize])
		frames = append(frames, lmp.EncapsulatedPayloadPacket{TransactionID: 0, Data: chunk})
	}
	return frames
}

func TestSendPublicKey_P192_ChunkCount(t *testing.T) {
	key, _ := GeneratePublicKey(P192PublicKeySize)
	f := &fakeContext{}

	if err := sendPublicKey(f, 0, key); err != nil {
		t.Fatalf("sendPublicKey: %v", err)
	}

	if got := countOp(f.sentAccepted, lmp.EncapsulatedHeader); got != 1 {
		t.Errorf("header count = %d, want 1", got)
	}
	if got := countOp(f.sentAccepted, lmp.EncapsulatedPayload); got != 3 {
		t.Errorf("P192 payload chunk count = %d, want 3", got)
	}
}

func TestSendPublicKey_P256_ChunkCount(t *testing.T) {
	key, _ := GeneratePublicKey(P256PublicKeySize)
	f := &fakeContext{}

	if err := sendPublicKey(f, 0, key); err != nil {
		t.Fatalf("sendPublicKey: %v", err)
	}

	if got := countOp(f.sentAccepted, lmp.EncapsulatedPayload); got != 4 {
		t.Errorf("P256 payload chunk count = %d, want 4", got)
	}
}

func TestReceivePublicKey_P192_RoundTrip(t *testing.T) {
	source, _ := GeneratePublicKey(P192PublicKeySize)
	copy(source.AsMutSlice(), []byte{1, 2, 3, 4})

	f := &fakeContext{}
	f.inboundLMP = chunkedKeyFrames(source)

	got, err := receivePublicKey(f, 0)
	if err != nil {
		t.Fatalf("receivePublicKey: %v", err)
	}
	if got.Size() != P192PublicKeySize || got.IsP256() {
		t.Fatalf("got = %+v", got)
	}
	if got.AsSlice()[0] != 1 || got.AsSlice()[3] != 4 {
		t.Errorf("payload not copied through correctly: %v", got.AsSlice()[:4])
	}

	wantAcks := 1 + P192PublicKeySize/EncapsulatedChunkSize
	if got2 := countOp(f.sentLMP, lmp.Accepted); got2 != wantAcks {
		t.Errorf("acknowledgement count = %d, want %d", got2, wantAcks)
	}
}
