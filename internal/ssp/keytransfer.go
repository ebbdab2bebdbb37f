package ssp

import "github.com/backkem/sspsim/internal/lmp"

// sendPublicKey emits one EncapsulatedHeader naming key's size, then one
// EncapsulatedPayload per 16-byte chunk, awaiting Accepted after each.
func sendPublicKey(ctx Context, tid uint8, key PublicKey) error {
	if err := ctx.SendAcceptedLMPPacket(lmp.EncapsulatedHeaderPacket{
		TransactionID: tid,
		MajorType:     1,
		MinorType:     1,
		PayloadLength: uint8(key.Size()),
	}); err != nil {
		return err
	}

	payload := key.AsSlice()
	for offset := 0; offset < len(payload); offset += EncapsulatedChunkSize {
		var chunk [EncapsulatedChunkSize]byte
		copy(chunk[:], payload[offset:offset+EncapsulatedChunkSize])
		if err := ctx.SendAcceptedLMPPacket(lmp.EncapsulatedPayloadPacket{
			TransactionID: tid,
			Data:          chunk,
		}); err != nil {
			return err
		}
	}
	return nil
}

// receivePublicKey receives a header naming the peer's key size, allocates a
// matching PublicKey, then fills it in from the following
// EncapsulatedPayload chunks, acknowledging each with Accepted.
func receivePublicKey(ctx Context, tid uint8) (PublicKey, error) {
	header := ctx.ReceiveEncapsulatedHeader()
	key, err := GeneratePublicKey(int(header.PayloadLength))
	if err != nil {
		return PublicKey{}, err
	}

	ctx.SendLMPPacket(lmp.AcceptedPacket{TransactionID: tid, AcceptedOpcode: lmp.EncapsulatedHeader})

	buf := key.AsMutSlice()
	for offset := 0; offset < len(buf); offset += EncapsulatedChunkSize {
		payload := ctx.ReceiveEncapsulatedPayload()
		copy(buf[offset:offset+EncapsulatedChunkSize], payload.Data[:])
		ctx.SendLMPPacket(lmp.AcceptedPacket{TransactionID: tid, AcceptedOpcode: lmp.EncapsulatedPayload})
	}

	return key, nil
}
