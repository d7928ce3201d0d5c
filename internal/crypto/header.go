package crypto

import "encoding/binary"

// EdekType enumerates who encrypted the data encryption key that this
// header's ciphertext is wrapped under.
type EdekType uint8

const (
	EdekStandalone          EdekType = 0
	EdekSaasShield          EdekType = 1
	EdekDataControlPlatform EdekType = 2
)

func (e EdekType) valid() bool {
	return e <= EdekDataControlPlatform
}

// PayloadType enumerates what kind of ciphertext a header is framing.
type PayloadType uint8

const (
	PayloadDeterministicField PayloadType = 0
	PayloadVectorMetadata     PayloadType = 1
	PayloadStandardEdek       PayloadType = 2
)

func (p PayloadType) valid() bool {
	return p <= PayloadStandardEdek
}

// Header is the 6-byte key-id/type header framing every DCPE ciphertext
// (§3, §4.K): BE_u32(keyID) || (edekIdx<<4)|payloadIdx || 0x00.
type Header struct {
	KeyID       uint32
	EdekType    EdekType
	PayloadType PayloadType
}

// WriteHeader encodes h to exactly HeaderSize bytes.
func WriteHeader(h Header) ([]byte, error) {
	if !h.EdekType.valid() {
		return nil, fErrorf(KindInvalidInput, "unknown edek type %d", h.EdekType)
	}
	if !h.PayloadType.valid() {
		return nil, fErrorf(KindInvalidInput, "unknown payload type %d", h.PayloadType)
	}

	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(buf[0:4], h.KeyID)
	buf[4] = byte(h.EdekType)<<4 | byte(h.PayloadType)
	buf[5] = 0x00
	return buf, nil
}

// ParseHeader decodes exactly HeaderSize bytes into a Header, rejecting a
// non-zero reserved byte and out-of-range enum indices (§7).
func ParseHeader(b []byte) (Header, error) {
	if len(b) != HeaderSize {
		return Header{}, fErrorf(KindInvalidInput, "header must be exactly %d bytes, got %d", HeaderSize, len(b))
	}
	if b[5] != 0x00 {
		return Header{}, newError(KindInvalidInput, "header reserved byte must be zero")
	}

	edek := EdekType(b[4] >> 4)
	payload := PayloadType(b[4] & 0x0f)
	if !edek.valid() {
		return Header{}, fErrorf(KindInvalidInput, "unknown edek type %d", edek)
	}
	if !payload.valid() {
		return Header{}, fErrorf(KindInvalidInput, "unknown payload type %d", payload)
	}

	return Header{
		KeyID:       binary.BigEndian.Uint32(b[0:4]),
		EdekType:    edek,
		PayloadType: payload,
	}, nil
}

// EncodeVectorMetadata concatenates a header, IV, and auth hash into the
// 50-byte on-wire VectorMetadata blob (§3, §6).
func EncodeVectorMetadata(h Header, iv [AESNonceSize]byte, ah AuthHash) ([]byte, error) {
	headerBytes, err := WriteHeader(h)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, VectorMetadataSize)
	out = append(out, headerBytes...)
	out = append(out, iv[:]...)
	out = append(out, ah[:]...)
	return out, nil
}

// DecodeVersionPrefixed splits a byte slice into its leading 6-byte header
// and the remaining bytes, per §4.K.
func DecodeVersionPrefixed(b []byte) (Header, []byte, error) {
	if len(b) < HeaderSize {
		return Header{}, nil, fErrorf(KindInvalidInput, "buffer must be at least %d bytes, got %d", HeaderSize, len(b))
	}
	h, err := ParseHeader(b[:HeaderSize])
	if err != nil {
		return Header{}, nil, err
	}
	return h, b[HeaderSize:], nil
}

// DecodeVectorMetadata is the inverse of EncodeVectorMetadata.
func DecodeVectorMetadata(b []byte) (Header, [AESNonceSize]byte, AuthHash, error) {
	if len(b) != VectorMetadataSize {
		return Header{}, [AESNonceSize]byte{}, AuthHash{}, fErrorf(KindInvalidInput,
			"vector metadata must be exactly %d bytes, got %d", VectorMetadataSize, len(b))
	}
	h, rest, err := DecodeVersionPrefixed(b)
	if err != nil {
		return Header{}, [AESNonceSize]byte{}, AuthHash{}, err
	}

	var iv [AESNonceSize]byte
	copy(iv[:], rest[:AESNonceSize])
	var ah AuthHash
	copy(ah[:], rest[AESNonceSize:])

	return h, iv, ah, nil
}
