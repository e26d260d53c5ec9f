package cabac

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeBytesRoundTrip(t *testing.T) {
	model := ModelFunc(func(ctx Bits) float64 { return 0.35 })
	data := []byte("the quick brown fox jumps over the lazy dog")

	encoded, err := EncodeBytes(data, len(data)*8, model, 24, 8)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}

	decoded, err := DecodeBytes(encoded, len(data)*8, model, 24, 8)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}

	if !bytes.Equal(data, decoded) {
		t.Fatalf("got %q, want %q", decoded, data)
	}
}

func TestEncodeBytesPartialBitLength(t *testing.T) {
	model := ModelFunc(func(ctx Bits) float64 { return 0.5 })
	data := []byte{0xAC} // 10101100

	encoded, err := EncodeBytes(data, 5, model, 16, 4)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}

	decoded, err := DecodeBytes(encoded, 5, model, 16, 4)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}

	// Only the top 5 bits (10101) were encoded; packBits zero-pads the rest,
	// giving 0xA8 (10101000).
	if len(decoded) != 1 || decoded[0] != 0xA8 {
		t.Fatalf("got %08b, want %08b", decoded[0], byte(0xA8))
	}
}

func TestEncodeBytesLengthExceedsData(t *testing.T) {
	model := ModelFunc(func(ctx Bits) float64 { return 0.5 })
	_, err := EncodeBytes([]byte{0x00}, 100, model, 16, 4)
	if err == nil {
		t.Fatal("expected error when bitLength exceeds available data")
	}
}

func TestUnpackPackBitsRoundTrip(t *testing.T) {
	data := []byte{0xF0, 0x0F, 0xAA}
	bits, err := unpackBits(data, len(data)*8)
	if err != nil {
		t.Fatalf("unpackBits: %v", err)
	}
	packed, err := packBits(bits)
	if err != nil {
		t.Fatalf("packBits: %v", err)
	}
	if !bytes.Equal(data, packed) {
		t.Fatalf("got %v, want %v", packed, data)
	}
}
