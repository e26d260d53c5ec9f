package cabac

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// EncodeBytes is the byte-aligned convenience variant of Encode for callers
// whose data lives in a byte buffer rather than a Bits value. bitLength is
// the number of bits of data to encode, MSB-first, starting from data[0];
// it must be no greater than len(data)*8. The returned buffer is packed to
// a whole number of bytes, zero-padded at the end.
func EncodeBytes(data []byte, bitLength int, model Model, precision, contextWindow int) ([]byte, error) {
	if bitLength < 0 || bitLength > len(data)*8 {
		return nil, errors.Wrapf(ErrLengthMismatch, "bitLength %d exceeds %d bytes of data", bitLength, len(data))
	}

	input, err := unpackBits(data, bitLength)
	if err != nil {
		return nil, err
	}

	encoded, err := Encode(input, model, precision, contextWindow)
	if err != nil {
		return nil, err
	}

	return packBits(encoded)
}

// DecodeBytes is the byte-aligned convenience variant of Decode. encoded is
// a byte buffer produced by EncodeBytes (or any packing of the same bit
// sequence, since trailing pad bits beyond precision don't affect
// decoding). bitLength must equal the value passed to EncodeBytes. The
// returned buffer is packed to ceil(bitLength/8) bytes.
func DecodeBytes(encoded []byte, bitLength int, model Model, precision, contextWindow int) ([]byte, error) {
	allBits, err := unpackBits(encoded, len(encoded)*8)
	if err != nil {
		return nil, err
	}

	decoded, err := Decode(allBits, model, bitLength, precision, contextWindow)
	if err != nil {
		return nil, err
	}

	return packBits(decoded)
}

// unpackBits reads the first n bits of data, MSB-first within each byte,
// into a Bits value.
func unpackBits(data []byte, n int) (Bits, error) {
	r := bitio.NewReader(bytes.NewReader(data))
	out := make(Bits, n)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, errors.Wrapf(err, "unpacking bit %d", i)
		}
		if bit {
			out[i] = 1
		}
	}
	return out, nil
}

// packBits writes bits MSB-first into a byte buffer, zero-padding the final
// byte if bits is not a multiple of 8 long.
func packBits(bits Bits) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, bit := range bits {
		if err := w.WriteBool(bit != 0); err != nil {
			return nil, errors.Wrap(err, "packing bits")
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "flushing packed bits")
	}
	return buf.Bytes(), nil
}
