// Package cabac implements a context-adaptive binary arithmetic coder: it
// losslessly compresses and decompresses a finite sequence of bits using a
// conditional probability model P(bit_i = 1 | context_i) supplied by the
// caller.
//
// Given any deterministic model and a bit sequence, Encode produces a
// compressed bitstream; Decode, given the same model and the original
// length, recovers the original bit sequence exactly. The model itself — a
// pure function from a context of recent bits to a probability — is a
// parameter, not something this package defines; see Model.
//
// Basic usage, encoding a sequence under a constant-probability model:
//
//	model := cabac.ModelFunc(func(ctx cabac.Bits) float64 { return 0.2 })
//	encoded, err := cabac.Encode(bits, model, 32, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	decoded, err := cabac.Decode(encoded, model, len(bits), 32, 10)
//
// The core is single-threaded and synchronous: a session is a pure data
// transformation with no suspension points and no cancellation model. Two
// sessions are independent and may run concurrently on disjoint data.
package cabac

// Bits is a bit sequence, one element (0 or 1) per bit. It is the value type
// exchanged with callers at the bit-level API boundary; see EncodeBytes and
// DecodeBytes for the byte-oriented convenience wrappers.
type Bits []byte

// String renders a Bits value as a string of '0'/'1' characters, for
// debugging and test failure messages.
func (b Bits) String() string {
	s := make([]byte, len(b))
	for i, bit := range b {
		if bit != 0 {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}

// ParseBits builds a Bits value from a string of '0'/'1' characters, for
// convenient test fixtures and small constant inputs. Any other character
// is treated as a 1 bit.
func ParseBits(s string) Bits {
	b := make(Bits, len(s))
	for i, c := range s {
		if c == '0' {
			b[i] = 0
		} else {
			b[i] = 1
		}
	}
	return b
}

func toEngine(b Bits) []byte   { return []byte(b) }
func fromEngine(b []byte) Bits { return Bits(b) }
