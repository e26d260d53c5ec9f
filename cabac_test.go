package cabac

import "testing"

func TestBitsString(t *testing.T) {
	b := Bits{1, 0, 1, 1, 0}
	if got, want := b.String(), "10110"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseBits(t *testing.T) {
	got := ParseBits("10110")
	want := Bits{1, 0, 1, 1, 0}
	if len(got) != len(want) {
		t.Fatalf("ParseBits length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bit %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseBitsStringRoundTrip(t *testing.T) {
	const s = "0011010101"
	if got := ParseBits(s).String(); got != s {
		t.Errorf("ParseBits(%q).String() = %q", s, got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	model := ModelFunc(func(ctx Bits) float64 { return 0.3 })
	input := ParseBits("0110100111010010110")

	encoded, err := Encode(input, model, 24, 6)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(encoded, model, len(input), 24, 6)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if decoded.String() != input.String() {
		t.Fatalf("got %v, want %v", decoded, input)
	}
}

func TestEncodeInvalidPrecision(t *testing.T) {
	model := ModelFunc(func(ctx Bits) float64 { return 0.5 })
	_, err := Encode(ParseBits("01"), model, 1, 4)
	if err == nil {
		t.Fatal("expected error for precision < 2")
	}
}

func TestEncodeContextIsMostRecentBits(t *testing.T) {
	var seen []string
	model := ModelFunc(func(ctx Bits) float64 {
		seen = append(seen, ctx.String())
		return 0.5
	})

	_, err := Encode(ParseBits("101"), model, 16, 2)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []string{"00", "01", "10"}
	if len(seen) != len(want) {
		t.Fatalf("got %d context queries, want %d: %v", len(seen), len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("query %d: context = %q, want %q", i, seen[i], want[i])
		}
	}
}
