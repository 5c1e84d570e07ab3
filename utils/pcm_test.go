package utils

import (
	"math"
	"testing"
)

func TestFloatToPCM16_Truncates(t *testing.T) {
	t.Parallel()

	if got := FloatToPCM16(0.5); got != 0x4000 {
		t.Errorf("FloatToPCM16(0.5) = %#x, want 0x4000", got)
	}

	// Truncation toward zero, not rounding.
	if got := FloatToPCM16(0.99999); got != 0x7fff {
		t.Errorf("FloatToPCM16(0.99999) = %#x, want 0x7fff", got)
	}

	if got := int16(FloatToPCM16(-0.5)); got != -0x4000 {
		t.Errorf("FloatToPCM16(-0.5) = %d, want -16384", got)
	}
}

func TestPCM16RoundTrip(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{-0.999, -0.5, -0.001, 0, 0.001, 0.5, 0.999} {
		back := PCM16ToFloat(int16(FloatToPCM16(x)))
		if math.Abs(back-x) > 1.0/0x8000 {
			t.Errorf("round trip of %v = %v, off by more than 1/0x8000", x, back)
		}
	}
}

func TestPCM24RoundTrip(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{-0.999, -0.25, 0, 0.25, 0.999} {
		b0, b1, b2 := FloatToPCM24(x)
		raw := int(b0) | int(b1)<<8 | int(b2)<<16
		back := PCM24ToFloat(raw)
		if math.Abs(back-x) > 1.0/0x800000 {
			t.Errorf("round trip of %v = %v, off by more than 1/0x800000", x, back)
		}
	}
}

func TestPCM24ToFloat_SignExtension(t *testing.T) {
	t.Parallel()

	// 0xffffff is -1 as a 24-bit two's complement value.
	if got := PCM24ToFloat(0xffffff); got != -1.0/0x800000 {
		t.Errorf("PCM24ToFloat(0xffffff) = %v, want %v", got, -1.0/0x800000)
	}

	if got := PCM24ToFloat(0x400000); got != 0.5 {
		t.Errorf("PCM24ToFloat(0x400000) = %v, want 0.5", got)
	}
}
