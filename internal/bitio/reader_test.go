package bitio

import (
	"math/rand"
	"testing"
)

func TestGetBitsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, 64)
	rng.Read(buf)

	for n := 1; n <= 32; n++ {
		r := NewReader(buf)
		for r.BitsLeft() >= 32 {
			show, err := r.ShowBits(n)
			if err != nil {
				t.Fatalf("n=%d: ShowBits: %v", n, err)
			}
			got, err := r.GetBits(n)
			if err != nil {
				t.Fatalf("n=%d: GetBits: %v", n, err)
			}
			if show != got {
				t.Fatalf("n=%d: ShowBits()=%d != GetBits()=%d", n, show, got)
			}
		}
	}
}

func TestAlign32(t *testing.T) {
	buf := make([]byte, 16)
	for skip := 0; skip < 31; skip++ {
		r := NewReader(buf)
		if err := r.Skip(skip); err != nil {
			t.Fatalf("skip %d: %v", skip, err)
		}
		before := r.BitPos()
		if err := r.Align32(); err != nil {
			t.Fatalf("align32 after skip %d: %v", skip, err)
		}
		advanced := r.BitPos() - before
		if advanced < 0 || advanced > 31 {
			t.Fatalf("skip %d: align32 advanced %d bits, want 0..31", skip, advanced)
		}
		if r.BitPos()%32 != 0 {
			t.Fatalf("skip %d: bit pos %d not 32-bit aligned", skip, r.BitPos())
		}
	}
}

func TestGetBitsPastEnd(t *testing.T) {
	r := NewReader([]byte{0xff})
	if _, err := r.GetBits(9); err == nil {
		t.Fatal("expected IoError reading past end of 1-byte buffer with n=9")
	}
}

func TestGetFloat(t *testing.T) {
	// exp bits = 23 (so exp-23 = 0), mantissa = 1, sign = 0 -> value 1.0
	r := NewReader([]byte{0b00110111, 0, 0, 0})
	v, err := r.GetFloat()
	if err != nil {
		t.Fatalf("GetFloat: %v", err)
	}
	if v != 1.0 {
		t.Fatalf("GetFloat() = %v, want 1.0", v)
	}
}
