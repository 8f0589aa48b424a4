package bigint

import "testing"

func TestShl1Shr1(t *testing.T) {
	z := NewInt64(1)
	for i := 0; i < 100; i++ {
		z.Shl1()
	}
	if z.BitLen() != 101 {
		t.Fatalf("after 100 Shl1 from 1: BitLen = %d, want 101", z.BitLen())
	}
	for i := 0; i < 100; i++ {
		z.Shr1()
	}
	if !z.EqualInt64(1) {
		t.Fatalf("Shl1 then Shr1 round trip: got %s, want 1", z.Text())
	}
}

func TestShlShrMatchRepeatedSingle(t *testing.T) {
	want := NewInt64(0xABCD1234)
	for i := 0; i < 130; i++ {
		want.Shl1()
	}
	got := NewInt64(0xABCD1234)
	got.Shl(130)
	if Cmp(want, got) != 0 {
		t.Fatalf("Shl(130) = %s, want %s", got.Text(), want.Text())
	}

	want2 := new(BigInt).Copy(want)
	for i := 0; i < 65; i++ {
		want2.Shr1()
	}
	got2 := new(BigInt).Copy(got)
	got2.Shr(65)
	if Cmp(want2, got2) != 0 {
		t.Fatalf("Shr(65) = %s, want %s", got2.Text(), want2.Text())
	}
}

func TestShrBeyondBitLenIsZero(t *testing.T) {
	z := NewInt64(12345)
	z.Shr(1000)
	if !z.IsZero() {
		t.Fatalf("Shr past BitLen left %s, want 0", z.Text())
	}
}

func TestShlZeroNoop(t *testing.T) {
	z := NewInt64(0)
	z.Shl(50)
	if !z.IsZero() {
		t.Fatalf("Shl(0-value) produced %s, want 0", z.Text())
	}
}
