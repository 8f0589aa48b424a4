package bigint

import "testing"

func TestZeroValueIsZero(t *testing.T) {
	var z BigInt
	if !z.IsZero() {
		t.Fatalf("zero value: IsZero() = false")
	}
	if z.Sign() {
		t.Fatalf("zero value: Sign() = true, want false")
	}
	if z.Len() != 0 {
		t.Fatalf("zero value: Len() = %d, want 0", z.Len())
	}
}

func TestSetInt64RoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 42, -42, 1 << 62, -(1 << 62), 9223372036854775807, -9223372036854775808}
	for _, v := range cases {
		z := NewInt64(v)
		if !z.EqualInt64(v) {
			t.Errorf("NewInt64(%d).EqualInt64(%d) = false, text=%q", v, v, z.Text())
		}
	}
}

func TestSetIntMinDoesNotOverflow(t *testing.T) {
	z := NewInt64(-9223372036854775808)
	if !z.Sign() {
		t.Fatalf("SetInt64(MinInt64): Sign() = false, want true")
	}
	if z.Len() != 1 || z.data[0] != 1<<63 {
		t.Fatalf("SetInt64(MinInt64): data = %v, want [1<<63]", z.data)
	}
}

func TestReduceClearsSignOnZero(t *testing.T) {
	z := NewInt64(5)
	z.Sub(z, NewInt64(5))
	if z.Sign() {
		t.Fatalf("5 - 5 kept a negative sign on zero")
	}
	if !z.IsZero() {
		t.Fatalf("expected zero")
	}
}

func TestCmpAndCmpAbs(t *testing.T) {
	a := NewInt64(-5)
	b := NewInt64(3)
	if Cmp(a, b) >= 0 {
		t.Errorf("Cmp(-5, 3) >= 0, want < 0")
	}
	if CmpAbs(a, b) <= 0 {
		t.Errorf("CmpAbs(-5, 3) <= 0, want > 0 (|-5| > |3|)")
	}
	if Cmp(a, a) != 0 {
		t.Errorf("Cmp(a, a) != 0")
	}
}

func TestNegAbs(t *testing.T) {
	z := NewInt64(7)
	z.Neg()
	if !z.EqualInt64(-7) {
		t.Errorf("Neg(7) = %s, want -7", z.Text())
	}
	z.Abs()
	if !z.EqualInt64(7) {
		t.Errorf("Abs(-7) = %s, want 7", z.Text())
	}

	zero := NewInt64(0)
	zero.Neg()
	if zero.Sign() {
		t.Errorf("Neg(0) produced a negative zero")
	}
}

func TestBitLenAndTrailingZeros(t *testing.T) {
	z := NewInt64(0)
	if z.BitLen() != 0 {
		t.Errorf("BitLen(0) = %d, want 0", z.BitLen())
	}
	z.SetInt64(1)
	if z.BitLen() != 1 {
		t.Errorf("BitLen(1) = %d, want 1", z.BitLen())
	}
	z.SetInt64(8)
	if z.BitLen() != 4 {
		t.Errorf("BitLen(8) = %d, want 4", z.BitLen())
	}
	if z.TrailingZeros() != 3 {
		t.Errorf("TrailingZeros(8) = %d, want 3", z.TrailingZeros())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := NewInt64(100)
	b := new(BigInt).Copy(a)
	b.Add(b, NewInt64(1))
	if a.EqualInt64(101) {
		t.Fatalf("Copy shared storage with its source")
	}
	if !b.EqualInt64(101) {
		t.Errorf("b = %s, want 101", b.Text())
	}
}

func TestCopyFromCBigInt(t *testing.T) {
	c := NewCBigInt(true, 42)
	z := new(BigInt).CopyFrom(c)
	if !z.EqualInt64(-42) {
		t.Errorf("CopyFrom(-42) = %s, want -42", z.Text())
	}
}

func TestExch(t *testing.T) {
	a := NewInt64(1)
	b := NewInt64(2)
	a.Exch(b)
	if !a.EqualInt64(2) || !b.EqualInt64(1) {
		t.Errorf("Exch: a=%s b=%s, want a=2 b=1", a.Text(), b.Text())
	}
}
