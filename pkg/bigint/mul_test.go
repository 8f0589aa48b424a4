package bigint

import "testing"

func TestMulTable(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{0, 5, 0},
		{5, 0, 0},
		{6, 7, 42},
		{-6, 7, -42},
		{6, -7, -42},
		{-6, -7, 42},
		{1, -1, -1},
	}
	for _, c := range cases {
		got := new(BigInt).Mul(NewInt64(c.a), NewInt64(c.b))
		if !got.EqualInt64(c.want) {
			t.Errorf("Mul(%d, %d) = %s, want %d", c.a, c.b, got.Text(), c.want)
		}
	}
}

func TestMulWidensAcrossSegments(t *testing.T) {
	maxWord := NewInt64(0)
	maxWord.data = []uint64{^uint64(0)}
	sq := new(BigInt).Mul(maxWord, maxWord)
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	want := new(BigInt).SetString("340282366920938463426481119284349108225")
	if Cmp(sq, want) != 0 {
		t.Fatalf("(2^64-1)^2 = %s, want %s", sq.Text(), want.Text())
	}
}

func TestMulAliasesDestination(t *testing.T) {
	a := NewInt64(123)
	a.Mul(a, a)
	if !a.EqualInt64(123 * 123) {
		t.Errorf("Mul(a, a) into a = %s, want %d", a.Text(), 123*123)
	}
}
