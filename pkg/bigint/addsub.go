package bigint

import "math/bits"

func wordAt(s []uint64, i int) uint64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

// AddSub sets z = a + b, or z = a - b when sub is true. a and b may alias
// z or each other; AddSub always computes into a fresh buffer before
// installing the result, so aliasing never corrupts the operands mid
// computation.
func (z *BigInt) AddSub(a, b *BigInt, sub bool) *BigInt {
	if a.IsZero() && b.IsZero() {
		return z.SetZero()
	}
	if a.IsZero() {
		z.Copy(b)
		if sub {
			z.Neg()
		}
		return z
	}
	if b.IsZero() {
		return z.Copy(a)
	}

	aMag := a.data
	bMag := b.data
	aNeg := a.neg
	bNeg := b.neg
	if sub {
		bNeg = !bNeg
	}

	if aNeg == bNeg {
		n := len(aMag)
		if len(bMag) > n {
			n = len(bMag)
		}
		res := make([]uint64, n+1)
		var carry uint64
		for i := 0; i < n; i++ {
			res[i], carry = bits.Add64(wordAt(aMag, i), wordAt(bMag, i), carry)
		}
		res[n] = carry
		z.data = res
		z.neg = aNeg
		z.reduce()
		return z
	}

	// Signs differ: compute |a| - |b|, flipping the result sign if |a| < |b|.
	c := CmpAbs(a, b)
	big, small, resultNeg := aMag, bMag, aNeg
	if c < 0 {
		big, small, resultNeg = bMag, aMag, bNeg
	}
	res := make([]uint64, len(big))
	var borrow uint64
	for i := 0; i < len(big); i++ {
		res[i], borrow = bits.Sub64(big[i], wordAt(small, i), borrow)
	}
	z.data = res
	z.neg = resultNeg
	z.reduce()
	return z
}

// Add sets z = a + b.
func (z *BigInt) Add(a, b *BigInt) *BigInt { return z.AddSub(a, b, false) }

// Sub sets z = a - b.
func (z *BigInt) Sub(a, b *BigInt) *BigInt { return z.AddSub(a, b, true) }
