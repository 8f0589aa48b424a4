package bigint

import "math/bits"

// Div sets z = a / b (truncating toward zero) and, if rem is non-nil,
// rem = a - z*b. b must be nonzero; dividing by zero is a precondition
// violation, not a recoverable error, so it panics like an out-of-bounds
// slice index would.
func (z *BigInt) Div(arena *Arena, a, b *BigInt, rem *BigInt) *BigInt {
	if b.IsZero() {
		panic("bigint: division by zero")
	}

	switch {
	case CmpAbs(a, b) < 0:
		if rem != nil {
			rem.Copy(a)
		}
		return z.SetZero()
	case CmpAbs(a, b) == 0:
		if rem != nil {
			rem.SetZero()
		}
		return z.SetInt64(signedOne(a.neg != b.neg))
	}

	qNeg := a.neg != b.neg
	rNeg := a.neg

	if len(b.data) == 1 {
		q, r := divModWord(a.data, b.data[0])
		z.data = q
		z.neg = qNeg
		z.reduce()
		if rem != nil {
			if r == 0 {
				rem.SetZero()
			} else {
				rem.SetSize(1)
				rem.data[0] = r
				rem.neg = rNeg
			}
		}
		return z
	}

	q, r := divModGeneral(arena, a, b)
	z.data = q
	z.neg = qNeg
	z.reduce()
	if rem != nil {
		rem.data = r
		rem.neg = rNeg
		rem.reduce()
	}
	return z
}

// signedOne returns -1 as an int64 when neg, else 1.
func signedOne(neg bool) int64 {
	if neg {
		return -1
	}
	return 1
}

// divModWord divides the magnitude a by the single word w, top segment
// down, carrying the remainder across segments.
func divModWord(a []uint64, w uint64) (q []uint64, rem uint64) {
	n := len(a)
	q = make([]uint64, n)
	for i := n - 1; i >= 0; i-- {
		q[i], rem = bits.Div64(rem, a[i], w)
	}
	return q, rem
}

// divModGeneral performs binary long division of |a| by |b| (len(b) > 1),
// producing quotient and remainder magnitudes.
func divModGeneral(arena *Arena, a, b *BigInt) (q, r []uint64) {
	A := arena.Get()
	A.Copy(a)
	A.Abs()
	B := arena.Get()
	B.Copy(b)
	B.Abs()
	defer arena.Put(A)
	defer arena.Put(B)

	s := A.BitLen() - B.BitLen()
	B.Shl(s)

	qWords := s/64 + 1
	qData := make([]uint64, qWords)
	for i := s; i >= 0; i-- {
		if CmpAbs(A, B) >= 0 {
			A.Sub(A, B)
			qData[i/64] |= 1 << uint(i%64)
		}
		B.Shr1()
	}

	qBig := &BigInt{data: qData}
	qBig.reduce()
	return qBig.data, append([]uint64(nil), A.data...)
}

// Mod sets z to |z| mod m, a nonnegative value in [0, |m|).
func (z *BigInt) Mod(arena *Arena, m *BigInt) *BigInt {
	if m.IsZero() {
		panic("bigint: modulo by zero")
	}
	z.neg = false
	if z.IsZero() {
		return z
	}

	if len(m.data) == 1 {
		w := m.data[0]
		if w&(w-1) == 0 {
			// power of two: mask the low bits directly
			mask := w - 1
			low := z.data[0] & mask
			if low == 0 {
				return z.SetZero()
			}
			z.SetSize(1)
			z.data[0] = low
			return z
		}
		_, rem := divModWord(z.data, w)
		if rem == 0 {
			return z.SetZero()
		}
		z.SetSize(1)
		z.data[0] = rem
		return z
	}

	_, r := divModGeneral(arena, z, m)
	z.data = r
	z.reduce()
	return z
}
