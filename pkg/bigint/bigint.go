// Package bigint implements sign-magnitude arbitrary-precision signed
// integers with 64-bit segments, the arithmetic core the Bernoulli
// generator in pkg/bernoulli is built on.
//
// A BigInt is always kept in reduced form: the top segment of a nonzero
// value is itself nonzero, and the zero value has no segments and a
// positive sign. Every exported arithmetic, shift, comparison and I/O
// method restores this invariant before returning, so callers never need
// to call a separate normalization step. The storage primitives SetSize
// and Resize are the exception: they set the segment count as asked and
// may leave a zero (or, for SetSize, undefined) top segment.
//
// The zero value of BigInt is the number zero and is ready to use.
package bigint

import "math/bits"

// BigInt is a sign-magnitude arbitrary-precision integer. Segments are
// little-endian: data[0] is the least significant 64-bit word.
type BigInt struct {
	data []uint64
	neg  bool
}

// NewInt64 returns a BigInt initialized to v.
func NewInt64(v int64) *BigInt {
	z := &BigInt{}
	z.SetInt64(v)
	return z
}

// Len returns the number of live segments (0 for zero).
func (z *BigInt) Len() int { return len(z.data) }

// Sign reports whether z is negative. Zero is never negative.
func (z *BigInt) Sign() bool { return z.neg }

// IsZero reports whether z is exactly zero.
func (z *BigInt) IsZero() bool { return len(z.data) == 0 }

// SetSize forces the live segment count to n. Segments beyond the
// previous live length are left with whatever the backing array already
// held; callers that need zero-filled growth should use Resize instead.
// n == 0 collapses z to the canonical zero.
func (z *BigInt) SetSize(n int) {
	if n < 0 {
		panic("bigint: negative segment count")
	}
	if n == 0 {
		z.data = z.data[:0]
		z.neg = false
		return
	}
	if cap(z.data) >= n {
		z.data = z.data[:n]
		return
	}
	nd := make([]uint64, n, growCap(n))
	copy(nd, z.data)
	z.data = nd
}

// Resize is SetSize, except newly exposed high segments are zero-filled.
func (z *BigInt) Resize(n int) {
	old := len(z.data)
	z.SetSize(n)
	for i := old; i < n; i++ {
		z.data[i] = 0
	}
}

// growCap amortizes repeated growth the way append does, so a BigInt
// reused across many operations (as from an Arena) keeps its capacity.
func growCap(n int) int {
	c := 4
	for c < n {
		c *= 2
	}
	return c
}

// reduce strips trailing zero segments and clears the sign of a zero
// result, restoring invariants 1 and 2.
func (z *BigInt) reduce() {
	n := len(z.data)
	for n > 0 && z.data[n-1] == 0 {
		n--
	}
	z.data = z.data[:n]
	if n == 0 {
		z.neg = false
	}
}

// Copy sets z to a deep copy of a.
func (z *BigInt) Copy(a *BigInt) *BigInt {
	z.SetSize(len(a.data))
	copy(z.data, a.data)
	z.neg = a.neg
	return z
}

// CopyFrom sets z to the value of the immutable constant c.
func (z *BigInt) CopyFrom(c CBigInt) *BigInt {
	z.SetSize(len(c.data))
	copy(z.data, c.data)
	z.neg = c.neg
	return z
}

// Exch swaps the contents of z and a in place.
func (z *BigInt) Exch(a *BigInt) {
	z.data, a.data = a.data, z.data
	z.neg, a.neg = a.neg, z.neg
}

// SetZero sets z to 0.
func (z *BigInt) SetZero() *BigInt {
	z.data = z.data[:0]
	z.neg = false
	return z
}

// SetOne sets z to 1.
func (z *BigInt) SetOne() *BigInt {
	z.SetSize(1)
	z.data[0] = 1
	z.neg = false
	return z
}

// SetInt64 sets z to the machine-word value v.
func (z *BigInt) SetInt64(v int64) *BigInt {
	if v == 0 {
		return z.SetZero()
	}
	neg := v < 0
	var u uint64
	if neg {
		u = uint64(-(v + 1)) + 1 // avoids overflow on math.MinInt64
	} else {
		u = uint64(v)
	}
	z.SetSize(1)
	z.data[0] = u
	z.neg = neg
	return z
}

// EqualInt64 reports whether z equals the machine-word value v.
func (z *BigInt) EqualInt64(v int64) bool {
	if v == 0 {
		return z.IsZero()
	}
	if len(z.data) != 1 {
		return false
	}
	neg := v < 0
	var u uint64
	if neg {
		u = uint64(-(v + 1)) + 1
	} else {
		u = uint64(v)
	}
	return z.neg == neg && z.data[0] == u
}

// CmpAbs compares the magnitudes of a and b: -1 if |a|<|b|, 0 if equal,
// +1 if |a|>|b|.
func CmpAbs(a, b *BigInt) int {
	if len(a.data) != len(b.data) {
		if len(a.data) < len(b.data) {
			return -1
		}
		return 1
	}
	for i := len(a.data) - 1; i >= 0; i-- {
		if a.data[i] != b.data[i] {
			if a.data[i] < b.data[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares a and b as signed values: -1 if a<b, 0 if equal, +1 if a>b.
func Cmp(a, b *BigInt) int {
	if a.neg != b.neg {
		if a.neg {
			return -1
		}
		return 1
	}
	c := CmpAbs(a, b)
	if a.neg {
		return -c
	}
	return c
}

// BitLen returns the number of bits in the magnitude, 0 for zero.
func (z *BigInt) BitLen() int {
	n := len(z.data)
	if n == 0 {
		return 0
	}
	return (n-1)*64 + bits.Len64(z.data[n-1])
}

// TrailingZeros returns the number of trailing zero bits in the
// magnitude, 0 for zero.
func (z *BigInt) TrailingZeros() int {
	for i, w := range z.data {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w)
		}
	}
	return 0
}

// Neg flips the sign of a nonzero z; zero is unaffected.
func (z *BigInt) Neg() *BigInt {
	if len(z.data) > 0 {
		z.neg = !z.neg
	}
	return z
}

// Abs clears the sign.
func (z *BigInt) Abs() *BigInt {
	z.neg = false
	return z
}
