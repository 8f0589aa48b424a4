package bigint

// CBigInt is a non-owning, immutable view of a big integer: a borrowed
// little-endian segment slice plus a sign. It never allocates and is
// never mutated, which makes it the right shape for literal values baked
// into pkg/bernconst's seed table; the same backing array is shared by
// every CBigInt built from it.
//
// A CBigInt must always be in reduced form: data has no trailing zero
// segment, and neg is false when data is empty. Callers that build one
// by hand (rather than through NewCBigInt) are responsible for that
// invariant themselves.
type CBigInt struct {
	data []uint64
	neg  bool
}

// NewCBigInt wraps segs (little-endian, not copied) as a constant value.
// The caller must not mutate segs afterward.
func NewCBigInt(neg bool, segs ...uint64) CBigInt {
	n := len(segs)
	for n > 0 && segs[n-1] == 0 {
		n--
	}
	segs = segs[:n]
	if n == 0 {
		neg = false
	}
	return CBigInt{data: segs, neg: neg}
}

// IsZero reports whether c is exactly zero.
func (c CBigInt) IsZero() bool { return len(c.data) == 0 }

// Sign reports whether c is negative.
func (c CBigInt) Sign() bool { return c.neg }

// Len returns the number of live segments.
func (c CBigInt) Len() int { return len(c.data) }
