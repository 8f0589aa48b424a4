package bigint

// GCD sets z to the greatest common divisor of a and b, computed by
// repeated Euclidean reduction: while neither remaining operand is zero,
// replace the larger by itself mod the smaller. The result is always
// nonnegative.
//
// This workload's convention (not a general-purpose GCD law): GCD(0, x)
// = |x|, and GCD(0, 0) = 1, so dividing by the result is always defined
// during Bernoulli fraction reduction.
func (z *BigInt) GCD(arena *Arena, a, b *BigInt) *BigInt {
	if a.IsZero() && b.IsZero() {
		return z.SetOne()
	}
	if a.IsZero() {
		return z.Copy(b).Abs()
	}
	if b.IsZero() {
		return z.Copy(a).Abs()
	}

	x := arena.Get()
	x.Copy(a)
	x.Abs()
	y := arena.Get()
	y.Copy(b)
	y.Abs()
	defer arena.Put(x)
	defer arena.Put(y)

	r := arena.Get()
	defer arena.Put(r)
	for !y.IsZero() {
		r.Copy(x)
		r.Mod(arena, y)
		x.Exch(y)
		y.Exch(r)
	}
	return z.Copy(x)
}
