package bigint

// Shl1 multiplies z by 2 in place. The result grows by one segment only
// when the top bit of the current magnitude was set.
func (z *BigInt) Shl1() {
	n := len(z.data)
	if n == 0 {
		return
	}
	carry := z.data[n-1] >> 63
	old := append([]uint64(nil), z.data...)
	if carry != 0 {
		z.SetSize(n + 1)
	} else {
		z.SetSize(n)
	}
	var c uint64
	for i := 0; i < n; i++ {
		z.data[i] = (old[i] << 1) | c
		c = old[i] >> 63
	}
	if carry != 0 {
		z.data[n] = carry
	}
	z.reduce()
}

// Shr1 divides the magnitude of z by 2, discarding the low bit.
func (z *BigInt) Shr1() {
	n := len(z.data)
	for i := 0; i < n; i++ {
		var hi uint64
		if i+1 < n {
			hi = z.data[i+1]
		}
		z.data[i] = (z.data[i] >> 1) | (hi << 63)
	}
	z.reduce()
}

// Shl shifts z left by k bits (k >= 0), multiplying by 2^k.
func (z *BigInt) Shl(k int) {
	if k <= 0 || len(z.data) == 0 {
		return
	}
	q, r := k/64, uint(k%64)
	n := len(z.data)
	newLen := n + q
	if r != 0 {
		newLen++
	}
	old := append([]uint64(nil), z.data...)
	z.SetSize(newLen)
	for i := range z.data {
		z.data[i] = 0
	}
	if r == 0 {
		copy(z.data[q:q+n], old)
	} else {
		var carry uint64
		for i := 0; i < n; i++ {
			z.data[q+i] = (old[i] << r) | carry
			carry = old[i] >> (64 - r)
		}
		z.data[q+n] = carry
	}
	z.reduce()
}

// Shr shifts z right by k bits (k >= 0), discarding the low k bits. A
// shift of k >= BitLen() collapses z to zero.
func (z *BigInt) Shr(k int) {
	if k <= 0 || len(z.data) == 0 {
		return
	}
	if k >= z.BitLen() {
		z.SetZero()
		return
	}
	q, r := k/64, uint(k%64)
	n := len(z.data)
	old := append([]uint64(nil), z.data...)
	newLen := n - q
	z.SetSize(newLen)
	if r == 0 {
		copy(z.data, old[q:])
	} else {
		for i := 0; i < newLen; i++ {
			var hi uint64
			if q+i+1 < n {
				hi = old[q+i+1]
			}
			z.data[i] = (old[q+i] >> r) | (hi << (64 - r))
		}
	}
	z.reduce()
}
