package bigint

import "math/bits"

// Mul sets z = a * b using grade-school segment multiplication. a and b
// may alias z; the product is always built in a fresh temporary before
// being installed.
func (z *BigInt) Mul(a, b *BigInt) *BigInt {
	la, lb := len(a.data), len(b.data)
	temp := make([]uint64, la+lb)

	for i := 0; i < la; i++ {
		ai := a.data[i]
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < lb; j++ {
			hi, lo := bits.Mul64(ai, b.data[j])
			var c1, c2 uint64
			temp[i+j], c1 = bits.Add64(temp[i+j], lo, 0)
			temp[i+j], c2 = bits.Add64(temp[i+j], carry, 0)
			carry = hi + c1 + c2
		}
		pos := i + lb
		for carry != 0 {
			var c uint64
			temp[pos], c = bits.Add64(temp[pos], carry, 0)
			carry = c
			pos++
		}
	}

	z.data = temp
	z.neg = a.neg != b.neg
	z.reduce()
	return z
}
