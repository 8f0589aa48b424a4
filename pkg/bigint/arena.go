package bigint

// Arena is a pool of scratch BigInt values used by operations (Div, Mod,
// GCD, and the Bernoulli generator's inner loop) that need temporaries
// beyond their destination and operands. Get and Put follow a stack
// discipline: a caller releases its temporaries in the reverse order it
// acquired them, the same way nested function calls unwind. Each Arena
// belongs to a single computation; two generators running concurrently
// must use two Arenas.
type Arena struct {
	free []*BigInt
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Get acquires a scratch BigInt. Its contents are whatever the previous
// tenant left behind; callers must overwrite it before reading.
func (p *Arena) Get() *BigInt {
	if n := len(p.free); n > 0 {
		b := p.free[n-1]
		p.free = p.free[:n-1]
		return b
	}
	return &BigInt{}
}

// Put releases a scratch BigInt acquired from Get.
func (p *Arena) Put(b *BigInt) {
	p.free = append(p.free, b)
}
