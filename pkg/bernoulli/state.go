// Package bernoulli implements the Akiyama-Tanigawa generator that
// produces exact rational even Bernoulli numbers B2, B4, ..., B2n, and
// the resumable state object the generator advances.
package bernoulli

import "github.com/Panda381/BigInt/pkg/bigint"

// State holds everything needed to run, suspend, and resume the
// generator. Fields are exported so pkg/checkpoint can serialize and
// restore them directly.
type State struct {
	N int // target count of even Bernoulli numbers B2..B2N

	Num, Den       []*bigint.BigInt // working Akiyama-Tanigawa row, 2N+1 entries
	OutNum, OutDen []*bigint.BigInt // reduced results, N entries; index i holds B_2(i+1)

	Loop     uint64 // monotone counter, used only for progress reporting
	Produced int    // number of completed output pairs, 0 <= Produced <= N
	Outer    int    // outer loop index (= number of settled working-row entries)
	Inner    int    // inner loop index to resume at

	arena *bigint.Arena
	tmp   *bigint.BigInt
}

// NewState allocates a fresh generator state for n target Bernoulli
// numbers, in the *fresh* phase: Outer=1, Inner=1, Produced=0.
func NewState(n int) *State {
	s := &State{
		N:      n,
		Num:    newRow(2*n + 1),
		Den:    newRow(2*n + 1),
		OutNum: newRow(n),
		OutDen: newRow(n),
		Outer:  1,
		Inner:  1,
		arena:  bigint.NewArena(),
		tmp:    new(bigint.BigInt),
	}
	return s
}

func newRow(n int) []*bigint.BigInt {
	row := make([]*bigint.BigInt, n)
	for i := range row {
		row[i] = new(bigint.BigInt)
	}
	return row
}

// Upsize grows the state's buffers to support n target Bernoulli
// numbers, preserving all existing contents. It is a no-op if n <= N,
// and it never shrinks. Only safe in the *fresh* or *suspend* phase.
func (s *State) Upsize(n int) {
	if n <= s.N {
		return
	}
	s.Num = growRow(s.Num, 2*n+1)
	s.Den = growRow(s.Den, 2*n+1)
	s.OutNum = growRow(s.OutNum, n)
	s.OutDen = growRow(s.OutDen, n)
	s.N = n
}

func growRow(row []*bigint.BigInt, n int) []*bigint.BigInt {
	if n <= len(row) {
		return row
	}
	grown := make([]*bigint.BigInt, n)
	copy(grown, row)
	for i := len(row); i < n; i++ {
		grown[i] = new(bigint.BigInt)
	}
	return grown
}

// Arena returns the scratch pool backing this state's arithmetic, for
// callers that need their own temporaries against the same computation.
func (s *State) Arena() *bigint.Arena { return s.arena }

// ensureArena restores s.arena and s.tmp for a State built as a struct
// literal rather than through NewState, whose unexported fields are then
// at their zero value.
func (s *State) ensureArena() {
	if s.arena == nil {
		s.arena = bigint.NewArena()
	}
	if s.tmp == nil {
		s.tmp = new(bigint.BigInt)
	}
}
