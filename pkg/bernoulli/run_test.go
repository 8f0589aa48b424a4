package bernoulli

import (
	"testing"

	"github.com/Panda381/BigInt/pkg/bigint"
)

// known even Bernoulli numbers B2..B10, as (numerator, denominator) in lowest terms.
var wantB = []struct{ num, den int64 }{
	{1, 6},
	{-1, 30},
	{1, 42},
	{-1, 30},
	{5, 66},
}

func TestRunProducesKnownValues(t *testing.T) {
	s := NewState(len(wantB))
	s.Run(nil)

	if s.Produced != len(wantB) {
		t.Fatalf("Produced = %d, want %d", s.Produced, len(wantB))
	}
	for i, want := range wantB {
		num, den := s.Result(i)
		if !num.EqualInt64(want.num) || !den.EqualInt64(want.den) {
			t.Errorf("B%d = %s/%s, want %d/%d", 2*(i+1), num.Text(), den.Text(), want.num, want.den)
		}
	}
}

// snapshot deep-copies everything a checkpoint would persist, the way
// pkg/checkpoint.Save/Load round-trips a State through disk.
func snapshot(s *State) *State {
	r := &State{N: s.N, Loop: s.Loop, Produced: s.Produced, Outer: s.Outer, Inner: s.Inner}
	r.Num = copyRow(s.Num)
	r.Den = copyRow(s.Den)
	r.OutNum = copyRow(s.OutNum)
	r.OutDen = copyRow(s.OutDen)
	return r
}

func copyRow(row []*bigint.BigInt) []*bigint.BigInt {
	out := make([]*bigint.BigInt, len(row))
	for i, v := range row {
		out[i] = new(bigint.BigInt).Copy(v)
	}
	return out
}

func TestRunIsResumable(t *testing.T) {
	full := NewState(len(wantB) + 20)
	full.Run(nil)

	live := NewState(len(wantB) + 20)
	var resumed *State
	live.Run(func(Progress) {
		if resumed == nil {
			resumed = snapshot(live)
		}
	})
	if resumed == nil {
		t.Fatalf("progress callback never fired; nothing to resume from")
	}
	if resumed.Outer >= 2*resumed.N+1 {
		t.Fatalf("snapshot captured the fully-completed state, test is not exercising resumption")
	}

	resumed.Run(nil)
	for i := 0; i < len(wantB); i++ {
		fn, fd := full.Result(i)
		rn, rd := resumed.Result(i)
		if fn.Text() != rn.Text() || fd.Text() != rd.Text() {
			t.Errorf("result %d after resume = %s/%s, want %s/%s", i, rn.Text(), rd.Text(), fn.Text(), fd.Text())
		}
	}
	if resumed.Produced != full.Produced {
		t.Errorf("Produced after resume = %d, want %d", resumed.Produced, full.Produced)
	}
}

func TestUpsizePreservesProgress(t *testing.T) {
	s := NewState(2)
	s.Run(nil)
	if s.Produced != 2 {
		t.Fatalf("Produced = %d, want 2", s.Produced)
	}

	s.Upsize(5)
	s.Run(nil)
	if s.Produced != 5 {
		t.Fatalf("Produced after Upsize = %d, want 5", s.Produced)
	}
	for i, want := range wantB {
		num, den := s.Result(i)
		if !num.EqualInt64(want.num) || !den.EqualInt64(want.den) {
			t.Errorf("after upsize, B%d = %s/%s, want %d/%d", 2*(i+1), num.Text(), den.Text(), want.num, want.den)
		}
	}
}

func TestUpsizeNoopWhenSmaller(t *testing.T) {
	s := NewState(5)
	before := s.N
	s.Upsize(3)
	if s.N != before {
		t.Fatalf("Upsize(3) on N=5 changed N to %d", s.N)
	}
}
