package bernoulli

import "github.com/Panda381/BigInt/pkg/bigint"

// Progress reports how far a Run call has advanced, in parts per
// thousand: Loop*1000 / ((2N+1)(2N+2)/2). That divisor is larger than
// the N(2N+1) inner-loop steps a run to N takes, so Permille stays
// below 1000 even at completion.
type Progress struct {
	Permille int
}

// progressInterval is the loop-count granularity at which Run snapshots
// Outer/Inner into the state and invokes the caller's callback.
const progressInterval = 1024

// Run advances the generator from its current Outer/Inner position to
// completion (Outer == 2N+1), filling OutNum/OutDen as even rows are
// produced. progress, if non-nil, is called every 1024 loop iterations
// with the fraction of total work done; it may perform I/O (such as
// checkpointing) but must not touch the state concurrently with Run.
func (s *State) Run(progress func(Progress)) {
	s.ensureArena()

	rows := 2*s.N + 1
	totalLoops := uint64(rows) * uint64(rows+1) / 2

	if s.Outer == 1 && s.Inner == 1 {
		s.Num[0].SetOne()
		s.Den[0].SetOne()
	}

	arena := s.arena
	tmp := s.tmp

	m := s.Outer
	j := s.Inner
	for ; m < rows; m++ {
		s.Num[m].SetOne()
		s.Den[m].SetInt64(int64(m + 1))

		for ; j >= 1; j-- {
			s.Loop++
			if progress != nil && s.Loop%progressInterval == 0 {
				s.Outer, s.Inner = m, j
				progress(Progress{Permille: int(s.Loop * 1000 / totalLoops)})
			}

			// num[j-1] = (num[j-1]*den[j] - num[j]*den[j-1])*j, den[j-1] *= den[j]
			s.Num[j-1].Mul(s.Num[j-1], s.Den[j])
			tmp.Mul(s.Num[j], s.Den[j-1])
			tmp.Neg()
			s.Num[j-1].Add(s.Num[j-1], tmp)
			s.Den[j-1].Mul(s.Den[j-1], s.Den[j])
			tmp.SetInt64(int64(j))
			s.Num[j-1].Mul(s.Num[j-1], tmp)

			k := s.Num[j-1].TrailingZeros()
			if k2 := s.Den[j-1].TrailingZeros(); k2 < k {
				k = k2
			}
			if k > 0 {
				s.Num[j-1].Shr(k)
				s.Den[j-1].Shr(k)
			}

			tmp.GCD(arena, s.Num[j-1], s.Den[j-1])
			if !tmp.EqualInt64(1) {
				s.Num[j-1].Div(arena, s.Num[j-1], tmp, nil)
				s.Den[j-1].Div(arena, s.Den[j-1], tmp, nil)
			}
		}

		if m%2 == 0 {
			s.OutNum[s.Produced].Copy(s.Num[0])
			s.OutDen[s.Produced].Copy(s.Den[0])
			s.Produced++
		}
		j = m + 1
	}

	s.Outer, s.Inner = m, j
}

// Result returns copies of the produced pair B_2(i+1), for 0 <= i < Produced.
func (s *State) Result(i int) (num, den *bigint.BigInt) {
	return new(bigint.BigInt).Copy(s.OutNum[i]), new(bigint.BigInt).Copy(s.OutDen[i])
}
