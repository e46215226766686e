package oracle

import (
	"fmt"

	"github.com/wippyai/huffdual/errors"
	"github.com/wippyai/huffdual/huffman"
)

// pump is what the workloop needs from a bit pump on top of decoding.
type pump interface {
	huffman.BitSource
	BitsConsumed() int
	Position() int
}

// step is the outcome of one decode attempt on one side.
type step struct {
	err   error
	value int
}

func (s step) exhausted() bool {
	return errors.KindOf(s.err) == errors.KindExhausted
}

// workloop decodes in lock step until exhaustion, a symmetric failure, or a
// divergence. It has no iteration cap: every successful decode consumes at
// least one bit and consumption is bounded by the pump limit.
func (h *Harness) workloop(p0, p1 pump, t0, t1 huffman.Table, fullDecode bool) Result {
	for iter := 0; ; iter++ {
		var s0, s1 step
		s0.value, s0.err = t0.Decode(p0, fullDecode)
		if s0.exhausted() && !h.strict {
			return Result{End: errors.KindExhausted, Iterations: iter}
		}
		s1.value, s1.err = t1.Decode(p1, fullDecode)
		if s1.exhausted() && !h.strict {
			return Result{End: errors.KindExhausted, Iterations: iter}
		}

		if s0.exhausted() || s1.exhausted() {
			if s0.exhausted() && s1.exhausted() {
				return Result{End: errors.KindExhausted, Iterations: iter}
			}
			return h.divergeAt(iter, p0, "exhaustion asymmetric", s0, s1)
		}

		failed0, failed1 := s0.err != nil, s1.err != nil
		if failed0 != failed1 {
			return h.divergeAt(iter, p0, "decode failure asymmetric", s0, s1)
		}
		if failed0 {
			return Result{End: errors.KindDecode, Iterations: iter}
		}

		if s0.value != s1.value {
			return h.divergeAt(iter, p0,
				fmt.Sprintf("decoded values differ: %d vs %d", s0.value, s1.value), s0, s1)
		}
		if b0, b1 := p0.BitsConsumed(), p1.BitsConsumed(); b0 != b1 {
			return h.divergeAt(iter, p0,
				fmt.Sprintf("bit cursors out of sync: %d vs %d", b0, b1), s0, s1)
		}
	}
}

func (h *Harness) divergeAt(iter int, p pump, reason string, s0, s1 step) Result {
	b := errors.New(errors.PhaseOracle, errors.KindDivergence).
		Offset(p.Position()).
		Value(iter).
		Detail("iteration %d: %s (%s: %s, %s: %s)",
			iter, reason, h.pair.Impl0, describe(s0), h.pair.Impl1, describe(s1))
	if cause := firstErr(s0.err, s1.err); cause != nil {
		b.Cause(cause)
	}
	return Result{Verdict: Divergence, Err: b.Build(), End: errors.KindDivergence, Iterations: iter}
}

func describe(s step) string {
	if s.err != nil {
		if k := errors.KindOf(s.err); k != errors.KindNone {
			return string(k)
		}
		return "error"
	}
	return fmt.Sprintf("%d", s.value)
}
