package oracle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/huffdual/bitpump"
	"github.com/wippyai/huffdual/bytestream"
	"github.com/wippyai/huffdual/errors"
	"github.com/wippyai/huffdual/huffman"
)

// Verdict is the outcome of one harness run.
type Verdict int

const (
	// Uninteresting means the run ended on an expected condition.
	Uninteresting Verdict = iota
	// Divergence means the implementations disagreed.
	Divergence
)

func (v Verdict) String() string {
	if v == Divergence {
		return "divergence"
	}
	return "uninteresting"
}

// Pair selects the two implementations under test and the table tag they
// parse.
type Pair struct {
	Impl0 huffman.Impl
	Impl1 huffman.Impl
	Tag   huffman.Tag
}

// DefaultPair compares the tree walker against the lookup table on
// Baseline definitions.
var DefaultPair = Pair{Impl0: huffman.Tree, Impl1: huffman.Lookup, Tag: huffman.Baseline}

func (p Pair) String() string {
	return fmt.Sprintf("%s/%s@%s", p.Impl0, p.Impl1, p.Tag)
}

// AllPairs returns every ordered pair of distinct implementations for tag.
func AllPairs(tag huffman.Tag) []Pair {
	var pairs []Pair
	for _, a := range huffman.Impls() {
		for _, b := range huffman.Impls() {
			if a != b {
				pairs = append(pairs, Pair{Impl0: a, Impl1: b, Tag: tag})
			}
		}
	}
	return pairs
}

// Result describes how a run ended.
type Result struct {
	// Err is the divergence, nil for uninteresting runs.
	Err     error
	Verdict Verdict
	// End is the kind of the condition that ended an uninteresting run.
	End        errors.Kind
	Pump       bitpump.Variant
	PumpChosen bool
	// Iterations counts the lock-step decode rounds that completed.
	Iterations int
}

// Option configures a Harness.
type Option func(*Harness)

// WithStrictExhaustion requires exhaustion to happen on both sides in the
// same round before a run may end uninteresting.
func WithStrictExhaustion(strict bool) Option {
	return func(h *Harness) {
		h.strict = strict
	}
}

// constructor parses one side's table from its cursor.
type constructor func(huffman.Tag, *bytestream.Cursor) (huffman.Table, error)

// Harness drives one implementation pair. It holds no per-run state and is
// safe for concurrent use.
type Harness struct {
	pair   Pair
	strict bool

	// build[i] constructs the table of side i. Defaults to the pair's Impl.New.
	build      [2]constructor
	selectPump func(c0, c1 *bytestream.Cursor) (bitpump.Variant, error)
}

// New creates a harness for pair.
func New(pair Pair, opts ...Option) *Harness {
	h := &Harness{
		pair:       pair,
		build:      [2]constructor{pair.Impl0.New, pair.Impl1.New},
		selectPump: bitpump.Select,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Pair returns the implementation pair under test.
func (h *Harness) Pair() Pair {
	return h.pair
}

// TestOneInput runs data and returns 0 for uninteresting inputs. It panics
// with the divergence error otherwise.
func (h *Harness) TestOneInput(data []byte) int {
	return exitCode(h.Run(data))
}

func exitCode(res Result) int {
	if res.Verdict == Divergence {
		panic(res.Err)
	}
	return 0
}

// Check runs data and returns the divergence, if any.
func (h *Harness) Check(data []byte) error {
	return h.Run(data).Err
}

// Run executes one full harness invocation over data.
func (h *Harness) Run(data []byte) Result {
	res := h.run(data)
	h.report(res, len(data))
	return res
}

func (h *Harness) run(data []byte) Result {
	cur0 := bytestream.New(data)
	cur1 := cur0.Fork()

	t0, err0 := h.build[0](h.pair.Tag, cur0)
	t1, err1 := h.build[1](h.pair.Tag, cur1)

	if (err0 == nil) != (err1 == nil) {
		failed := h.pair.Impl0
		if err1 != nil {
			failed = h.pair.Impl1
		}
		return diverged(errors.New(errors.PhaseOracle, errors.KindDivergence).
			Side(failed.String()).
			Offset(cur0.Position()).
			Cause(firstErr(err0, err1)).
			Detail("construction asymmetric: %s ok=%v, %s ok=%v",
				h.pair.Impl0, err0 == nil, h.pair.Impl1, err1 == nil).
			Build())
	}
	if err0 != nil {
		return Result{End: errors.KindOf(err0)}
	}

	if t0.IsFullDecode() != t1.IsFullDecode() {
		return diverged(errors.Divergence(
			fmt.Sprintf("full-decode flags differ: %v vs %v", t0.IsFullDecode(), t1.IsFullDecode()), -1, cur0.Position()))
	}
	if t0.NumCodes() != t1.NumCodes() {
		return diverged(errors.Divergence(
			fmt.Sprintf("code counts differ: %d vs %d", t0.NumCodes(), t1.NumCodes()), -1, cur0.Position()))
	}
	if err := checkSync(cur0, cur1, "construction"); err != nil {
		return diverged(err)
	}
	if need := h.pair.Tag.MinSize(t0.NumCodes()); cur0.Position() < need {
		return diverged(errors.Divergence(
			fmt.Sprintf("construction consumed %d bytes, structure needs %d", cur0.Position(), need), -1, cur0.Position()))
	}

	v, err := h.selectPump(cur0, cur1)
	if err != nil {
		return Result{End: errors.KindOf(err)}
	}
	if err := checkSync(cur0, cur1, "pump selection"); err != nil {
		return diverged(err)
	}

	res := h.workloop(v.New(cur0), v.New(cur1), t0, t1, t0.IsFullDecode())
	res.Pump, res.PumpChosen = v, true
	return res
}

func (h *Harness) report(res Result, size int) {
	log := Logger()
	if res.Verdict == Divergence {
		fields := []zap.Field{
			zap.String("impl0", h.pair.Impl0.String()),
			zap.String("impl1", h.pair.Impl1.String()),
			zap.String("tag", h.pair.Tag.Name),
			zap.Int("iteration", res.Iterations),
			zap.Int("input_size", size),
			zap.Error(res.Err),
		}
		if res.PumpChosen {
			fields = append(fields, zap.String("pump", res.Pump.String()))
		}
		log.Warn("implementations diverged", fields...)
		return
	}
	if ce := log.Check(zap.DebugLevel, "run uninteresting"); ce != nil {
		ce.Write(
			zap.String("pair", h.pair.String()),
			zap.String("end", string(res.End)),
			zap.Int("iterations", res.Iterations),
			zap.Int("input_size", size),
		)
	}
}

func diverged(err error) Result {
	return Result{Verdict: Divergence, Err: err, End: errors.KindDivergence}
}

func checkSync(cur0, cur1 *bytestream.Cursor, step string) error {
	if cur0.Position() == cur1.Position() {
		return nil
	}
	return errors.Divergence(
		fmt.Sprintf("cursors out of sync after %s: %d vs %d", step, cur0.Position(), cur1.Position()), -1, cur0.Position())
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
