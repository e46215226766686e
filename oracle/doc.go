// Package oracle runs two Huffman table implementations side by side on the
// same input and reports any observable disagreement between them.
//
// # Input Layout
//
//	[table definition][pump discriminator][payload ...]
//
// The same bytes are read through two independent cursors, one per
// implementation. Both tables are constructed, a bit pump variant is
// selected by the discriminator byte, and then both sides decode symbols in
// lock step until the input is exhausted or an outcome is detected.
//
// # Verdicts
//
// A run ends Uninteresting when both sides agree that the input is invalid
// (both constructions fail, both decodes fail, unknown discriminator) or
// when the bit stream is exhausted. It ends in Divergence when
//
//   - exactly one construction fails, or the full-decode flags differ
//   - the cursors are at different offsets after any shared step
//   - exactly one decode fails
//   - decoded values differ, or the sides consumed different bit counts
//
// Divergence is always returned as an explicit value; it never depends on
// assertions or build flags. TestOneInput panics on it so that a fuzz engine
// records the input as a finding.
//
// # Exhaustion
//
// By default exhaustion on either side ends the run immediately, without
// checking the other side. WithStrictExhaustion requires both sides to
// exhaust on the same step and reports a Divergence otherwise.
//
//	h := oracle.New(oracle.Pair{Impl0: huffman.Tree, Impl1: huffman.Lookup, Tag: huffman.Baseline})
//	res := h.Run(data)
//	if res.Verdict == oracle.Divergence {
//	    log.Fatal(res.Err)
//	}
package oracle
