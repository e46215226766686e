// Package huffdual is a differential-testing oracle for canonical Huffman
// decoding tables.
//
// Two table implementations are built from the same serialized definition
// and decode the same payload in lock step. Any observable disagreement
// between them is reported as a divergence.
//
// # Architecture Overview
//
//	huffdual/            Root package with the TestOneInput entry point
//	├── oracle/          Harness driver and lock-step decode loop
//	├── huffman/         Table definitions, tags and the three table implementations
//	├── bitpump/         MSB, MSB32 and JPEG bit pumps plus the discriminator registry
//	├── bytestream/      Position-tracking byte cursor
//	├── config/          YAML harness configuration
//	├── errors/          Structured error types
//	└── cmd/huffdual/    Corpus replay and seeding CLI
//
// # Input Format
//
//	[16 counts][N values][full-decode][tag flags][pump][payload ...]
//
// # Quick Start
//
// Check one input with the default pair (tree vs lookup, baseline tag):
//
//	if huffdual.TestOneInput(data) != 0 {
//	    // unreachable: divergences panic
//	}
//
// Or choose the pair and inspect the verdict:
//
//	h := oracle.New(oracle.Pair{Impl0: huffman.Vector, Impl1: huffman.Lookup, Tag: huffman.Symbol8})
//	res := h.Run(data)
//	fmt.Println(res.Verdict, res.End, res.Iterations)
//
// # Fuzzing
//
//	go test -fuzz FuzzTestOneInput .
//	go test -fuzz FuzzDual ./oracle
package huffdual
