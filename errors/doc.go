// Package errors provides the closed, tagged error model used throughout huffdual.
//
// Errors are categorized by Phase (where the error occurred) and Kind (the
// tag the harness dispatches on). The Kind set is closed:
//
//	KindExhausted     the bit stream ran out of bits
//	KindConstruction  a table definition could not be parsed or validated
//	KindDecode        a decode step found no matching code
//	KindUnknownPump   the bit pump discriminator is not registered
//	KindDivergence    two implementations disagreed
//	KindInvalidInput  configuration or command-line problems
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindDecode).
//		Side("lookup").
//		Offset(42).
//		Detail("no code matches %016b", bits).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Exhausted(errors.PhaseRead, pos, 4)
//	err := errors.Divergence("decoded values differ", 3, -1)
//
// KindOf extracts the tag from any error chain; callers should switch on it
// rather than on concrete types.
package errors
