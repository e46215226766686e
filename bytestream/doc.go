// Package bytestream provides Cursor, a position-tracking read-only view over
// an immutable byte buffer.
//
// Several cursors may share one buffer; each advances independently and
// never mutates the bytes. All reads are bounds-checked and fail with a
// KindExhausted error from the errors package, leaving the position
// unchanged.
package bytestream
