// Package wrap computes soft line wrapping and word boundary queries for
// a single logical line. Wrapping breaks only at whitespace; a word wider
// than the wrap width is reported as ErrUnwrappableLine rather than
// silently mis-wrapped, with HardWrap available as an explicit fallback.
package wrap
