// Package size models vector lengths and indices that are either known ahead
// of use (Exact) or only at runtime (Dynamic).
//
// It provides the arithmetic the length-typed vector relies on:
//   - Increment / Decrement / Add over sizes
//   - CheckIndex (strict, 0 <= i < len) and CheckIndexInclusive (0 <= i <= len)
//
// The index checks return a Verdict. When both operands are Exact the verdict
// is decided ahead of use (InRange or OutOfRange). As soon as one operand is
// Dynamic the verdict is Undecidable and the caller has to compare against the
// real storage length at the moment of use.
//
// The root package mirrors these rules at the type level; the generator in
// internal/cmd/vectgen evaluates them to decide which pre-verified positional
// operations exist.
package size
