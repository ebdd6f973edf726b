// Package natural provides arbitrary-precision unsigned integers.
//
// A Natural is an immutable value: every operation returns a freshly
// allocated Natural and never modifies its operands, so Naturals may be
// shared between goroutines without coordination. The zero value of the
// type is the number zero.
//
// Naturals are stored as base 2^32 words (package limb), least significant
// word first, in canonical form: no high-order zero words except for zero
// itself, which is the single word [0]. Canonical form means two Naturals
// with the same value have identical word slices.
//
// Construction
//
// Naturals come from Zero, FromUint64, FromLimbs, or ParseDecimal.
// ParseDecimal is the only operation that can fail; it rejects empty input
// and any character outside '0'..'9' with an error in the ParseError
// class:
//
//  n, err := natural.ParseDecimal("123456789012345678901234567890")
//  if err != nil {
//      // natural.ParseError.Has(err) is true
//  }
//
// Arithmetic
//
// Add and Mul are total: they accept any two Naturals and always succeed.
// Only the schoolbook algorithms are provided; there is no subtraction,
// division, or formatting back to decimal.
package natural
