// Package limb provides the base 2^32 positional representation used by
// bignum and the carry-propagating arithmetic kernels over it.
//
// Representation
//
// A Sequence is an ordered slice of 32-bit words, least significant word
// first. A Sequence s represents the value:
//
//  s[0]*2^0 + s[1]*2^32 + s[2]*2^64 + ...
//
// Each word plays the role a digit plays in base 10, except the base is
// 2^32. For example:
//
//  | Value       | Sequence        |
//  |-------------|-----------------|
//  | 0           | [0]             |
//  | 1           | [1]             |
//  | 4294967295  | [4294967295]    |
//  | 4294967296  | [0, 1]          |
//  | 4294967297  | [1, 1]          |
//  | 2^64        | [0, 0, 1]       |
//
// Canonical Form
//
// A Sequence is canonical when it is non-empty and its last (most
// significant) word is nonzero, except for zero itself which is the single
// word [0]. Every producer in this package returns a canonical Sequence, so
// two canonical Sequences with the same value have the same length and the
// same words. Inputs are read through Word, which zero-extends past the end
// of the slice, so operations also accept non-canonical input.
//
// Arithmetic
//
// Add and Mul are the schoolbook algorithms with the carries held in a
// uint64. The widest intermediate is a word product plus a stored partial
// sum plus a carry:
//
//  (2^32-1)^2 + (2^32-1) + (2^32-1) = 2^64 - 1
//
// which exactly fills the accumulator, so the carry chain never loses bits.
//
// Operations never modify their inputs; every result is a freshly allocated
// Sequence.
package limb
