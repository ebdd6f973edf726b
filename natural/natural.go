package natural

import (
	"github.com/calebcase/bignum/limb"
)

// Natural is an arbitrary-precision unsigned integer.
//
// The zero value is the number zero. Naturals are immutable; see the
// package documentation.
type Natural struct {
	words limb.Sequence
}

// Zero returns the Natural zero.
func Zero() Natural {
	return Natural{words: limb.Zero()}
}

// FromUint64 returns the Natural with the value of v.
func FromUint64(v uint64) Natural {
	return Natural{words: limb.Normalize(limb.Sequence{
		uint32(v),
		uint32(v >> 32),
	})}
}

// FromLimbs returns the Natural with the value of the given base 2^32
// words, least significant word first. The slice is copied and may be in
// any form (trailing zero words, nil, empty); the Natural stores it
// normalized.
func FromLimbs(words []uint32) Natural {
	s := make(limb.Sequence, len(words))
	copy(s, words)

	return Natural{words: limb.Normalize(s)}
}

// Limbs returns the canonical base 2^32 words of n, least significant word
// first. The result is never empty: zero is the single word [0]. The
// returned slice is a copy; modifying it does not affect n.
func (n Natural) Limbs() []uint32 {
	s := limb.Normalize(n.words)

	words := make([]uint32, len(s))
	copy(words, s)

	return words
}

// IsZero reports whether n is zero.
func (n Natural) IsZero() bool {
	return limb.Equal(n.words, nil)
}

// Equal reports whether n and m have the same value.
func (n Natural) Equal(m Natural) bool {
	return limb.Equal(n.words, m.words)
}
