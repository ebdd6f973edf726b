package limb

// Mul returns the product of a and b as a new canonical Sequence using
// schoolbook long multiplication in base 2^32. Neither input is modified.
//
// The result buffer is len(a)+len(b) words: the product of an n word and
// an m word value never needs more. Row i writes words i..i+len(b)-1 and
// leaves its final carry at i+len(b), a position no earlier row has
// touched, so a plain store resolves every carry before the next row
// starts.
func Mul(a, b Sequence) Sequence {
	result := make(Sequence, len(a)+len(b))

	for i, x := range a {
		if x == 0 {
			continue
		}

		var carry uint64
		for j, y := range b {
			// The uint64 accumulator cannot overflow: see the
			// package documentation.
			wide := uint64(x)*uint64(y) + uint64(result[i+j]) + carry
			result[i+j] = uint32(wide)
			carry = wide >> 32
		}

		result[i+len(b)] = uint32(carry)
	}

	return Normalize(result)
}

// MulWord returns a*w as a new canonical Sequence. It is the single word
// special case of Mul, used by the decimal parser for its repeated
// multiply-by-ten step.
func MulWord(a Sequence, w uint32) Sequence {
	result := make(Sequence, 0, len(a)+1)

	var carry uint64
	for _, x := range a {
		wide := uint64(x)*uint64(w) + carry
		result = append(result, uint32(wide))
		carry = wide >> 32
	}

	if carry != 0 {
		result = append(result, uint32(carry))
	}

	return Normalize(result)
}
