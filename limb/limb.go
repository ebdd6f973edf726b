package limb

// Sequence is an unsigned multi-precision integer stored as 32-bit words,
// least significant word first. See the package documentation for the
// representation and the canonical form.
type Sequence []uint32

// Zero returns the canonical zero Sequence.
func Zero() Sequence {
	return Sequence{0}
}

// Word returns the i'th word of s, reading words beyond the end as zero.
func (s Sequence) Word(i int) uint32 {
	if i < len(s) {
		return s[i]
	}

	return 0
}

// Normalize returns a canonical Sequence with the same value as s: trailing
// zero words are dropped until a nonzero word or a single word remains. The
// returned Sequence may share s's backing array.
func Normalize(s Sequence) Sequence {
	n := len(s)
	for n > 1 && s[n-1] == 0 {
		n--
	}

	if n == 0 {
		return Zero()
	}

	return s[:n]
}

// Equal reports whether a and b have the same value. Words beyond the end
// of the shorter Sequence compare as zero, so non-canonical input compares
// correctly.
func Equal(a, b Sequence) bool {
	largest := len(a)
	if len(b) > largest {
		largest = len(b)
	}

	for i := 0; i < largest; i++ {
		if a.Word(i) != b.Word(i) {
			return false
		}
	}

	return true
}
