package limb

// Add returns the sum of a and b as a new canonical Sequence. Neither
// input is modified.
func Add(a, b Sequence) Sequence {
	largest := len(a)
	if len(b) > largest {
		largest = len(b)
	}

	result := make(Sequence, 0, largest+1)

	var carry uint64
	for i := 0; i < largest; i++ {
		sum := uint64(a.Word(i)) + uint64(b.Word(i)) + carry
		result = append(result, uint32(sum))
		carry = sum >> 32
	}

	if carry != 0 {
		result = append(result, uint32(carry))
	}

	return Normalize(result)
}
