package natural

import (
	"github.com/calebcase/bignum/limb"
)

// ParseDecimal converts a string of ASCII decimal digits into a Natural.
//
// Every character must be a digit '0'..'9' and the string must not be
// empty. Leading zeros are allowed and carry no meaning: "007" parses to
// the same value as "7". On failure the returned error is in the
// ParseError class and there is no partial result.
//
// The conversion never builds a digit-per-element intermediate. The
// accumulator is already a base 2^32 sequence and each character folds in
// left to right as:
//
//  acc = acc*10 + digit
func ParseDecimal(s string) (Natural, error) {
	if len(s) == 0 {
		// ErrEmpty is returned as is: it is already a ParseError and
		// callers must be able to see that through ParseError.Has.
		return Natural{}, ErrEmpty
	}

	acc := limb.Zero()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Natural{}, ParseError.New(
				"invalid digit %q at index %d",
				c,
				i,
			)
		}

		acc = limb.Add(
			limb.MulWord(acc, 10),
			limb.Sequence{uint32(c - '0')},
		)
	}

	return Natural{words: acc}, nil
}
