package natural

import "github.com/zeebo/errs"

// ParseError is the class of all errors returned by ParseDecimal. Use
// ParseError.Has to detect them.
var ParseError = errs.Class("natural: parse")

// ErrEmpty is returned by ParseDecimal for empty input.
var ErrEmpty = ParseError.New("empty decimal")
