package sign

import "errors"

// ErrInvalidSign indicates a raw value did not strictly satisfy the
// requested sign. Zero never satisfies either sign.
var ErrInvalidSign = errors.New("value does not satisfy the requested sign")

// ErrResultIsZero indicates a division whose sign was statically resolved
// but whose quotient came out as exactly zero, which no witness may wrap.
var ErrResultIsZero = errors.New("quotient is zero")
