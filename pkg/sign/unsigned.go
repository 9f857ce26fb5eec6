package sign

import "fmt"

// Unsigned-RHS cells. Go methods cannot introduce a second type parameter,
// so these cells are package-level functions. The unsigned operand is
// converted into the witness domain T before computing; values that do not
// fit T wrap per Go conversion rules, which is the numeric domain's own
// contract, the same as any mixed-width arithmetic outside this package.
//
// An unsigned operand may be zero, or large enough to drag the result
// across zero, so multiplication and a Negative+Unsigned sum or
// Positive-Unsigned difference carry no witness: those cells return a raw T
// for the caller to re-validate.

// AddUnsigned adds a non-negative quantity to a positive. The result cannot
// drop below the positive addend.
func AddUnsigned[T Number, U Unsigned](lhs Positive[T], rhs U) Positive[T] {
	return Positive[T]{v: lhs.v + T(rhs)}
}

// AddAssignUnsigned adds rhs into the receiver in place.
func AddAssignUnsigned[T Number, U Unsigned](lhs *Positive[T], rhs U) {
	lhs.v += T(rhs)
}

// SubUnsigned subtracts a non-negative quantity from a negative. The result
// cannot rise above the negative minuend.
func SubUnsigned[T Number, U Unsigned](lhs Negative[T], rhs U) Negative[T] {
	return Negative[T]{v: lhs.v - T(rhs)}
}

// SubAssignUnsigned subtracts rhs from the receiver in place.
func SubAssignUnsigned[T Number, U Unsigned](lhs *Negative[T], rhs U) {
	lhs.v -= T(rhs)
}

// AddNegativeUnsigned returns the raw sum of a negative and a non-negative
// quantity.
func AddNegativeUnsigned[T Number, U Unsigned](lhs Negative[T], rhs U) T {
	return lhs.v + T(rhs)
}

// SubPositiveUnsigned returns the raw difference of a positive and a
// non-negative quantity.
func SubPositiveUnsigned[T Number, U Unsigned](lhs Positive[T], rhs U) T {
	return lhs.v - T(rhs)
}

// MulPositiveUnsigned returns the raw product of a positive and a
// non-negative factor. A zero factor makes the product zero, so no witness
// is offered.
func MulPositiveUnsigned[T Number, U Unsigned](lhs Positive[T], rhs U) T {
	return lhs.v * T(rhs)
}

// MulNegativeUnsigned returns the raw product of a negative and a
// non-negative factor.
func MulNegativeUnsigned[T Number, U Unsigned](lhs Negative[T], rhs U) T {
	return lhs.v * T(rhs)
}

// DivPositiveUnsigned divides a positive by an unsigned divisor. The sign is
// static but the magnitude is not: a divisor exceeding the dividend truncates
// the quotient to zero, so the same ErrResultIsZero check applies as for
// witness/witness division. Division by an unsigned zero is the numeric
// domain's failure (integer panic, float Inf), not re-validated here.
func DivPositiveUnsigned[T Number, U Unsigned](lhs Positive[T], rhs U) (Positive[T], error) {
	q := lhs.v / T(rhs)
	if q == 0 {
		return Positive[T]{}, fmt.Errorf("%v / %v: %w", lhs.v, rhs, ErrResultIsZero)
	}
	return Positive[T]{v: q}, nil
}

// DivAssignPositiveUnsigned divides the receiver in place. On
// ErrResultIsZero the receiver is left unchanged.
func DivAssignPositiveUnsigned[T Number, U Unsigned](lhs *Positive[T], rhs U) error {
	q, err := DivPositiveUnsigned(*lhs, rhs)
	if err != nil {
		return err
	}
	lhs.v = q.v
	return nil
}

// DivNegativeUnsigned divides a negative by an unsigned divisor. Zero-checked
// like DivPositiveUnsigned.
func DivNegativeUnsigned[T Number, U Unsigned](lhs Negative[T], rhs U) (Negative[T], error) {
	q := lhs.v / T(rhs)
	if q == 0 {
		return Negative[T]{}, fmt.Errorf("%v / %v: %w", lhs.v, rhs, ErrResultIsZero)
	}
	return Negative[T]{v: q}, nil
}

// DivAssignNegativeUnsigned divides the receiver in place. On
// ErrResultIsZero the receiver is left unchanged.
func DivAssignNegativeUnsigned[T Number, U Unsigned](lhs *Negative[T], rhs U) error {
	q, err := DivNegativeUnsigned(*lhs, rhs)
	if err != nil {
		return err
	}
	lhs.v = q.v
	return nil
}
