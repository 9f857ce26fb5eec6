// Package sign provides sign witnesses: wrapper types whose existence
// proves the wrapped number is strictly positive or strictly negative,
// never zero.
//
// A witness is obtained through TryPositive or TryNegative, the only
// fallible entry points. Every operator defined on the witnesses preserves
// the sign algebraically, so results need no re-validation — except
// division, whose truncated quotient can collapse to zero and is therefore
// checked at runtime (see Div and friends).
//
// The complete resolution table, with "Assignable?" marking the cells that
// have an in-place variant:
//
//	| Operation | LHS      | RHS      | Output   | Assignable? |
//	| --------- | -------- | -------- | -------- | ----------- |
//	| Add       | Positive | Positive | Positive | Yes         |
//	|           | Negative | Negative | Negative | Yes         |
//	|           | Positive | Negative | ?        | No          |
//	|           | Negative | Positive | ?        | No          |
//	|           | Positive | Unsigned | Positive | Yes         |
//	|           | Negative | Unsigned | ?        | No          |
//	| Sub       | Positive | Positive | ?        | No          |
//	|           | Negative | Negative | ?        | No          |
//	|           | Positive | Negative | Positive | Yes         |
//	|           | Negative | Positive | Negative | Yes         |
//	|           | Positive | Unsigned | ?        | No          |
//	|           | Negative | Unsigned | Negative | Yes         |
//	| Mul       | Positive | Positive | Positive | Yes         |
//	|           | Negative | Negative | Positive | No          |
//	|           | Positive | Negative | Negative | No          |
//	|           | Negative | Positive | Negative | Yes         |
//	|           | Positive | Unsigned | ?        | No          |
//	|           | Negative | Unsigned | ?        | No          |
//	| Div       | Positive | Positive | Positive | Yes         |
//	|           | Negative | Negative | Positive | No          |
//	|           | Positive | Negative | Negative | No          |
//	|           | Negative | Positive | Negative | Yes         |
//	|           | Positive | Unsigned | Positive | Yes         |
//	|           | Negative | Unsigned | Negative | Yes         |
//
// "?" cells have no typed operation at all: the caller unwraps with Value,
// computes in the raw domain, and re-validates the result if a witness is
// needed again. Resolve exposes the same table as data.
package sign

import "fmt"

// Number is the signed numeric domain a witness can wrap.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Unsigned is the external "value >= 0" capability. Possession of an
// unsigned Go type is the proof; no further API is consumed from it.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Positive is a guarantee that the wrapped value is > 0.
type Positive[T Number] struct {
	v T
}

// Negative is a guarantee that the wrapped value is < 0.
type Negative[T Number] struct {
	v T
}

// TryPositive validates v into a Positive witness. It fails with an error
// wrapping ErrInvalidSign when v <= 0.
func TryPositive[T Number](v T) (Positive[T], error) {
	if v <= 0 {
		return Positive[T]{}, fmt.Errorf("%v is not positive: %w", v, ErrInvalidSign)
	}
	return Positive[T]{v: v}, nil
}

// TryNegative validates v into a Negative witness. It fails with an error
// wrapping ErrInvalidSign when v >= 0.
func TryNegative[T Number](v T) (Negative[T], error) {
	if v >= 0 {
		return Negative[T]{}, fmt.Errorf("%v is not negative: %w", v, ErrInvalidSign)
	}
	return Negative[T]{v: v}, nil
}

// One returns the unit witness, which is trivially positive.
func One[T Number]() Positive[T] {
	return Positive[T]{v: 1}
}

// MinusOne returns the negated unit witness, which is trivially negative.
func MinusOne[T Number]() Negative[T] {
	return Negative[T]{v: -1}
}

// Value unwraps the raw number. Total.
func (p Positive[T]) Value() T {
	return p.v
}

// Value unwraps the raw number. Total.
func (n Negative[T]) Value() T {
	return n.v
}

// Neg flips the sign, magnitude unchanged. Negating a nonzero value cannot
// produce zero, so no check is needed.
func (p Positive[T]) Neg() Negative[T] {
	return Negative[T]{v: -p.v}
}

// Neg flips the sign, magnitude unchanged.
func (n Negative[T]) Neg() Positive[T] {
	return Positive[T]{v: -n.v}
}

// Map applies an arbitrary raw transform and re-validates the result.
func (p Positive[T]) Map(f func(T) T) (Positive[T], error) {
	return TryPositive(f(p.v))
}

// Map applies an arbitrary raw transform and re-validates the result.
func (n Negative[T]) Map(f func(T) T) (Negative[T], error) {
	return TryNegative(f(n.v))
}

// Equal reports whether two witnesses wrap the same value.
func (p Positive[T]) Equal(other Positive[T]) bool {
	return p.v == other.v
}

// Equal reports whether two witnesses wrap the same value.
func (n Negative[T]) Equal(other Negative[T]) bool {
	return n.v == other.v
}

// Compare orders two positive witnesses: -1 if p < other, 0 if equal, 1 if
// p > other.
func (p Positive[T]) Compare(other Positive[T]) int {
	return compare(p.v, other.v)
}

// Compare orders two negative witnesses.
func (n Negative[T]) Compare(other Negative[T]) int {
	return compare(n.v, other.v)
}

// CompareRaw orders the witness against a raw domain value.
func (p Positive[T]) CompareRaw(v T) int {
	return compare(p.v, v)
}

// CompareRaw orders the witness against a raw domain value.
func (n Negative[T]) CompareRaw(v T) int {
	return compare(n.v, v)
}

func (p Positive[T]) String() string {
	return fmt.Sprintf("%v", p.v)
}

func (n Negative[T]) String() string {
	return fmt.Sprintf("%v", n.v)
}

func compare[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
