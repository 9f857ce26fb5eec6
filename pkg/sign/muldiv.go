package sign

import "fmt"

// The sign of a product or quotient follows the usual rule: same signs give
// Positive, opposite signs give Negative. In-place variants exist only where
// the result class matches the receiver's class, which is why Negative*Negative
// and Positive*Negative return fresh witnesses with no assign form.
//
// Multiplication of two nonzero values is nonzero in the domains assumed
// here (no modular wraparound; float subnormal underflow is out of scope),
// so Mul needs no runtime check. Division does: a truncating quotient of two
// valid witnesses can be exactly zero, so every Div reports ErrResultIsZero
// instead of handing out a witness that lies.

// Mul returns the product of two positives.
func (p Positive[T]) Mul(rhs Positive[T]) Positive[T] {
	return Positive[T]{v: p.v * rhs.v}
}

// MulAssign multiplies rhs into the receiver.
func (p *Positive[T]) MulAssign(rhs Positive[T]) {
	p.v *= rhs.v
}

// MulNegative returns the product of a positive and a negative. The result
// class differs from the receiver's, so there is no assign form.
func (p Positive[T]) MulNegative(rhs Negative[T]) Negative[T] {
	return Negative[T]{v: p.v * rhs.v}
}

// Mul returns the product of two negatives, which is positive. No assign
// form: the result class differs from the receiver's.
func (n Negative[T]) Mul(rhs Negative[T]) Positive[T] {
	return Positive[T]{v: n.v * rhs.v}
}

// MulPositive returns the product of a negative and a positive.
func (n Negative[T]) MulPositive(rhs Positive[T]) Negative[T] {
	return Negative[T]{v: n.v * rhs.v}
}

// MulAssignPositive multiplies rhs into the receiver.
func (n *Negative[T]) MulAssignPositive(rhs Positive[T]) {
	n.v *= rhs.v
}

// Div returns the quotient of two positives. Fails with an error wrapping
// ErrResultIsZero when the quotient truncates to zero, e.g. Positive(1)
// divided by Positive(2) over an integer domain.
func (p Positive[T]) Div(rhs Positive[T]) (Positive[T], error) {
	q := p.v / rhs.v
	if q == 0 {
		return Positive[T]{}, fmt.Errorf("%v / %v: %w", p.v, rhs.v, ErrResultIsZero)
	}
	return Positive[T]{v: q}, nil
}

// DivAssign divides the receiver by rhs in place. On ErrResultIsZero the
// receiver is left unchanged.
func (p *Positive[T]) DivAssign(rhs Positive[T]) error {
	q, err := p.Div(rhs)
	if err != nil {
		return err
	}
	p.v = q.v
	return nil
}

// DivNegative returns the quotient of a positive by a negative. Zero-checked;
// no assign form.
func (p Positive[T]) DivNegative(rhs Negative[T]) (Negative[T], error) {
	q := p.v / rhs.v
	if q == 0 {
		return Negative[T]{}, fmt.Errorf("%v / %v: %w", p.v, rhs.v, ErrResultIsZero)
	}
	return Negative[T]{v: q}, nil
}

// Div returns the quotient of two negatives, which is positive. Zero-checked;
// no assign form.
func (n Negative[T]) Div(rhs Negative[T]) (Positive[T], error) {
	q := n.v / rhs.v
	if q == 0 {
		return Positive[T]{}, fmt.Errorf("%v / %v: %w", n.v, rhs.v, ErrResultIsZero)
	}
	return Positive[T]{v: q}, nil
}

// DivPositive returns the quotient of a negative by a positive. Zero-checked.
func (n Negative[T]) DivPositive(rhs Positive[T]) (Negative[T], error) {
	q := n.v / rhs.v
	if q == 0 {
		return Negative[T]{}, fmt.Errorf("%v / %v: %w", n.v, rhs.v, ErrResultIsZero)
	}
	return Negative[T]{v: q}, nil
}

// DivAssignPositive divides the receiver by rhs in place. On ErrResultIsZero
// the receiver is left unchanged.
func (n *Negative[T]) DivAssignPositive(rhs Positive[T]) error {
	q, err := n.DivPositive(rhs)
	if err != nil {
		return err
	}
	n.v = q.v
	return nil
}
