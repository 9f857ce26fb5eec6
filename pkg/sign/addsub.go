package sign

// Addition and subtraction keep a static sign only when both operands pull
// the result away from zero. The mixed-sign cells (Positive+Negative,
// Positive-Positive, ...) return a raw T instead of a witness: their result
// can land on either side of zero, or exactly on it, so the caller
// re-validates with TryPositive or TryNegative if a witness is needed.

// Add returns the sum of two positives. The sum strictly exceeds either
// addend, so it cannot be zero.
func (p Positive[T]) Add(rhs Positive[T]) Positive[T] {
	return Positive[T]{v: p.v + rhs.v}
}

// AddAssign adds rhs into the receiver. Sound in place: the result class
// matches the receiver's.
func (p *Positive[T]) AddAssign(rhs Positive[T]) {
	p.v += rhs.v
}

// Add returns the sum of two negatives.
func (n Negative[T]) Add(rhs Negative[T]) Negative[T] {
	return Negative[T]{v: n.v + rhs.v}
}

// AddAssign adds rhs into the receiver.
func (n *Negative[T]) AddAssign(rhs Negative[T]) {
	n.v += rhs.v
}

// AddNegative returns the raw sum of a positive and a negative. No sign is
// known statically.
func (p Positive[T]) AddNegative(rhs Negative[T]) T {
	return p.v + rhs.v
}

// AddPositive returns the raw sum of a negative and a positive.
func (n Negative[T]) AddPositive(rhs Positive[T]) T {
	return n.v + rhs.v
}

// SubNegative subtracts a negative from a positive. Equivalent to adding
// two positives, so the result stays positive.
func (p Positive[T]) SubNegative(rhs Negative[T]) Positive[T] {
	return Positive[T]{v: p.v - rhs.v}
}

// SubAssignNegative subtracts rhs from the receiver in place.
func (p *Positive[T]) SubAssignNegative(rhs Negative[T]) {
	p.v -= rhs.v
}

// SubPositive subtracts a positive from a negative. Equivalent to adding
// two negatives, so the result stays negative.
func (n Negative[T]) SubPositive(rhs Positive[T]) Negative[T] {
	return Negative[T]{v: n.v - rhs.v}
}

// SubAssignPositive subtracts rhs from the receiver in place.
func (n *Negative[T]) SubAssignPositive(rhs Positive[T]) {
	n.v -= rhs.v
}

// Sub returns the raw difference of two positives. The magnitudes are
// unordered, so no sign is known statically.
func (p Positive[T]) Sub(rhs Positive[T]) T {
	return p.v - rhs.v
}

// Sub returns the raw difference of two negatives.
func (n Negative[T]) Sub(rhs Negative[T]) T {
	return n.v - rhs.v
}
