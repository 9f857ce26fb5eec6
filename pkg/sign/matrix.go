package sign

// The resolution matrix as data. The typed methods and functions in this
// package are the compiled-down form of this table; Resolve exposes the same
// policy for callers that classify operands at runtime (an expression
// checker, a code generator, documentation tooling).

// Op identifies an arithmetic operator in the resolution matrix.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Class identifies the sign knowledge attached to an operand. Unsigned is a
// weaker capability than the two sign classes: it admits zero.
type Class uint8

const (
	ClassPositive Class = iota
	ClassNegative
	ClassUnsigned
)

func (c Class) String() string {
	switch c {
	case ClassPositive:
		return "positive"
	case ClassNegative:
		return "negative"
	case ClassUnsigned:
		return "unsigned"
	default:
		return "unknown"
	}
}

// ResolutionKind classifies a matrix cell.
type ResolutionKind uint8

const (
	// ResolutionNone: no typed operation exists for the cell. The caller
	// computes in the raw domain and re-validates.
	ResolutionNone ResolutionKind = iota
	// ResolutionStatic: the result sign is statically known and the
	// operation is infallible.
	ResolutionStatic
	// ResolutionZeroCheck: the result sign is statically known but the
	// magnitude can degenerate to zero, so the operation re-checks the raw
	// result and may fail with ErrResultIsZero.
	ResolutionZeroCheck
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolutionNone:
		return "none"
	case ResolutionStatic:
		return "static"
	case ResolutionZeroCheck:
		return "zero-check"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of one matrix cell. Result and InPlace are
// meaningful only when Kind is not ResolutionNone. InPlace is true exactly
// when the result class equals the LHS class, which is what makes reusing
// the left operand's storage sound.
type Resolution struct {
	Kind    ResolutionKind
	Result  Class
	InPlace bool
}

type cell struct {
	op       Op
	lhs, rhs Class
}

var matrix = map[cell]Resolution{
	{OpAdd, ClassPositive, ClassPositive}: {Kind: ResolutionStatic, Result: ClassPositive, InPlace: true},
	{OpAdd, ClassNegative, ClassNegative}: {Kind: ResolutionStatic, Result: ClassNegative, InPlace: true},
	{OpAdd, ClassPositive, ClassUnsigned}: {Kind: ResolutionStatic, Result: ClassPositive, InPlace: true},

	{OpSub, ClassPositive, ClassNegative}: {Kind: ResolutionStatic, Result: ClassPositive, InPlace: true},
	{OpSub, ClassNegative, ClassPositive}: {Kind: ResolutionStatic, Result: ClassNegative, InPlace: true},
	{OpSub, ClassNegative, ClassUnsigned}: {Kind: ResolutionStatic, Result: ClassNegative, InPlace: true},

	{OpMul, ClassPositive, ClassPositive}: {Kind: ResolutionStatic, Result: ClassPositive, InPlace: true},
	{OpMul, ClassNegative, ClassNegative}: {Kind: ResolutionStatic, Result: ClassPositive, InPlace: false},
	{OpMul, ClassPositive, ClassNegative}: {Kind: ResolutionStatic, Result: ClassNegative, InPlace: false},
	{OpMul, ClassNegative, ClassPositive}: {Kind: ResolutionStatic, Result: ClassNegative, InPlace: true},

	{OpDiv, ClassPositive, ClassPositive}: {Kind: ResolutionZeroCheck, Result: ClassPositive, InPlace: true},
	{OpDiv, ClassNegative, ClassNegative}: {Kind: ResolutionZeroCheck, Result: ClassPositive, InPlace: false},
	{OpDiv, ClassPositive, ClassNegative}: {Kind: ResolutionZeroCheck, Result: ClassNegative, InPlace: false},
	{OpDiv, ClassNegative, ClassPositive}: {Kind: ResolutionZeroCheck, Result: ClassNegative, InPlace: true},
	{OpDiv, ClassPositive, ClassUnsigned}: {Kind: ResolutionZeroCheck, Result: ClassPositive, InPlace: true},
	{OpDiv, ClassNegative, ClassUnsigned}: {Kind: ResolutionZeroCheck, Result: ClassNegative, InPlace: true},
}

// Resolve looks up one cell of the resolution matrix. Cells absent from the
// table — every mixed-sign Add, same-sign Sub, unsigned Mul, and anything
// with an Unsigned LHS — resolve to ResolutionNone.
func Resolve(op Op, lhs, rhs Class) Resolution {
	if r, ok := matrix[cell{op, lhs, rhs}]; ok {
		return r
	}
	return Resolution{Kind: ResolutionNone}
}

// Ops lists the operators covered by the matrix, in display order.
func Ops() []Op {
	return []Op{OpAdd, OpSub, OpMul, OpDiv}
}

// Classes lists the operand classes covered by the matrix, in display order.
func Classes() []Class {
	return []Class{ClassPositive, ClassNegative, ClassUnsigned}
}
