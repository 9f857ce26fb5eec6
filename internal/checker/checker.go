// Package checker evaluates parsed expressions while tracking sign classes
// through the resolution matrix.
//
// Only knowledge the matrix can propagate is kept: a pos()/neg() constructor
// introduces a sign class, a bare literal is an unsigned operand, and every
// operator application is resolved through sign.Resolve. Cells the matrix
// refuses to type are computed in the raw int64 domain and degrade the
// tracked class to unknown, exactly the fallback a caller of the library
// would write by hand.
package checker

import (
	"fmt"
	"io"

	"github.com/funvibe/signum/internal/ast"
	"github.com/funvibe/signum/internal/diagnostics"
	"github.com/funvibe/signum/pkg/sign"
)

// Class is the sign knowledge the checker has for a value. It extends the
// library's operand classes with ClassUnknown for values the matrix cannot
// type.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassPositive
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

// Result is the checker's verdict for one expression: its raw value, the
// statically resolved class of the whole expression, and whether the final
// operation allowed in-place reuse of its left operand.
type Result struct {
	Expr    string
	Value   int64
	Class   Class
	InPlace bool
}

type value struct {
	raw     int64
	class   Class
	inPlace bool
}

type Checker struct {
	// Trace makes every operator application print a line to TraceWriter.
	Trace       bool
	TraceWriter io.Writer
}

func New() *Checker {
	return &Checker{}
}

// Check evaluates every expression in the program. Expressions that fail
// (rejected witness, zero quotient, division by zero) produce a diagnostic
// instead of a result; the rest of the program is still checked.
func (c *Checker) Check(program *ast.Program) ([]Result, []*diagnostics.DiagnosticError) {
	var results []Result
	var errs []*diagnostics.DiagnosticError

	for _, expr := range program.Expressions {
		v, diag := c.eval(expr)
		if diag != nil {
			errs = append(errs, diag)
			continue
		}
		results = append(results, Result{
			Expr:    expr.String(),
			Value:   v.raw,
			Class:   v.class,
			InPlace: v.inPlace,
		})
	}

	return results, errs
}

func (c *Checker) eval(expr ast.Expression) (value, *diagnostics.DiagnosticError) {
	switch node := expr.(type) {
	case *ast.NumberLiteral:
		// The grammar cannot produce a negative literal, so the unsigned
		// capability holds by construction.
		return value{raw: node.Value, class: ClassUnsigned}, nil

	case *ast.WitnessExpression:
		return c.evalWitness(node)

	case *ast.PrefixExpression:
		return c.evalPrefix(node)

	case *ast.InfixExpression:
		left, diag := c.eval(node.Left)
		if diag != nil {
			return value{}, diag
		}
		right, diag := c.eval(node.Right)
		if diag != nil {
			return value{}, diag
		}
		return c.evalInfix(node, left, right)

	default:
		return value{}, diagnostics.NewError(
			diagnostics.ErrC001, expr.GetToken(),
			"cannot evaluate %q", expr.String(),
		)
	}
}

func (c *Checker) evalWitness(node *ast.WitnessExpression) (value, *diagnostics.DiagnosticError) {
	operand, diag := c.eval(node.Operand)
	if diag != nil {
		return value{}, diag
	}

	if node.Negative {
		// The operand names a magnitude: neg(5) is the negative witness
		// of -5.
		n, err := sign.TryNegative(-operand.raw)
		if err != nil {
			return value{}, diagnostics.NewError(
				diagnostics.ErrC001, node.Token,
				"neg(%d): %v", operand.raw, err,
			)
		}
		return value{raw: n.Value(), class: ClassNegative}, nil
	}

	p, err := sign.TryPositive(operand.raw)
	if err != nil {
		return value{}, diagnostics.NewError(
			diagnostics.ErrC001, node.Token,
			"pos(%d): %v", operand.raw, err,
		)
	}
	return value{raw: p.Value(), class: ClassPositive}, nil
}

func (c *Checker) evalPrefix(node *ast.PrefixExpression) (value, *diagnostics.DiagnosticError) {
	operand, diag := c.eval(node.Right)
	if diag != nil {
		return value{}, diag
	}
	if node.Operator != "-" {
		return value{}, diagnostics.NewError(
			diagnostics.ErrC001, node.Token,
			"unknown prefix operator %q", node.Operator,
		)
	}

	// Negation is the one total bijection in the matrix: it flips a known
	// sign class. Anything weaker (unsigned may be zero) degrades to unknown.
	switch operand.class {
	case ClassPositive:
		n := c.asPositive(operand).Neg()
		return value{raw: n.Value(), class: ClassNegative}, nil
	case ClassNegative:
		p := c.asNegative(operand).Neg()
		return value{raw: p.Value(), class: ClassPositive}, nil
	default:
		return value{raw: -operand.raw, class: ClassUnknown}, nil
	}
}

func (c *Checker) evalInfix(node *ast.InfixExpression, left, right value) (value, *diagnostics.DiagnosticError) {
	if node.Operator == "/" && right.raw == 0 {
		return value{}, diagnostics.NewError(
			diagnostics.ErrC003, node.Token,
			"division by zero",
		)
	}

	res := resolve(node.Operator, left.class, right.class)
	c.trace(node, left, right, res)

	if res.Kind == sign.ResolutionNone {
		if raw, ok := c.applyRaw(node.Operator, left, right); ok {
			return value{raw: raw, class: ClassUnknown}, nil
		}
		raw, diag := rawInfix(node, left.raw, right.raw)
		if diag != nil {
			return value{}, diag
		}
		return value{raw: raw, class: ClassUnknown}, nil
	}

	out, err := c.applyTyped(node.Operator, left, right)
	if err != nil {
		return value{}, diagnostics.NewError(
			diagnostics.ErrC002, node.Token,
			"%s: %v", node.String(), err,
		)
	}
	out.inPlace = res.InPlace
	return out, nil
}

// applyTyped runs the matrix cell through the actual library operation, so
// the checker exercises the same code path a caller of pkg/sign would.
func (c *Checker) applyTyped(operator string, left, right value) (value, error) {
	type key struct {
		op       string
		lhs, rhs Class
	}

	switch (key{operator, left.class, right.class}) {
	case key{"+", ClassPositive, ClassPositive}:
		return positive(c.asPositive(left).Add(c.asPositive(right))), nil
	case key{"+", ClassNegative, ClassNegative}:
		return negative(c.asNegative(left).Add(c.asNegative(right))), nil
	case key{"+", ClassPositive, ClassUnsigned}:
		return positive(sign.AddUnsigned(c.asPositive(left), uint64(right.raw))), nil

	case key{"-", ClassPositive, ClassNegative}:
		return positive(c.asPositive(left).SubNegative(c.asNegative(right))), nil
	case key{"-", ClassNegative, ClassPositive}:
		return negative(c.asNegative(left).SubPositive(c.asPositive(right))), nil
	case key{"-", ClassNegative, ClassUnsigned}:
		return negative(sign.SubUnsigned(c.asNegative(left), uint64(right.raw))), nil

	case key{"*", ClassPositive, ClassPositive}:
		return positive(c.asPositive(left).Mul(c.asPositive(right))), nil
	case key{"*", ClassNegative, ClassNegative}:
		return positive(c.asNegative(left).Mul(c.asNegative(right))), nil
	case key{"*", ClassPositive, ClassNegative}:
		return negative(c.asPositive(left).MulNegative(c.asNegative(right))), nil
	case key{"*", ClassNegative, ClassPositive}:
		return negative(c.asNegative(left).MulPositive(c.asPositive(right))), nil

	case key{"/", ClassPositive, ClassPositive}:
		p, err := c.asPositive(left).Div(c.asPositive(right))
		return positive(p), err
	case key{"/", ClassNegative, ClassNegative}:
		p, err := c.asNegative(left).Div(c.asNegative(right))
		return positive(p), err
	case key{"/", ClassPositive, ClassNegative}:
		n, err := c.asPositive(left).DivNegative(c.asNegative(right))
		return negative(n), err
	case key{"/", ClassNegative, ClassPositive}:
		n, err := c.asNegative(left).DivPositive(c.asPositive(right))
		return negative(n), err
	case key{"/", ClassPositive, ClassUnsigned}:
		p, err := sign.DivPositiveUnsigned(c.asPositive(left), uint64(right.raw))
		return positive(p), err
	case key{"/", ClassNegative, ClassUnsigned}:
		n, err := sign.DivNegativeUnsigned(c.asNegative(left), uint64(right.raw))
		return negative(n), err
	}

	// Unreachable: resolve() only routes matrix cells here.
	panic(fmt.Sprintf("checker: no typed operation for %s %s %s", left.class, operator, right.class))
}

// applyRaw routes unresolved cells that still have a raw-result library
// operation through it. Cells with an unsigned or unknown LHS have no
// library counterpart and fall through to rawInfix.
func (c *Checker) applyRaw(operator string, left, right value) (int64, bool) {
	type key struct {
		op       string
		lhs, rhs Class
	}

	switch (key{operator, left.class, right.class}) {
	case key{"+", ClassPositive, ClassNegative}:
		return c.asPositive(left).AddNegative(c.asNegative(right)), true
	case key{"+", ClassNegative, ClassPositive}:
		return c.asNegative(left).AddPositive(c.asPositive(right)), true
	case key{"+", ClassNegative, ClassUnsigned}:
		return sign.AddNegativeUnsigned(c.asNegative(left), uint64(right.raw)), true

	case key{"-", ClassPositive, ClassPositive}:
		return c.asPositive(left).Sub(c.asPositive(right)), true
	case key{"-", ClassNegative, ClassNegative}:
		return c.asNegative(left).Sub(c.asNegative(right)), true
	case key{"-", ClassPositive, ClassUnsigned}:
		return sign.SubPositiveUnsigned(c.asPositive(left), uint64(right.raw)), true

	case key{"*", ClassPositive, ClassUnsigned}:
		return sign.MulPositiveUnsigned(c.asPositive(left), uint64(right.raw)), true
	case key{"*", ClassNegative, ClassUnsigned}:
		return sign.MulNegativeUnsigned(c.asNegative(left), uint64(right.raw)), true
	}
	return 0, false
}

func positive(p sign.Positive[int64]) value {
	return value{raw: p.Value(), class: ClassPositive}
}

func negative(n sign.Negative[int64]) value {
	return value{raw: n.Value(), class: ClassNegative}
}

func (c *Checker) asPositive(v value) sign.Positive[int64] {
	p, err := sign.TryPositive(v.raw)
	if err != nil {
		// Unreachable: class tracking guarantees the raw value's sign.
		panic(err)
	}
	return p
}

func (c *Checker) asNegative(v value) sign.Negative[int64] {
	n, err := sign.TryNegative(v.raw)
	if err != nil {
		// Unreachable: class tracking guarantees the raw value's sign.
		panic(err)
	}
	return n
}

func rawInfix(node *ast.InfixExpression, left, right int64) (int64, *diagnostics.DiagnosticError) {
	switch node.Operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		return left / right, nil
	default:
		return 0, diagnostics.NewError(
			diagnostics.ErrC001, node.Token,
			"unknown operator %q", node.Operator,
		)
	}
}

func resolve(operator string, lhs, rhs Class) sign.Resolution {
	op, ok := opFor(operator)
	if !ok {
		return sign.Resolution{Kind: sign.ResolutionNone}
	}
	lc, ok := classFor(lhs)
	if !ok {
		return sign.Resolution{Kind: sign.ResolutionNone}
	}
	rc, ok := classFor(rhs)
	if !ok {
		return sign.Resolution{Kind: sign.ResolutionNone}
	}
	return sign.Resolve(op, lc, rc)
}

func opFor(operator string) (sign.Op, bool) {
	switch operator {
	case "+":
		return sign.OpAdd, true
	case "-":
		return sign.OpSub, true
	case "*":
		return sign.OpMul, true
	case "/":
		return sign.OpDiv, true
	default:
		return 0, false
	}
}

func classFor(c Class) (sign.Class, bool) {
	switch c {
	case ClassPositive:
		return sign.ClassPositive, true
	case ClassNegative:
		return sign.ClassNegative, true
	case ClassUnsigned:
		return sign.ClassUnsigned, true
	default:
		return 0, false
	}
}

func (c *Checker) trace(node *ast.InfixExpression, left, right value, res sign.Resolution) {
	if !c.Trace || c.TraceWriter == nil {
		return
	}
	if res.Kind == sign.ResolutionNone {
		fmt.Fprintf(c.TraceWriter, "trace: %s %s %s => no static result\n",
			left.class, node.Operator, right.class)
		return
	}
	fmt.Fprintf(c.TraceWriter, "trace: %s %s %s => %s (%s, in-place %v)\n",
		left.class, node.Operator, right.class, res.Result, res.Kind, res.InPlace)
}
