package sign_test

import (
	"testing"

	"github.com/funvibe/signum/pkg/sign"
)

// TestResolveTable pins down every cell of the resolution matrix. Cells not
// listed here must resolve to ResolutionNone; that is asserted separately by
// TestResolveExhaustive.
func TestResolveTable(t *testing.T) {
	const (
		P = sign.ClassPositive
		N = sign.ClassNegative
		U = sign.ClassUnsigned
	)

	tests := []struct {
		op       sign.Op
		lhs, rhs sign.Class
		want     sign.Resolution
	}{
		{sign.OpAdd, P, P, sign.Resolution{Kind: sign.ResolutionStatic, Result: P, InPlace: true}},
		{sign.OpAdd, N, N, sign.Resolution{Kind: sign.ResolutionStatic, Result: N, InPlace: true}},
		{sign.OpAdd, P, U, sign.Resolution{Kind: sign.ResolutionStatic, Result: P, InPlace: true}},
		{sign.OpAdd, P, N, sign.Resolution{Kind: sign.ResolutionNone}},
		{sign.OpAdd, N, P, sign.Resolution{Kind: sign.ResolutionNone}},
		{sign.OpAdd, N, U, sign.Resolution{Kind: sign.ResolutionNone}},

		{sign.OpSub, P, N, sign.Resolution{Kind: sign.ResolutionStatic, Result: P, InPlace: true}},
		{sign.OpSub, N, P, sign.Resolution{Kind: sign.ResolutionStatic, Result: N, InPlace: true}},
		{sign.OpSub, N, U, sign.Resolution{Kind: sign.ResolutionStatic, Result: N, InPlace: true}},
		{sign.OpSub, P, P, sign.Resolution{Kind: sign.ResolutionNone}},
		{sign.OpSub, N, N, sign.Resolution{Kind: sign.ResolutionNone}},
		{sign.OpSub, P, U, sign.Resolution{Kind: sign.ResolutionNone}},

		{sign.OpMul, P, P, sign.Resolution{Kind: sign.ResolutionStatic, Result: P, InPlace: true}},
		{sign.OpMul, N, N, sign.Resolution{Kind: sign.ResolutionStatic, Result: P, InPlace: false}},
		{sign.OpMul, P, N, sign.Resolution{Kind: sign.ResolutionStatic, Result: N, InPlace: false}},
		{sign.OpMul, N, P, sign.Resolution{Kind: sign.ResolutionStatic, Result: N, InPlace: true}},
		{sign.OpMul, P, U, sign.Resolution{Kind: sign.ResolutionNone}},
		{sign.OpMul, N, U, sign.Resolution{Kind: sign.ResolutionNone}},

		{sign.OpDiv, P, P, sign.Resolution{Kind: sign.ResolutionZeroCheck, Result: P, InPlace: true}},
		{sign.OpDiv, N, N, sign.Resolution{Kind: sign.ResolutionZeroCheck, Result: P, InPlace: false}},
		{sign.OpDiv, P, N, sign.Resolution{Kind: sign.ResolutionZeroCheck, Result: N, InPlace: false}},
		{sign.OpDiv, N, P, sign.Resolution{Kind: sign.ResolutionZeroCheck, Result: N, InPlace: true}},
		{sign.OpDiv, P, U, sign.Resolution{Kind: sign.ResolutionZeroCheck, Result: P, InPlace: true}},
		{sign.OpDiv, N, U, sign.Resolution{Kind: sign.ResolutionZeroCheck, Result: N, InPlace: true}},
	}

	for _, tt := range tests {
		name := tt.lhs.String() + " " + tt.op.String() + " " + tt.rhs.String()
		t.Run(name, func(t *testing.T) {
			got := sign.Resolve(tt.op, tt.lhs, tt.rhs)
			if got != tt.want {
				t.Errorf("Resolve(%v, %v, %v) = %+v, want %+v", tt.op, tt.lhs, tt.rhs, got, tt.want)
			}
		})
	}
}

// TestResolveExhaustive checks structural properties over the whole grid:
// nothing with an unsigned LHS resolves, in-place is offered exactly when
// the result class matches the LHS class, and division is the only operator
// carrying the zero check.
func TestResolveExhaustive(t *testing.T) {
	for _, op := range sign.Ops() {
		for _, lhs := range sign.Classes() {
			for _, rhs := range sign.Classes() {
				res := sign.Resolve(op, lhs, rhs)

				if lhs == sign.ClassUnsigned && res.Kind != sign.ResolutionNone {
					t.Errorf("Resolve(%v, %v, %v): unsigned LHS must not resolve", op, lhs, rhs)
				}
				if res.Kind == sign.ResolutionNone {
					continue
				}
				if res.InPlace != (res.Result == lhs) {
					t.Errorf("Resolve(%v, %v, %v): InPlace = %v with result %v", op, lhs, rhs, res.InPlace, res.Result)
				}
				if (res.Kind == sign.ResolutionZeroCheck) != (op == sign.OpDiv) {
					t.Errorf("Resolve(%v, %v, %v): kind %v", op, lhs, rhs, res.Kind)
				}
			}
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if got := sign.OpAdd.String(); got != "+" {
		t.Errorf("OpAdd.String() = %q", got)
	}
	if got := sign.OpDiv.String(); got != "/" {
		t.Errorf("OpDiv.String() = %q", got)
	}
	if got := sign.ClassPositive.String(); got != "positive" {
		t.Errorf("ClassPositive.String() = %q", got)
	}
	if got := sign.ClassUnsigned.String(); got != "unsigned" {
		t.Errorf("ClassUnsigned.String() = %q", got)
	}
	if got := sign.ResolutionZeroCheck.String(); got != "zero-check" {
		t.Errorf("ResolutionZeroCheck.String() = %q", got)
	}
}
