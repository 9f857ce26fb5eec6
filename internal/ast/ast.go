// Package ast defines the expression nodes for the sign-checking language.
package ast

import (
	"fmt"
	"strings"

	"github.com/funvibe/signum/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	String() string
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node: a sequence of expressions, one per line.
type Program struct {
	File        string
	Expressions []Expression
}

func (p *Program) TokenLiteral() string {
	if len(p.Expressions) > 0 {
		return p.Expressions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Expressions))
	for _, e := range p.Expressions {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "\n")
}

// NumberLiteral is a non-negative integer literal. It enters the checker as
// an unsigned operand: the grammar cannot produce a negative literal, so the
// "value >= 0" capability holds by construction.
type NumberLiteral struct {
	Token token.Token
	Value int64
}

func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Lexeme }
func (nl *NumberLiteral) String() string       { return fmt.Sprintf("%d", nl.Value) }
func (nl *NumberLiteral) GetToken() token.Token {
	if nl == nil {
		return token.Token{}
	}
	return nl.Token
}

// WitnessExpression validates its operand into a sign witness:
// pos(e) or neg(e).
type WitnessExpression struct {
	Token    token.Token // the 'pos' or 'neg' token
	Negative bool
	Operand  Expression
}

func (we *WitnessExpression) expressionNode()      {}
func (we *WitnessExpression) TokenLiteral() string { return we.Token.Lexeme }
func (we *WitnessExpression) String() string {
	name := "pos"
	if we.Negative {
		name = "neg"
	}
	return fmt.Sprintf("%s(%s)", name, we.Operand.String())
}
func (we *WitnessExpression) GetToken() token.Token {
	if we == nil {
		return token.Token{}
	}
	return we.Token
}

// PrefixExpression is a unary operator application, e.g. -x.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Lexeme }
func (pe *PrefixExpression) String() string {
	return fmt.Sprintf("(%s%s)", pe.Operator, pe.Right.String())
}
func (pe *PrefixExpression) GetToken() token.Token {
	if pe == nil {
		return token.Token{}
	}
	return pe.Token
}

// InfixExpression is a binary operator application.
type InfixExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *InfixExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", ie.Left.String(), ie.Operator, ie.Right.String())
}
func (ie *InfixExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}
