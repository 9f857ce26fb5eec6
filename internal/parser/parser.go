package parser

import (
	"github.com/funvibe/signum/internal/ast"
	"github.com/funvibe/signum/internal/diagnostics"
	"github.com/funvibe/signum/internal/pipeline"
	"github.com/funvibe/signum/internal/token"
)

// Operator precedence levels.
const (
	_ int = iota
	LOWEST
	SUM     // + -
	PRODUCT // * /
	PREFIX  // -x
)

// MaxRecursionDepth bounds nested expressions so malicious input cannot
// blow the stack.
const MaxRecursionDepth = 200

var precedences = map[token.TokenType]int{
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream pipeline.TokenStream
	ctx    *pipeline.PipelineContext

	curToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	depth int
}

func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.NUMBER: p.parseNumberLiteral,
		token.MINUS:  p.parsePrefixExpression,
		token.LPAREN: p.parseGroupedExpression,
		token.POS:    p.parseWitnessExpression,
		token.NEG:    p.parseWitnessExpression,
	}
	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
	}

	// Prime curToken; lookahead reads the stream without consuming.
	p.nextToken()
	return p
}

// ParseProgram parses the whole source: one expression per line.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		expr := p.parseExpression(LOWEST)
		if expr == nil {
			p.skipToExpressionBoundary()
			continue
		}
		program.Expressions = append(program.Expressions, expr)

		if !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.EOF) {
			trailing := p.peek()
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP004,
				trailing,
				"unexpected %q after expression", trailing.Lexeme,
			))
			p.skipToExpressionBoundary()
			continue
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP003,
			p.curToken,
			"expression too complex: recursion depth limit exceeded",
		))
		// Skip the rest of the line to avoid a cascade of errors.
		p.skipToExpressionBoundary()
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for !p.peekTokenIs(token.NEWLINE) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peek().Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		nextExp := infix(leftExp)
		if nextExp == nil {
			return nil
		}
		leftExp = nextExp
	}

	return leftExp
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}

	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume '('

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

// parseWitnessExpression parses pos(expr) and neg(expr).
func (p *Parser) parseWitnessExpression() ast.Expression {
	expression := &ast.WitnessExpression{
		Token:    p.curToken,
		Negative: p.curTokenIs(token.NEG),
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken() // move to the operand

	expression.Operand = p.parseExpression(LOWEST)
	if expression.Operand == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expression
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(int64)
	if !ok {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001,
			p.curToken,
			"malformed number literal %q", p.curToken.Lexeme,
		))
		return nil
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) nextToken() {
	p.curToken = p.stream.Next()
}

// peek inspects the upcoming token without consuming it.
func (p *Parser) peek() token.Token {
	if toks := p.stream.Peek(1); len(toks) > 0 {
		return toks[0]
	}
	return token.Token{Type: token.EOF, Line: p.curToken.Line, Column: p.curToken.Column}
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peek().Type == t
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	got := p.peek()
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		got,
		"expected %q, got %q", string(t), got.Lexeme,
	))
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek().Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	lexeme := tok.Lexeme
	if tok.Type == token.EOF {
		lexeme = "end of input"
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP002,
		tok,
		"unexpected %q at start of expression", lexeme,
	))
}

// skipToExpressionBoundary advances to the next NEWLINE or EOF so one bad
// expression does not poison the rest of the input.
func (p *Parser) skipToExpressionBoundary() {
	for !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}
