// Package diagnostics carries coded, position-annotated errors across the
// lex/parse/check pipeline. Codes are grouped by stage: Lxxx lexing, Pxxx
// parsing, Cxxx checking.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/signum/internal/token"
)

type ErrorCode string

const (
	// Lexing
	ErrL001 ErrorCode = "L001" // illegal character
	ErrL002 ErrorCode = "L002" // malformed number literal

	// Parsing
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // no prefix parse rule for token
	ErrP003 ErrorCode = "P003" // expression too complex
	ErrP004 ErrorCode = "P004" // trailing input after expression

	// Checking
	ErrC001 ErrorCode = "C001" // witness constructor rejected the value
	ErrC002 ErrorCode = "C002" // division result truncated to zero
	ErrC003 ErrorCode = "C003" // division by zero
)

// DiagnosticError is a positioned error produced by a pipeline stage. File
// is backfilled by the processors; the lexer and parser only know offsets.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
}

// NewError builds a diagnostic anchored at tok's position.
func NewError(code ErrorCode, tok token.Token, format string, args ...any) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Code, e.Message)
}
