package lexer

import (
	"unicode"

	"github.com/funvibe/signum/internal/diagnostics"
	"github.com/funvibe/signum/internal/pipeline"
	"github.com/funvibe/signum/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	stream := NewTokenStream(New(ctx.SourceCode))

	for _, tok := range stream.Tokens() {
		if tok.Type != token.ILLEGAL {
			continue
		}
		if len(tok.Lexeme) > 0 && unicode.IsDigit(rune(tok.Lexeme[0])) {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrL002, tok,
				"number literal %q does not fit the int64 domain", tok.Lexeme,
			))
		} else {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrL001, tok,
				"illegal character %q", tok.Lexeme,
			))
		}
	}

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	ctx.TokenStream = stream
	return ctx
}
