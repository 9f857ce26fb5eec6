// Package pipeline chains the processing stages (lex, parse, check) over a
// shared context.
package pipeline

import (
	"github.com/funvibe/signum/internal/ast"
	"github.com/funvibe/signum/internal/diagnostics"
	"github.com/funvibe/signum/internal/token"
)

// TokenStream is a buffered token sequence with lookahead, produced by the
// lexer stage and consumed by the parser.
type TokenStream interface {
	Next() token.Token
	Peek(n int) []token.Token
}

// PipelineContext is the state threaded through the stages. Results is
// stage-typed ([]checker.Result after the check stage); callers assert the
// concrete type, same as AstRoot.
type PipelineContext struct {
	FilePath   string
	SourceCode string

	TokenStream TokenStream
	AstRoot     ast.Node
	Results     any

	Errors []*diagnostics.DiagnosticError
}

// NewPipelineContext wraps source code into a fresh context.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages.
	}
	return ctx
}
