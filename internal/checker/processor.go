package checker

import (
	"io"

	"github.com/funvibe/signum/internal/ast"
	"github.com/funvibe/signum/internal/pipeline"
)

// CheckProcessor runs the checker as the final pipeline stage and stores
// []Result in ctx.Results.
type CheckProcessor struct {
	Trace       bool
	TraceWriter io.Writer
}

func (cp *CheckProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok || program == nil {
		return ctx
	}
	// A program that failed to parse is not worth checking; partial results
	// would be misleading next to the parse diagnostics.
	if len(ctx.Errors) > 0 {
		return ctx
	}

	c := New()
	c.Trace = cp.Trace
	c.TraceWriter = cp.TraceWriter

	results, errs := c.Check(program)
	for _, err := range errs {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	ctx.Results = results
	ctx.Errors = append(ctx.Errors, errs...)
	return ctx
}
