package pipeline

import (
	"github.com/funvibe/ski/internal/diagnostics"
	"github.com/funvibe/ski/internal/term"
	"github.com/funvibe/ski/internal/token"
)

// PipelineContext carries one source text through the lexing and parsing
// stages. Stages append to Errors instead of aborting, so a caller sees
// every diagnostic the text produced.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	// Basis resolves uppercase letters to combinators during parsing.
	// Nil means the full default basis.
	Basis term.Basis

	TokenStream *token.Stream
	Term        term.Term

	Errors []*diagnostics.DiagnosticError
}

// Processor is a single pipeline stage.
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
		// Continue on errors so later stages can still contribute
		// diagnostics for the same input.
	}
	return ctx
}
