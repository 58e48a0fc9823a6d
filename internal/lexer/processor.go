package lexer

import (
	"fmt"

	"github.com/funvibe/ski/internal/diagnostics"
	"github.com/funvibe/ski/internal/pipeline"
	"github.com/funvibe/ski/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens := New(ctx.SourceCode).Tokenize()
	for _, tok := range tokens {
		if tok.Type == token.ILLEGAL {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrL001,
				tok,
				fmt.Sprintf("illegal character %q", tok.Lexeme),
			))
		}
	}
	ctx.TokenStream = token.NewStream(tokens)
	return ctx
}
