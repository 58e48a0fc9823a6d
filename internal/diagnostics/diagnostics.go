package diagnostics

import (
	"fmt"

	"github.com/funvibe/ski/internal/token"
)

type ErrorCode string

const (
	// Lexer errors
	ErrL001 ErrorCode = "L001" // illegal character

	// Parser errors
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // unbalanced parenthesis
	ErrP003 ErrorCode = "P003" // empty expression
	ErrP004 ErrorCode = "P004" // malformed abstraction
	ErrP005 ErrorCode = "P005" // unknown combinator
)

// DiagnosticError is a positioned, coded syntax error. The parser never
// recovers from these internally; they are collected on the pipeline
// context and surface to the caller unchanged.
type DiagnosticError struct {
	Code    ErrorCode
	Message string
	File    string
	Line    int
	Column  int
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", e.File, e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: [%s] %s", e.Line, e.Column, e.Code, e.Message)
}
