/*
File    : clasp/diag/diag.go

Package diag is the front-end's diagnostic sink: a general printf-style
entry point and a token-contextual one that renders a lexeme, line, and
column. Both write to an io.Writer (os.Stderr by default) and color the
error label the way go-mix/repl colors its REPL feedback.
*/
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/claspc/clasp/token"
)

var errorLabel = color.New(color.FgRed, color.Bold)

// Sink is the diagnostic writer shared by the lexer, parser, and CLI.
type Sink struct {
	Out io.Writer
}

// NewStderrSink returns a Sink writing to os.Stderr.
func NewStderrSink() *Sink {
	return &Sink{Out: os.Stderr}
}

// Errorf writes a general diagnostic, unrelated to any particular token
// (e.g. "could not open file %q").
func (s *Sink) Errorf(format string, args ...any) {
	errorLabel.Fprint(s.Out, "error: ")
	fmt.Fprintf(s.Out, format, args...)
	fmt.Fprintln(s.Out)
}

// TokenError writes a diagnostic anchored to tok: its lexeme, line, and
// column, plus the source line text for context.
func (s *Sink) TokenError(tok token.Token, msg string) {
	errorLabel.Fprint(s.Out, "error: ")
	fmt.Fprintf(s.Out, "Syntax error on token '%s': \"%s\" (line %d, column %d)\n",
		tok.Lexeme, msg, tok.LineIndex+1, tok.ColumnIndex+1)
	if tok.LineText != "" {
		fmt.Fprintf(s.Out, "  %s\n", tok.LineText)
	}
}

// LexError reports an unrecognised character, per the lexical-error
// branch of the error taxonomy.
func (s *Sink) LexError(tok token.Token) {
	s.TokenError(tok, "unrecognised character")
}

// InternalError reports a dispatch failure on an out-of-range AST kind:
// the "internal inconsistency" branch of the error taxonomy.
func (s *Sink) InternalError(format string, args ...any) {
	errorLabel.Fprint(s.Out, "internal error: ")
	fmt.Fprintf(s.Out, format, args...)
	fmt.Fprintln(s.Out)
}

// Exit codes. A single non-zero code is used per fatal category so a
// caller can distinguish "bad input" from "front-end bug" without
// parsing stderr.
const (
	ExitOK       = 0
	ExitSyntax   = 1
	ExitInternal = 2
)
