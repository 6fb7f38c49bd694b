/*
File    : clasp/parser/parser.go

Package parser implements a hand-written recursive-descent parser for
Clasp. Unlike the teacher's Pratt/precedence-table parser, this one
follows spec.md's named-function grammar literally (parseEquality,
parseComparison, parseTerm, ... parsePrimary) — each precedence level is
its own function, grounded in original_source/include/clasp/parser.h's
parser_equality/parser_comparison/.../parser_primary names.

Error reporting has no recovery (spec §4.2, §7): the first unexpected
token reports a diagnostic through the sink and unwinds the whole parse
via panic/recover, surfacing as a non-nil error from Compile. Compile's
caller decides what "fatal" means for its process: the one-shot CLI
driver exits with diag.ExitSyntax, the REPL just reports and reads the
next line.
*/
package parser

import (
	"fmt"

	"github.com/claspc/clasp/ast"
	"github.com/claspc/clasp/diag"
	"github.com/claspc/clasp/lexer"
	"github.com/claspc/clasp/token"
)

// Parser holds all state for one parse: the lexer it pulls tokens from,
// the variable table (a scope chain, see vartable.go), and the
// semicolon-policy flag from spec §4.2.
type Parser struct {
	lex  *lexer.Lexer
	sink *diag.Sink

	vars *Scope

	// puncNextStmt is spec §4.2's "punc-next-stmt": true when the
	// statement just parsed requires a terminating ';'. Block-tailed
	// statements (if/while/fnDecl/blockStmt) clear it; leaf statements
	// set it.
	puncNextStmt bool
}

// New constructs a Parser over lex, with a fresh root scope. This is
// the entry point callers use to start a parse: construct a lexer
// first, then wrap it in a Parser and call Compile.
//
// Parameters:
//
//	lex  - the lexer the parser pulls tokens from; must already be
//	       positioned at the first token (i.e. freshly built via
//	       lexer.New, never Advance()'d by the caller)
//	sink - receives fatal diagnostics (unrecognised character, syntax
//	       error, internal inconsistency); a nil sink silently drops
//	       them, which is only useful for tests asserting on the
//	       returned error itself rather than printed output
//
// Returns:
//
//	A pointer to a newly constructed Parser, with its own root scope.
func New(lex *lexer.Lexer, sink *diag.Sink) *Parser {
	return &Parser{lex: lex, sink: sink, vars: NewScope(nil)}
}

// parseFatal is the sentinel panic value unwinding a parse on the first
// unrecoverable error. The diagnostic has already been written to the
// sink by the time this is raised; the value itself only carries enough
// to build a Go error for Compile's caller.
type parseFatal struct {
	msg string
}

func (e parseFatal) Error() string { return e.msg }

// fail reports a syntax error on tok and aborts the parse (spec §4.2:
// "Syntax error on token '<lexeme>': \"<explanation>\"").
func (p *Parser) fail(tok token.Token, explanation string) {
	if p.sink != nil {
		p.sink.TokenError(tok, explanation)
	}
	panic(parseFatal{msg: fmt.Sprintf("syntax error on token %q: %s", tok.Lexeme, explanation)})
}

// internalFail reports an internal-error diagnostic (spec §7's
// "internal inconsistency" branch) and aborts the parse.
func (p *Parser) internalFail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.sink != nil {
		p.sink.InternalError("%s", msg)
	}
	panic(parseFatal{msg: msg})
}

// cur/peek mirror the lexer's Current/Next tokens so parse functions
// read tokens without reaching into p.lex directly.
func (p *Parser) cur() token.Token  { return p.lex.Current }
func (p *Parser) peek() token.Token { return p.lex.Next }

// advance shifts the lexer's token window forward by one and returns
// the token that was current before the shift. An UNKNOWN token
// surfacing here is always fatal (spec §4.1's failure model: "the
// parser treats UNKNOWN as an unrecoverable error").
func (p *Parser) advance() token.Token {
	tok := p.lex.Advance()
	if tok.Kind == token.UNKNOWN {
		p.fail(tok, "unrecognised character")
	}
	return tok
}

// check reports whether the current token has kind k, without
// consuming it.
func (p *Parser) check(k token.Kind) bool {
	return p.cur().Kind == k
}

// match consumes and returns the current token if it has kind k,
// reporting ok=false (without consuming) otherwise.
func (p *Parser) match(k token.Kind) (token.Token, bool) {
	if !p.check(k) {
		return token.Token{}, false
	}
	return p.advance(), true
}

// expect consumes the current token, failing the parse if it does not
// have kind k.
func (p *Parser) expect(k token.Kind, explanation string) token.Token {
	if !p.check(k) {
		p.fail(p.cur(), explanation)
	}
	return p.advance()
}

// Compile is the parser's top-level entry point. It drives the whole
// parse to completion:
//  1. Parses statements one at a time until the lexer reports EOF.
//  2. After each statement, consumes the trailing ';' if the statement
//     just parsed requires one (see puncNextStmt's doc comment).
//  3. Wraps the resulting statement list in a single Block node (spec
//     §4.2: "compile() returns a single Block node wrapping all
//     top-level statements until EOF").
//
// There is no error recovery: the first syntax error anywhere in the
// source unwinds the whole parse via the parseFatal panic/recover
// pair below, and Compile converts that into a returned error rather
// than letting it escape to the caller.
//
// Returns:
//
//	root - the top-level Block node, or nil if a fatal error occurred
//	err  - non-nil iff parsing stopped early on an unrecoverable
//	       syntax or internal error; the diagnostic has already been
//	       written to the sink by the time this returns
func (p *Parser) Compile() (root *ast.BlockNode, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pf, ok := r.(parseFatal); ok {
				err = pf
				return
			}
			panic(r)
		}
	}()

	var stmts []ast.Node
	for !p.check(token.EOF) {
		// Parse one statement, then consume its trailing ';' only if
		// that statement's parse function asked for one.
		stmts = append(stmts, p.parseStatement())
		if p.puncNextStmt {
			p.expect(token.SEMICOLON, "expected ';' after statement")
		}
	}
	return &ast.BlockNode{Body: stmts}, nil
}
