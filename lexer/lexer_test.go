/*
File    : clasp/lexer/lexer_test.go
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/claspc/clasp/diag"
	"github.com/claspc/clasp/token"
)

func lex(src string) []token.Token {
	read, ctx := NewStringSource(src)
	l := New(read, ctx, nil)
	return l.ConsumeTokens()
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexer_MaximalMunchOperators(t *testing.T) {
	toks := lex("++ -- == <= >= != += -= *= /= %= ^= ~= -> <-")
	assert.Equal(t, []token.Kind{
		token.PLUS_PLUS, token.MINUS_MINUS, token.EQ_EQ, token.LESS_EQ,
		token.GREATER_EQ, token.BANG_EQ, token.PLUS_EQ, token.MINUS_EQ,
		token.STAR_EQ, token.SLASH_EQ, token.PERCENT_EQ, token.CARET_EQ,
		token.TILDE_EQ, token.RIGHT_ARROW, token.LEFT_ARROW,
	}, kinds(toks))
}

func TestLexer_SingleCharFallback(t *testing.T) {
	toks := lex("+ - * / % ^ ~ = ! < > ( ) [ ] { } , ; :")
	assert.Equal(t, []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.CARET, token.TILDE, token.ASSIGN, token.BANG, token.LESS,
		token.GREATER, token.LPAREN, token.RPAREN, token.LBRACKET,
		token.RBRACKET, token.LBRACE, token.RBRACE, token.COMMA,
		token.SEMICOLON, token.COLON,
	}, kinds(toks))
}

func TestLexer_Keywords(t *testing.T) {
	toks := lex("return if while for fn var let const notakeyword")
	assert.Equal(t, []token.Kind{
		token.KW_RETURN, token.KW_IF, token.KW_WHILE, token.KW_FOR,
		token.KW_FN, token.KW_VAR, token.KW_LET, token.KW_CONST, token.IDENT,
	}, kinds(toks))
}

func TestLexer_NumberWithTwoDots(t *testing.T) {
	toks := lex("1.2.3")
	if assert.Len(t, toks, 2) {
		assert.Equal(t, token.NUMBER, toks[0].Kind)
		assert.Equal(t, "1.2", toks[0].Lexeme)
		assert.Equal(t, token.NUMBER, toks[1].Kind)
		assert.Equal(t, ".3", toks[1].Lexeme)
	}
}

func TestLexer_IdentifierLengthCap(t *testing.T) {
	long := strings.Repeat("a", 200)
	toks := lex(long)
	if assert.Len(t, toks, 1) {
		assert.Equal(t, token.IDENT, toks[0].Kind)
		assert.Len(t, toks[0].Lexeme, token.MaxLexemeLength)
	}
}

func TestLexer_UnknownCharacterReportsLexError(t *testing.T) {
	var buf strings.Builder
	sink := &diag.Sink{Out: &buf}
	read, ctx := NewStringSource("@")
	l := New(read, ctx, sink)
	toks := l.ConsumeTokens()
	if assert.Len(t, toks, 1) {
		assert.Equal(t, token.UNKNOWN, toks[0].Kind)
	}
	assert.Contains(t, buf.String(), "unrecognised character")
}

func TestLexer_SkipsWhitespaceAndNewlines(t *testing.T) {
	toks := lex("  \n  1 + 2 \n\n 3")
	assert.Equal(t, []token.Kind{token.NUMBER, token.PLUS, token.NUMBER, token.NUMBER}, kinds(toks))
}

func TestLexer_LookaheadWindow(t *testing.T) {
	read, ctx := NewStringSource("1 + 2")
	l := New(read, ctx, nil)
	assert.Equal(t, token.NUMBER, l.Current.Kind)
	assert.Equal(t, token.PLUS, l.Next.Kind)
	l.Advance()
	assert.Equal(t, token.NUMBER, l.Previous.Kind)
	assert.Equal(t, token.PLUS, l.Current.Kind)
	assert.Equal(t, token.NUMBER, l.Next.Kind)
}

func TestLexer_EOFIsStable(t *testing.T) {
	toks := lex("")
	assert.Len(t, toks, 0)
	read, ctx := NewStringSource("")
	l := New(read, ctx, nil)
	assert.True(t, l.Current.IsEOF())
	assert.True(t, l.Next.IsEOF())
}
