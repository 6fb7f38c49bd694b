/*
File    : clasp/lexer/lexer.go

Package lexer implements the streaming lexer for Clasp source code. It
is constructed over a pull-based ByteSource plus an opaque context (see
source.go) and exposes a two-token lookahead window (Previous, Current,
Next). Advance() shifts the window forward by one and returns the token
that was Current before the shift.

The lexer does not throw: malformed input surfaces as an UNKNOWN token
plus a diagnostic written to the supplied diag.Sink. It is the parser's
job to treat UNKNOWN as fatal.
*/
package lexer

import (
	"strings"

	"github.com/claspc/clasp/diag"
	"github.com/claspc/clasp/token"
)

// Lexer scans a character stream into a token stream with source
// position metadata. It is single-threaded and synchronous: it blocks
// only when the underlying ByteSource blocks.
type Lexer struct {
	read ByteSource
	ctx  any
	sink *diag.Sink

	cur   byte
	curOK bool

	lineIndex   int
	columnIndex int
	lineBuf     []byte
	lines       []string

	Previous token.Token
	Current  token.Token
	Next     token.Token
}

// New constructs a Lexer over read/ctx, priming the Current/Next
// lookahead window so the first two tokens are available before the
// caller ever calls Advance. This is the lexer's entry point: callers
// typically build read/ctx via NewStringSource or NewFileSource (see
// source.go), then hand the pair straight to New.
//
// Parameters:
//
//	read - the pull-based character source (see ByteSource's doc
//	       comment for its contract)
//	ctx  - the opaque context read expects back on every call; owned
//	       entirely by read, the lexer never inspects it
//	sink - receives diagnostics for unrecognised characters; a nil
//	       sink silently drops them
//
// Returns:
//
//	A pointer to a newly constructed Lexer, already positioned so
//	Current and Next both hold real tokens.
func New(read ByteSource, ctx any, sink *diag.Sink) *Lexer {
	l := &Lexer{read: read, ctx: ctx, sink: sink}
	l.cur, l.curOK = l.read(l.ctx)
	l.Current = l.scan()
	l.Next = l.scan()
	return l
}

// ch returns the character currently under the cursor, or the null
// byte once end-of-input has been reached (classification helpers all
// report false for the null byte, so callers rarely need to special-case it).
func (l *Lexer) ch() byte {
	if !l.curOK {
		return 0
	}
	return l.cur
}

// step consumes the character under the cursor (appending it to the
// current line's buffer) and pulls the next one from the source.
func (l *Lexer) step() {
	if l.curOK {
		l.lineBuf = append(l.lineBuf, l.cur)
	}
	l.columnIndex++
	l.cur, l.curOK = l.read(l.ctx)
}

// Advance shifts the lookahead window forward by one token and returns
// the token that was Current before the shift.
func (l *Lexer) Advance() token.Token {
	old := l.Current
	l.Previous = l.Current
	l.Current = l.Next
	l.Next = l.scan()
	return old
}

func (l *Lexer) emit(kind token.Kind, lexeme string, line, col int) token.Token {
	return token.New(kind, lexeme, line, col, string(l.lineBuf))
}

func (l *Lexer) skipWhitespace() {
	for {
		if isWhitespace(l.ch()) {
			if l.ch() == '\n' {
				l.lines = append(l.lines, string(l.lineBuf))
				l.lineBuf = nil
				l.lineIndex++
				l.columnIndex = 0
				// Pull the next character without step(): the newline
				// belongs to neither line's buffer nor column count.
				l.cur, l.curOK = l.read(l.ctx)
				continue
			}
			l.step()
			continue
		}
		break
	}
}

// scan produces the next token, skipping leading whitespace. It never
// returns an error: unrecognised input becomes an UNKNOWN token plus a
// diagnostic.
func (l *Lexer) scan() token.Token {
	l.skipWhitespace()

	line, col := l.lineIndex, l.columnIndex

	if !l.curOK {
		return l.emit(token.EOF, token.EOFLexeme, line, col)
	}

	c := l.ch()
	switch {
	case isAlpha(c):
		return l.scanIdentifier(line, col)
	case isDigit(c) || c == '.':
		return l.scanNumber(line, col)
	default:
		return l.scanOperator(line, col)
	}
}

func (l *Lexer) scanIdentifier(line, col int) token.Token {
	var b strings.Builder
	n := 0
	for isAlphanumeric(l.ch()) {
		if n < token.MaxLexemeLength {
			b.WriteByte(l.ch())
			n++
		}
		l.step()
	}
	lex := b.String()
	return l.emit(token.LookupIdent(lex), lex, line, col)
}

// scanNumber reads a numeric literal. At most one '.' is accepted; a
// second '.' terminates the token instead of being consumed, so
// "1.2.3" scans as NUMBER("1.2") followed by a fresh token starting at
// ".3".
func (l *Lexer) scanNumber(line, col int) token.Token {
	var b strings.Builder
	n := 0
	seenDot := false
	for isDigit(l.ch()) || l.ch() == '.' {
		if l.ch() == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		if n < token.MaxLexemeLength {
			b.WriteByte(l.ch())
			n++
		}
		l.step()
	}
	lex := b.String()
	return l.emit(token.NUMBER, lex, line, col)
}

// two handles maximal-munch for an operator that may optionally take a
// trailing '=' (e.g. '*' / '*='): oneLexeme is already under the
// cursor; if the next character is '=', consume it and return twoKind.
func (l *Lexer) two(oneLexeme string, oneKind, twoKind token.Kind, line, col int) token.Token {
	l.step() // consume the single character
	if l.ch() == '=' {
		l.step()
		return l.emit(twoKind, oneLexeme+"=", line, col)
	}
	return l.emit(oneKind, oneLexeme, line, col)
}

func (l *Lexer) scanOperator(line, col int) token.Token {
	c := l.ch()
	switch c {
	case '+':
		l.step()
		switch l.ch() {
		case '=':
			l.step()
			return l.emit(token.PLUS_EQ, "+=", line, col)
		case '+':
			l.step()
			return l.emit(token.PLUS_PLUS, "++", line, col)
		default:
			return l.emit(token.PLUS, "+", line, col)
		}
	case '-':
		l.step()
		switch l.ch() {
		case '=':
			l.step()
			return l.emit(token.MINUS_EQ, "-=", line, col)
		case '>':
			l.step()
			return l.emit(token.RIGHT_ARROW, "->", line, col)
		case '-':
			l.step()
			return l.emit(token.MINUS_MINUS, "--", line, col)
		default:
			return l.emit(token.MINUS, "-", line, col)
		}
	case '*':
		return l.two("*", token.STAR, token.STAR_EQ, line, col)
	case '/':
		return l.two("/", token.SLASH, token.SLASH_EQ, line, col)
	case '%':
		return l.two("%", token.PERCENT, token.PERCENT_EQ, line, col)
	case '^':
		return l.two("^", token.CARET, token.CARET_EQ, line, col)
	case '~':
		return l.two("~", token.TILDE, token.TILDE_EQ, line, col)
	case '=':
		return l.two("=", token.ASSIGN, token.EQ_EQ, line, col)
	case '!':
		return l.two("!", token.BANG, token.BANG_EQ, line, col)
	case '<':
		l.step()
		switch l.ch() {
		case '=':
			l.step()
			return l.emit(token.LESS_EQ, "<=", line, col)
		case '-':
			l.step()
			return l.emit(token.LEFT_ARROW, "<-", line, col)
		default:
			return l.emit(token.LESS, "<", line, col)
		}
	case '>':
		return l.two(">", token.GREATER, token.GREATER_EQ, line, col)
	case '(':
		l.step()
		return l.emit(token.LPAREN, "(", line, col)
	case ')':
		l.step()
		return l.emit(token.RPAREN, ")", line, col)
	case '[':
		l.step()
		return l.emit(token.LBRACKET, "[", line, col)
	case ']':
		l.step()
		return l.emit(token.RBRACKET, "]", line, col)
	case '{':
		l.step()
		return l.emit(token.LBRACE, "{", line, col)
	case '}':
		l.step()
		return l.emit(token.RBRACE, "}", line, col)
	case ',':
		l.step()
		return l.emit(token.COMMA, ",", line, col)
	case ';':
		l.step()
		return l.emit(token.SEMICOLON, ";", line, col)
	case ':':
		l.step()
		return l.emit(token.COLON, ":", line, col)
	default:
		lexeme := string(c)
		l.step()
		tok := l.emit(token.UNKNOWN, lexeme, line, col)
		if l.sink != nil {
			l.sink.LexError(tok)
		}
		return tok
	}
}

// ConsumeTokens tokenizes the entire remaining stream, useful for
// tests and debugging. The returned slice excludes the trailing EOF.
func (l *Lexer) ConsumeTokens() []token.Token {
	var out []token.Token
	for l.Current.Kind != token.EOF {
		out = append(out, l.Advance())
	}
	return out
}
