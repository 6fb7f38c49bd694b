/*
File    : clasp/parser/parser_expressions.go

Expression grammar, precedence lowest to highest, exactly per spec §4.2:

	expression := assignment
	assignment := equality ( ( = | += | -= | *= | /= | %= | ^= | ~= ) assignment )?
	equality   := comparison ( ( == | != ) comparison )*
	comparison := term       ( ( < | <= | > | >= ) term )*
	term       := factor     ( ( + | - ) factor )*
	factor     := exponent   ( ( * | / | % ) exponent )*
	exponent   := unary      ( ^ unary )*              -- right-assoc
	unary      := ( - | ! | ~ ) unary | postfix
	postfix    := primary ( ++ | -- | ( args ) )*
	primary    := NUMBER | ID | "(" expression ")"

All levels above exponent and assignment are left-associative;
exponent and assignment are right-associative.
*/
package parser

import (
	"github.com/claspc/clasp/ast"
	"github.com/claspc/clasp/token"
)

var assignOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_EQ: true, token.MINUS_EQ: true,
	token.STAR_EQ: true, token.SLASH_EQ: true, token.PERCENT_EQ: true,
	token.CARET_EQ: true, token.TILDE_EQ: true,
}

var equalityOps = map[token.Kind]bool{token.EQ_EQ: true, token.BANG_EQ: true}

var comparisonOps = map[token.Kind]bool{
	token.LESS: true, token.LESS_EQ: true, token.GREATER: true, token.GREATER_EQ: true,
}

var termOps = map[token.Kind]bool{token.PLUS: true, token.MINUS: true}

var factorOps = map[token.Kind]bool{token.STAR: true, token.SLASH: true, token.PERCENT: true}

func (p *Parser) parseExpression() ast.Node {
	return p.parseAssignment()
}

// parseAssignment is right-associative: `a = b = c` parses as
// `a = (b = c)` (spec §8, property 4). Unlike the other binary
// operators, its ExprType mirrors the lvalue rather than propagating
// CONST from both operands (spec §8, scenario 2).
func (p *Parser) parseAssignment() ast.Node {
	left := p.parseEquality()
	if assignOps[p.cur().Kind] {
		op := p.advance()
		right := p.parseAssignment()
		l := asExpr(left)
		return &ast.BinOpNode{Left: left, Right: right, Op: op, ExprType: ast.AssignmentExprType(*l.Type())}
	}
	return left
}

func (p *Parser) parseEquality() ast.Node {
	left := p.parseComparison()
	for equalityOps[p.cur().Kind] {
		op := p.advance()
		right := p.parseComparison()
		left = p.binOp(left, right, op)
	}
	return left
}

func (p *Parser) parseComparison() ast.Node {
	left := p.parseTerm()
	for comparisonOps[p.cur().Kind] {
		op := p.advance()
		right := p.parseTerm()
		left = p.binOp(left, right, op)
	}
	return left
}

func (p *Parser) parseTerm() ast.Node {
	left := p.parseFactor()
	for termOps[p.cur().Kind] {
		op := p.advance()
		right := p.parseFactor()
		left = p.binOp(left, right, op)
	}
	return left
}

func (p *Parser) parseFactor() ast.Node {
	left := p.parseExponent()
	for factorOps[p.cur().Kind] {
		op := p.advance()
		right := p.parseExponent()
		left = p.binOp(left, right, op)
	}
	return left
}

// parseExponent is right-associative: `a ^ b ^ c` parses as
// `a ^ (b ^ c)` (spec §8, property 4).
func (p *Parser) parseExponent() ast.Node {
	left := p.parseUnary()
	if p.check(token.CARET) {
		op := p.advance()
		right := p.parseExponent()
		return p.binOp(left, right, op)
	}
	return left
}

func (p *Parser) parseUnary() ast.Node {
	switch p.cur().Kind {
	case token.MINUS, token.BANG, token.TILDE:
		op := p.advance()
		right := p.parseUnary()
		rightExpr := asExpr(right)
		n := &ast.UnaryOpNode{Right: right, Op: op, ExprType: ast.UnaryExprType(*rightExpr.Type())}
		return n
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() ast.Node {
	left := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case token.PLUS_PLUS, token.MINUS_MINUS:
			op := p.advance()
			leftExpr := asExpr(left)
			left = &ast.PostfixNode{Left: left, Op: op, ExprType: ast.UnaryExprType(*leftExpr.Type())}
		case token.LPAREN:
			left = p.parseCallSuffix(left)
		default:
			return left
		}
	}
}

// parseCallSuffix parses the "( args )" call suffix of postfix, having
// already seen left as the callee.
func (p *Parser) parseCallSuffix(callee ast.Node) ast.Node {
	p.expect(token.LPAREN, "expected '(' to start call arguments")
	var args []ast.Node
	if !p.check(token.RPAREN) {
		args = append(args, p.parseExpression())
		for {
			if _, ok := p.match(token.COMMA); !ok {
				break
			}
			args = append(args, p.parseExpression())
		}
	}
	p.expect(token.RPAREN, "expected ')' to close call arguments")
	return &ast.FnCallNode{Callee: callee, Args: args, ExprType: ast.FnCallExprType()}
}

func (p *Parser) parsePrimary() ast.Node {
	switch p.cur().Kind {
	case token.NUMBER:
		tok := p.advance()
		return &ast.NumberLiteralNode{Value: tok, ExprType: ast.NumberLiteralExprType(tok)}
	case token.IDENT:
		tok := p.advance()
		return p.varRef(tok)
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN, "expected ')' to close parenthesised expression")
		return expr
	default:
		p.fail(p.cur(), "expected an expression")
		return nil // unreachable: fail panics
	}
}

// binOp builds a BinOp node, stamping its ExprType per spec §3.3:
// CONST iff both operands are CONST, else IMMUTABLE.
func (p *Parser) binOp(left, right ast.Node, op token.Token) ast.Node {
	l, r := asExpr(left), asExpr(right)
	return &ast.BinOpNode{Left: left, Right: right, Op: op, ExprType: ast.BinaryExprType(*l.Type(), *r.Type())}
}

// varRef builds a VarRef node and stamps its ExprType from the
// variable table (spec §3.3/§4.2): a known name inherits its declared
// flags and type; an unknown one defaults to MUTABLE with unresolved
// type.
func (p *Parser) varRef(nameTok token.Token) ast.Node {
	if rec, ok := p.vars.Lookup(nameTok.Lexeme); ok {
		return &ast.VarRefNode{Name: nameTok, ExprType: ast.ExprType{Type: rec.Type, Flags: rec.Flags}}
	}
	return &ast.VarRefNode{Name: nameTok, ExprType: ast.UnresolvedMutableExprType()}
}

// asExpr narrows a Node to an ast.Expr, failing internally if it isn't
// one — every production reachable from parseExpression always builds
// an expression-kind node, so this should never miss.
func asExpr(n ast.Node) ast.Expr {
	e, ok := n.(ast.Expr)
	if !ok {
		panic(parseFatal{msg: "internal error: expected expression node"})
	}
	return e
}
