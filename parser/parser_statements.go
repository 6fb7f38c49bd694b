/*
File    : clasp/parser/parser_statements.go

Statement grammar and the semicolon policy from spec §4.2. Statement
parse functions never consume the trailing ';' themselves: each sets
p.puncNextStmt to tell Compile's driving loop whether one is expected
next. Block-tailed statements (if/while/fnDecl/blockStmt) clear the
flag; leaf statements (return/exprStmt/the three decl kinds) set it.
*/
package parser

import (
	"github.com/claspc/clasp/ast"
	"github.com/claspc/clasp/token"
)

func (p *Parser) parseStatement() ast.Node {
	switch p.cur().Kind {
	case token.KW_RETURN:
		return p.parseReturnStmt()
	case token.KW_IF:
		return p.parseIfStmt()
	case token.KW_WHILE:
		return p.parseWhileStmt()
	case token.LBRACE:
		return p.parseBlockStmt()
	case token.KW_VAR:
		return p.parseDeclStmt(ast.VarDecl)
	case token.KW_LET:
		return p.parseDeclStmt(ast.LetDecl)
	case token.KW_CONST:
		return p.parseDeclStmt(ast.ConstDecl)
	case token.KW_FN:
		return p.parseFnDecl()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseReturnStmt() ast.Node {
	p.expect(token.KW_RETURN, "expected 'return'")
	var val ast.Node
	if !p.check(token.SEMICOLON) {
		val = p.parseExpression()
	}
	p.puncNextStmt = true
	return &ast.ReturnNode{Value: val}
}

func (p *Parser) parseExprStmt() ast.Node {
	expr := p.parseExpression()
	p.puncNextStmt = true
	return &ast.ExprStmtNode{Expr: expr}
}

func (p *Parser) parseIfStmt() ast.Node {
	p.expect(token.KW_IF, "expected 'if'")
	p.expect(token.LPAREN, "expected '(' after 'if'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "expected ')' after if condition")
	body := p.parseScopedBody()
	p.puncNextStmt = false
	return &ast.CondNode{CondKind: ast.If, Cond: cond, Body: body}
}

func (p *Parser) parseWhileStmt() ast.Node {
	p.expect(token.KW_WHILE, "expected 'while'")
	p.expect(token.LPAREN, "expected '(' after 'while'")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "expected ')' after while condition")
	body := p.parseScopedBody()
	p.puncNextStmt = false
	return &ast.CondNode{CondKind: ast.While, Cond: cond, Body: body}
}

// parseScopedBody parses an if/while body statement inside its own
// child scope, so a var/let/const declared in the body (braced or not)
// shadows the enclosing scope instead of leaking into it.
func (p *Parser) parseScopedBody() ast.Node {
	p.vars = p.vars.Push()
	defer func() { p.vars = p.vars.Pop() }()
	body := p.parseStatement()
	if p.puncNextStmt {
		p.expect(token.SEMICOLON, "expected ';' after statement")
	}
	return body
}

func (p *Parser) parseBlockStmt() *ast.BlockNode {
	p.expect(token.LBRACE, "expected '{'")
	p.vars = p.vars.Push()
	var stmts []ast.Node
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		stmts = append(stmts, p.parseStatement())
		if p.puncNextStmt {
			p.expect(token.SEMICOLON, "expected ';' after statement")
		}
	}
	p.vars = p.vars.Pop()
	p.expect(token.RBRACE, "expected '}' to close block")
	p.puncNextStmt = false
	return &ast.BlockNode{Body: stmts}
}

// parseDeclStmt parses the shared var/let/const grammar:
//
//	(var|let|const) ID (":" type)? ("=" expression)? ";"
//
// var requires an initializer; let/const require at least one of the
// type annotation or the initializer (spec §4.2).
func (p *Parser) parseDeclStmt(declKind ast.NodeKind) ast.Node {
	kwTok := p.advance() // the var/let/const keyword itself

	nameTok := p.expect(token.IDENT, "expected a name after declaration keyword")

	var typ ast.Node
	if _, ok := p.match(token.COLON); ok {
		typ = p.parseType()
	}

	var init ast.Node
	if _, ok := p.match(token.ASSIGN); ok {
		init = p.parseExpression()
	}

	switch declKind {
	case ast.VarDecl:
		if init == nil {
			p.fail(kwTok, "'var' declaration requires an initializer")
		}
	default: // LetDecl, ConstDecl
		if typ == nil && init == nil {
			p.fail(kwTok, "'let'/'const' declaration requires a type annotation or an initializer")
		}
	}

	p.vars.Declare(nameTok.Lexeme, VarRecord{DeclKind: declKind, Type: typ, Flags: declFlags(declKind)})

	p.puncNextStmt = true
	return &ast.VarDeclNode{DeclKind: declKind, Name: nameTok, Type: typ, Initializer: init}
}

// parseFnDecl parses:
//
//	fn ID "(" (ID ":" type ("," ID ":" type)*)? ")" "->" type blockStmt
func (p *Parser) parseFnDecl() ast.Node {
	p.expect(token.KW_FN, "expected 'fn'")
	nameTok := p.expect(token.IDENT, "expected a function name")
	p.expect(token.LPAREN, "expected '(' after function name")

	p.vars = p.vars.Push()
	defer func() { p.vars = p.vars.Pop() }()

	var params []ast.Param
	if !p.check(token.RPAREN) {
		params = append(params, p.parseParam())
		for {
			if _, ok := p.match(token.COMMA); !ok {
				break
			}
			params = append(params, p.parseParam())
		}
	}
	p.expect(token.RPAREN, "expected ')' to close parameter list")
	p.expect(token.RIGHT_ARROW, "expected '->' before return type")
	retType := p.parseType()

	body := p.parseBlockStmt()
	p.puncNextStmt = false
	return &ast.FnDeclNode{Name: nameTok, RetType: retType, Params: params, Body: body}
}

func (p *Parser) parseParam() ast.Param {
	nameTok := p.expect(token.IDENT, "expected a parameter name")
	p.expect(token.COLON, "expected ':' after parameter name")
	typ := p.parseType()
	p.vars.Declare(nameTok.Lexeme, VarRecord{DeclKind: ast.VarDecl, Type: typ, Flags: ast.FlagMutable})
	return ast.Param{Name: nameTok, Type: typ}
}
