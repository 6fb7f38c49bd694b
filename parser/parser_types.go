/*
File    : clasp/parser/parser_types.go

Type grammar, per spec §4.2:

	type := "*" type                         -- pointer
	      | "[" type "]"                     -- array
	      | "fn" "(" typeList? ")" "->" type -- function
	      | ID ( "<" typeList ">" )?         -- single or template
*/
package parser

import (
	"github.com/claspc/clasp/ast"
	"github.com/claspc/clasp/token"
)

func (p *Parser) parseType() ast.Node {
	switch p.cur().Kind {
	case token.STAR:
		p.advance()
		return &ast.TypePtrNode{Pointed: p.parseType()}
	case token.LBRACKET:
		p.advance()
		elem := p.parseType()
		p.expect(token.RBRACKET, "expected ']' to close array type")
		return &ast.TypeArrayNode{Enclosed: elem}
	case token.KW_FN:
		p.advance()
		p.expect(token.LPAREN, "expected '(' in function type")
		var params []ast.Node
		if !p.check(token.RPAREN) {
			params = append(params, p.parseType())
			for {
				if _, ok := p.match(token.COMMA); !ok {
					break
				}
				params = append(params, p.parseType())
			}
		}
		p.expect(token.RPAREN, "expected ')' in function type")
		p.expect(token.RIGHT_ARROW, "expected '->' in function type")
		ret := p.parseType()
		return &ast.TypeFnNode{Params: params, Ret: ret}
	case token.IDENT:
		name := p.advance()
		if _, ok := p.match(token.LESS); ok {
			var args []ast.Node
			args = append(args, p.parseType())
			for {
				if _, ok := p.match(token.COMMA); !ok {
					break
				}
				args = append(args, p.parseType())
			}
			p.expect(token.GREATER, "expected '>' to close template type arguments")
			return &ast.TypeTemplateNode{TypeName: name, Args: args}
		}
		return &ast.TypeSingleNode{Name: name}
	default:
		p.fail(p.cur(), "expected a type")
		return nil // unreachable: fail panics
	}
}
