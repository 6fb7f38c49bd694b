/*
File    : clasp/codegen/codegen.go

Package codegen is a deliberately partial visitor-dispatch consumer,
grounded in original_source/compiler/visitors/compilerCLVM.c: a
6502-flavoured stub that only knows how to emit number literals,
addition/subtraction, and a return (its value, if any, then rts). It exists to exercise the
visitor contract (spec §1: "the partial code-generator ... is a stub
and is explicitly OUT of scope except insofar as it illustrates the
visitor contract"), not to be a real backend.

Unlike the C original's process-wide codeSegment/dataSegment buffers,
code and data live on a per-call Context (spec §9: "Replace with
per-compilation context objects passed explicitly").
*/
package codegen

import (
	"fmt"

	"github.com/claspc/clasp/ast"
)

// Context accumulates the stub backend's output for one compilation.
// Code is 6502 assembly text; Data holds little-endian 8-byte constant
// slots, mirroring emit_constant_ulint's layout.
type Context struct {
	Code []byte
	Data []byte
}

func (c *Context) emit(format string, args ...any) {
	c.Code = append(c.Code, []byte(fmt.Sprintf(format, args...))...)
}

// emitConstant appends val as a little-endian 8-byte slot to Data and
// returns its offset, mirroring emit_constant_ulint.
func (c *Context) emitConstant(val uint64) int {
	idx := len(c.Data)
	for i := 0; i < 8; i++ {
		c.Data = append(c.Data, byte(val&0xff))
		val >>= 8
	}
	return idx
}

// Generate runs the stub table against root, returning the populated
// Context. Node kinds outside {NumberLiteral, BinOp, Return} are
// silently skipped together with everything beneath them — an
// explicitly partial table per spec §4.3's "consumers may supply
// partial tables when they only care about a subset of kinds." A
// parser-built root Block therefore yields an empty Context.
func Generate(root ast.Node) *Context {
	ctx := &Context{}
	ast.Visit(root, ctx, table)
	return ctx
}

func genNumberLiteral(n ast.Node, ctxAny any) any {
	node := n.(*ast.NumberLiteralNode)
	ctx := ctxAny.(*Context)
	var val uint64
	fmt.Sscanf(node.Value.Lexeme, "%d", &val)
	idx := ctx.emitConstant(val)
	ctx.emit("lda data+%d\npha\n\n", idx)
	return nil
}

func genBinOp(n ast.Node, ctxAny any) any {
	node := n.(*ast.BinOpNode)
	ctx := ctxAny.(*Context)
	ast.Visit(node.Left, ctx, table)
	ast.Visit(node.Right, ctx, table)
	ctx.emit("pla  ; binop %s\nsta $00\npla\n", node.Op.Lexeme)
	switch node.Op.Lexeme {
	case "+":
		ctx.emit("clc\nadc $00\n")
	case "-":
		ctx.emit("clc\nsbc $00\n")
	default:
		// Anything beyond +/- is unimplemented in this stub; emit a
		// marker comment instead of a bogus opcode.
		ctx.emit("; unimplemented operator %s\n", node.Op.Lexeme)
	}
	ctx.emit("pha\n\n")
	return nil
}

func genReturn(n ast.Node, ctxAny any) any {
	node := n.(*ast.ReturnNode)
	ctx := ctxAny.(*Context)
	if node.Value != nil {
		ast.Visit(node.Value, ctx, table)
	}
	ctx.emit("rts\n")
	return nil
}

var table = ast.VisitorTable{
	ast.NumberLiteral: genNumberLiteral,
	ast.BinOp:         genBinOp,
	ast.Return:        genReturn,
}
