/*
File    : clasp/printer/printer.go

Package printer is the front-end's reference visitor-dispatch consumer:
for every node kind it emits a parenthesised s-expression-like form
naming the kind and its fields, recursing via ast.Visit. Grounded
line-for-line in original_source/src/print_ast.c's _print<Kind>
functions and its ClaspASTVisitor designated-initializer table.

Traversal order (spec §4.4): operands left-to-right, argument lists in
index order, block bodies in declaration order — the same order the
fields appear below.
*/
package printer

import (
	"bytes"
	"fmt"

	"github.com/claspc/clasp/ast"
)

// Print renders root as a deterministic s-expression string. Two
// successive calls over the same tree produce byte-identical output
// (spec §8, universal property 1).
func Print(root ast.Node) string {
	var buf bytes.Buffer
	ast.Visit(root, &buf, table)
	return buf.String()
}

func buf(ctx any) *bytes.Buffer { return ctx.(*bytes.Buffer) }

func visit(n ast.Node, ctx any) { ast.Visit(n, ctx, table) }

func printBinOp(n ast.Node, ctx any) any {
	node := n.(*ast.BinOpNode)
	b := buf(ctx)
	fmt.Fprint(b, "(binop: left=")
	visit(node.Left, ctx)
	fmt.Fprintf(b, " op=%s right=", node.Op.Lexeme)
	visit(node.Right, ctx)
	fmt.Fprint(b, ")")
	return nil
}

func printUnaryOp(n ast.Node, ctx any) any {
	node := n.(*ast.UnaryOpNode)
	b := buf(ctx)
	fmt.Fprintf(b, "(unop: op=%s right=", node.Op.Lexeme)
	visit(node.Right, ctx)
	fmt.Fprint(b, ")")
	return nil
}

func printPostfix(n ast.Node, ctx any) any {
	node := n.(*ast.PostfixNode)
	b := buf(ctx)
	fmt.Fprint(b, "(postfix: left=")
	visit(node.Left, ctx)
	fmt.Fprintf(b, " op=%s)", node.Op.Lexeme)
	return nil
}

func printNumberLiteral(n ast.Node, ctx any) any {
	node := n.(*ast.NumberLiteralNode)
	fmt.Fprintf(buf(ctx), "(num_literal: val=%s)", node.Value.Lexeme)
	return nil
}

func printVarRef(n ast.Node, ctx any) any {
	node := n.(*ast.VarRefNode)
	fmt.Fprintf(buf(ctx), "(var_ref: name=%s)", node.Name.Lexeme)
	return nil
}

func printFnCall(n ast.Node, ctx any) any {
	node := n.(*ast.FnCallNode)
	b := buf(ctx)
	fmt.Fprint(b, "(fn_call: ref=")
	visit(node.Callee, ctx)
	fmt.Fprint(b, " args=[")
	for i, arg := range node.Args {
		if i > 0 {
			fmt.Fprint(b, ", ")
		}
		visit(arg, ctx)
	}
	fmt.Fprint(b, "])")
	return nil
}

func printReturn(n ast.Node, ctx any) any {
	node := n.(*ast.ReturnNode)
	b := buf(ctx)
	fmt.Fprint(b, "(return:")
	if node.Value != nil {
		fmt.Fprint(b, " value=")
		visit(node.Value, ctx)
	}
	fmt.Fprint(b, ")")
	return nil
}

func printExprStmt(n ast.Node, ctx any) any {
	node := n.(*ast.ExprStmtNode)
	b := buf(ctx)
	fmt.Fprint(b, "(exprStmt: ")
	visit(node.Expr, ctx)
	fmt.Fprint(b, ")")
	return nil
}

func printBlock(n ast.Node, ctx any) any {
	node := n.(*ast.BlockNode)
	b := buf(ctx)
	fmt.Fprint(b, "(blockStmt:")
	for _, stmt := range node.Body {
		fmt.Fprint(b, " ")
		visit(stmt, ctx)
	}
	fmt.Fprint(b, ")")
	return nil
}

var declLabel = map[ast.NodeKind]string{
	ast.VarDecl:   "varDecl",
	ast.LetDecl:   "letDecl",
	ast.ConstDecl: "constDecl",
}

func printVarDecl(n ast.Node, ctx any) any {
	node := n.(*ast.VarDeclNode)
	b := buf(ctx)
	fmt.Fprintf(b, "(%s: name=%q", declLabel[node.DeclKind], node.Name.Lexeme)
	if node.Type != nil {
		fmt.Fprint(b, " type=")
		visit(node.Type, ctx)
	}
	if node.Initializer != nil {
		fmt.Fprint(b, " initializer=")
		visit(node.Initializer, ctx)
	}
	fmt.Fprint(b, ")")
	return nil
}

func printFnDecl(n ast.Node, ctx any) any {
	node := n.(*ast.FnDeclNode)
	b := buf(ctx)
	fmt.Fprintf(b, "(fnDecl: name=%q ret=", node.Name.Lexeme)
	visit(node.RetType, ctx)
	fmt.Fprint(b, " args=[")
	for i, param := range node.Params {
		if i > 0 {
			fmt.Fprint(b, ", ")
		}
		fmt.Fprintf(b, "(%s ", param.Name.Lexeme)
		visit(param.Type, ctx)
		fmt.Fprint(b, ")")
	}
	fmt.Fprint(b, "] body=")
	visit(node.Body, ctx)
	fmt.Fprint(b, ")")
	return nil
}

var condLabel = map[ast.NodeKind]string{ast.If: "ifStmt", ast.While: "whileStmt"}

func printCond(n ast.Node, ctx any) any {
	node := n.(*ast.CondNode)
	b := buf(ctx)
	fmt.Fprintf(b, "(%s: cond=", condLabel[node.CondKind])
	visit(node.Cond, ctx)
	fmt.Fprint(b, " body=")
	visit(node.Body, ctx)
	fmt.Fprint(b, ")")
	return nil
}

func printTypeSingle(n ast.Node, ctx any) any {
	node := n.(*ast.TypeSingleNode)
	fmt.Fprintf(buf(ctx), "[single name=%q]", node.Name.Lexeme)
	return nil
}

func printTypeArray(n ast.Node, ctx any) any {
	node := n.(*ast.TypeArrayNode)
	b := buf(ctx)
	fmt.Fprint(b, "[array of=")
	visit(node.Enclosed, ctx)
	fmt.Fprint(b, "]")
	return nil
}

func printTypeFn(n ast.Node, ctx any) any {
	node := n.(*ast.TypeFnNode)
	b := buf(ctx)
	fmt.Fprint(b, "[fn params=[")
	for i, param := range node.Params {
		if i > 0 {
			fmt.Fprint(b, ", ")
		}
		visit(param, ctx)
	}
	fmt.Fprint(b, "] ret=")
	visit(node.Ret, ctx)
	fmt.Fprint(b, "]")
	return nil
}

func printTypeTemplate(n ast.Node, ctx any) any {
	node := n.(*ast.TypeTemplateNode)
	b := buf(ctx)
	fmt.Fprintf(b, "[template name=%q args=[", node.TypeName.Lexeme)
	for i, arg := range node.Args {
		if i > 0 {
			fmt.Fprint(b, ", ")
		}
		visit(arg, ctx)
	}
	fmt.Fprint(b, "]]")
	return nil
}

func printTypePtr(n ast.Node, ctx any) any {
	node := n.(*ast.TypePtrNode)
	b := buf(ctx)
	fmt.Fprint(b, "[ptr to=")
	visit(node.Pointed, ctx)
	fmt.Fprint(b, "]")
	return nil
}

var table = ast.VisitorTable{
	ast.BinOp:         printBinOp,
	ast.UnaryOp:       printUnaryOp,
	ast.Postfix:       printPostfix,
	ast.NumberLiteral: printNumberLiteral,
	ast.VarRef:        printVarRef,
	ast.FnCall:        printFnCall,

	ast.Return:    printReturn,
	ast.ExprStmt:  printExprStmt,
	ast.Block:     printBlock,
	ast.VarDecl:   printVarDecl,
	ast.LetDecl:   printVarDecl,
	ast.ConstDecl: printVarDecl,
	ast.FnDecl:    printFnDecl,

	ast.If:    printCond,
	ast.While: printCond,

	ast.TypeSingle:   printTypeSingle,
	ast.TypeArray:    printTypeArray,
	ast.TypeFn:       printTypeFn,
	ast.TypeTemplate: printTypeTemplate,
	ast.TypePtr:      printTypePtr,
}
