/*
File    : clasp/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claspc/clasp/ast"
	"github.com/claspc/clasp/lexer"
)

func compile(t *testing.T, src string) *ast.BlockNode {
	t.Helper()
	read, ctx := lexer.NewStringSource(src)
	lex := lexer.New(read, ctx, nil)
	p := New(lex, nil)
	root, err := p.Compile()
	require.NoError(t, err)
	return root
}

func compileErr(t *testing.T, src string) error {
	t.Helper()
	read, ctx := lexer.NewStringSource(src)
	lex := lexer.New(read, ctx, nil)
	p := New(lex, nil)
	_, err := p.Compile()
	return err
}

// Scenario 1: `5 * 2 + 3;` -> Block[ExprStmt(BinOp(+, BinOp(*, 5, 2), 3))]
// root-expr flags = {CONST}.
func TestScenario1_PrecedenceAndConstness(t *testing.T) {
	root := compile(t, "5 * 2 + 3;")
	require.Len(t, root.Body, 1)

	stmt := root.Body[0].(*ast.ExprStmtNode)
	plus := stmt.Expr.(*ast.BinOpNode)
	assert.Equal(t, "+", plus.Op.Lexeme)

	star := plus.Left.(*ast.BinOpNode)
	assert.Equal(t, "*", star.Op.Lexeme)
	assert.Equal(t, "5", star.Left.(*ast.NumberLiteralNode).Value.Lexeme)
	assert.Equal(t, "2", star.Right.(*ast.NumberLiteralNode).Value.Lexeme)

	assert.Equal(t, "3", plus.Right.(*ast.NumberLiteralNode).Value.Lexeme)
	assert.True(t, plus.ExprType.Flags.Has(ast.FlagConst))
}

// Scenario 2: `var x: int = 42; x = x + 1;`
func TestScenario2_VarDeclAndMutableAssignment(t *testing.T) {
	root := compile(t, "var x: int = 42; x = x + 1;")
	require.Len(t, root.Body, 2)

	decl := root.Body[0].(*ast.VarDeclNode)
	assert.Equal(t, ast.VarDecl, decl.DeclKind)
	assert.Equal(t, "x", decl.Name.Lexeme)
	assert.Equal(t, "int", decl.Type.(*ast.TypeSingleNode).Name.Lexeme)
	assert.Equal(t, "42", decl.Initializer.(*ast.NumberLiteralNode).Value.Lexeme)

	stmt := root.Body[1].(*ast.ExprStmtNode)
	assign := stmt.Expr.(*ast.BinOpNode)
	assert.Equal(t, "=", assign.Op.Lexeme)
	assert.Equal(t, "x", assign.Left.(*ast.VarRefNode).Name.Lexeme)
	assert.True(t, assign.ExprType.Flags.Has(ast.FlagMutable))
}

// Scenario 3: `if (a < b) { c = a; }` — no semicolon consumed after if.
func TestScenario3_IfStatementNoTrailingSemicolon(t *testing.T) {
	root := compile(t, "if (a < b) { c = a; }")
	require.Len(t, root.Body, 1)

	ifNode := root.Body[0].(*ast.CondNode)
	assert.Equal(t, ast.If, ifNode.CondKind)
	cond := ifNode.Cond.(*ast.BinOpNode)
	assert.Equal(t, "<", cond.Op.Lexeme)

	body := ifNode.Body.(*ast.BlockNode)
	require.Len(t, body.Body, 1)
}

// Scenario 4: fn add(a: int, b: int) -> int { return a + b; }
func TestScenario4_FnDecl(t *testing.T) {
	root := compile(t, "fn add(a: int, b: int) -> int { return a + b; }")
	require.Len(t, root.Body, 1)

	fn := root.Body[0].(*ast.FnDeclNode)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Equal(t, "int", fn.RetType.(*ast.TypeSingleNode).Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name.Lexeme)
	assert.Equal(t, "b", fn.Params[1].Name.Lexeme)

	require.Len(t, fn.Body.Body, 1)
	ret := fn.Body.Body[0].(*ast.ReturnNode)
	sum := ret.Value.(*ast.BinOpNode)
	assert.Equal(t, "+", sum.Op.Lexeme)
}

// Scenario 5: while (n > 0) n = n - 1;
func TestScenario5_WhileStatement(t *testing.T) {
	root := compile(t, "while (n > 0) n = n - 1;")
	require.Len(t, root.Body, 1)

	while := root.Body[0].(*ast.CondNode)
	assert.Equal(t, ast.While, while.CondKind)
	cond := while.Cond.(*ast.BinOpNode)
	assert.Equal(t, ">", cond.Op.Lexeme)

	body := while.Body.(*ast.ExprStmtNode)
	assign := body.Expr.(*ast.BinOpNode)
	assert.Equal(t, "=", assign.Op.Lexeme)
}

// Scenario 6 / property 4: exponent is right-associative.
func TestScenario6_ExponentRightAssociative(t *testing.T) {
	root := compile(t, "2 ^ 3 ^ 2;")
	stmt := root.Body[0].(*ast.ExprStmtNode)
	outer := stmt.Expr.(*ast.BinOpNode)
	assert.Equal(t, "2", outer.Left.(*ast.NumberLiteralNode).Value.Lexeme)
	inner := outer.Right.(*ast.BinOpNode)
	assert.Equal(t, "3", inner.Left.(*ast.NumberLiteralNode).Value.Lexeme)
	assert.Equal(t, "2", inner.Right.(*ast.NumberLiteralNode).Value.Lexeme)
}

// Property 4: assignment is right-associative: a = b = c parses as a = (b = c).
func TestAssignmentRightAssociative(t *testing.T) {
	root := compile(t, "a = b = c;")
	stmt := root.Body[0].(*ast.ExprStmtNode)
	outer := stmt.Expr.(*ast.BinOpNode)
	assert.Equal(t, "a", outer.Left.(*ast.VarRefNode).Name.Lexeme)
	inner := outer.Right.(*ast.BinOpNode)
	assert.Equal(t, "b", inner.Left.(*ast.VarRefNode).Name.Lexeme)
	assert.Equal(t, "c", inner.Right.(*ast.VarRefNode).Name.Lexeme)
}

// Property 5: constness propagation — any VarRef to a var-declared name
// clears CONST.
func TestConstnessPropagation(t *testing.T) {
	root := compile(t, "1 + 2 * 3;")
	stmt := root.Body[0].(*ast.ExprStmtNode)
	assert.True(t, stmt.Expr.(*ast.BinOpNode).ExprType.Flags.Has(ast.FlagConst))

	root = compile(t, "var n: int = 1; n + 2;")
	stmt = root.Body[1].(*ast.ExprStmtNode)
	assert.False(t, stmt.Expr.(*ast.BinOpNode).ExprType.Flags.Has(ast.FlagConst))
}

// Block-scoped shadowing: a var declared inside an if body does not
// leak into the enclosing scope's variable table.
func TestBlockScopedShadowing(t *testing.T) {
	read, ctx := lexer.NewStringSource("if (1) { var x: int = 1; } x;")
	lex := lexer.New(read, ctx, nil)
	p := New(lex, nil)
	root, err := p.Compile()
	require.NoError(t, err)

	stmt := root.Body[1].(*ast.ExprStmtNode)
	ref := stmt.Expr.(*ast.VarRefNode)
	// x was never declared in the outer scope, so the reference resolves
	// as unknown: MUTABLE with unresolved type.
	assert.True(t, ref.ExprType.Flags.Has(ast.FlagMutable))
	assert.Nil(t, ref.ExprType.Type)
}

func TestShadowingWithinNestedScopeSeesInnerDeclaration(t *testing.T) {
	root := compile(t, "var x: int = 1; if (1) { let x: int = 2; x; }")
	ifNode := root.Body[1].(*ast.CondNode)
	body := ifNode.Body.(*ast.BlockNode)
	stmt := body.Body[1].(*ast.ExprStmtNode)
	ref := stmt.Expr.(*ast.VarRefNode)
	assert.True(t, ref.ExprType.Flags.Has(ast.FlagImmutable))
}

func TestUnknownCharacterIsFatalSyntaxError(t *testing.T) {
	err := compileErr(t, "1 + @;")
	assert.Error(t, err)
}

func TestVarDeclWithoutInitializerIsFatal(t *testing.T) {
	err := compileErr(t, "var x: int;")
	assert.Error(t, err)
}

func TestLetDeclRequiresTypeOrInitializer(t *testing.T) {
	err := compileErr(t, "let x;")
	assert.Error(t, err)
}
