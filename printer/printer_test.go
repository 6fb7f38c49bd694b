/*
File    : clasp/printer/printer_test.go
*/
package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claspc/clasp/ast"
	"github.com/claspc/clasp/lexer"
	"github.com/claspc/clasp/parser"
)

func mustParse(t *testing.T, src string) *ast.BlockNode {
	t.Helper()
	read, ctx := lexer.NewStringSource(src)
	lex := lexer.New(read, ctx, nil)
	root, err := parser.New(lex, nil).Compile()
	require.NoError(t, err)
	return root
}

// Universal property 1: printing the same tree twice yields byte-identical
// output.
func TestPrint_Deterministic(t *testing.T) {
	root := mustParse(t, "fn add(a: int, b: int) -> int { return a + b; }")
	first := Print(root)
	second := Print(root)
	assert.Equal(t, first, second)
}

func TestPrint_BinOpExpression(t *testing.T) {
	root := mustParse(t, "5 * 2 + 3;")
	got := Print(root)
	want := "(blockStmt: (exprStmt: (binop: left=(binop: left=(num_literal: val=5) op=* right=(num_literal: val=2)) op=+ right=(num_literal: val=3))))"
	assert.Equal(t, want, got)
}

func TestPrint_VarDeclWithTypeAndInitializer(t *testing.T) {
	root := mustParse(t, "var x: int = 42;")
	got := Print(root)
	want := `(blockStmt: (varDecl: name="x" type=[single name="int"] initializer=(num_literal: val=42)))`
	assert.Equal(t, want, got)
}

func TestPrint_IfStatement(t *testing.T) {
	root := mustParse(t, "if (a < b) { c = a; }")
	got := Print(root)
	want := "(blockStmt: (ifStmt: cond=(binop: left=(var_ref: name=a) op=< right=(var_ref: name=b)) body=(blockStmt: (exprStmt: (binop: left=(var_ref: name=c) op== right=(var_ref: name=a))))))"
	assert.Equal(t, want, got)
}

func TestPrint_FnDeclWithParamsAndReturn(t *testing.T) {
	root := mustParse(t, "fn add(a: int, b: int) -> int { return a + b; }")
	got := Print(root)
	want := `(blockStmt: (fnDecl: name="add" ret=[single name="int"] args=[(a [single name="int"]), (b [single name="int"])] body=(blockStmt: (return: value=(binop: left=(var_ref: name=a) op=+ right=(var_ref: name=b))))))`
	assert.Equal(t, want, got)
}

func TestPrint_NilChildRendersWithoutPanicking(t *testing.T) {
	assert.NotPanics(t, func() {
		Print(&ast.ReturnNode{})
	})
}
