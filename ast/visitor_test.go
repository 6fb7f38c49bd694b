/*
File    : clasp/ast/visitor_test.go
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisit_NilNodeReturnsNil(t *testing.T) {
	var table VisitorTable
	assert.Nil(t, Visit(nil, nil, table))
}

func TestVisit_UnsetEntryReturnsNil(t *testing.T) {
	var table VisitorTable
	node := &NumberLiteralNode{}
	assert.Nil(t, Visit(node, nil, table))
}

func TestVisit_DispatchesToMatchingKind(t *testing.T) {
	var table VisitorTable
	table[NumberLiteral] = func(n Node, ctx any) any { return "hit" }
	node := &NumberLiteralNode{}
	assert.Equal(t, "hit", Visit(node, nil, table))
}

// outOfRangeNode implements Node with a Kind() outside [0, NumKinds) to
// exercise Visit's internal-error path.
type outOfRangeNode struct{}

func (outOfRangeNode) Kind() NodeKind { return NumKinds + 1 }

func TestVisit_OutOfRangeKindPanicsWithInternalError(t *testing.T) {
	var table VisitorTable
	assert.PanicsWithValue(t, InternalError{Kind: NumKinds + 1}, func() {
		Visit(outOfRangeNode{}, nil, table)
	})
}

func TestExprFlag_Has(t *testing.T) {
	f := FlagConst | FlagMutable
	assert.True(t, f.Has(FlagConst))
	assert.True(t, f.Has(FlagMutable))
	assert.False(t, f.Has(FlagImmutable))
}

func TestBinaryExprType_ConstOnlyWhenBothOperandsConst(t *testing.T) {
	constType := ExprType{Flags: FlagConst}
	mutableType := ExprType{Flags: FlagMutable}

	assert.True(t, BinaryExprType(constType, constType).Flags.Has(FlagConst))
	assert.False(t, BinaryExprType(constType, mutableType).Flags.Has(FlagConst))
	assert.True(t, BinaryExprType(constType, mutableType).Flags.Has(FlagImmutable))
}
