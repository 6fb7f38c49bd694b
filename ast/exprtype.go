/*
File    : clasp/ast/exprtype.go

Expression-type annotation: every expression node carries an ExprType
recording its (possibly unresolved) declared type plus a flag set over
{CONST, MUTABLE, IMMUTABLE}. See spec §3.3 for the propagation rules
construction helpers below implement.
*/
package ast

import "github.com/claspc/clasp/token"

// ExprFlag is a bit in the expression-type flag set.
type ExprFlag uint8

const (
	FlagConst ExprFlag = 1 << iota
	FlagMutable
	FlagImmutable
)

func (f ExprFlag) Has(bit ExprFlag) bool { return f&bit != 0 }

// ExprType is the {type, flags} record attached to every expression
// node. Type may be nil when the parser could not determine one.
type ExprType struct {
	Type  Node
	Flags ExprFlag
}

// Expr is implemented by every expression-kind node; it exposes the
// ExprType record so generic passes (constness checks, the printer)
// don't need a type switch to read it.
type Expr interface {
	Node
	Type() *ExprType
}

// intSingle is the type node stamped on every number literal (spec
// §3.3: "type single(int)"; float literal typing remains a TODO per
// spec §9). The name token takes its position from posTok.
func intSingle(posTok Token) Node {
	name := posTok
	name.Kind = token.IDENT
	name.Lexeme = "int"
	return &TypeSingleNode{Name: name}
}

// NumberLiteralExprType builds the ExprType for a freshly parsed number
// literal: always CONST, typed single("int").
func NumberLiteralExprType(valueTok Token) ExprType {
	return ExprType{Type: intSingle(valueTok), Flags: FlagConst}
}

// UnaryExprType propagates CONST from the operand; otherwise IMMUTABLE.
func UnaryExprType(operand ExprType) ExprType {
	if operand.Flags.Has(FlagConst) {
		return ExprType{Flags: FlagConst}
	}
	return ExprType{Flags: FlagImmutable}
}

// BinaryExprType propagates CONST only if both operands are CONST.
func BinaryExprType(left, right ExprType) ExprType {
	if left.Flags.Has(FlagConst) && right.Flags.Has(FlagConst) {
		return ExprType{Flags: FlagConst}
	}
	return ExprType{Flags: FlagImmutable}
}

// AssignmentExprType is the ExprType of an assignment expression
// (`=`, `+=`, `-=`, ...): it mirrors the lvalue (left operand), not the
// CONST-propagation rule the other binary operators use — assigning
// into a MUTABLE variable yields a MUTABLE expression, matching spec
// §8's worked example for `x = x + 1`.
func AssignmentExprType(left ExprType) ExprType {
	return left
}

// UnresolvedMutableExprType is stamped on a VarRef to an unknown name:
// flags default to MUTABLE, type unresolved.
func UnresolvedMutableExprType() ExprType {
	return ExprType{Flags: FlagMutable}
}

// FnCallExprType is always IMMUTABLE with an unresolved type (spec §9:
// "a real implementation will need a symbol table of declared
// functions").
func FnCallExprType() ExprType {
	return ExprType{Flags: FlagImmutable}
}
