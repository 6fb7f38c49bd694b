/*
File    : clasp/ast/node.go

Package ast defines the tagged-union AST node model for Clasp. A node
is one Go struct per kind implementing the Node interface; there is no
Accept/Visit double dispatch here (see visitor.go for the table-indexed
dispatch mechanism consumers use instead).
*/
package ast

import "github.com/claspc/clasp/token"

// NodeKind identifies an AST node's shape. NumKinds must remain last:
// it sizes the visitor dispatch table.
type NodeKind int

const (
	BinOp NodeKind = iota
	UnaryOp
	Postfix
	NumberLiteral
	VarRef
	FnCall

	Return
	ExprStmt
	Block
	VarDecl
	LetDecl
	ConstDecl
	FnDecl

	If
	While

	TypeSingle
	TypeArray
	TypeFn
	TypeTemplate
	TypePtr

	NumKinds
)

var kindNames = map[NodeKind]string{
	BinOp:         "BinOp",
	UnaryOp:       "UnaryOp",
	Postfix:       "Postfix",
	NumberLiteral: "NumberLiteral",
	VarRef:        "VarRef",
	FnCall:        "FnCall",
	Return:        "Return",
	ExprStmt:      "ExprStmt",
	Block:         "Block",
	VarDecl:       "VarDecl",
	LetDecl:       "LetDecl",
	ConstDecl:     "ConstDecl",
	FnDecl:        "FnDecl",
	If:            "If",
	While:         "While",
	TypeSingle:    "TypeSingle",
	TypeArray:     "TypeArray",
	TypeFn:        "TypeFn",
	TypeTemplate:  "TypeTemplate",
	TypePtr:       "TypePtr",
}

func (k NodeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Node is the common interface every AST node implements. Expression
// nodes additionally implement Expr (see exprtype.go).
type Node interface {
	Kind() NodeKind
}

// Param is a single {name, type} function parameter of an FnDecl.
// TypeFn's parameters are bare type nodes, not Params.
type Param struct {
	Name Token
	Type Node
}

// Token is a by-value copy of a lexed token, owned by the AST node that
// holds it (see spec.md §9: "a reimplementation should make tokens
// owned records").
type Token = token.Token

// --- Expressions ---------------------------------------------------

type BinOpNode struct {
	Left, Right Node
	Op          Token
	ExprType    ExprType
}

func (n *BinOpNode) Kind() NodeKind      { return BinOp }
func (n *BinOpNode) Type() *ExprType     { return &n.ExprType }

type UnaryOpNode struct {
	Right    Node
	Op       Token
	ExprType ExprType
}

func (n *UnaryOpNode) Kind() NodeKind  { return UnaryOp }
func (n *UnaryOpNode) Type() *ExprType { return &n.ExprType }

type PostfixNode struct {
	Left     Node
	Op       Token
	ExprType ExprType
}

func (n *PostfixNode) Kind() NodeKind  { return Postfix }
func (n *PostfixNode) Type() *ExprType { return &n.ExprType }

type NumberLiteralNode struct {
	Value    Token
	ExprType ExprType
}

func (n *NumberLiteralNode) Kind() NodeKind  { return NumberLiteral }
func (n *NumberLiteralNode) Type() *ExprType { return &n.ExprType }

type VarRefNode struct {
	Name     Token
	ExprType ExprType
}

func (n *VarRefNode) Kind() NodeKind  { return VarRef }
func (n *VarRefNode) Type() *ExprType { return &n.ExprType }

type FnCallNode struct {
	Callee   Node
	Args     []Node
	ExprType ExprType
}

func (n *FnCallNode) Kind() NodeKind  { return FnCall }
func (n *FnCallNode) Type() *ExprType { return &n.ExprType }

// --- Statements ------------------------------------------------------

type ReturnNode struct {
	Value Node // nil if bare `return;`
}

func (n *ReturnNode) Kind() NodeKind { return Return }

type ExprStmtNode struct {
	Expr Node
}

func (n *ExprStmtNode) Kind() NodeKind { return ExprStmt }

type BlockNode struct {
	Body []Node
}

func (n *BlockNode) Kind() NodeKind { return Block }

// VarDeclNode is the shared var/let/const declaration struct; DeclKind
// distinguishes the three.
type VarDeclNode struct {
	DeclKind    NodeKind // VarDecl, LetDecl, or ConstDecl
	Name        Token
	Type        Node // nil if absent
	Initializer Node // nil if absent
}

func (n *VarDeclNode) Kind() NodeKind { return n.DeclKind }

type FnDeclNode struct {
	Name    Token
	RetType Node
	Params  []Param
	Body    *BlockNode
}

func (n *FnDeclNode) Kind() NodeKind { return FnDecl }

type CondNode struct {
	CondKind NodeKind // If or While
	Cond     Node
	Body     Node
}

func (n *CondNode) Kind() NodeKind { return n.CondKind }

// --- Type nodes ------------------------------------------------------

type TypeSingleNode struct {
	Name Token
}

func (n *TypeSingleNode) Kind() NodeKind { return TypeSingle }

type TypeArrayNode struct {
	Enclosed Node
}

func (n *TypeArrayNode) Kind() NodeKind { return TypeArray }

type TypeFnNode struct {
	Params []Node
	Ret    Node
}

func (n *TypeFnNode) Kind() NodeKind { return TypeFn }

type TypeTemplateNode struct {
	TypeName Token
	Args     []Node
}

func (n *TypeTemplateNode) Kind() NodeKind { return TypeTemplate }

type TypePtrNode struct {
	Pointed Node
}

func (n *TypePtrNode) Kind() NodeKind { return TypePtr }
