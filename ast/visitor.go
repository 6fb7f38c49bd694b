/*
File    : clasp/ast/visitor.go

Table-indexed visitor dispatch, grounded in
original_source/include/clasp/ast.h's ClaspASTVisitor array and
original_source/src/print_ast.c's designated-initializer table. This
supersedes the teacher's interface-based Accept/Visit<Kind>Node double
dispatch: the spec calls for an open, flat dispatch table indexed by
node kind instead.
*/
package ast

import "fmt"

// VisitFunc is a single table entry: given a node and an opaque
// context, produce a result.
type VisitFunc func(node Node, ctx any) any

// VisitorTable is a flat array of callables indexed by NodeKind.
// Unset entries are nil and yield a nil dispatch result; consumers that
// only care about a subset of kinds may leave the rest unset.
type VisitorTable [NumKinds]VisitFunc

// Visit selects and invokes the table entry matching node.Kind().
//
//   - node == nil returns nil (no-op).
//   - node.Kind() out of [0, NumKinds) is an internal inconsistency:
//     Visit panics with an InternalError so the caller's recover (or the
//     process, if uncaught) can report it as such.
//   - an unset table entry is a no-op, returning nil.
func Visit(node Node, ctx any, table VisitorTable) any {
	if node == nil {
		return nil
	}
	k := node.Kind()
	if k < 0 || k >= NumKinds {
		panic(InternalError{Kind: k})
	}
	fn := table[k]
	if fn == nil {
		return nil
	}
	return fn(node, ctx)
}

// InternalError is the panic value raised by Visit when a node's kind
// falls outside the visitor table's range — this should be unreachable
// for any AST produced by the parser, which only ever constructs nodes
// with a kind from the closed NodeKind enumeration.
type InternalError struct {
	Kind NodeKind
}

func (e InternalError) Error() string {
	return fmt.Sprintf("ast: visitor dispatch on out-of-range kind %d", int(e.Kind))
}
