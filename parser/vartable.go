/*
File    : clasp/parser/vartable.go

The variable table (spec §3.4) records, per declared name, the kind of
declaration (var/let/const), its declared type node, and the expression-type
flags a VarRef to that name should carry. Adapted from go-mix/scope.Scope:
where the teacher's Scope binds a runtime value per name, this one binds a
VarRecord — there is nothing to evaluate at parse time, only a declaration
shape.

This resolves spec §9's scoping Open Question in favour of lexical
scoping: Scope is a stack of flat maps with a parent pointer, so a
declaration in an inner scope shadows (without clobbering) the same name
in an outer one. At single-scope depth its behavior matches the flat map
the original C source uses, so every spec §8 example still holds.
*/
package parser

import "github.com/claspc/clasp/ast"

// VarRecord is what the variable table stores per declared name.
type VarRecord struct {
	DeclKind ast.NodeKind // ast.VarDecl, ast.LetDecl, or ast.ConstDecl
	Type     ast.Node     // declared type node, nil if unresolved
	Flags    ast.ExprFlag
}

// Scope is one level of the variable-table scope chain.
type Scope struct {
	vars   map[string]VarRecord
	parent *Scope
}

// NewScope creates a scope nested under parent (nil for the root/global
// scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]VarRecord), parent: parent}
}

// Push opens a child scope nested under s — called on entering a Block,
// an If/While body, or an FnDecl body.
func (s *Scope) Push() *Scope {
	return NewScope(s)
}

// Pop returns to the enclosing scope — called on leaving the scopes
// Push opened. Popping the root scope returns nil.
func (s *Scope) Pop() *Scope {
	return s.parent
}

// Declare binds name in the current scope only (shadowing, not
// overwriting, any binding of the same name in an outer scope).
func (s *Scope) Declare(name string, rec VarRecord) {
	s.vars[name] = rec
}

// Lookup searches for name in this scope and, if absent, each enclosing
// scope in turn. The innermost binding wins.
func (s *Scope) Lookup(name string) (VarRecord, bool) {
	if rec, ok := s.vars[name]; ok {
		return rec, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	return VarRecord{}, false
}

// declFlags maps a declaration keyword's AST kind to the expression-type
// flags a VarRef to that name should carry (spec §4.2's "side-effect on
// declarations"): const -> CONST, let -> IMMUTABLE, var -> MUTABLE.
func declFlags(declKind ast.NodeKind) ast.ExprFlag {
	switch declKind {
	case ast.ConstDecl:
		return ast.FlagConst
	case ast.LetDecl:
		return ast.FlagImmutable
	default: // ast.VarDecl
		return ast.FlagMutable
	}
}
