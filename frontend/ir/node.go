// Package ir holds the resolved AST produced by the analyzer.
//
// Unlike the parse tree in frontend/ast, every expression node here carries
// a resolved type, and every identifier occurrence has been replaced by a
// direct reference to the entity it resolves to. Nodes are constructed only
// by the analyzer and are immutable once built.
package ir

import "github.com/carlos-lang/carlos/frontend/types"

// Entity is a semantic object an identifier can resolve to: a *Variable, a
// *Function, or a type from the types package (a *types.StructType for
// declared structs, a *types.Primitive for built-in type names).
type Entity any

// Stmt is the interface for all resolved statement nodes. Blocks have no
// node of their own: a block is an ordered []Stmt.
type Stmt interface {
	stmtNode()
}

// Expr is the interface for all resolved expression nodes. Entities that
// can appear in expression position (variables, functions, struct types,
// primitives) implement it directly: a resolved identifier simply is its
// entity.
type Expr interface {
	Type() types.Type
}

// Program is the root of a resolved AST.
type Program struct {
	Statements []Stmt
}
