// Package ast holds the parse-tree node variants produced by the parser.
//
// Nodes here are untyped: they carry source spellings and positions only.
// The analyzer in the frontend package resolves them into ir nodes, which
// carry entities and resolved types.
package ast

// Node is the base interface for all parse-tree nodes.
type Node interface {
	Positioner
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// TypeExpr is the interface for all type-expression nodes, such as `[int]`
// or `(int,string)->bool`.
type TypeExpr interface {
	Node
	typeNode()
}

// Program is the root of a parse tree: an ordered sequence of top-level
// statements.
type Program struct {
	Range
	Statements []Stmt
}
