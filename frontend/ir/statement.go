package ir

import "github.com/carlos-lang/carlos/frontend/types"

// VariableDeclaration owns the Variable it declares.
type VariableDeclaration struct {
	Variable    *Variable
	Initializer Expr
}

func (s *VariableDeclaration) stmtNode() {}

// TypeDeclaration owns the StructType it declares. The struct's fields are
// filled in before the declaration node is constructed.
type TypeDeclaration struct {
	Struct *types.StructType
}

func (s *TypeDeclaration) stmtNode() {}

// FunctionDeclaration owns the Function entity and the parameter variables
// bound inside the body scope.
type FunctionDeclaration struct {
	Fun    *Function
	Params []*Variable
	Body   []Stmt
}

func (s *FunctionDeclaration) stmtNode() {}

// Increment represents `v++;`.
type Increment struct {
	Variable Expr
}

func (s *Increment) stmtNode() {}

// Decrement represents `v--;`.
type Decrement struct {
	Variable Expr
}

func (s *Decrement) stmtNode() {}

// Assignment represents `target = source;`. The source is assignable to the
// target's type and the target is not read-only.
type Assignment struct {
	Target Expr
	Source Expr
}

func (s *Assignment) stmtNode() {}

// CallStatement is a call expression in statement position.
type CallStatement struct {
	Call *CallExpr
}

func (s *CallStatement) stmtNode() {}

// BreakStatement represents `break;`, valid only inside a loop body.
type BreakStatement struct{}

func (s *BreakStatement) stmtNode() {}

// ReturnStatement represents `return e;`.
type ReturnStatement struct {
	Expression Expr
}

func (s *ReturnStatement) stmtNode() {}

// ShortReturnStatement represents the valueless `return;`.
type ShortReturnStatement struct{}

func (s *ShortReturnStatement) stmtNode() {}

// ShortIfStatement represents an if statement with no else arm.
type ShortIfStatement struct {
	Test       Expr
	Consequent []Stmt
}

func (s *ShortIfStatement) stmtNode() {}

// LongIfStatement represents an if statement with an else arm. For an
// `else if` chain the Alternate is a single-element block holding the
// nested if statement.
type LongIfStatement struct {
	Test       Expr
	Consequent []Stmt
	Alternate  []Stmt
}

func (s *LongIfStatement) stmtNode() {}

// WhileStatement represents `while t { ... }`.
type WhileStatement struct {
	Test Expr
	Body []Stmt
}

func (s *WhileStatement) stmtNode() {}

// RepeatStatement represents `repeat n { ... }` with an int count.
type RepeatStatement struct {
	Count Expr
	Body  []Stmt
}

func (s *RepeatStatement) stmtNode() {}

// ForRangeStatement represents iteration over an integer interval. The
// iterator variable is read-only and scoped to the body.
type ForRangeStatement struct {
	Iterator *Variable
	Low      Expr
	Op       string // "..<" or "..."
	High     Expr
	Body     []Stmt
}

func (s *ForRangeStatement) stmtNode() {}

// ForEachStatement represents iteration over the elements of an array.
type ForEachStatement struct {
	Iterator   *Variable
	Collection Expr
	Body       []Stmt
}

func (s *ForEachStatement) stmtNode() {}
