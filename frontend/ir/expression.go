package ir

import (
	"math/big"

	"github.com/carlos-lang/carlos/frontend/types"
)

// Conditional represents `test ? consequent : alternate`. Both arms have
// the same type, which is the type of the whole expression.
type Conditional struct {
	Test       Expr
	Consequent Expr
	Alternate  Expr
	ExprType   types.Type
}

func (e *Conditional) Type() types.Type { return e.ExprType }

// BinaryExpr carries its operator spelling and the resolved result type.
// The unwrap-else operator `??` is represented here as well, with the
// optional's own type as the result type.
type BinaryExpr struct {
	Op       string
	Left     Expr
	Right    Expr
	ExprType types.Type
}

func (e *BinaryExpr) Type() types.Type { return e.ExprType }

// UnaryExpr represents `-x`, `!x`, `#x`, and `some x`.
type UnaryExpr struct {
	Op       string
	Operand  Expr
	ExprType types.Type
}

func (e *UnaryExpr) Type() types.Type { return e.ExprType }

// EmptyArray represents `[](of T)`; its type is `[T]`.
type EmptyArray struct {
	ExprType *types.ArrayType
}

func (e *EmptyArray) Type() types.Type { return e.ExprType }

// EmptyOptional represents `no T`; its type is `T?`.
type EmptyOptional struct {
	ExprType *types.OptionalType
}

func (e *EmptyOptional) Type() types.Type { return e.ExprType }

// ArrayExpr represents a non-empty array literal. All elements have
// equivalent types and the result type is an array of the first element's
// type.
type ArrayExpr struct {
	Elements []Expr
	ExprType *types.ArrayType
}

func (e *ArrayExpr) Type() types.Type { return e.ExprType }

// SubscriptExpr represents `a[i]`; its type is the array's element type.
type SubscriptExpr struct {
	Array    Expr
	Index    Expr
	ExprType types.Type
}

func (e *SubscriptExpr) Type() types.Type { return e.ExprType }

// MemberExpr represents `obj.f`, or `obj?.f` when OptionalChain is set.
type MemberExpr struct {
	Object        Expr
	Field         *types.Field
	OptionalChain bool
}

func (e *MemberExpr) Type() types.Type { return e.Field.Type }

// CallExpr represents a function call or a struct constructor call. For a
// constructor the callee is the *types.StructType itself and the result
// type is that struct type.
type CallExpr struct {
	Callee   Expr
	Args     []Expr
	ExprType types.Type
}

func (e *CallExpr) Type() types.Type { return e.ExprType }

// IntLiteral carries an arbitrary-precision integer value.
type IntLiteral struct {
	Value *big.Int
}

func (e *IntLiteral) Type() types.Type { return types.Int }

// FloatLiteral carries a floating-point value.
type FloatLiteral struct {
	Value float64
}

func (e *FloatLiteral) Type() types.Type { return types.Float }

// StringLiteral keeps the raw source spelling, surrounding quotes included.
type StringLiteral struct {
	Value string
}

func (e *StringLiteral) Type() types.Type { return types.String }

// BoolLiteral represents `true` or `false`.
type BoolLiteral struct {
	Value bool
}

func (e *BoolLiteral) Type() types.Type { return types.Boolean }
