package carloserr

import (
	"fmt"

	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/frontend/types"
)

type NewParse struct {
	ast.Positioner
	ParserMessage string
	stack         []byte
}

func (e NewParse) Error() string    { return e.ParserMessage }
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewAlreadyDeclared struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewAlreadyDeclared) Error() string {
	return fmt.Sprintf("Identifier %s already declared", e.Name)
}
func (e NewAlreadyDeclared) Code() ErrCode    { return AlreadyDeclared }
func (e NewAlreadyDeclared) getStack() []byte { return e.stack }
func (e NewAlreadyDeclared) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewNotDeclared struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewNotDeclared) Error() string {
	return fmt.Sprintf("Identifier %s not declared", e.Name)
}
func (e NewNotDeclared) Code() ErrCode    { return NotDeclared }
func (e NewNotDeclared) getStack() []byte { return e.stack }
func (e NewNotDeclared) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewTypeExpected struct {
	ast.Positioner
	stack []byte
}

func (e NewTypeExpected) Error() string    { return "Type expected" }
func (e NewTypeExpected) Code() ErrCode    { return TypeExpected }
func (e NewTypeExpected) getStack() []byte { return e.stack }
func (e NewTypeExpected) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewNotAssignable struct {
	ast.Positioner
	Source types.Type
	Target types.Type
	stack  []byte
}

func (e NewNotAssignable) Error() string {
	return fmt.Sprintf("Cannot assign a %s to a %s", e.Source.Description(), e.Target.Description())
}
func (e NewNotAssignable) Code() ErrCode    { return NotAssignable }
func (e NewNotAssignable) getStack() []byte { return e.stack }
func (e NewNotAssignable) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewAssignToConstant struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewAssignToConstant) Error() string {
	return fmt.Sprintf("Cannot assign to constant %s", e.Name)
}
func (e NewAssignToConstant) Code() ErrCode    { return AssignToConstant }
func (e NewAssignToConstant) getStack() []byte { return e.stack }
func (e NewAssignToConstant) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewArgumentCount struct {
	ast.Positioner
	Required int
	Passed   int
	stack    []byte
}

func (e NewArgumentCount) Error() string {
	return fmt.Sprintf("%d argument(s) required but %d passed", e.Required, e.Passed)
}
func (e NewArgumentCount) Code() ErrCode    { return ArgumentCount }
func (e NewArgumentCount) getStack() []byte { return e.stack }
func (e NewArgumentCount) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewBreakOutsideLoop struct {
	ast.Positioner
	stack []byte
}

func (e NewBreakOutsideLoop) Error() string    { return "Break can only appear in a loop" }
func (e NewBreakOutsideLoop) Code() ErrCode    { return BreakOutsideLoop }
func (e NewBreakOutsideLoop) getStack() []byte { return e.stack }
func (e NewBreakOutsideLoop) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewReturnOutsideFunction struct {
	ast.Positioner
	stack []byte
}

func (e NewReturnOutsideFunction) Error() string    { return "Return can only appear in a function" }
func (e NewReturnOutsideFunction) Code() ErrCode    { return ReturnOutsideFunction }
func (e NewReturnOutsideFunction) getStack() []byte { return e.stack }
func (e NewReturnOutsideFunction) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewReturnValueInVoid struct {
	ast.Positioner
	stack []byte
}

func (e NewReturnValueInVoid) Error() string    { return "Cannot return a value here" }
func (e NewReturnValueInVoid) Code() ErrCode    { return ReturnValueInVoid }
func (e NewReturnValueInVoid) getStack() []byte { return e.stack }
func (e NewReturnValueInVoid) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewMissingReturnValue struct {
	ast.Positioner
	stack []byte
}

func (e NewMissingReturnValue) Error() string    { return "Something should be returned here" }
func (e NewMissingReturnValue) Code() ErrCode    { return MissingReturnValue }
func (e NewMissingReturnValue) getStack() []byte { return e.stack }
func (e NewMissingReturnValue) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

// NewWrongOperandType covers the primitive operand checks: Wanted is the
// category spelling, such as "an integer" or "a number or string".
type NewWrongOperandType struct {
	ast.Positioner
	Wanted string
	Found  types.Type
	stack  []byte
}

func (e NewWrongOperandType) Error() string {
	return fmt.Sprintf("Expected %s, found %s", e.Wanted, e.Found.Description())
}
func (e NewWrongOperandType) Code() ErrCode    { return WrongOperandType }
func (e NewWrongOperandType) getStack() []byte { return e.stack }
func (e NewWrongOperandType) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewArrayExpected struct {
	ast.Positioner
	stack []byte
}

func (e NewArrayExpected) Error() string    { return "Array expected" }
func (e NewArrayExpected) Code() ErrCode    { return ArrayExpected }
func (e NewArrayExpected) getStack() []byte { return e.stack }
func (e NewArrayExpected) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewOptionalExpected struct {
	ast.Positioner
	stack []byte
}

func (e NewOptionalExpected) Error() string    { return "Optional expected" }
func (e NewOptionalExpected) Code() ErrCode    { return OptionalExpected }
func (e NewOptionalExpected) getStack() []byte { return e.stack }
func (e NewOptionalExpected) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewStructExpected struct {
	ast.Positioner
	stack []byte
}

func (e NewStructExpected) Error() string    { return "Struct expected" }
func (e NewStructExpected) Code() ErrCode    { return StructExpected }
func (e NewStructExpected) getStack() []byte { return e.stack }
func (e NewStructExpected) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewMixedOperandTypes struct {
	ast.Positioner
	stack []byte
}

func (e NewMixedOperandTypes) Error() string    { return "Operands do not have the same type" }
func (e NewMixedOperandTypes) Code() ErrCode    { return MixedOperandTypes }
func (e NewMixedOperandTypes) getStack() []byte { return e.stack }
func (e NewMixedOperandTypes) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewMixedElementTypes struct {
	ast.Positioner
	stack []byte
}

func (e NewMixedElementTypes) Error() string    { return "Not all elements have the same type" }
func (e NewMixedElementTypes) Code() ErrCode    { return MixedElementTypes }
func (e NewMixedElementTypes) getStack() []byte { return e.stack }
func (e NewMixedElementTypes) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewDuplicateFields struct {
	ast.Positioner
	stack []byte
}

func (e NewDuplicateFields) Error() string    { return "Fields must be distinct" }
func (e NewDuplicateFields) Code() ErrCode    { return DuplicateFields }
func (e NewDuplicateFields) getStack() []byte { return e.stack }
func (e NewDuplicateFields) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewRecursiveStruct struct {
	ast.Positioner
	stack []byte
}

func (e NewRecursiveStruct) Error() string    { return "Struct type must not be recursive" }
func (e NewRecursiveStruct) Code() ErrCode    { return RecursiveStruct }
func (e NewRecursiveStruct) getStack() []byte { return e.stack }
func (e NewRecursiveStruct) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewNoSuchField struct {
	ast.Positioner
	stack []byte
}

func (e NewNoSuchField) Error() string    { return "No such field" }
func (e NewNoSuchField) Code() ErrCode    { return NoSuchField }
func (e NewNoSuchField) getStack() []byte { return e.stack }
func (e NewNoSuchField) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}

type NewNotCallable struct {
	ast.Positioner
	stack []byte
}

func (e NewNotCallable) Error() string    { return "Call of non-function or non-constructor" }
func (e NewNotCallable) Code() ErrCode    { return NotCallable }
func (e NewNotCallable) getStack() []byte { return e.stack }
func (e NewNotCallable) withStack(stack []byte) CarlosError {
	e.stack = stack
	return e
}
