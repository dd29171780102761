// Package carloserr defines the analysis-error family of the Carlos
// frontend. Every semantic failure is one error kind distinguished by its
// code and message payload; the analyzer is fail-fast, so at most one of
// these surfaces per run.
package carloserr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/carlos-lang/carlos/frontend/ast"
)

// enableDebugErrorPrinting makes errors include their origin stack frame
// when formatted. Keep off in normal builds: the plain message is part of
// the external contract.
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Parse
	AlreadyDeclared
	NotDeclared
	TypeExpected
	NotAssignable
	AssignToConstant
	ArgumentCount
	BreakOutsideLoop
	ReturnOutsideFunction
	ReturnValueInVoid
	MissingReturnValue
	WrongOperandType
	ArrayExpected
	OptionalExpected
	StructExpected
	MixedOperandTypes
	MixedElementTypes
	DuplicateFields
	RecursiveStruct
	NoSuchField
	NotCallable
)

// CarlosError is an analysis error with a position in the original source.
type CarlosError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) CarlosError
	getStack() []byte
}

// FormatWithCode renders an error with its numeric code, and optionally the
// stack frame it was raised from when debug printing is enabled.
func FormatWithCode(e CarlosError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// New attaches the creation stack to an error value.
func New[E CarlosError](err E) CarlosError {
	return err.withStack(debug.Stack())
}
