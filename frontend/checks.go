package frontend

import (
	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/frontend/carloserr"
	"github.com/carlos-lang/carlos/frontend/ir"
	"github.com/carlos-lang/carlos/frontend/types"
)

// The check helpers mirror the checking regime one to one: each returns the
// single analysis error its rule produces, with the position of the
// offending parse node.

func checkInteger(e ir.Expr, at ast.Positioner) error {
	if !e.Type().EquivalentTo(types.Int) {
		return carloserr.New(carloserr.NewWrongOperandType{Positioner: at, Wanted: "an integer", Found: e.Type()})
	}
	return nil
}

func isNumeric(t types.Type) bool {
	return t.EquivalentTo(types.Int) || t.EquivalentTo(types.Float)
}

func checkNumeric(e ir.Expr, at ast.Positioner) error {
	if !isNumeric(e.Type()) {
		return carloserr.New(carloserr.NewWrongOperandType{Positioner: at, Wanted: "a number", Found: e.Type()})
	}
	return nil
}

func checkNumericOrString(e ir.Expr, at ast.Positioner) error {
	if !isNumeric(e.Type()) && !e.Type().EquivalentTo(types.String) {
		return carloserr.New(carloserr.NewWrongOperandType{Positioner: at, Wanted: "a number or string", Found: e.Type()})
	}
	return nil
}

func checkBoolean(e ir.Expr, at ast.Positioner) error {
	if !e.Type().EquivalentTo(types.Boolean) {
		return carloserr.New(carloserr.NewWrongOperandType{Positioner: at, Wanted: "a boolean", Found: e.Type()})
	}
	return nil
}

func checkSameType(left, right ir.Expr, at ast.Positioner) error {
	if !left.Type().EquivalentTo(right.Type()) {
		return carloserr.New(carloserr.NewMixedOperandTypes{Positioner: at})
	}
	return nil
}

func checkAssignable(source ir.Expr, target types.Type, at ast.Positioner) error {
	if !source.Type().AssignableTo(target) {
		return carloserr.New(carloserr.NewNotAssignable{Positioner: at, Source: source.Type(), Target: target})
	}
	return nil
}
