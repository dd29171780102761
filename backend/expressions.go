package backend

import (
	"strconv"
	"strings"

	"github.com/carlos-lang/carlos/frontend/ir"
	"github.com/carlos-lang/carlos/frontend/types"
)

// Expr renders a resolved expression as Carlos source. Compound
// subexpressions are parenthesized, so the rendering never depends on
// operator precedence.
func Expr(e ir.Expr) string {
	switch e := e.(type) {
	case *ir.Variable:
		return e.Name
	case *ir.Function:
		return e.Name
	case *types.StructType:
		return e.Name
	case *types.Primitive:
		return e.Description()
	case *ir.BoolLiteral:
		return strconv.FormatBool(e.Value)
	case *ir.IntLiteral:
		return e.Value.String()
	case *ir.FloatLiteral:
		return formatFloat(e.Value)
	case *ir.StringLiteral:
		return e.Value
	case *ir.Conditional:
		return "(" + Expr(e.Test) + " ? " + Expr(e.Consequent) + " : " + Expr(e.Alternate) + ")"
	case *ir.BinaryExpr:
		return "(" + Expr(e.Left) + " " + e.Op + " " + Expr(e.Right) + ")"
	case *ir.UnaryExpr:
		if e.Op == "some" {
			return "(some " + Expr(e.Operand) + ")"
		}
		return "(" + e.Op + Expr(e.Operand) + ")"
	case *ir.EmptyArray:
		return "[](of " + e.ExprType.Base.Description() + ")"
	case *ir.EmptyOptional:
		return "(no " + e.ExprType.Base.Description() + ")"
	case *ir.ArrayExpr:
		elements := make([]string, len(e.Elements))
		for i, elem := range e.Elements {
			elements[i] = Expr(elem)
		}
		return "[" + strings.Join(elements, ", ") + "]"
	case *ir.SubscriptExpr:
		return Expr(e.Array) + "[" + Expr(e.Index) + "]"
	case *ir.MemberExpr:
		if e.OptionalChain {
			return Expr(e.Object) + "?." + e.Field.Name
		}
		return Expr(e.Object) + "." + e.Field.Name
	case *ir.CallExpr:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = Expr(arg)
		}
		return Expr(e.Callee) + "(" + strings.Join(args, ", ") + ")"
	default:
		panic("backend: unhandled expression node")
	}
}

// formatFloat keeps a fraction or exponent in the spelling so the result
// still lexes as a float.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
