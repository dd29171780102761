package frontend

import (
	"go/token"
	"math/big"
	"strconv"

	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/frontend/carloserr"
	"github.com/carlos-lang/carlos/frontend/ir"
	"github.com/carlos-lang/carlos/frontend/types"
)

func (a *analyzer) expression(ctx *Context, e ast.Expr) (ir.Expr, error) {
	switch e := e.(type) {
	case *ast.Identifier:
		entity, err := ctx.Lookup(e.Name, e)
		if err != nil {
			return nil, err
		}
		// a resolved identifier is its entity; everything bindable in a
		// context can stand in expression position
		return entity.(ir.Expr), nil
	case *ast.BoolLiteral:
		return &ir.BoolLiteral{Value: e.Value}, nil
	case *ast.Literal:
		return a.literal(e)
	case *ast.Conditional:
		return a.conditional(ctx, e)
	case *ast.BinaryExpr:
		return a.binary(ctx, e)
	case *ast.UnaryExpr:
		return a.unary(ctx, e)
	case *ast.EmptyArray:
		elemType, err := a.typeExpr(ctx, e.ElemType)
		if err != nil {
			return nil, err
		}
		return &ir.EmptyArray{ExprType: &types.ArrayType{Base: elemType}}, nil
	case *ast.EmptyOptional:
		baseType, err := a.typeExpr(ctx, e.BaseType)
		if err != nil {
			return nil, err
		}
		return &ir.EmptyOptional{ExprType: &types.OptionalType{Base: baseType}}, nil
	case *ast.ArrayLit:
		return a.arrayLit(ctx, e)
	case *ast.SubscriptExpr:
		return a.subscript(ctx, e)
	case *ast.MemberExpr:
		return a.member(ctx, e)
	case *ast.CallExpr:
		return a.call(ctx, e)
	default:
		panic("frontend: unhandled expression parse node")
	}
}

func (a *analyzer) literal(e *ast.Literal) (ir.Expr, error) {
	switch e.Kind {
	case token.INT:
		value, ok := new(big.Int).SetString(e.Value, 10)
		if !ok {
			return nil, carloserr.New(carloserr.NewParse{Positioner: e, ParserMessage: "malformed integer literal " + e.Value})
		}
		return &ir.IntLiteral{Value: value}, nil
	case token.FLOAT:
		value, err := strconv.ParseFloat(e.Value, 64)
		if err != nil {
			return nil, carloserr.New(carloserr.NewParse{Positioner: e, ParserMessage: "malformed float literal " + e.Value})
		}
		return &ir.FloatLiteral{Value: value}, nil
	case token.STRING:
		return &ir.StringLiteral{Value: e.Value}, nil
	default:
		panic("frontend: unhandled literal kind")
	}
}

func (a *analyzer) conditional(ctx *Context, e *ast.Conditional) (ir.Expr, error) {
	test, err := a.expression(ctx, e.Test)
	if err != nil {
		return nil, err
	}
	if err := checkBoolean(test, e.Test); err != nil {
		return nil, err
	}
	consequent, err := a.expression(ctx, e.Consequent)
	if err != nil {
		return nil, err
	}
	alternate, err := a.expression(ctx, e.Alternate)
	if err != nil {
		return nil, err
	}
	if err := checkSameType(consequent, alternate, e); err != nil {
		return nil, err
	}
	return &ir.Conditional{
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
		ExprType:   consequent.Type(),
	}, nil
}

func (a *analyzer) binary(ctx *Context, e *ast.BinaryExpr) (ir.Expr, error) {
	left, err := a.expression(ctx, e.Left)
	if err != nil {
		return nil, err
	}

	// unwrap-else resolves its result type before the right operand is
	// needed, so handle it before the common left/right scheme
	if e.Op == "??" {
		optional, ok := left.Type().(*types.OptionalType)
		if !ok {
			return nil, carloserr.New(carloserr.NewOptionalExpected{Positioner: e.Left})
		}
		right, err := a.expression(ctx, e.Right)
		if err != nil {
			return nil, err
		}
		if err := checkAssignable(right, optional.Base, e.Right); err != nil {
			return nil, err
		}
		return &ir.BinaryExpr{Op: e.Op, Left: left, Right: right, ExprType: left.Type()}, nil
	}

	right, err := a.expression(ctx, e.Right)
	if err != nil {
		return nil, err
	}

	var resultType types.Type
	switch e.Op {
	case "||", "&&":
		if err := checkBoolean(left, e.Left); err != nil {
			return nil, err
		}
		if err := checkBoolean(right, e.Right); err != nil {
			return nil, err
		}
		resultType = types.Boolean
	case "|", "^", "&":
		if err := checkInteger(left, e.Left); err != nil {
			return nil, err
		}
		if err := checkInteger(right, e.Right); err != nil {
			return nil, err
		}
		resultType = types.Int
	case "<", "<=", ">", ">=":
		if err := checkNumericOrString(left, e.Left); err != nil {
			return nil, err
		}
		if err := checkSameType(left, right, e); err != nil {
			return nil, err
		}
		resultType = types.Boolean
	case "==", "!=":
		if err := checkSameType(left, right, e); err != nil {
			return nil, err
		}
		resultType = types.Boolean
	case "<<", ">>":
		if err := checkInteger(left, e.Left); err != nil {
			return nil, err
		}
		if err := checkInteger(right, e.Right); err != nil {
			return nil, err
		}
		resultType = types.Int
	case "+":
		if err := checkNumericOrString(left, e.Left); err != nil {
			return nil, err
		}
		if err := checkSameType(left, right, e); err != nil {
			return nil, err
		}
		resultType = left.Type()
	case "-", "*", "/", "%", "**":
		if err := checkNumeric(left, e.Left); err != nil {
			return nil, err
		}
		if err := checkSameType(left, right, e); err != nil {
			return nil, err
		}
		resultType = left.Type()
	default:
		panic("frontend: unhandled binary operator " + e.Op)
	}
	return &ir.BinaryExpr{Op: e.Op, Left: left, Right: right, ExprType: resultType}, nil
}

func (a *analyzer) unary(ctx *Context, e *ast.UnaryExpr) (ir.Expr, error) {
	operand, err := a.expression(ctx, e.Operand)
	if err != nil {
		return nil, err
	}
	var resultType types.Type
	switch e.Op {
	case "-":
		if err := checkNumeric(operand, e.Operand); err != nil {
			return nil, err
		}
		resultType = operand.Type()
	case "!":
		if err := checkBoolean(operand, e.Operand); err != nil {
			return nil, err
		}
		resultType = types.Boolean
	case "#":
		if _, ok := operand.Type().(*types.ArrayType); !ok {
			return nil, carloserr.New(carloserr.NewArrayExpected{Positioner: e.Operand})
		}
		resultType = types.Int
	case "some":
		resultType = &types.OptionalType{Base: operand.Type()}
	default:
		panic("frontend: unhandled unary operator " + e.Op)
	}
	return &ir.UnaryExpr{Op: e.Op, Operand: operand, ExprType: resultType}, nil
}

func (a *analyzer) arrayLit(ctx *Context, e *ast.ArrayLit) (ir.Expr, error) {
	elements := make([]ir.Expr, len(e.Elements))
	for i, elem := range e.Elements {
		resolved, err := a.expression(ctx, elem)
		if err != nil {
			return nil, err
		}
		elements[i] = resolved
	}
	first := elements[0].Type()
	for _, elem := range elements[1:] {
		if !elem.Type().EquivalentTo(first) {
			return nil, carloserr.New(carloserr.NewMixedElementTypes{Positioner: e})
		}
	}
	return &ir.ArrayExpr{Elements: elements, ExprType: &types.ArrayType{Base: first}}, nil
}

func (a *analyzer) subscript(ctx *Context, e *ast.SubscriptExpr) (ir.Expr, error) {
	array, err := a.expression(ctx, e.Array)
	if err != nil {
		return nil, err
	}
	arrayType, ok := array.Type().(*types.ArrayType)
	if !ok {
		return nil, carloserr.New(carloserr.NewArrayExpected{Positioner: e.Array})
	}
	index, err := a.expression(ctx, e.Index)
	if err != nil {
		return nil, err
	}
	if err := checkInteger(index, e.Index); err != nil {
		return nil, err
	}
	return &ir.SubscriptExpr{Array: array, Index: index, ExprType: arrayType.Base}, nil
}

// member handles both `obj.f` and the optional-chained `obj?.f`. The plain
// form needs a struct; the chained form needs an optional of a struct.
func (a *analyzer) member(ctx *Context, e *ast.MemberExpr) (ir.Expr, error) {
	object, err := a.expression(ctx, e.Object)
	if err != nil {
		return nil, err
	}
	var structType *types.StructType
	if e.Optional {
		optional, ok := object.Type().(*types.OptionalType)
		if !ok {
			return nil, carloserr.New(carloserr.NewOptionalExpected{Positioner: e.Object})
		}
		structType, ok = optional.Base.(*types.StructType)
		if !ok {
			return nil, carloserr.New(carloserr.NewOptionalExpected{Positioner: e.Object})
		}
	} else {
		var ok bool
		structType, ok = object.Type().(*types.StructType)
		if !ok {
			return nil, carloserr.New(carloserr.NewStructExpected{Positioner: e.Object})
		}
	}
	field, ok := structType.FieldNamed(e.Field)
	if !ok {
		return nil, carloserr.New(carloserr.NewNoSuchField{Positioner: e})
	}
	return &ir.MemberExpr{Object: object, Field: field, OptionalChain: e.Optional}, nil
}

// call distinguishes constructor calls (callee resolved to a struct type)
// from function calls (callee of function type); anything else is not
// callable.
func (a *analyzer) call(ctx *Context, e *ast.CallExpr) (ir.Expr, error) {
	callee, err := a.expression(ctx, e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]ir.Expr, len(e.Args))
	for i, arg := range e.Args {
		resolved, err := a.expression(ctx, arg)
		if err != nil {
			return nil, err
		}
		args[i] = resolved
	}

	if structType, ok := callee.(*types.StructType); ok {
		if len(args) != len(structType.Fields) {
			return nil, carloserr.New(carloserr.NewArgumentCount{
				Positioner: e,
				Required:   len(structType.Fields),
				Passed:     len(args),
			})
		}
		for i, arg := range args {
			if err := checkAssignable(arg, structType.Fields[i].Type, e.Args[i]); err != nil {
				return nil, err
			}
		}
		return &ir.CallExpr{Callee: callee, Args: args, ExprType: structType}, nil
	}

	functionType, ok := callee.Type().(*types.FunctionType)
	if !ok {
		return nil, carloserr.New(carloserr.NewNotCallable{Positioner: e.Callee})
	}
	if len(args) != len(functionType.ParamTypes) {
		return nil, carloserr.New(carloserr.NewArgumentCount{
			Positioner: e,
			Required:   len(functionType.ParamTypes),
			Passed:     len(args),
		})
	}
	for i, arg := range args {
		if err := checkAssignable(arg, functionType.ParamTypes[i], e.Args[i]); err != nil {
			return nil, err
		}
	}
	return &ir.CallExpr{Callee: callee, Args: args, ExprType: functionType.ReturnType}, nil
}
