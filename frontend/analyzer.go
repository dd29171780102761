package frontend

import (
	"sort"

	"github.com/xtgo/set"

	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/frontend/carloserr"
	"github.com/carlos-lang/carlos/frontend/ir"
	"github.com/carlos-lang/carlos/frontend/types"
)

func (a *analyzer) statement(ctx *Context, s ast.Stmt) (ir.Stmt, error) {
	switch s := s.(type) {
	case *ast.VarDecl:
		return a.varDecl(ctx, s)
	case *ast.TypeDecl:
		return a.typeDecl(ctx, s)
	case *ast.FunDecl:
		return a.funDecl(ctx, s)
	case *ast.BumpStatement:
		target, err := a.expression(ctx, s.Target)
		if err != nil {
			return nil, err
		}
		if err := checkInteger(target, s.Target); err != nil {
			return nil, err
		}
		if s.Op == "++" {
			return &ir.Increment{Variable: target}, nil
		}
		return &ir.Decrement{Variable: target}, nil
	case *ast.Assignment:
		return a.assignment(ctx, s)
	case *ast.CallStatement:
		call, err := a.expression(ctx, s.Call)
		if err != nil {
			return nil, err
		}
		return &ir.CallStatement{Call: call.(*ir.CallExpr)}, nil
	case *ast.BreakStatement:
		if !ctx.InLoop() {
			return nil, carloserr.New(carloserr.NewBreakOutsideLoop{Positioner: s})
		}
		return &ir.BreakStatement{}, nil
	case *ast.ReturnStatement:
		return a.returnStatement(ctx, s)
	case *ast.IfStatement:
		return a.ifStatement(ctx, s)
	case *ast.WhileStatement:
		test, err := a.expression(ctx, s.Test)
		if err != nil {
			return nil, err
		}
		if err := checkBoolean(test, s.Test); err != nil {
			return nil, err
		}
		body, err := a.block(ctx.NewChildInLoop(), s.Body)
		if err != nil {
			return nil, err
		}
		return &ir.WhileStatement{Test: test, Body: body}, nil
	case *ast.RepeatStatement:
		count, err := a.expression(ctx, s.Count)
		if err != nil {
			return nil, err
		}
		if err := checkInteger(count, s.Count); err != nil {
			return nil, err
		}
		body, err := a.block(ctx.NewChildInLoop(), s.Body)
		if err != nil {
			return nil, err
		}
		return &ir.RepeatStatement{Count: count, Body: body}, nil
	case *ast.ForRangeStatement:
		return a.forRange(ctx, s)
	case *ast.ForEachStatement:
		return a.forEach(ctx, s)
	default:
		panic("frontend: unhandled statement parse node")
	}
}

func (a *analyzer) varDecl(ctx *Context, s *ast.VarDecl) (ir.Stmt, error) {
	initializer, err := a.expression(ctx, s.Initializer)
	if err != nil {
		return nil, err
	}
	v := &ir.Variable{
		Name:     s.Name,
		ReadOnly: s.Modifier == "const",
		VarType:  initializer.Type(),
	}
	if err := ctx.Add(s.Name, v, s); err != nil {
		return nil, err
	}
	return &ir.VariableDeclaration{Variable: v, Initializer: initializer}, nil
}

// typeDecl binds the struct type before resolving its fields, which is what
// allows a field to reach the struct through an array or optional wrapper.
func (a *analyzer) typeDecl(ctx *Context, s *ast.TypeDecl) (ir.Stmt, error) {
	st := &types.StructType{Name: s.Name}
	if err := ctx.Add(s.Name, st, s); err != nil {
		return nil, err
	}
	fields := make([]*types.Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		fieldType, err := a.typeExpr(ctx, f.Type)
		if err != nil {
			return nil, err
		}
		fields = append(fields, &types.Field{Name: f.Name, Type: fieldType})
	}
	st.Fields = fields
	if err := checkFieldsAllDistinct(st, s); err != nil {
		return nil, err
	}
	if err := checkNotRecursive(st, s); err != nil {
		return nil, err
	}
	return &ir.TypeDeclaration{Struct: st}, nil
}

func checkFieldsAllDistinct(st *types.StructType, at ast.Positioner) error {
	names := make(sort.StringSlice, len(st.Fields))
	for i, f := range st.Fields {
		names[i] = f.Name
	}
	names.Sort()
	if set.Uniq(names) != len(st.Fields) {
		return carloserr.New(carloserr.NewDuplicateFields{Positioner: at})
	}
	return nil
}

// checkNotRecursive rejects a field whose type is the struct itself.
// Recursion through an array or optional wrapper is fine, because the
// wrapper is a different type from the struct.
func checkNotRecursive(st *types.StructType, at ast.Positioner) error {
	for _, f := range st.Fields {
		if fieldStruct, ok := f.Type.(*types.StructType); ok && fieldStruct == st {
			return carloserr.New(carloserr.NewRecursiveStruct{Positioner: at})
		}
	}
	return nil
}

// funDecl resolves the signature before the body, so the function is
// visible and fully typed inside its own body.
func (a *analyzer) funDecl(ctx *Context, s *ast.FunDecl) (ir.Stmt, error) {
	paramTypes := make([]types.Type, len(s.Params))
	for i, p := range s.Params {
		t, err := a.typeExpr(ctx, p.Type)
		if err != nil {
			return nil, err
		}
		paramTypes[i] = t
	}
	returnType := types.Type(types.Void)
	if s.ReturnType != nil {
		t, err := a.typeExpr(ctx, s.ReturnType)
		if err != nil {
			return nil, err
		}
		returnType = t
	}
	f := &ir.Function{
		Name:      s.Name,
		Signature: &types.FunctionType{ParamTypes: paramTypes, ReturnType: returnType},
	}
	if err := ctx.Add(s.Name, f, s); err != nil {
		return nil, err
	}
	child := ctx.NewChildInFunction(f)
	params := make([]*ir.Variable, len(s.Params))
	for i, p := range s.Params {
		v := &ir.Variable{Name: p.Name, ReadOnly: false, VarType: paramTypes[i]}
		if err := child.Add(p.Name, v, p); err != nil {
			return nil, err
		}
		params[i] = v
	}
	body, err := a.block(child, s.Body)
	if err != nil {
		return nil, err
	}
	return &ir.FunctionDeclaration{Fun: f, Params: params, Body: body}, nil
}

func (a *analyzer) assignment(ctx *Context, s *ast.Assignment) (ir.Stmt, error) {
	source, err := a.expression(ctx, s.Source)
	if err != nil {
		return nil, err
	}
	target, err := a.expression(ctx, s.Target)
	if err != nil {
		return nil, err
	}
	if err := checkAssignable(source, target.Type(), s); err != nil {
		return nil, err
	}
	if v, ok := target.(*ir.Variable); ok && v.ReadOnly {
		return nil, carloserr.New(carloserr.NewAssignToConstant{Positioner: s, Name: v.Name})
	}
	return &ir.Assignment{Target: target, Source: source}, nil
}

func (a *analyzer) returnStatement(ctx *Context, s *ast.ReturnStatement) (ir.Stmt, error) {
	f := ctx.Function()
	if f == nil {
		return nil, carloserr.New(carloserr.NewReturnOutsideFunction{Positioner: s})
	}
	if s.Expression == nil {
		if !f.Signature.ReturnType.EquivalentTo(types.Void) {
			return nil, carloserr.New(carloserr.NewMissingReturnValue{Positioner: s})
		}
		return &ir.ShortReturnStatement{}, nil
	}
	if f.Signature.ReturnType.EquivalentTo(types.Void) {
		return nil, carloserr.New(carloserr.NewReturnValueInVoid{Positioner: s})
	}
	value, err := a.expression(ctx, s.Expression)
	if err != nil {
		return nil, err
	}
	if err := checkAssignable(value, f.Signature.ReturnType, s.Expression); err != nil {
		return nil, err
	}
	return &ir.ReturnStatement{Expression: value}, nil
}

// ifStatement opens a child scope for the consequent and for a brace-block
// else arm. A trailing `else if` is analyzed in the current context, so an
// else-if chain does not pile up scopes.
func (a *analyzer) ifStatement(ctx *Context, s *ast.IfStatement) (ir.Stmt, error) {
	test, err := a.expression(ctx, s.Test)
	if err != nil {
		return nil, err
	}
	if err := checkBoolean(test, s.Test); err != nil {
		return nil, err
	}
	consequent, err := a.block(ctx.NewChild(), s.Consequent)
	if err != nil {
		return nil, err
	}
	if s.Else == nil {
		return &ir.ShortIfStatement{Test: test, Consequent: consequent}, nil
	}
	if s.Else.If != nil {
		nested, err := a.statement(ctx, s.Else.If)
		if err != nil {
			return nil, err
		}
		return &ir.LongIfStatement{Test: test, Consequent: consequent, Alternate: []ir.Stmt{nested}}, nil
	}
	alternate, err := a.block(ctx.NewChild(), s.Else.Block)
	if err != nil {
		return nil, err
	}
	return &ir.LongIfStatement{Test: test, Consequent: consequent, Alternate: alternate}, nil
}

func (a *analyzer) forRange(ctx *Context, s *ast.ForRangeStatement) (ir.Stmt, error) {
	low, err := a.expression(ctx, s.Low)
	if err != nil {
		return nil, err
	}
	if err := checkInteger(low, s.Low); err != nil {
		return nil, err
	}
	high, err := a.expression(ctx, s.High)
	if err != nil {
		return nil, err
	}
	if err := checkInteger(high, s.High); err != nil {
		return nil, err
	}
	child := ctx.NewChildInLoop()
	iterator := &ir.Variable{Name: s.Iterator, ReadOnly: true, VarType: types.Int}
	if err := child.Add(s.Iterator, iterator, s); err != nil {
		return nil, err
	}
	body, err := a.block(child, s.Body)
	if err != nil {
		return nil, err
	}
	return &ir.ForRangeStatement{Iterator: iterator, Low: low, Op: s.Op, High: high, Body: body}, nil
}

func (a *analyzer) forEach(ctx *Context, s *ast.ForEachStatement) (ir.Stmt, error) {
	collection, err := a.expression(ctx, s.Collection)
	if err != nil {
		return nil, err
	}
	arrayType, ok := collection.Type().(*types.ArrayType)
	if !ok {
		return nil, carloserr.New(carloserr.NewArrayExpected{Positioner: s.Collection})
	}
	child := ctx.NewChildInLoop()
	iterator := &ir.Variable{Name: s.Iterator, ReadOnly: true, VarType: arrayType.Base}
	if err := child.Add(s.Iterator, iterator, s); err != nil {
		return nil, err
	}
	body, err := a.block(child, s.Body)
	if err != nil {
		return nil, err
	}
	return &ir.ForEachStatement{Iterator: iterator, Collection: collection, Body: body}, nil
}

// typeExpr resolves a type expression against the scope chain. A name must
// resolve to a type entity: a primitive or a declared struct.
func (a *analyzer) typeExpr(ctx *Context, t ast.TypeExpr) (types.Type, error) {
	switch t := t.(type) {
	case *ast.NamedType:
		entity, err := ctx.Lookup(t.Name, t)
		if err != nil {
			return nil, err
		}
		switch entity := entity.(type) {
		case *types.Primitive:
			return entity, nil
		case *types.StructType:
			return entity, nil
		default:
			return nil, carloserr.New(carloserr.NewTypeExpected{Positioner: t})
		}
	case *ast.OptionalType:
		base, err := a.typeExpr(ctx, t.Base)
		if err != nil {
			return nil, err
		}
		return &types.OptionalType{Base: base}, nil
	case *ast.ArrayType:
		base, err := a.typeExpr(ctx, t.Base)
		if err != nil {
			return nil, err
		}
		return &types.ArrayType{Base: base}, nil
	case *ast.FunctionType:
		paramTypes := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			resolved, err := a.typeExpr(ctx, p)
			if err != nil {
				return nil, err
			}
			paramTypes[i] = resolved
		}
		returnType, err := a.typeExpr(ctx, t.Return)
		if err != nil {
			return nil, err
		}
		return &types.FunctionType{ParamTypes: paramTypes, ReturnType: returnType}, nil
	default:
		panic("frontend: unhandled type expression parse node")
	}
}
