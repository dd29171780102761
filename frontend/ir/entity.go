package ir

import "github.com/carlos-lang/carlos/frontend/types"

// Variable is the entity introduced by a variable declaration, a function
// parameter, or a loop iterator.
type Variable struct {
	Name     string
	ReadOnly bool
	VarType  types.Type
}

func (v *Variable) Type() types.Type { return v.VarType }

// Function is the entity introduced by a function declaration. Its
// signature is known before the body is analyzed, which is what makes the
// function visible inside its own body.
type Function struct {
	Name      string
	Signature *types.FunctionType
}

func (f *Function) Type() types.Type { return f.Signature }
