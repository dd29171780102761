package frontend

import (
	"github.com/carlos-lang/carlos/frontend/ir"
	"github.com/carlos-lang/carlos/frontend/types"
)

func floatFunction(name string) *ir.Function {
	return &ir.Function{
		Name:      name,
		Signature: &types.FunctionType{ParamTypes: []types.Type{types.Float}, ReturnType: types.Float},
	}
}

func stringToIntsFunction(name string) *ir.Function {
	return &ir.Function{
		Name: name,
		Signature: &types.FunctionType{
			ParamTypes: []types.Type{types.String},
			ReturnType: &types.ArrayType{Base: types.Int},
		},
	}
}

// StandardLibrary is the prelude mapping installed into the root context
// before a program is analyzed. The names participate in the normal
// no-shadowing rule: user programs cannot redeclare them.
func StandardLibrary() map[string]ir.Entity {
	return map[string]ir.Entity{
		// type names
		"boolean": types.Boolean,
		"int":     types.Int,
		"float":   types.Float,
		"string":  types.String,
		"void":    types.Void,
		"any":     types.Any,

		// constants
		"π": &ir.Variable{Name: "π", ReadOnly: true, VarType: types.Float},

		// functions
		"print": &ir.Function{
			Name:      "print",
			Signature: &types.FunctionType{ParamTypes: []types.Type{types.Any}, ReturnType: types.Void},
		},
		"sqrt":       floatFunction("sqrt"),
		"sin":        floatFunction("sin"),
		"cos":        floatFunction("cos"),
		"exp":        floatFunction("exp"),
		"ln":         floatFunction("ln"),
		"bytes":      stringToIntsFunction("bytes"),
		"codepoints": stringToIntsFunction("codepoints"),
		"hypot": &ir.Function{
			Name: "hypot",
			Signature: &types.FunctionType{
				ParamTypes: []types.Type{types.Float, types.Float},
				ReturnType: types.Float,
			},
		},
	}
}
