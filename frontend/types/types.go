// Package types is the resolved type model of the Carlos frontend.
//
// A Type is one of five variants: a canonical primitive, an array type, an
// optional type, a function type, or a declared struct type. Primitives and
// struct types compare by identity; arrays, optionals, and functions compare
// structurally. Assignability is invariant everywhere except function types,
// which are covariant in the return type and contravariant in the
// parameter types.
package types

import "strings"

// Type is a resolved Carlos type.
type Type interface {
	// Description is the spelling used in diagnostics, such as `[int]`,
	// `string?`, or `(int,boolean)->float`.
	Description() string

	// EquivalentTo reports whether two types are the same type.
	EquivalentTo(other Type) bool

	// AssignableTo reports whether a value of this type may flow into a
	// slot of the target type.
	AssignableTo(target Type) bool
}

var (
	_ Type = (*Primitive)(nil)
	_ Type = (*ArrayType)(nil)
	_ Type = (*OptionalType)(nil)
	_ Type = (*FunctionType)(nil)
	_ Type = (*StructType)(nil)
)

// Primitive is one of the canonical built-in types. There is exactly one
// Primitive value per name; equivalence is identity.
type Primitive struct {
	name string
}

// The canonical primitives. Meta is the type carried by entities that are
// themselves types, such as a struct type referenced as a value; its
// description is `type`. Any accepts every source type as an assignability
// target; the standard library uses it for print's parameter.
var (
	Boolean = &Primitive{name: "boolean"}
	Int     = &Primitive{name: "int"}
	Float   = &Primitive{name: "float"}
	String  = &Primitive{name: "string"}
	Void    = &Primitive{name: "void"}
	Meta    = &Primitive{name: "type"}
	Any     = &Primitive{name: "any"}
)

func (t *Primitive) Description() string { return t.name }

// Type makes a primitive usable where an expression is expected: a type
// name referenced as a value has the type of types.
func (t *Primitive) Type() Type { return Meta }

func (t *Primitive) EquivalentTo(other Type) bool { return Type(t) == other }

func (t *Primitive) AssignableTo(target Type) bool {
	return target == Any || t.EquivalentTo(target)
}

// ArrayType is `[Base]`. Arrays are invariant: `[T]` is assignable to `[U]`
// only when T and U are equivalent.
type ArrayType struct {
	Base Type
}

func (t *ArrayType) Description() string { return "[" + t.Base.Description() + "]" }

func (t *ArrayType) EquivalentTo(other Type) bool {
	u, ok := other.(*ArrayType)
	return ok && t.Base.EquivalentTo(u.Base)
}

func (t *ArrayType) AssignableTo(target Type) bool {
	return target == Any || t.EquivalentTo(target)
}

// OptionalType is `Base?`. Like arrays, optionals are invariant.
type OptionalType struct {
	Base Type
}

func (t *OptionalType) Description() string { return t.Base.Description() + "?" }

func (t *OptionalType) EquivalentTo(other Type) bool {
	u, ok := other.(*OptionalType)
	return ok && t.Base.EquivalentTo(u.Base)
}

func (t *OptionalType) AssignableTo(target Type) bool {
	return target == Any || t.EquivalentTo(target)
}

// FunctionType is `(T1,...,Tn)->R`.
type FunctionType struct {
	ParamTypes []Type
	ReturnType Type
}

func (t *FunctionType) Description() string {
	params := make([]string, len(t.ParamTypes))
	for i, p := range t.ParamTypes {
		params[i] = p.Description()
	}
	return "(" + strings.Join(params, ",") + ")->" + t.ReturnType.Description()
}

func (t *FunctionType) EquivalentTo(other Type) bool {
	u, ok := other.(*FunctionType)
	if !ok || len(t.ParamTypes) != len(u.ParamTypes) {
		return false
	}
	if !t.ReturnType.EquivalentTo(u.ReturnType) {
		return false
	}
	for i, p := range t.ParamTypes {
		if !p.EquivalentTo(u.ParamTypes[i]) {
			return false
		}
	}
	return true
}

// AssignableTo on functions is covariant in the return type and
// contravariant in the parameter types.
func (t *FunctionType) AssignableTo(target Type) bool {
	if target == Any {
		return true
	}
	u, ok := target.(*FunctionType)
	if !ok || len(t.ParamTypes) != len(u.ParamTypes) {
		return false
	}
	if !t.ReturnType.AssignableTo(u.ReturnType) {
		return false
	}
	for i, p := range t.ParamTypes {
		if !u.ParamTypes[i].AssignableTo(p) {
			return false
		}
	}
	return true
}

// StructType is a declared struct type. Equivalence is identity: two
// declarations with identical field lists are still distinct types.
//
// Fields is empty at construction and filled in once the type is bound in
// scope, so that field types may refer back to the struct through array and
// optional wrappers.
type StructType struct {
	Name   string
	Fields []*Field
}

// Field is a single named field of a StructType.
type Field struct {
	Name string
	Type Type
}

func (t *StructType) Description() string { return t.Name }

func (t *StructType) EquivalentTo(other Type) bool { return Type(t) == other }

func (t *StructType) AssignableTo(target Type) bool {
	return target == Any || t.EquivalentTo(target)
}

// FieldNamed returns the field with the given name, if any.
func (t *StructType) FieldNamed(name string) (*Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Type makes a struct type usable where an expression is expected: a struct
// name referenced as a value has the type of types.
func (t *StructType) Type() Type { return Meta }
