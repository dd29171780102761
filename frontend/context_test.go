package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/frontend/ir"
	"github.com/carlos-lang/carlos/frontend/types"
)

func testVar(name string) *ir.Variable {
	return &ir.Variable{Name: name, VarType: types.Int}
}

func TestContextAddAndLookup(t *testing.T) {
	ctx := NewContext(nil)
	v := testVar("x")
	require.NoError(t, ctx.Add("x", v, ast.Range{}))

	assert.True(t, ctx.Sees("x"))
	got, err := ctx.Lookup("x", ast.Range{})
	require.NoError(t, err)
	assert.Same(t, v, got.(*ir.Variable))

	_, err = ctx.Lookup("y", ast.Range{})
	assert.EqualError(t, err, "Identifier y not declared")
}

func TestNoShadowingAnywhereInChain(t *testing.T) {
	root := NewContext(nil)
	require.NoError(t, root.Add("x", testVar("x"), ast.Range{}))

	child := root.NewChild()
	grandchild := child.NewChild()
	err := grandchild.Add("x", testVar("x"), ast.Range{})
	assert.EqualError(t, err, "Identifier x already declared")
}

func TestSiblingScopesMayReuseNames(t *testing.T) {
	root := NewContext(nil)
	left := root.NewChild()
	right := root.NewChild()
	require.NoError(t, left.Add("x", testVar("x"), ast.Range{}))
	require.NoError(t, right.Add("x", testVar("x"), ast.Range{}))

	// a sibling's binding never leaks back to the parent
	assert.False(t, root.Sees("x"))
}

func TestChildSeesAncestors(t *testing.T) {
	root := NewContext(nil)
	require.NoError(t, root.Add("a", testVar("a"), ast.Range{}))
	child := root.NewChild()
	require.NoError(t, child.Add("b", testVar("b"), ast.Range{}))

	assert.True(t, child.Sees("a"))
	assert.True(t, child.Sees("b"))
	assert.False(t, root.Sees("b"))
}

func TestLoopAndFunctionFlags(t *testing.T) {
	root := NewContext(nil)
	assert.False(t, root.InLoop())
	assert.Nil(t, root.Function())

	loop := root.NewChildInLoop()
	assert.True(t, loop.InLoop())
	// plain children inherit
	assert.True(t, loop.NewChild().InLoop())

	f := &ir.Function{Name: "f", Signature: &types.FunctionType{ReturnType: types.Void}}
	body := loop.NewChildInFunction(f)
	// entering a function resets the loop flag and records the function
	assert.False(t, body.InLoop())
	assert.Same(t, f, body.Function())
	assert.Same(t, f, body.NewChild().Function())
}

func TestPreludeParticipatesInNoShadowing(t *testing.T) {
	ctx := NewContext(StandardLibrary())
	assert.True(t, ctx.Sees("print"))
	assert.True(t, ctx.Sees("π"))

	err := ctx.NewChild().Add("print", testVar("print"), ast.Range{})
	assert.EqualError(t, err, "Identifier print already declared")
}
