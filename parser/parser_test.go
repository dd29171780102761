package parser

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlos-lang/carlos/frontend/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(src)
	require.NoError(t, err)
	return prog
}

func firstExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	prog := mustParse(t, "let x = "+src+";")
	return prog.Statements[0].(*ast.VarDecl).Initializer
}

func TestLiterals(t *testing.T) {
	lit := firstExpr(t, `12`).(*ast.Literal)
	assert.Equal(t, token.INT, lit.Kind)
	assert.Equal(t, "12", lit.Value)

	lit = firstExpr(t, `1.5`).(*ast.Literal)
	assert.Equal(t, token.FLOAT, lit.Kind)
	assert.Equal(t, "1.5", lit.Value)

	lit = firstExpr(t, `2e10`).(*ast.Literal)
	assert.Equal(t, token.FLOAT, lit.Kind)
	assert.Equal(t, "2e10", lit.Value)

	lit = firstExpr(t, `"a\"b"`).(*ast.Literal)
	assert.Equal(t, token.STRING, lit.Kind)
	// the raw spelling survives, quotes and escapes included
	assert.Equal(t, `"a\"b"`, lit.Value)

	boolean := firstExpr(t, `true`).(*ast.BoolLiteral)
	assert.True(t, boolean.Value)
}

func TestUnicodeIdentifiers(t *testing.T) {
	id := firstExpr(t, `π`).(*ast.Identifier)
	assert.Equal(t, "π", id.Name)
}

func TestPrecedence(t *testing.T) {
	// 1 + 2 * 3 keeps * below +
	sum := firstExpr(t, `1 + 2 * 3`).(*ast.BinaryExpr)
	assert.Equal(t, "+", sum.Op)
	product := sum.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", product.Op)

	// additive folds left: 1 - 2 + 3 is (1 - 2) + 3
	sum = firstExpr(t, `1 - 2 + 3`).(*ast.BinaryExpr)
	assert.Equal(t, "+", sum.Op)
	assert.Equal(t, "-", sum.Left.(*ast.BinaryExpr).Op)

	// power is right-associative: 2 ** 3 ** 2 is 2 ** (3 ** 2)
	pow := firstExpr(t, `2 ** 3 ** 2`).(*ast.BinaryExpr)
	assert.Equal(t, "**", pow.Op)
	assert.Equal(t, "**", pow.Right.(*ast.BinaryExpr).Op)

	// ?? sits below || which sits below the bitwise tier
	unwrap := firstExpr(t, `a ?? b || c`).(*ast.BinaryExpr)
	assert.Equal(t, "??", unwrap.Op)
	assert.Equal(t, "||", unwrap.Right.(*ast.BinaryExpr).Op)
}

func TestConditionalIsRightAssociative(t *testing.T) {
	cond := firstExpr(t, `a ? 1 : b ? 2 : 3`).(*ast.Conditional)
	_, ok := cond.Alternate.(*ast.Conditional)
	assert.True(t, ok)
}

func TestUnaryAndPostfix(t *testing.T) {
	neg := firstExpr(t, `-a`).(*ast.UnaryExpr)
	assert.Equal(t, "-", neg.Op)

	some := firstExpr(t, `some f(1)`).(*ast.UnaryExpr)
	assert.Equal(t, "some", some.Op)
	_, ok := some.Operand.(*ast.CallExpr)
	assert.True(t, ok)

	length := firstExpr(t, `#a[0]`).(*ast.UnaryExpr)
	assert.Equal(t, "#", length.Op)
	_, ok = length.Operand.(*ast.SubscriptExpr)
	assert.True(t, ok)

	chain := firstExpr(t, `a.b?.c`).(*ast.MemberExpr)
	assert.True(t, chain.Optional)
	assert.Equal(t, "c", chain.Field)
	inner := chain.Object.(*ast.MemberExpr)
	assert.False(t, inner.Optional)
	assert.Equal(t, "b", inner.Field)
}

func TestEmptyArrayAndOptionalSpellings(t *testing.T) {
	empty := firstExpr(t, `[](of [int])`).(*ast.EmptyArray)
	arrayType := empty.ElemType.(*ast.ArrayType)
	assert.Equal(t, "int", arrayType.Base.(*ast.NamedType).Name)

	// a bare [] is not an expression
	_, err := Parse(`let x = [];`)
	assert.Error(t, err)

	no := firstExpr(t, `no string?`).(*ast.EmptyOptional)
	optional := no.BaseType.(*ast.OptionalType)
	assert.Equal(t, "string", optional.Base.(*ast.NamedType).Name)
}

func TestTypeExpressions(t *testing.T) {
	prog := mustParse(t, `function f(g: (int,boolean)->[string]?, x: int?) {}`)
	fn := prog.Statements[0].(*ast.FunDecl)
	require.Len(t, fn.Params, 2)

	optional := fn.Params[0].Type.(*ast.FunctionType)
	require.Len(t, optional.Params, 2)
	wrapped := optional.Return.(*ast.OptionalType)
	_, ok := wrapped.Base.(*ast.ArrayType)
	assert.True(t, ok)

	_, ok = fn.Params[1].Type.(*ast.OptionalType)
	assert.True(t, ok)
}

func TestStatementForms(t *testing.T) {
	prog := mustParse(t, `
		// declarations and loops
		let x = 1;
		x++;
		x = 2;
		print(x);
		struct S { a: int b: [S] }
		while true { break; }
		repeat 3 { x--; }
		for i in 0..<10 { print(i); }
		for i in 1...3 { print(i); }
		for e in [1, 2] { print(e); }
	`)
	require.Len(t, prog.Statements, 10)

	bump := prog.Statements[1].(*ast.BumpStatement)
	assert.Equal(t, "++", bump.Op)

	structDecl := prog.Statements[4].(*ast.TypeDecl)
	require.Len(t, structDecl.Fields, 2)

	half := prog.Statements[7].(*ast.ForRangeStatement)
	assert.Equal(t, "..<", half.Op)
	closed := prog.Statements[8].(*ast.ForRangeStatement)
	assert.Equal(t, "...", closed.Op)

	_, ok := prog.Statements[9].(*ast.ForEachStatement)
	assert.True(t, ok)
}

func TestElseChains(t *testing.T) {
	prog := mustParse(t, `if a { } else if b { } else { }`)
	ifStmt := prog.Statements[0].(*ast.IfStatement)
	require.NotNil(t, ifStmt.Else)
	require.NotNil(t, ifStmt.Else.If)
	tail := ifStmt.Else.If
	require.NotNil(t, tail.Else)
	assert.Nil(t, tail.Else.If)
	assert.NotNil(t, tail.Else.Block)

	prog = mustParse(t, `if a { }`)
	assert.Nil(t, prog.Statements[0].(*ast.IfStatement).Else)
}

func TestReturnForms(t *testing.T) {
	prog := mustParse(t, `function f(): int { return 1; } function g() { return; }`)
	f := prog.Statements[0].(*ast.FunDecl)
	assert.NotNil(t, f.ReturnType)
	assert.NotNil(t, f.Body[0].(*ast.ReturnStatement).Expression)

	g := prog.Statements[1].(*ast.FunDecl)
	assert.Nil(t, g.ReturnType)
	assert.Nil(t, g.Body[0].(*ast.ReturnStatement).Expression)
}

func TestSyntaxErrors(t *testing.T) {
	cases := []string{
		`let x = ;`,
		`let = 1;`,
		`x + 1;`,
		`if true { `,
		`let x = "unterminated;`,
		`struct S { x int }`,
		`f(1;`,
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := Parse(src)
			assert.Error(t, err)
		})
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	prog := mustParse(t, `
		// a comment
		let x = 1; // trailing
	`)
	require.Len(t, prog.Statements, 1)
}

func TestPositionsCoverTheSource(t *testing.T) {
	src := `let abc = 123;`
	prog := mustParse(t, src)
	decl := prog.Statements[0].(*ast.VarDecl)
	assert.Equal(t, token.Pos(1), decl.Pos())
	assert.Equal(t, token.Pos(len(src)+1), decl.End())
}
