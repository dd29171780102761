package parser

import (
	"go/token"

	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/frontend/carloserr"
)

// parser is a recursive-descent parser over the token slice. It bails out
// on the first syntax error via panic, which the api entry point recovers
// into a plain error: parsing is fail-fast like the analysis that follows
// it.
type parser struct {
	toks []tok
	pos  int
}

type bailout struct{ err error }

func (p *parser) fail(at ast.Positioner, msg string) {
	panic(bailout{err: carloserr.New(carloserr.NewParse{Positioner: at, ParserMessage: msg})})
}

func (p *parser) cur() tok { return p.toks[p.pos] }

func (p *parser) advance() tok {
	t := p.toks[p.pos]
	if t.Kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) prevEnd() token.Pos {
	if p.pos == 0 {
		return p.toks[0].PosStart
	}
	return p.toks[p.pos-1].PosEnd
}

func (p *parser) rangeFrom(start tok) ast.Range {
	return ast.Range{PosStart: start.PosStart, PosEnd: p.prevEnd()}
}

func (p *parser) atSym(s string) bool {
	t := p.cur()
	return t.Kind == tokSym && t.Value == s
}

func (p *parser) atKeyword(s string) bool {
	t := p.cur()
	return t.Kind == tokKeyword && t.Value == s
}

func (p *parser) eatSym(s string) bool {
	if p.atSym(s) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expectSym(s string) tok {
	if !p.atSym(s) {
		p.fail(p.cur(), "expected '"+s+"' but found "+p.cur().String())
	}
	return p.advance()
}

func (p *parser) expectKeyword(s string) tok {
	if !p.atKeyword(s) {
		p.fail(p.cur(), "expected '"+s+"' but found "+p.cur().String())
	}
	return p.advance()
}

func (p *parser) expectIdent() tok {
	if p.cur().Kind != tokIdent {
		p.fail(p.cur(), "expected an identifier but found "+p.cur().String())
	}
	return p.advance()
}

func (p *parser) program() *ast.Program {
	start := p.cur()
	var stmts []ast.Stmt
	for p.cur().Kind != tokEOF {
		stmts = append(stmts, p.statement())
	}
	return &ast.Program{Range: p.rangeFrom(start), Statements: stmts}
}

func (p *parser) statement() ast.Stmt {
	t := p.cur()
	if t.Kind == tokKeyword {
		switch t.Value {
		case "let", "const":
			return p.varDecl()
		case "struct":
			return p.typeDecl()
		case "function":
			return p.funDecl()
		case "break":
			p.advance()
			p.expectSym(";")
			return &ast.BreakStatement{Range: p.rangeFrom(t)}
		case "return":
			p.advance()
			var value ast.Expr
			if !p.atSym(";") {
				value = p.expression()
			}
			p.expectSym(";")
			return &ast.ReturnStatement{Range: p.rangeFrom(t), Expression: value}
		case "if":
			return p.ifStatement()
		case "while":
			p.advance()
			test := p.expression()
			body := p.block()
			return &ast.WhileStatement{Range: p.rangeFrom(t), Test: test, Body: body}
		case "repeat":
			p.advance()
			count := p.expression()
			body := p.block()
			return &ast.RepeatStatement{Range: p.rangeFrom(t), Count: count, Body: body}
		case "for":
			return p.forStatement()
		}
	}

	// remaining statement forms all start with a postfix expression:
	// bump, assignment, and call statements
	e := p.postfix()
	switch {
	case p.atSym("++") || p.atSym("--"):
		op := p.advance().Value
		p.expectSym(";")
		return &ast.BumpStatement{Range: p.rangeFrom(t), Target: e, Op: op}
	case p.eatSym("="):
		source := p.expression()
		p.expectSym(";")
		return &ast.Assignment{Range: p.rangeFrom(t), Target: e, Source: source}
	}
	call, ok := e.(*ast.CallExpr)
	if !ok {
		p.fail(t, "statement expected")
	}
	p.expectSym(";")
	return &ast.CallStatement{Range: p.rangeFrom(t), Call: call}
}

func (p *parser) varDecl() ast.Stmt {
	start := p.advance() // let or const
	name := p.expectIdent()
	p.expectSym("=")
	initializer := p.expression()
	p.expectSym(";")
	return &ast.VarDecl{
		Range:       p.rangeFrom(start),
		Modifier:    start.Value,
		Name:        name.Value,
		Initializer: initializer,
	}
}

func (p *parser) typeDecl() ast.Stmt {
	start := p.expectKeyword("struct")
	name := p.expectIdent()
	p.expectSym("{")
	var fields []ast.Field
	for !p.atSym("}") {
		fieldStart := p.expectIdent()
		p.expectSym(":")
		fieldType := p.typeExpr()
		fields = append(fields, ast.Field{
			Range: p.rangeFrom(fieldStart),
			Name:  fieldStart.Value,
			Type:  fieldType,
		})
	}
	p.expectSym("}")
	return &ast.TypeDecl{Range: p.rangeFrom(start), Name: name.Value, Fields: fields}
}

func (p *parser) funDecl() ast.Stmt {
	start := p.expectKeyword("function")
	name := p.expectIdent()
	p.expectSym("(")
	var params []ast.Param
	for !p.atSym(")") {
		if len(params) > 0 {
			p.expectSym(",")
		}
		paramStart := p.expectIdent()
		p.expectSym(":")
		paramType := p.typeExpr()
		params = append(params, ast.Param{
			Range: p.rangeFrom(paramStart),
			Name:  paramStart.Value,
			Type:  paramType,
		})
	}
	p.expectSym(")")
	var returnType ast.TypeExpr
	if p.eatSym(":") {
		returnType = p.typeExpr()
	}
	body := p.block()
	return &ast.FunDecl{
		Range:      p.rangeFrom(start),
		Name:       name.Value,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}
}

func (p *parser) ifStatement() *ast.IfStatement {
	start := p.expectKeyword("if")
	test := p.expression()
	consequent := p.block()
	var elseArm *ast.ElseArm
	if p.atKeyword("else") {
		elseStart := p.advance()
		if p.atKeyword("if") {
			nested := p.ifStatement()
			elseArm = &ast.ElseArm{Range: p.rangeFrom(elseStart), If: nested}
		} else {
			blk := p.block()
			elseArm = &ast.ElseArm{Range: p.rangeFrom(elseStart), Block: blk}
		}
	}
	return &ast.IfStatement{
		Range:      p.rangeFrom(start),
		Test:       test,
		Consequent: consequent,
		Else:       elseArm,
	}
}

func (p *parser) forStatement() ast.Stmt {
	start := p.expectKeyword("for")
	iterator := p.expectIdent()
	p.expectKeyword("in")
	first := p.expression()
	if p.atSym("..<") || p.atSym("...") {
		op := p.advance().Value
		high := p.expression()
		body := p.block()
		return &ast.ForRangeStatement{
			Range:    p.rangeFrom(start),
			Iterator: iterator.Value,
			Low:      first,
			Op:       op,
			High:     high,
			Body:     body,
		}
	}
	body := p.block()
	return &ast.ForEachStatement{
		Range:      p.rangeFrom(start),
		Iterator:   iterator.Value,
		Collection: first,
		Body:       body,
	}
}

func (p *parser) block() []ast.Stmt {
	p.expectSym("{")
	stmts := []ast.Stmt{}
	for !p.atSym("}") {
		if p.cur().Kind == tokEOF {
			p.fail(p.cur(), "expected '}' but found end of input")
		}
		stmts = append(stmts, p.statement())
	}
	p.expectSym("}")
	return stmts
}

// typeExpr parses a type expression: `[T]`, `(T1,...,Tn)->R`, a name, and
// any number of trailing `?` wrappers.
func (p *parser) typeExpr() ast.TypeExpr {
	start := p.cur()
	var t ast.TypeExpr
	switch {
	case p.eatSym("["):
		base := p.typeExpr()
		p.expectSym("]")
		t = &ast.ArrayType{Range: p.rangeFrom(start), Base: base}
	case p.eatSym("("):
		var params []ast.TypeExpr
		for !p.atSym(")") {
			if len(params) > 0 {
				p.expectSym(",")
			}
			params = append(params, p.typeExpr())
		}
		p.expectSym(")")
		p.expectSym("->")
		ret := p.typeExpr()
		t = &ast.FunctionType{Range: p.rangeFrom(start), Params: params, Return: ret}
	default:
		name := p.expectIdent()
		t = &ast.NamedType{Range: name.Range, Name: name.Value}
	}
	for p.atSym("?") {
		p.advance()
		t = &ast.OptionalType{Range: p.rangeFrom(start), Base: t}
	}
	return t
}

// expression parses a conditional; the alternate arm is parsed at the same
// level, making `?:` right-associative.
func (p *parser) expression() ast.Expr {
	start := p.cur()
	test := p.unwrapElse()
	if !p.atSym("?") {
		return test
	}
	p.advance()
	consequent := p.unwrapElse()
	p.expectSym(":")
	alternate := p.expression()
	return &ast.Conditional{
		Range:      p.rangeFrom(start),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

func (p *parser) binaryChain(next func() ast.Expr, ops ...string) ast.Expr {
	start := p.cur()
	left := next()
	for {
		matched := false
		for _, op := range ops {
			if p.atSym(op) {
				p.advance()
				right := next()
				left = &ast.BinaryExpr{Range: p.rangeFrom(start), Op: op, Left: left, Right: right}
				matched = true
				break
			}
		}
		if !matched {
			return left
		}
	}
}

func (p *parser) unwrapElse() ast.Expr {
	return p.binaryChain(p.logicalOr, "??")
}

func (p *parser) logicalOr() ast.Expr {
	return p.binaryChain(p.logicalAnd, "||")
}

func (p *parser) logicalAnd() ast.Expr {
	return p.binaryChain(p.bitwiseOr, "&&")
}

func (p *parser) bitwiseOr() ast.Expr {
	return p.binaryChain(p.bitwiseXor, "|")
}

func (p *parser) bitwiseXor() ast.Expr {
	return p.binaryChain(p.bitwiseAnd, "^")
}

func (p *parser) bitwiseAnd() ast.Expr {
	return p.binaryChain(p.comparison, "&")
}

// comparison is non-associative: at most one relational operator.
func (p *parser) comparison() ast.Expr {
	start := p.cur()
	left := p.shift()
	for _, op := range []string{"<=", ">=", "==", "!=", "<", ">"} {
		if p.atSym(op) {
			p.advance()
			right := p.shift()
			return &ast.BinaryExpr{Range: p.rangeFrom(start), Op: op, Left: left, Right: right}
		}
	}
	return left
}

func (p *parser) shift() ast.Expr {
	return p.binaryChain(p.additive, "<<", ">>")
}

func (p *parser) additive() ast.Expr {
	return p.binaryChain(p.multiplicative, "+", "-")
}

func (p *parser) multiplicative() ast.Expr {
	return p.binaryChain(p.power, "*", "/", "%")
}

// power is right-associative.
func (p *parser) power() ast.Expr {
	start := p.cur()
	left := p.unary()
	if p.atSym("**") {
		p.advance()
		right := p.power()
		return &ast.BinaryExpr{Range: p.rangeFrom(start), Op: "**", Left: left, Right: right}
	}
	return left
}

func (p *parser) unary() ast.Expr {
	start := p.cur()
	var op string
	switch {
	case p.atSym("-") || p.atSym("!") || p.atSym("#"):
		op = p.advance().Value
	case p.atKeyword("some"):
		op = p.advance().Value
	default:
		return p.postfix()
	}
	operand := p.unary()
	return &ast.UnaryExpr{Range: p.rangeFrom(start), Op: op, Operand: operand}
}

func (p *parser) postfix() ast.Expr {
	start := p.cur()
	e := p.primary()
	for {
		switch {
		case p.eatSym("("):
			var args []ast.Expr
			for !p.atSym(")") {
				if len(args) > 0 {
					p.expectSym(",")
				}
				args = append(args, p.expression())
			}
			p.expectSym(")")
			e = &ast.CallExpr{Range: p.rangeFrom(start), Callee: e, Args: args}
		case p.eatSym("["):
			index := p.expression()
			p.expectSym("]")
			e = &ast.SubscriptExpr{Range: p.rangeFrom(start), Array: e, Index: index}
		case p.eatSym("."):
			field := p.expectIdent()
			e = &ast.MemberExpr{Range: p.rangeFrom(start), Object: e, Field: field.Value}
		case p.eatSym("?."):
			field := p.expectIdent()
			e = &ast.MemberExpr{Range: p.rangeFrom(start), Object: e, Field: field.Value, Optional: true}
		default:
			return e
		}
	}
}

func (p *parser) primary() ast.Expr {
	t := p.cur()
	switch t.Kind {
	case tokInt:
		p.advance()
		return &ast.Literal{Range: t.Range, Kind: token.INT, Value: t.Value}
	case tokFloat:
		p.advance()
		return &ast.Literal{Range: t.Range, Kind: token.FLOAT, Value: t.Value}
	case tokString:
		p.advance()
		return &ast.Literal{Range: t.Range, Kind: token.STRING, Value: t.Value}
	case tokIdent:
		p.advance()
		return &ast.Identifier{Range: t.Range, Name: t.Value}
	case tokKeyword:
		switch t.Value {
		case "true", "false":
			p.advance()
			return &ast.BoolLiteral{Range: t.Range, Value: t.Value == "true"}
		case "no":
			p.advance()
			baseType := p.typeExpr()
			return &ast.EmptyOptional{Range: p.rangeFrom(t), BaseType: baseType}
		}
	case tokSym:
		switch t.Value {
		case "(":
			p.advance()
			e := p.expression()
			p.expectSym(")")
			return e
		case "[":
			return p.arrayExpr()
		}
	}
	p.fail(t, "expression expected but found "+t.String())
	return nil
}

// arrayExpr parses either the empty form `[](of T)` or a non-empty array
// literal. A bare `[]` with no element type is a syntax error.
func (p *parser) arrayExpr() ast.Expr {
	start := p.expectSym("[")
	if p.eatSym("]") {
		p.expectSym("(")
		p.expectKeyword("of")
		elemType := p.typeExpr()
		p.expectSym(")")
		return &ast.EmptyArray{Range: p.rangeFrom(start), ElemType: elemType}
	}
	elements := []ast.Expr{p.expression()}
	for p.eatSym(",") {
		elements = append(elements, p.expression())
	}
	p.expectSym("]")
	return &ast.ArrayLit{Range: p.rangeFrom(start), Elements: elements}
}
