// Package parser turns Carlos source text into the parse tree consumed by
// the analyzer. It knows nothing about types or scopes: every name stays a
// spelling until the frontend resolves it.
package parser

import (
	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/internal/log"
)

var parserLogger = log.DefaultLogger.With("section", "parser")

// Parse lexes and parses the given source code into a parse tree. The
// returned error, if any, is a carloserr parse error carrying the position
// of the first offending token.
func Parse(src string) (prog *ast.Program, err error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	parserLogger.Debug("lexed source", "tokens", len(toks))

	p := &parser{toks: toks}
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()
	prog = p.program()
	parserLogger.Debug("parsed program", "statements", len(prog.Statements))
	return prog, nil
}
