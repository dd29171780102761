// Package frontend implements the semantic analyzer: a syntax-directed walk
// over the parse tree that resolves every identifier to an entity, threads
// resolved types through every expression, and enforces the static checking
// rules of the language. The walk is fail-fast: the first violation aborts
// analysis.
package frontend

import (
	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/frontend/ir"
	"github.com/carlos-lang/carlos/internal/log"
)

var analyzerLogger = log.DefaultLogger.With("section", "frontend")

// Analyze resolves and checks a parse tree against the standard-library
// prelude, returning the annotated program.
func Analyze(prog *ast.Program) (*ir.Program, error) {
	return AnalyzeWithPrelude(prog, StandardLibrary())
}

// AnalyzeWithPrelude is Analyze with a caller-supplied prelude mapping.
// Prelude names are bound in the root context and participate in the
// no-shadowing rule like any declaration.
func AnalyzeWithPrelude(prog *ast.Program, prelude map[string]ir.Entity) (*ir.Program, error) {
	a := &analyzer{}
	root := NewContext(prelude)
	analyzerLogger.Debug("analysis start", "statements", len(prog.Statements))
	statements, err := a.block(root, prog.Statements)
	if err != nil {
		return nil, err
	}
	analyzerLogger.Debug("analysis done")
	return &ir.Program{Statements: statements}, nil
}

// analyzer is the traversal state holder. All per-run state is threaded
// through Context arguments, so one analyzer value is good for one
// invocation and two concurrent analyses never share mutable state.
type analyzer struct{}

// block analyzes an ordered statement sequence in the given context.
// Blocks have no node of their own in the resolved AST.
func (a *analyzer) block(ctx *Context, stmts []ast.Stmt) ([]ir.Stmt, error) {
	out := make([]ir.Stmt, 0, len(stmts))
	for _, s := range stmts {
		resolved, err := a.statement(ctx, s)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}
