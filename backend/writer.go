// Package backend walks a resolved program and writes it back out as
// canonical Carlos source. The output is analyzable: feeding it through the
// parser and analyzer again yields a structurally equivalent program, which
// is what the ast command and the round-trip tests rely on.
package backend

import (
	"log/slog"
	"strings"

	"github.com/carlos-lang/carlos/frontend/ir"
	"github.com/carlos-lang/carlos/internal/log"
)

type Writer struct {
	sb     strings.Builder
	indent int

	*slog.Logger
}

func NewWriter() *Writer {
	return &Writer{
		Logger: log.DefaultLogger.With("section", "backend"),
	}
}

// Unparse renders a resolved program as Carlos source text.
func Unparse(prog *ir.Program) string {
	w := NewWriter()
	w.writeBlock(prog.Statements, false)
	out := w.sb.String()
	w.Debug("unparsed program", "statements", len(prog.Statements), "bytes", len(out))
	return out
}

func (w *Writer) line(parts ...string) {
	w.sb.WriteString(strings.Repeat("  ", w.indent))
	for _, part := range parts {
		w.sb.WriteString(part)
	}
	w.sb.WriteString("\n")
}

// writeBlock writes statements at the current indent; braced blocks get
// their own level.
func (w *Writer) writeBlock(stmts []ir.Stmt, braced bool) {
	if braced {
		w.indent++
	}
	for _, s := range stmts {
		w.statement(s)
	}
	if braced {
		w.indent--
	}
}

func (w *Writer) statement(s ir.Stmt) {
	switch s := s.(type) {
	case *ir.VariableDeclaration:
		modifier := "let"
		if s.Variable.ReadOnly {
			modifier = "const"
		}
		w.line(modifier, " ", s.Variable.Name, " = ", Expr(s.Initializer), ";")
	case *ir.TypeDeclaration:
		w.line("struct ", s.Struct.Name, " {")
		w.indent++
		for _, f := range s.Struct.Fields {
			w.line(f.Name, ": ", f.Type.Description())
		}
		w.indent--
		w.line("}")
	case *ir.FunctionDeclaration:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Name + ": " + p.VarType.Description()
		}
		header := "function " + s.Fun.Name + "(" + strings.Join(params, ", ") + ")"
		if ret := s.Fun.Signature.ReturnType.Description(); ret != "void" {
			header += ": " + ret
		}
		w.line(header, " {")
		w.writeBlock(s.Body, true)
		w.line("}")
	case *ir.Increment:
		w.line(Expr(s.Variable), "++;")
	case *ir.Decrement:
		w.line(Expr(s.Variable), "--;")
	case *ir.Assignment:
		w.line(Expr(s.Target), " = ", Expr(s.Source), ";")
	case *ir.CallStatement:
		w.line(Expr(s.Call), ";")
	case *ir.BreakStatement:
		w.line("break;")
	case *ir.ReturnStatement:
		w.line("return ", Expr(s.Expression), ";")
	case *ir.ShortReturnStatement:
		w.line("return;")
	case *ir.ShortIfStatement:
		w.line("if ", Expr(s.Test), " {")
		w.writeBlock(s.Consequent, true)
		w.line("}")
	case *ir.LongIfStatement:
		w.line("if ", Expr(s.Test), " {")
		w.writeBlock(s.Consequent, true)
		w.line("} else {")
		w.writeBlock(s.Alternate, true)
		w.line("}")
	case *ir.WhileStatement:
		w.line("while ", Expr(s.Test), " {")
		w.writeBlock(s.Body, true)
		w.line("}")
	case *ir.RepeatStatement:
		w.line("repeat ", Expr(s.Count), " {")
		w.writeBlock(s.Body, true)
		w.line("}")
	case *ir.ForRangeStatement:
		w.line("for ", s.Iterator.Name, " in ", Expr(s.Low), s.Op, Expr(s.High), " {")
		w.writeBlock(s.Body, true)
		w.line("}")
	case *ir.ForEachStatement:
		w.line("for ", s.Iterator.Name, " in ", Expr(s.Collection), " {")
		w.writeBlock(s.Body, true)
		w.line("}")
	default:
		panic("backend: unhandled statement node")
	}
}
