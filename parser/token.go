package parser

import (
	"fmt"

	"github.com/carlos-lang/carlos/frontend/ast"
)

type tokKind int

const (
	tokEOF tokKind = iota
	tokIdent
	tokKeyword
	tokInt
	tokFloat
	tokString
	tokSym
)

// tok is a single lexeme. Value holds the raw spelling; for strings this
// includes the surrounding quotes.
type tok struct {
	Kind  tokKind
	Value string
	ast.Range
}

func (t tok) String() string {
	if t.Kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", t.Value)
}

var keywords = map[string]bool{
	"let":      true,
	"const":    true,
	"struct":   true,
	"function": true,
	"break":    true,
	"return":   true,
	"if":       true,
	"else":     true,
	"while":    true,
	"repeat":   true,
	"for":      true,
	"in":       true,
	"true":     true,
	"false":    true,
	"no":       true,
	"some":     true,
	"of":       true,
}

// symbols in max-munch order: longer spellings first.
var symbols = []string{
	"...", "..<",
	"?.", "??", "**", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||", "++", "--", "->",
	"+", "-", "*", "/", "%", "^", "&", "|", "!", "#", "?", ":", ";", ",", ".",
	"(", ")", "[", "]", "{", "}", "=", "<", ">",
}
