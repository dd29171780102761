// Package carlos is the high-level entry point to the compiler frontend:
// it takes source text through the parser and the semantic analyzer and
// hands back the resolved program.
package carlos

import (
	"os"

	"github.com/pkg/errors"

	"github.com/carlos-lang/carlos/frontend"
	"github.com/carlos-lang/carlos/frontend/ir"
	"github.com/carlos-lang/carlos/parser"
)

// CheckSource parses and analyzes a whole source unit. A returned error is
// either a syntax error or the first semantic violation; both carry source
// positions as carloserr values.
func CheckSource(src []byte) (*ir.Program, error) {
	prog, err := parser.Parse(string(src))
	if err != nil {
		return nil, err
	}
	return frontend.Analyze(prog)
}

// CheckFile reads and checks a single .carlos file.
func CheckFile(path string) (*ir.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	return CheckSource(src)
}
