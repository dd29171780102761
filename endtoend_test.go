package main

import (
	"embed"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlos-lang/carlos/backend"
	"github.com/carlos-lang/carlos/carlos"
)

// embeds the test folder
//
//go:embed test
var testSet embed.FS

// format is as follows, on the first line of each test file:
//
//	//carlos:expect ok
//	//carlos:expect error <exact first-error message>
func extractExpectation(t *testing.T, src string) (ok bool, message string) {
	firstLine := strings.Split(src, "\n")[0]
	directive := strings.TrimPrefix(firstLine, "//carlos:expect ")
	if directive == "ok" {
		return true, ""
	}
	if msg, found := strings.CutPrefix(directive, "error "); found {
		return false, msg
	}
	t.Fatalf("could not parse expectation comment: '%v'", firstLine)
	return false, ""
}

func corpus(t *testing.T) map[string]string {
	files, err := testSet.ReadDir("test")
	require.NoError(t, err)
	sources := map[string]string{}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".carlos") {
			continue
		}
		content, err := testSet.ReadFile("test/" + f.Name())
		require.NoError(t, err)
		sources[f.Name()] = string(content)
	}
	return sources
}

func TestEndToEnd(t *testing.T) {
	for name, src := range corpus(t) {
		t.Run(name, func(t *testing.T) {
			expectOk, message := extractExpectation(t, src)
			_, err := carlos.CheckSource([]byte(src))
			if expectOk {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, message, err.Error())
		})
	}
}

// TestDeterminism checks the same source twice and demands structurally
// identical programs. Kept to programs without type cycles so the
// structural diff can fully traverse them.
func TestDeterminism(t *testing.T) {
	deep.MaxDepth = 100
	for _, name := range []string{"declarations.carlos", "functions.carlos", "loops.carlos"} {
		t.Run(name, func(t *testing.T) {
			src := []byte(corpus(t)[name])
			first, err := carlos.CheckSource(src)
			require.NoError(t, err)
			second, err := carlos.CheckSource(src)
			require.NoError(t, err)
			assert.Empty(t, deep.Equal(first, second))
		})
	}
}

// TestRoundTrip unparses every accepted program, re-checks the output, and
// demands the second unparse reproduce the first byte for byte: analysis
// reaches a fixed point after one canonicalizing pass.
func TestRoundTrip(t *testing.T) {
	for name, src := range corpus(t) {
		expectOk, _ := extractExpectation(t, src)
		if !expectOk {
			continue
		}
		t.Run(name, func(t *testing.T) {
			first, err := carlos.CheckSource([]byte(src))
			require.NoError(t, err)
			text := backend.Unparse(first)

			second, err := carlos.CheckSource([]byte(text))
			require.NoError(t, err, "unparsed program no longer checks:\n%s", text)
			assert.Equal(t, text, backend.Unparse(second))
		})
	}
}
