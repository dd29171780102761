package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRejections pins the first-error message for every statically invalid
// program. The messages are a contract: downstream tooling matches them.
// An empty expected message marks a valid program that must be accepted.
func TestRejections(t *testing.T) {
	cases := map[string]string{
		// name resolution
		`let x = 1; let x = 1;`:                "Identifier x already declared",
		`print(x);`:                            "Identifier x not declared",
		`let print = 1;`:                       "Identifier print already declared",
		`function f(x: int) { let x = 2; }`:    "Identifier x already declared",
		`function f(f: boolean) {}`:            "Identifier f already declared",
		`let x = 1; function f(y: x) {}`:       "Type expected",
		`function f(x: oops) {}`:               "Identifier oops not declared",
		`while true { let x = 1; } let x = 2;`: "",
		`if true { let x = 1; } let x = 2;`:    "",
		`for i in 0..<3 {} let i = 1;`:         "",

		// mutability
		`const x = 1; x = 2;`:       "Cannot assign to constant x",
		`for i in 0..<3 { i = 1; }`: "Cannot assign to constant i",
		`for e in [1] { e = 2; }`:   "Cannot assign to constant e",

		// assignability
		`let x = 1; x = true;`:     "Cannot assign a boolean to a int",
		`let a = [1]; a = [true];`: "Cannot assign a [boolean] to a [int]",
		`function f(x: int, y: (boolean)->void): int { return 1; }
		 function g(z: boolean): int { return 5; }
		 f(2, g);`: "Cannot assign a (boolean)->int to a (boolean)->void",
		`let x = some 1; print(x ?? true);`: "Cannot assign a boolean to a int",

		// arity
		`function f(x: int) {} f(1, 2);`:         "1 argument(s) required but 2 passed",
		`function f(x: int) {} f();`:             "1 argument(s) required but 0 passed",
		`struct S {x: int} let y = S(1, 2);`:     "1 argument(s) required but 2 passed",
		`struct S {x: int y: int} let y = S(1);`: "2 argument(s) required but 1 passed",

		// callability and member access
		`let x = 1; let y = x(2);`:                     "Call of non-function or non-constructor",
		`struct S {x: int} let y = S(1); print(y.z);`:  "No such field",
		`let x = no int; print(x.value);`:              "Struct expected",
		`struct S {x: int} let y = S(1); print(y?.x);`: "Optional expected",
		`let x = some 1; print(x?.value);`:             "Optional expected",

		// contexts
		`break;`:                                 "Break can only appear in a loop",
		`if true { break; }`:                     "Break can only appear in a loop",
		`while true { function f() { break; } }`: "Break can only appear in a loop",
		`return;`:                                "Return can only appear in a function",
		`return 1;`:                              "Return can only appear in a function",
		`function f() { return 1; }`:             "Cannot return a value here",
		`function f(): int { return; }`:          "Something should be returned here",
		`function f(): int { return false; }`:    "Cannot assign a boolean to a int",

		// operand categories
		`print(1 ?? 2);`:                     "Optional expected",
		`let x = -true;`:                     "Expected a number, found boolean",
		`let x = !1;`:                        "Expected a boolean, found int",
		`let x = #1;`:                        "Array expected",
		`let x = 1[0];`:                      "Array expected",
		`let x = [1][true];`:                 "Expected an integer, found boolean",
		`let x = true < false;`:              "Expected a number or string, found boolean",
		`let x = 1 < true;`:                  "Operands do not have the same type",
		`let x = true + false;`:              "Expected a number or string, found boolean",
		`let x = 1 + true;`:                  "Operands do not have the same type",
		`let x = "a" - "b";`:                 "Expected a number, found string",
		`let x = 1 | true;`:                  "Expected an integer, found boolean",
		`let x = 1.0 << 2;`:                  "Expected an integer, found float",
		`let x = true && 1;`:                 "Expected a boolean, found int",
		`let x = 1 ? 2 : 3;`:                 "Expected a boolean, found int",
		`let x = true ? 1 : false;`:          "Operands do not have the same type",
		`let x = [1, true];`:                 "Not all elements have the same type",
		`if 1 {}`:                            "Expected a boolean, found int",
		`while 1 {}`:                         "Expected a boolean, found int",
		`repeat true {}`:                     "Expected an integer, found boolean",
		`for i in true {}`:                   "Array expected",
		`for i in 1..<true {}`:               "Expected an integer, found boolean",
		`for i in 1.0...3 {}`:                "Expected an integer, found float",
		`let x = 1; x++; let y = true; y++;`: "Expected an integer, found boolean",

		// struct structure
		`struct S {x: int x: float}`: "Fields must be distinct",
		`struct S {s: S}`:            "Struct type must not be recursive",
	}

	for src, expected := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := analyzeSource(t, src)
			if expected == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, expected, err.Error())
		})
	}
}
