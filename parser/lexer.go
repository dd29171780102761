package parser

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/carlos-lang/carlos/frontend/ast"
	"github.com/carlos-lang/carlos/frontend/carloserr"
)

// lexer turns source text into a token slice in one pass. Positions are
// 1-based byte offsets, the convention Range carries everywhere else.
type lexer struct {
	src    string
	offset int
}

func lex(src string) ([]tok, error) {
	l := &lexer{src: src}
	var toks []tok
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.Kind == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) rangeFrom(start int) ast.Range {
	return ast.Range{PosStart: token.Pos(start + 1), PosEnd: token.Pos(l.offset + 1)}
}

func (l *lexer) errorf(start int, msg string) error {
	return carloserr.New(carloserr.NewParse{
		Positioner:    l.rangeFrom(start),
		ParserMessage: msg,
	})
}

func (l *lexer) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(l.src[l.offset:])
}

func (l *lexer) skipSpaceAndComments() {
	for l.offset < len(l.src) {
		c := l.src[l.offset]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.offset++
		case c == '/' && l.offset+1 < len(l.src) && l.src[l.offset+1] == '/':
			for l.offset < len(l.src) && l.src[l.offset] != '\n' {
				l.offset++
			}
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (l *lexer) next() (tok, error) {
	l.skipSpaceAndComments()
	start := l.offset
	if l.offset >= len(l.src) {
		return tok{Kind: tokEOF, Range: l.rangeFrom(start)}, nil
	}

	c := l.src[l.offset]
	switch {
	case isDigit(c):
		return l.number(start), nil
	case c == '"':
		return l.stringLit(start)
	}

	if r, _ := l.peekRune(); isIdentStart(r) {
		return l.identifier(start), nil
	}

	for _, sym := range symbols {
		if strings.HasPrefix(l.src[l.offset:], sym) {
			l.offset += len(sym)
			return tok{Kind: tokSym, Value: sym, Range: l.rangeFrom(start)}, nil
		}
	}
	return tok{}, l.errorf(start, "unexpected character "+string(c))
}

func (l *lexer) identifier(start int) tok {
	for l.offset < len(l.src) {
		r, size := l.peekRune()
		if !isIdentPart(r) {
			break
		}
		l.offset += size
	}
	value := l.src[start:l.offset]
	kind := tokIdent
	if keywords[value] {
		kind = tokKeyword
	}
	return tok{Kind: kind, Value: value, Range: l.rangeFrom(start)}
}

// number scans an int, or a float when a fraction or exponent follows. A
// lone '.' after the digits is left alone so range operators like `0..<10`
// still lex.
func (l *lexer) number(start int) tok {
	for l.offset < len(l.src) && isDigit(l.src[l.offset]) {
		l.offset++
	}
	kind := tokInt
	if l.offset+1 < len(l.src) && l.src[l.offset] == '.' && isDigit(l.src[l.offset+1]) {
		kind = tokFloat
		l.offset++
		for l.offset < len(l.src) && isDigit(l.src[l.offset]) {
			l.offset++
		}
	}
	if l.offset < len(l.src) && (l.src[l.offset] == 'e' || l.src[l.offset] == 'E') {
		rest := l.offset + 1
		if rest < len(l.src) && (l.src[rest] == '+' || l.src[rest] == '-') {
			rest++
		}
		if rest < len(l.src) && isDigit(l.src[rest]) {
			kind = tokFloat
			l.offset = rest
			for l.offset < len(l.src) && isDigit(l.src[l.offset]) {
				l.offset++
			}
		}
	}
	return tok{Kind: kind, Value: l.src[start:l.offset], Range: l.rangeFrom(start)}
}

// stringLit keeps the raw spelling, quotes and escapes included.
func (l *lexer) stringLit(start int) (tok, error) {
	l.offset++ // opening quote
	for l.offset < len(l.src) {
		switch l.src[l.offset] {
		case '"':
			l.offset++
			return tok{Kind: tokString, Value: l.src[start:l.offset], Range: l.rangeFrom(start)}, nil
		case '\\':
			l.offset += 2
		case '\n':
			return tok{}, l.errorf(start, "unterminated string literal")
		default:
			l.offset++
		}
	}
	return tok{}, l.errorf(start, "unterminated string literal")
}
