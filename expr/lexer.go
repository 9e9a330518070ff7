package expr

import (
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp // any other single rune, in token.op
)

type token struct {
	kind tokenKind
	text string
	op   rune
	col  int // 1 based, in runes
}

// lexer splits an expression into tokens. A number only takes an exponent
// when digits follow the e, so "2e" and "2exp(x)" keep meaning 2*e and
// 2*exp(x). A second decimal point stays in the number token, so "1.2.3"
// fails to parse instead of reading as 1.2*.3.
type lexer struct {
	src string
	pos int // byte offset
	col int // rune column of pos, 0 based
}

func (l *lexer) peek(off int) rune {
	i := l.pos
	for ; off > 0 && i < len(l.src); off-- {
		_, w := utf8.DecodeRuneInString(l.src[i:])
		i += w
	}
	if i >= len(l.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.src[i:])
	return r
}

func (l *lexer) advance() {
	_, w := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += w
	l.col++
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *lexer) next() token {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek(0)) {
		l.advance()
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, col: l.col + 1}
	}
	start, col := l.pos, l.col+1
	r := l.peek(0)
	switch {
	case isDigit(r) || r == '.' && isDigit(l.peek(1)):
		l.number()
		return token{kind: tokNumber, text: l.src[start:l.pos], col: col}
	case isIdentStart(r):
		for l.pos < len(l.src) && isIdentRune(l.peek(0)) {
			l.advance()
		}
		return token{kind: tokIdent, text: l.src[start:l.pos], col: col}
	}
	l.advance()
	return token{kind: tokOp, text: l.src[start:l.pos], op: r, col: col}
}

func (l *lexer) number() {
	for isDigit(l.peek(0)) {
		l.advance()
	}
	if l.peek(0) == '.' {
		l.advance()
		for isDigit(l.peek(0)) {
			l.advance()
		}
	}
	if e := l.peek(0); e == 'e' || e == 'E' {
		switch s := l.peek(1); {
		case isDigit(s):
			l.advance()
		case (s == '+' || s == '-') && isDigit(l.peek(2)):
			l.advance()
			l.advance()
		default:
			return
		}
		for isDigit(l.peek(0)) {
			l.advance()
		}
	}
	// Whatever is left of a malformed number, like the ".3" of "1.2.3".
	for r := l.peek(0); r == '.' || isDigit(r); r = l.peek(0) {
		l.advance()
	}
}
