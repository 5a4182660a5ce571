package formula

import (
	"fmt"
	"strconv"
)

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
)

// token is a single lexical unit of a formula.
type token struct {
	kind tokenKind
	text string  // Literal text as written
	num  float64 // Parsed value for tokenNumber
	pos  int     // Byte offset into the formula
}

// lexer scans formula text into tokens.
type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

// next returns the next token, skipping whitespace.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}

	if l.pos >= len(l.src) {
		return token{kind: tokenEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '+':
		l.pos++
		return token{kind: tokenPlus, text: "+", pos: start}, nil
	case c == '-':
		l.pos++
		return token{kind: tokenMinus, text: "-", pos: start}, nil
	case c == '*':
		l.pos++
		return token{kind: tokenStar, text: "*", pos: start}, nil
	case c == '/':
		l.pos++
		return token{kind: tokenSlash, text: "/", pos: start}, nil
	case c == '(':
		l.pos++
		return token{kind: tokenLParen, text: "(", pos: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokenRParen, text: ")", pos: start}, nil

	case isDigit(c) || c == '.':
		return l.scanNumber(start)

	case isIdentStart(c):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokenIdent, text: l.src[start:l.pos], pos: start}, nil

	default:
		return token{}, &SyntaxError{
			Formula: l.src,
			Pos:     start,
			Message: fmt.Sprintf("unexpected character %q", c),
		}
	}
}

// scanNumber scans a numeric literal (integer or decimal).
func (l *lexer) scanNumber(start int) (token, error) {
	sawDot := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '.' {
			if sawDot {
				break
			}
			sawDot = true
			l.pos++
			continue
		}
		if !isDigit(c) {
			break
		}
		l.pos++
	}

	text := l.src[start:l.pos]
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, &SyntaxError{
			Formula: l.src,
			Pos:     start,
			Message: fmt.Sprintf("invalid number %q", text),
		}
	}

	return token{kind: tokenNumber, text: text, num: num, pos: start}, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
