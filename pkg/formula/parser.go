package formula

import "fmt"

// Parse parses formula text into a Formula. It returns a *SyntaxError if
// the text is empty, contains an unexpected token, or has unbalanced
// parentheses. Parsing does not evaluate: field references are resolved
// later against an Env.
func Parse(src string) (*Formula, error) {
	p := &parser{lex: newLexer(src), src: src}
	if err := p.advance(); err != nil {
		return nil, err
	}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.cur.kind != tokenEOF {
		return nil, &SyntaxError{
			Formula: src,
			Pos:     p.cur.pos,
			Message: fmt.Sprintf("unexpected token %q after expression", p.cur.text),
		}
	}

	return &Formula{src: src, root: root}, nil
}

// parser is a recursive-descent parser with one token of lookahead.
type parser struct {
	lex *lexer
	src string
	cur token
}

// advance moves to the next token.
func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parseExpr parses addition and subtraction (lowest precedence,
// left-associative).
func (p *parser) parseExpr() (expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.cur.kind == tokenPlus || p.cur.kind == tokenMinus {
		op := p.cur.kind
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &binary{op: op, left: left, right: right}
	}

	return left, nil
}

// parseTerm parses multiplication and division (left-associative).
func (p *parser) parseTerm() (expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.cur.kind == tokenStar || p.cur.kind == tokenSlash {
		op := p.cur.kind
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &binary{op: op, left: left, right: right}
	}

	return left, nil
}

// parseUnary parses an optional leading minus.
func (p *parser) parseUnary() (expr, error) {
	if p.cur.kind == tokenMinus {
		if err := p.advance(); err != nil {
			return nil, err
		}

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &unary{operand: operand}, nil
	}

	return p.parsePrimary()
}

// parsePrimary parses a literal, a field reference, or a parenthesized
// expression.
func (p *parser) parsePrimary() (expr, error) {
	switch p.cur.kind {
	case tokenNumber:
		node := &literal{value: p.cur.num}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil

	case tokenIdent:
		node := &fieldRef{name: p.cur.text}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil

	case tokenLParen:
		open := p.cur.pos
		if err := p.advance(); err != nil {
			return nil, err
		}

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if p.cur.kind != tokenRParen {
			return nil, &SyntaxError{
				Formula: p.src,
				Pos:     open,
				Message: "unbalanced parenthesis",
			}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		return inner, nil

	case tokenEOF:
		return nil, &SyntaxError{
			Formula: p.src,
			Pos:     p.cur.pos,
			Message: "unexpected end of formula",
		}

	default:
		return nil, &SyntaxError{
			Formula: p.src,
			Pos:     p.cur.pos,
			Message: fmt.Sprintf("unexpected token %q", p.cur.text),
		}
	}
}
