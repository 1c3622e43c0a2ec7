// SPDX-License-Identifier: MIT

package equation

import "fmt"

// parser is a recursive-descent evaluator over one line's tokens:
//
//	equation := expr '=' expr EOF
//	expr     := term (('+' | '-') term)*
//	term     := unary (('*' | '/') unary | primary)*   // juxtaposition multiplies
//	unary    := ('+' | '-') unary | primary
//	primary  := number | ident | '(' expr ')'
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) errorf(t token, err error, format string, args ...interface{}) error {
	return fmt.Errorf("col %d: %s: %w", t.col, fmt.Sprintf(format, args...), err)
}

// equation returns left − right.
func (p *parser) equation() (linear, error) {
	left, err := p.expr()
	if err != nil {
		return linear{}, err
	}
	if t := p.next(); t.kind != tokEquals {
		if t.kind == tokEOF {
			return linear{}, p.errorf(t, ErrEquals, "missing '='")
		}

		return linear{}, p.errorf(t, ErrSyntax, "unexpected %s", t)
	}
	right, err := p.expr()
	if err != nil {
		return linear{}, err
	}
	switch t := p.next(); t.kind {
	case tokEOF:
	case tokEquals:
		return linear{}, p.errorf(t, ErrEquals, "second '='")
	default:
		return linear{}, p.errorf(t, ErrSyntax, "unexpected %s", t)
	}

	return left.combine(right, -1), nil
}

func (p *parser) expr() (linear, error) {
	acc, err := p.term()
	if err != nil {
		return linear{}, err
	}
	for {
		var sign float64
		switch p.peek().kind {
		case tokPlus:
			sign = 1
		case tokMinus:
			sign = -1
		default:
			return acc, nil
		}
		p.next()
		rhs, err := p.term()
		if err != nil {
			return linear{}, err
		}
		acc = acc.combine(rhs, sign)
	}
}

func (p *parser) term() (linear, error) {
	acc, err := p.unary()
	if err != nil {
		return linear{}, err
	}
	for {
		t := p.peek()
		var (
			rhs linear
			op  = tokStar
		)
		switch t.kind {
		case tokStar, tokSlash:
			op = p.next().kind
			rhs, err = p.unary()
		case tokNumber, tokIdent, tokLParen:
			rhs, err = p.primary()
		default:
			return acc, nil
		}
		if err != nil {
			return linear{}, err
		}
		if op == tokSlash {
			acc, err = div(acc, rhs)
		} else {
			acc, err = mul(acc, rhs)
		}
		if err != nil {
			return linear{}, p.errorf(t, err, "at %s", t)
		}
	}
}

func (p *parser) unary() (linear, error) {
	switch p.peek().kind {
	case tokPlus:
		p.next()

		return p.unary()
	case tokMinus:
		p.next()
		v, err := p.unary()
		if err != nil {
			return linear{}, err
		}

		return v.scale(-1), nil
	default:
		return p.primary()
	}
}

func (p *parser) primary() (linear, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return constant(t.num), nil
	case tokIdent:
		return variable(t.text), nil
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return linear{}, err
		}
		if c := p.next(); c.kind != tokRParen {
			return linear{}, p.errorf(c, ErrSyntax, "expected ')' but found %s", c)
		}

		return v, nil
	default:
		return linear{}, p.errorf(t, ErrSyntax, "unexpected %s", t)
	}
}
