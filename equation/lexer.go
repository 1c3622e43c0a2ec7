// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokEquals
)

type token struct {
	kind tokenKind
	text string
	num  float64
	col  int // 1-based rune column
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of line"
	}

	return strconv.Quote(t.text)
}

var punct = map[rune]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'·': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
	'=': tokEquals,
}

// lex splits one line into tokens, ending with tokEOF.
func lex(line string) ([]token, error) {
	rs := []rune(line)
	var toks []token
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isDigit(r) || (r == '.' && i+1 < len(rs) && isDigit(rs[i+1])):
			j := scanNumber(rs, i)
			text := string(rs[i:j])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("col %d: bad number %q: %w", i+1, text, ErrSyntax)
			}
			toks = append(toks, token{kind: tokNumber, text: text, num: v, col: i + 1})
			i = j
		case isIdentStart(r):
			j := i + 1
			for j < len(rs) && (isIdentStart(rs[j]) || isDigit(rs[j])) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: string(rs[i:j]), col: i + 1})
			i = j
		default:
			kind, ok := punct[r]
			if !ok {
				return nil, fmt.Errorf("col %d: unexpected %q: %w", i+1, r, ErrSyntax)
			}
			toks = append(toks, token{kind: kind, text: string(r), col: i + 1})
			i++
		}
	}

	return append(toks, token{kind: tokEOF, col: len(rs) + 1}), nil
}

// scanNumber returns the end of the number starting at i: digits, an optional
// fraction and an exponent only when digits follow it, so "2e" lexes as 2·e.
func scanNumber(rs []rune, i int) int {
	j := i
	for j < len(rs) && isDigit(rs[j]) {
		j++
	}
	if j < len(rs) && rs[j] == '.' {
		j++
		for j < len(rs) && isDigit(rs[j]) {
			j++
		}
	}
	if j < len(rs) && (rs[j] == 'e' || rs[j] == 'E') {
		k := j + 1
		if k < len(rs) && (rs[k] == '+' || rs[k] == '-') {
			k++
		}
		if k < len(rs) && isDigit(rs[k]) {
			for k < len(rs) && isDigit(rs[k]) {
				k++
			}
			j = k
		}
	}

	return j
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
