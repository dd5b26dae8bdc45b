package query

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// SelectorErrorKind classifies a compile failure.
type SelectorErrorKind uint8

const (
	ErrUnexpectedEOF SelectorErrorKind = iota
	ErrUnexpectedChar
	ErrEmptySelector
	ErrBadExpr
)

// SelectorError is returned by Compile on a malformed selector string.
type SelectorError struct {
	Kind   SelectorErrorKind
	Offset int
	Detail string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("query: selector error at offset %d: %s", e.Offset, e.Detail)
}

// Compile parses a CSS-like selector string into a Selector, following
// original_source/src/queryselector/selector.rs's grammar (Tag/Id/Class/
// Attribute* variants) joined by descendant or child combinators.
func Compile(sel string) (*Selector, error) {
	p := &selParser{src: sel}
	return p.parse()
}

type selParser struct {
	src string
	pos int
}

func (p *selParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *selParser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *selParser) parse() (*Selector, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, &SelectorError{Kind: ErrEmptySelector, Offset: p.pos, Detail: "empty selector"}
	}

	sel := &Selector{}
	comb := None
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			break
		}
		if p.peek() == '>' {
			p.pos++
			p.skipSpace()
			comb = Child
		}
		compound, err := p.parseCompound()
		if err != nil {
			return nil, err
		}
		sel.steps = append(sel.steps, step{Combinator: comb, Compound: compound})
		comb = Descendant
	}
	if len(sel.steps) == 0 {
		return nil, &SelectorError{Kind: ErrEmptySelector, Offset: p.pos, Detail: "empty selector"}
	}
	return sel, nil
}

func (p *selParser) parseCompound() (CompoundSelector, error) {
	var c CompoundSelector
	sawAny := false

	for p.pos < len(p.src) {
		ch := p.peek()
		switch {
		case isIdentByte(ch) && !sawAnyPredicateStarted(c) && c.Tag == "" && !sawAny:
			start := p.pos
			for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
				p.pos++
			}
			c.Tag = p.src[start:p.pos]
			sawAny = true
		case ch == '#':
			p.pos++
			start := p.pos
			for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
				p.pos++
			}
			if p.pos == start {
				return c, &SelectorError{Kind: ErrUnexpectedChar, Offset: p.pos, Detail: "expected identifier after '#'"}
			}
			c.ID = p.src[start:p.pos]
			sawAny = true
		case ch == '.':
			p.pos++
			start := p.pos
			for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
				p.pos++
			}
			if p.pos == start {
				return c, &SelectorError{Kind: ErrUnexpectedChar, Offset: p.pos, Detail: "expected identifier after '.'"}
			}
			c.Classes = append(c.Classes, p.src[start:p.pos])
			sawAny = true
		case ch == '[':
			pred, err := p.parseAttrPredicate()
			if err != nil {
				return c, err
			}
			c.Attrs = append(c.Attrs, pred)
			sawAny = true
		case ch == ':':
			if err := p.parsePseudo(&c); err != nil {
				return c, err
			}
			sawAny = true
		default:
			if !sawAny {
				return c, &SelectorError{Kind: ErrUnexpectedChar, Offset: p.pos, Detail: fmt.Sprintf("unexpected character %q", ch)}
			}
			return c, nil
		}
	}
	if !sawAny {
		return c, &SelectorError{Kind: ErrUnexpectedEOF, Offset: p.pos, Detail: "unexpected end of selector"}
	}
	return c, nil
}

// sawAnyPredicateStarted reports whether c already has any predicate, so
// a bare identifier is only accepted as a tag name at the very start of
// a compound selector (e.g. "div.x" is valid, ".xdiv" is not a tag).
func sawAnyPredicateStarted(c CompoundSelector) bool {
	return c.ID != "" || len(c.Classes) > 0 || len(c.Attrs) > 0 || c.ExprSource != ""
}

func (p *selParser) parseAttrPredicate() (AttrPredicate, error) {
	var pred AttrPredicate
	p.pos++ // '['
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return pred, &SelectorError{Kind: ErrUnexpectedChar, Offset: p.pos, Detail: "expected attribute name"}
	}
	pred.Key = p.src[start:p.pos]
	p.skipSpace()

	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.pos++
		pred.Op = AttrExists
		return pred, nil
	}

	op, ok := p.parseOperator()
	if !ok {
		return pred, &SelectorError{Kind: ErrUnexpectedChar, Offset: p.pos, Detail: "expected attribute operator"}
	}
	pred.Op = op
	p.skipSpace()

	val, err := p.parseAttrValue()
	if err != nil {
		return pred, err
	}
	pred.Value = val

	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != ']' {
		return pred, &SelectorError{Kind: ErrUnexpectedChar, Offset: p.pos, Detail: "expected ']'"}
	}
	p.pos++
	return pred, nil
}

func (p *selParser) parseOperator() (AttrOp, bool) {
	two := func(c byte, op AttrOp) (AttrOp, bool) {
		if p.pos+1 < len(p.src) && p.src[p.pos] == c && p.src[p.pos+1] == '=' {
			p.pos += 2
			return op, true
		}
		return 0, false
	}
	if op, ok := two('~', AttrIncludes); ok {
		return op, true
	}
	if op, ok := two('|', AttrDashMatch); ok {
		return op, true
	}
	if op, ok := two('^', AttrPrefix); ok {
		return op, true
	}
	if op, ok := two('$', AttrSuffix); ok {
		return op, true
	}
	if op, ok := two('*', AttrSubstring); ok {
		return op, true
	}
	if p.pos < len(p.src) && p.src[p.pos] == '=' {
		p.pos++
		return AttrEquals, true
	}
	return 0, false
}

func (p *selParser) parseAttrValue() (string, error) {
	if p.pos < len(p.src) && (p.src[p.pos] == '"' || p.src[p.pos] == '\'') {
		quote := p.src[p.pos]
		p.pos++
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != quote {
			p.pos++
		}
		if p.pos >= len(p.src) {
			return "", &SelectorError{Kind: ErrUnexpectedEOF, Offset: p.pos, Detail: "unterminated attribute value"}
		}
		val := p.src[start:p.pos]
		p.pos++
		return val, nil
	}
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ']' && !isSpace(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", &SelectorError{Kind: ErrUnexpectedChar, Offset: p.pos, Detail: "expected attribute value"}
	}
	return p.src[start:p.pos], nil
}

// parsePseudo handles ":expr(<expression>)", the one pseudo-class this
// grammar supports beyond the fixed CSS operators (see DOMAIN STACK:
// expr-lang/expr wiring). Any other ":name" is a compile error — this
// grammar does not implement the CSS pseudo-class vocabulary at large.
func (p *selParser) parsePseudo(c *CompoundSelector) error {
	p.pos++ // ':'
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	if name != "expr" {
		return &SelectorError{Kind: ErrUnexpectedChar, Offset: start, Detail: fmt.Sprintf("unsupported pseudo-class %q", name)}
	}
	if p.pos >= len(p.src) || p.src[p.pos] != '(' {
		return &SelectorError{Kind: ErrUnexpectedChar, Offset: p.pos, Detail: "expected '(' after :expr"}
	}
	p.pos++
	depth := 1
	exprStart := p.pos
	for p.pos < len(p.src) && depth > 0 {
		switch p.src[p.pos] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			break
		}
		p.pos++
	}
	if depth != 0 {
		return &SelectorError{Kind: ErrUnexpectedEOF, Offset: p.pos, Detail: "unterminated :expr(...)"}
	}
	source := p.src[exprStart:p.pos]
	p.pos++ // ')'

	prog, err := expr.Compile(source)
	if err != nil {
		return &SelectorError{Kind: ErrBadExpr, Offset: exprStart, Detail: err.Error()}
	}
	c.ExprSource = source
	c.exprProg = prog
	return nil
}
