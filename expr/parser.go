// Package expr parses infix arithmetic over identifiers into a tree of
// function calls.
//
// The grammar knows identifiers, parentheses, prefix + and -, and the
// binary operators * / % (binding tighter) and + - (binding looser),
// all left-associative:
//
//	expression := primary { op primary }
//	primary    := identifier | "(" expression ")" | "+" primary | "-" primary
//
// Operators are rewritten to calls, so "-a/b+c" prints as
// "add(div(negate(a),b),c)". Function calls are not part of the input
// grammar.
package expr

import (
	"log/slog"
)

type assoc int

const (
	leftToRight assoc = iota
	rightToLeft
)

type binop struct {
	name  string
	level int
}

// binops maps a binary operator token to its call name and precedence
// level; higher levels bind tighter.
var binops = map[Kind]binop{
	Star:    {"mul", 1},
	Slash:   {"div", 1},
	Percent: {"rem", 1},
	Plus:    {"add", 0},
	Minus:   {"sub", 0},
}

// levels lists the associativity of each precedence level, indexed by
// binop.level.
var levels = []assoc{
	0: leftToRight,
	1: leftToRight,
}

type parser struct {
	toks     []Token
	pos      int
	depth    int
	maxDepth int
}

// Parse builds the expression tree for tokens. The whole token slice
// must form a single expression.
func Parse(tokens []Token, opts ...ParserOption) (Expr, error) {
	p := &parser{toks: tokens, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}

	e, err := p.parseExpression()
	if err == nil && p.pos < len(p.toks) {
		err = p.errorAt(UnexpectedToken)
	}
	if err != nil {
		Logger().Debug("expr: parse failed", slog.Any("err", err))
		return nil, err
	}
	return e, nil
}

// ParseString tokenizes and parses src.
func ParseString(src string, opts ...ParserOption) (Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(toks, opts...)
}

func (p *parser) peek() (Token, bool) {
	if p.pos < len(p.toks) {
		return p.toks[p.pos], true
	}
	return Token{}, false
}

// errorAt reports kind at the current token, or past the last token at
// end of input.
func (p *parser) errorAt(kind ErrorKind) *SyntaxError {
	if tok, ok := p.peek(); ok {
		return &SyntaxError{Kind: kind, Pos: p.pos, Offset: tok.Offset, Text: tok.Text}
	}
	off := 0
	if n := len(p.toks); n > 0 {
		last := p.toks[n-1]
		off = last.Offset + len(last.Text)
	}
	return &SyntaxError{Kind: kind, Pos: p.pos, Offset: off}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorAt(NestingTooDeep)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// parsePrimary parses an expression without a top-level binary operator.
func (p *parser) parsePrimary() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, p.errorAt(ExpectedToken)
	}

	switch tok.Kind {
	case Identifier:
		p.pos++
		return &Variable{Name: tok.Text}, nil

	case LParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		p.pos++
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if next, ok := p.peek(); !ok || next.Kind != RParen {
			return nil, p.errorAt(ExpectedCloseParen)
		}
		p.pos++
		return e, nil

	case Plus:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		p.pos++
		return p.parsePrimary()

	case Minus:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		p.pos++
		e, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &Call{Name: "negate", Args: []Expr{e}}, nil
	}

	return nil, p.errorAt(UnexpectedToken)
}

// parseExpression collects the chain P0 op0 P1 op1 ... Pn and reduces it.
func (p *parser) parseExpression() (Expr, error) {
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	operands := []Expr{first}
	var ops []binop
	for {
		tok, ok := p.peek()
		if !ok {
			break
		}
		op, isBinop := binops[tok.Kind]
		if !isBinop {
			break
		}
		p.pos++
		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		operands = append(operands, rhs)
	}

	if len(ops) == 0 {
		return first, nil
	}
	return reduce(operands, ops), nil
}

// reduce folds a chain of len(ops)+1 operands into a single tree.
//
// Operators are linked in a list through prev and next; operator k
// combines the operands in slots left[k] and right[k]. Reducing k
// stores the result in left[k] and unlinks k, so the following
// operator's left slot becomes left[k]. The leftmost slot is never
// overwritten by another, so the result ends in operands[0].
func reduce(operands []Expr, ops []binop) Expr {
	n := len(ops)
	prev := make([]int, n)
	next := make([]int, n)
	left := make([]int, n)
	right := make([]int, n)

	// Bucket operators by level, keeping source order within a level.
	buckets := make([][]int, len(levels))
	for k, op := range ops {
		prev[k] = k - 1
		next[k] = k + 1
		left[k] = k
		right[k] = k + 1
		buckets[op.level] = append(buckets[op.level], k)
	}
	next[n-1] = -1

	for level := len(levels) - 1; level >= 0; level-- {
		queue := buckets[level]
		for q := range queue {
			k := queue[q]
			if levels[level] == rightToLeft {
				k = queue[len(queue)-1-q]
			}

			operands[left[k]] = &Call{
				Name: ops[k].name,
				Args: []Expr{operands[left[k]], operands[right[k]]},
			}

			if nx := next[k]; nx >= 0 {
				left[nx] = left[k]
				prev[nx] = prev[k]
			}
			if pv := prev[k]; pv >= 0 {
				next[pv] = next[k]
			}
		}
		if len(queue) > 0 {
			Logger().Debug("expr: reduced operators",
				slog.Int("level", level),
				slog.Int("count", len(queue)))
		}
	}

	return operands[0]
}
