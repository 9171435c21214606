package expr

// DefaultMaxDepth is the nesting limit used when MaxDepth is not given.
const DefaultMaxDepth = 1000

// ParserOption configures Parse and ParseString.
type ParserOption func(*parser)

// MaxDepth sets how deeply parentheses and prefix operators may nest
// before parsing fails with NestingTooDeep.
//
// Every '(' and every prefix '+' or '-' opens one level, so "-(-a)"
// needs a depth of 3. The parser recurses once per level; the limit
// bounds its stack usage on hostile input.
//
// MaxDepth must be a value greater or equal to 1, will panic otherwise.
func MaxDepth(n int) ParserOption {
	if n < 1 {
		panic("MaxDepth should be >= 1")
	}
	return func(p *parser) {
		p.maxDepth = n
	}
}
