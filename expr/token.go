package expr

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind int

const (
	Identifier Kind = iota
	Slash
	Percent
	Plus
	Star
	Minus
	LParen
	RParen
)

var kindNames = [...]string{
	Identifier: "identifier",
	Slash:      "'/'",
	Percent:    "'%'",
	Plus:       "'+'",
	Star:       "'*'",
	Minus:      "'-'",
	LParen:     "'('",
	RParen:     "')'",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var symbols = map[rune]Kind{
	'/': Slash,
	'%': Percent,
	'+': Plus,
	'*': Star,
	'-': Minus,
	'(': LParen,
	')': RParen,
}

// Token is a lexeme of an expression. Text is a substring of the
// tokenized input and Offset its byte position there.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

func (t Token) String() string {
	if t.Kind == Identifier {
		return fmt.Sprintf("identifier %q", t.Text)
	}
	return t.Kind.String()
}

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return isIdentStart(r) || unicode.IsDigit(r) }

// Tokenize splits input into tokens in left-to-right order. The first
// character that cannot start a token aborts with an UnexpectedCharacter
// error and no tokens.
func Tokenize(input string) ([]Token, error) {
	var toks []Token
	for off := 0; off < len(input); {
		r, size := utf8.DecodeRuneInString(input[off:])

		switch {
		case unicode.IsSpace(r):
			off += size

		case isIdentStart(r):
			start := off
			off += size
			for off < len(input) {
				r, size = utf8.DecodeRuneInString(input[off:])
				if !isIdentPart(r) {
					break
				}
				off += size
			}
			toks = append(toks, Token{Kind: Identifier, Text: input[start:off], Offset: start})

		default:
			k, ok := symbols[r]
			if !ok {
				return nil, &SyntaxError{
					Kind:   UnexpectedCharacter,
					Pos:    -1,
					Offset: off,
					Text:   input[off : off+size],
				}
			}
			toks = append(toks, Token{Kind: k, Text: input[off : off+size], Offset: off})
			off += size
		}
	}
	return toks, nil
}
