package expr

import (
	"io"
	"strings"
)

// Expr is a node of an expression tree: a *Variable or a *Call.
type Expr interface {
	// String returns the node in call syntax, e.g. "add(a,mul(b,c))".
	String() string

	writeTo(b *strings.Builder)
}

// Variable is a reference to a named value.
type Variable struct {
	Name string
}

// Call applies a named function to its arguments. Operators are calls
// named add, sub, mul, div, rem (two arguments) and negate (one).
type Call struct {
	Name string
	Args []Expr
}

func (v *Variable) String() string { return v.Name }

func (v *Variable) writeTo(b *strings.Builder) { b.WriteString(v.Name) }

func (c *Call) String() string {
	var b strings.Builder
	c.writeTo(&b)
	return b.String()
}

func (c *Call) writeTo(b *strings.Builder) {
	b.WriteString(c.Name)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		a.writeTo(b)
	}
	b.WriteByte(')')
}

// Print returns e in call syntax.
func Print(e Expr) string {
	return e.String()
}

// WriteTo writes e in call syntax to w.
func WriteTo(w io.Writer, e Expr) (int64, error) {
	n, err := io.WriteString(w, e.String())
	return int64(n), err
}
