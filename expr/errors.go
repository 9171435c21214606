package expr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a SyntaxError.
type ErrorKind int

const (
	UnexpectedCharacter ErrorKind = iota + 1
	ExpectedToken
	ExpectedCloseParen
	UnexpectedToken
	NestingTooDeep
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrExpectedToken       = errors.New("expected token")
	ErrExpectedCloseParen  = errors.New("expected ')'")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrNestingTooDeep      = errors.New("expression nested too deeply")
)

var kindErrors = map[ErrorKind]error{
	UnexpectedCharacter: ErrUnexpectedCharacter,
	ExpectedToken:       ErrExpectedToken,
	ExpectedCloseParen:  ErrExpectedCloseParen,
	UnexpectedToken:     ErrUnexpectedToken,
	NestingTooDeep:      ErrNestingTooDeep,
}

func (k ErrorKind) String() string {
	if err, ok := kindErrors[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SyntaxError reports a tokenizer or parser failure.
//
// Pos is the index of the offending token, or -1 when the error comes
// from the tokenizer. Offset is the byte offset into the source; for
// ExpectedToken it points just past the last token. Text holds the
// offending character or token text, if any.
type SyntaxError struct {
	Kind   ErrorKind
	Pos    int
	Offset int
	Text   string
}

func (e *SyntaxError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Kind)
	}
	return fmt.Sprintf("syntax error at offset %d: %s %q", e.Offset, e.Kind, e.Text)
}

// Unwrap returns the sentinel for e.Kind so callers can use errors.Is.
func (e *SyntaxError) Unwrap() error {
	return kindErrors[e.Kind]
}

// WrapErrorWithSource renders a *SyntaxError as a snippet of src with a
// caret under the offending column. Other errors are returned unchanged.
//
//	SYNTAX ERROR at 1:2: unexpected character "#"
//
//	   1 | a#b
//	     |  ^
func WrapErrorWithSource(err error, src string) error {
	var se *SyntaxError
	if !errors.As(err, &se) {
		return err
	}

	off := se.Offset
	if off < 0 {
		off = 0
	}
	if off > len(src) {
		off = len(src)
	}

	// Locate the line holding off; columns count runes, 1-based.
	line := 1 + strings.Count(src[:off], "\n")
	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := strings.IndexByte(src[off:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += off
	}
	col := 1 + len([]rune(src[start:off]))

	var b strings.Builder
	msg := se.Kind.String()
	if se.Text != "" {
		msg = fmt.Sprintf("%s %q", msg, se.Text)
	}
	fmt.Fprintf(&b, "SYNTAX ERROR at %d:%d: %s\n\n", line, col, msg)
	fmt.Fprintf(&b, "%4d | %s\n", line, src[start:end])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	return &sourceError{msg: b.String(), err: err}
}

// sourceError keeps the wrapped error reachable through errors.Is/As.
type sourceError struct {
	msg string
	err error
}

func (e *sourceError) Error() string { return e.msg }
func (e *sourceError) Unwrap() error { return e.err }
