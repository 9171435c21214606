package expr

import (
	"errors"
	"fmt"
	"testing"
)

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Tokenize("a#b")
	if got := err.Error(); got != `syntax error at offset 1: unexpected character "#"` {
		t.Errorf("Unexpected message: %s", got)
	}

	_, err = ParseString("a+")
	if got := err.Error(); got != "syntax error at offset 2: expected token" {
		t.Errorf("Unexpected message: %s", got)
	}
}

func TestWrapErrorWithSource(t *testing.T) {
	src := "a#b"
	_, err := ParseString(src)

	wrapped := WrapErrorWithSource(err, src)
	want := "SYNTAX ERROR at 1:2: unexpected character \"#\"\n\n" +
		"   1 | a#b\n" +
		"     |  ^\n"
	if wrapped.Error() != want {
		t.Errorf("Unexpected snippet:\n%s\nexpected:\n%s", wrapped, want)
	}
	if !errors.Is(wrapped, ErrUnexpectedCharacter) {
		t.Errorf("The wrapped error should still match its sentinel")
	}
}

func TestWrapErrorWithSourceMultiline(t *testing.T) {
	src := "a +\n  (b * c"
	_, err := ParseString(src)

	want := "SYNTAX ERROR at 2:9: expected ')'\n\n" +
		"   2 |   (b * c\n" +
		"     |         ^\n"
	if got := WrapErrorWithSource(err, src).Error(); got != want {
		t.Errorf("Unexpected snippet:\n%s\nexpected:\n%s", got, want)
	}
}

func TestWrapErrorWithSourcePassThrough(t *testing.T) {
	other := fmt.Errorf("not a syntax error")
	if WrapErrorWithSource(other, "a") != other {
		t.Errorf("Errors other than *SyntaxError should be returned unchanged")
	}
	if WrapErrorWithSource(nil, "a") != nil {
		t.Errorf("A nil error should stay nil")
	}
}
