package validator

import (
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MinLength validates an optional text field. A nil value counts as length 0,
// so the rule fails on absent text unless an earlier NotNull already stopped
// the chain. Length is counted in runes after NFC normalization, so "e" plus a
// combining accent is one character.
func MinLength[T any](min int) Rule[T, *string] {
	r := Rule[T, *string]{
		kind: KindMinLength,
		check: func(_ *T, value *string, _ time.Time) bool {
			if value == nil {
				return min <= 0
			}
			return textLength(*value) >= min
		},
		message: staticMessage[T](minLengthMessage(min)),
	}
	if min < 0 {
		r.err = fmt.Errorf("%w: %d", ErrInvalidLength, min)
	}
	return r
}

// MinLengthString is MinLength for non-optional strings.
func MinLengthString[T any](min int) Rule[T, string] {
	r := Rule[T, string]{
		kind: KindMinLength,
		check: func(_ *T, value string, _ time.Time) bool {
			return textLength(value) >= min
		},
		message: staticMessage[T](minLengthMessage(min)),
	}
	if min < 0 {
		r.err = fmt.Errorf("%w: %d", ErrInvalidLength, min)
	}
	return r
}

func minLengthMessage(min int) string {
	return fmt.Sprintf("must be at least %d characters long", min)
}

func textLength(s string) int {
	if norm.NFC.IsNormalString(s) {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(norm.NFC.String(s))
}
