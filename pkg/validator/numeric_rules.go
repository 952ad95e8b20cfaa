package validator

import (
	"cmp"
	"fmt"
	"time"
)

// Range validates that a numeric value lies within [min, max]. Both bounds are
// inclusive.
func Range[T any, V Numeric](min, max V) Rule[T, V] {
	r := Rule[T, V]{
		kind: KindRange,
		check: func(_ *T, value V, _ time.Time) bool {
			return value >= min && value <= max
		},
		message: staticMessage[T](fmt.Sprintf("must be between %v and %v", min, max)),
	}
	if min > max {
		r.err = fmt.Errorf("%w: %v > %v", ErrInvalidRange, min, max)
	}
	return r
}

// GreaterThan validates that a value is strictly greater than bound.
func GreaterThan[T any, V cmp.Ordered](bound V) Rule[T, V] {
	return Rule[T, V]{
		kind: KindGreaterThan,
		check: func(_ *T, value V, _ time.Time) bool {
			return cmp.Compare(value, bound) > 0
		},
		message: staticMessage[T](fmt.Sprintf("must be greater than %v", bound)),
	}
}
