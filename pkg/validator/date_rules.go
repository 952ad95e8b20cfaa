package validator

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// FutureDate validates that the date part of a value is strictly after the date
// of the validation moment. A value falling on the same calendar day as the
// validation fails.
func FutureDate[T any]() Rule[T, time.Time] {
	return Rule[T, time.Time]{
		kind: KindAfter,
		check: func(_ *T, value time.Time, now time.Time) bool {
			return DateOf(value).After(DateOf(now))
		},
		message: staticMessage[T]("date must be in the future"),
	}
}

// DateAfter validates that the date part of a value is strictly after the date
// part of ref.
func DateAfter[T any](ref time.Time) Rule[T, time.Time] {
	bound := DateOf(ref)
	return Rule[T, time.Time]{
		kind: KindAfter,
		check: func(_ *T, value time.Time, _ time.Time) bool {
			return DateOf(value).After(bound)
		},
		message: staticMessage[T](fmt.Sprintf("date must be after %s", bound.Format(dateLayout))),
	}
}

// DateOf truncates t to midnight UTC of the calendar day t falls on in its own
// location, so dates from different zones compare by their wall-clock day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
