package validator

import "time"

// Rule is a single check over a field value of type V on a record of type T.
//
// Rules are values: WithMessage, WithMessageFunc and WithState return modified
// copies, so a rule can be shared between chains without aliasing. A constructor
// that receives malformed parameters still returns a Rule; the problem is
// reported when the owning Builder is built.
type Rule[T, V any] struct {
	kind    Kind
	check   func(rec *T, value V, now time.Time) bool
	message func(rec *T) string
	state   func(rec *T) any
	err     error
}

// Outcome is the result of evaluating one rule. Message and State are set only
// when Passed is false.
type Outcome struct {
	Passed  bool
	Message string
	State   any
}

func (r Rule[T, V]) Kind() Kind {
	return r.kind
}

// WithMessage replaces the rule's message with a static string.
func (r Rule[T, V]) WithMessage(msg string) Rule[T, V] {
	r.message = staticMessage[T](msg)
	return r
}

// WithMessageFunc derives the message from the record at evaluation time.
// A nil fn keeps the current message.
func (r Rule[T, V]) WithMessageFunc(fn func(rec *T) string) Rule[T, V] {
	if fn != nil {
		r.message = fn
	}
	return r
}

// WithState sets the producer whose value is attached to a failure. It runs
// only when the rule fails.
func (r Rule[T, V]) WithState(fn func(rec *T) any) Rule[T, V] {
	r.state = fn
	return r
}

// Evaluate runs the check against value. now is the validation moment used by
// time-relative rules.
func (r Rule[T, V]) Evaluate(rec *T, value V, now time.Time) Outcome {
	if r.check(rec, value, now) {
		return Outcome{Passed: true}
	}

	out := Outcome{Message: defaultMessage}
	if r.message != nil {
		out.Message = r.message(rec)
	}
	if r.state != nil {
		out.State = r.state(rec)
	}
	return out
}

func (r Rule[T, V]) validate() error {
	if r.err != nil {
		return r.err
	}
	if r.check == nil {
		return ErrInvalidRule
	}
	return nil
}

// Record is a state producer that attaches the record itself to a failure.
func Record[T any](rec *T) any {
	return rec
}

const defaultMessage = "is invalid"

func staticMessage[T any](msg string) func(*T) string {
	return func(*T) string { return msg }
}

// NotNull fails when the field pointer is nil.
func NotNull[T, E any]() Rule[T, *E] {
	return Rule[T, *E]{
		kind: KindNotNull,
		check: func(_ *T, value *E, _ time.Time) bool {
			return value != nil
		},
		message: staticMessage[T]("field is required"),
	}
}

// NotEmpty fails when the field holds its type's zero value, e.g. uuid.Nil.
func NotEmpty[T any, V comparable]() Rule[T, V] {
	var zero V
	return Rule[T, V]{
		kind: KindNotEmpty,
		check: func(_ *T, value V, _ time.Time) bool {
			return value != zero
		},
		message: staticMessage[T]("must not be empty"),
	}
}

// Predicate wraps an arbitrary check. fn must be total over the field type;
// a panic inside it reaches the caller of Validate.
func Predicate[T, V any](fn func(rec *T, value V) bool) Rule[T, V] {
	r := Rule[T, V]{
		kind:    KindPredicate,
		message: staticMessage[T](defaultMessage),
	}
	if fn == nil {
		r.err = ErrNilPredicate
		return r
	}
	r.check = func(rec *T, value V, _ time.Time) bool {
		return fn(rec, value)
	}
	return r
}
