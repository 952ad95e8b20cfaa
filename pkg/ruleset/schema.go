package ruleset

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Binding registers the chain described by a FieldSpec on a builder. Use the
// typed constructors Text, Int, Date and UUID to create one.
type Binding[T any] func(b *validator.Builder[T], spec FieldSpec, predicates map[string]func(*T) bool) error

// Schema connects document field names to record accessors. Predicates holds
// the functions that `kind: predicate` rules refer to by name.
type Schema[T any] struct {
	Fields     map[string]Binding[T]
	Predicates map[string]func(*T) bool
}

// Compile turns doc into a Validator. Fields are registered in document order.
// Document problems are reported together; registration problems come from
// validator.Builder.Build and wrap validator.ErrInvalidRegistration.
func Compile[T any](doc Document, schema Schema[T], opts ...validator.Option) (*validator.Validator[T], error) {
	b := validator.NewBuilder[T]()

	var errs []error
	for _, field := range doc.Fields {
		binding, ok := schema.Fields[field.Name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownField, field.Name))
			continue
		}
		if err := binding(b, field, schema.Predicates); err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", field.Name, err))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return b.Build(opts...)
}

// Text binds an optional text field. Supported kinds: not_null, min_length, predicate.
func Text[T any](selector func(*T) *string) Binding[T] {
	return bind(selector, func(rs RuleSpec) (validator.Rule[T, *string], error) {
		switch rs.Kind {
		case validator.KindNotNull:
			return validator.NotNull[T, string](), nil
		case validator.KindMinLength:
			if rs.Length == nil {
				return validator.Rule[T, *string]{}, fmt.Errorf("%w: length", ErrMissingParam)
			}
			return validator.MinLength[T](*rs.Length), nil
		}
		return validator.Rule[T, *string]{}, unsupported(rs.Kind)
	})
}

// Int binds an integer field. Supported kinds: range, greater_than, predicate.
func Int[T any](selector func(*T) int) Binding[T] {
	return bind(selector, func(rs RuleSpec) (validator.Rule[T, int], error) {
		switch rs.Kind {
		case validator.KindRange:
			if rs.Min == nil || rs.Max == nil {
				return validator.Rule[T, int]{}, fmt.Errorf("%w: min and max", ErrMissingParam)
			}
			return validator.Range[T](*rs.Min, *rs.Max), nil
		case validator.KindGreaterThan:
			if rs.Bound == "" {
				return validator.Rule[T, int]{}, fmt.Errorf("%w: bound", ErrMissingParam)
			}
			n, err := strconv.Atoi(rs.Bound)
			if err != nil {
				return validator.Rule[T, int]{}, fmt.Errorf("%w: bound %q", ErrInvalidParam, rs.Bound)
			}
			return validator.GreaterThan[T](n), nil
		}
		return validator.Rule[T, int]{}, unsupported(rs.Kind)
	})
}

// Date binds a date field. Supported kinds: after, predicate.
func Date[T any](selector func(*T) time.Time) Binding[T] {
	return bind(selector, func(rs RuleSpec) (validator.Rule[T, time.Time], error) {
		if rs.Kind != validator.KindAfter {
			return validator.Rule[T, time.Time]{}, unsupported(rs.Kind)
		}
		if rs.Bound == "" || rs.Bound == "now" {
			return validator.FutureDate[T](), nil
		}
		ref, err := time.Parse(time.DateOnly, rs.Bound)
		if err != nil {
			return validator.Rule[T, time.Time]{}, fmt.Errorf("%w: bound %q", ErrInvalidParam, rs.Bound)
		}
		return validator.DateAfter[T](ref), nil
	})
}

// UUID binds an identifier field. Supported kinds: not_empty, predicate.
func UUID[T any](selector func(*T) uuid.UUID) Binding[T] {
	return bind(selector, func(rs RuleSpec) (validator.Rule[T, uuid.UUID], error) {
		if rs.Kind != validator.KindNotEmpty {
			return validator.Rule[T, uuid.UUID]{}, unsupported(rs.Kind)
		}
		return validator.NotEmpty[T, uuid.UUID](), nil
	})
}

func bind[T, V any](selector func(*T) V, compile func(RuleSpec) (validator.Rule[T, V], error)) Binding[T] {
	return func(b *validator.Builder[T], spec FieldSpec, predicates map[string]func(*T) bool) error {
		cascade, err := validator.ParseCascade(spec.Cascade)
		if err != nil {
			return err
		}

		var errs []error
		rules := make([]validator.Rule[T, V], 0, len(spec.Rules))
		for i, rs := range spec.Rules {
			r, err := compileRule(rs, predicates, compile)
			if err != nil {
				errs = append(errs, fmt.Errorf("rule %d (%s): %w", i, rs.Kind, err))
				continue
			}
			rules = append(rules, r)
		}
		if len(errs) > 0 {
			return errors.Join(errs...)
		}

		validator.RuleFor(b, spec.Name, selector, rules...).Cascade(cascade)
		return nil
	}
}

func compileRule[T, V any](
	rs RuleSpec,
	predicates map[string]func(*T) bool,
	compile func(RuleSpec) (validator.Rule[T, V], error),
) (validator.Rule[T, V], error) {
	var (
		r   validator.Rule[T, V]
		err error
	)
	if rs.Kind == validator.KindPredicate {
		fn := predicates[rs.Predicate]
		if fn == nil {
			return r, fmt.Errorf("%w: %q", ErrUnknownPredicate, rs.Predicate)
		}
		r = validator.Predicate(func(rec *T, _ V) bool { return fn(rec) })
	} else {
		r, err = compile(rs)
		if err != nil {
			return r, err
		}
	}

	if rs.Message != "" {
		r = r.WithMessage(rs.Message)
	}

	switch rs.State {
	case "", "none":
	case "record":
		r = r.WithState(validator.Record[T])
	default:
		return r, fmt.Errorf("%w: %q", ErrInvalidState, rs.State)
	}
	return r, nil
}

func unsupported(kind validator.Kind) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
}
