package validator

import (
	"fmt"
	"slices"
	"time"
)

// Cascade controls what a chain does after one of its rules fails.
type Cascade int

const (
	cascadeUnset Cascade = iota
	// CascadeStop ends the chain at the first failing rule, so a field reports
	// at most one failure. Later problems on the same field surface only after
	// the first one is fixed.
	CascadeStop
	// CascadeContinue evaluates every rule and reports each failure.
	CascadeContinue
)

func (c Cascade) String() string {
	switch c {
	case cascadeUnset:
		return "unset"
	case CascadeStop:
		return "stop"
	case CascadeContinue:
		return "continue"
	default:
		return fmt.Sprintf("cascade(%d)", int(c))
	}
}

// ParseCascade maps "stop" and "continue" to their modes. An empty string
// yields the unset mode, which resolves to the validator default at Build.
func ParseCascade(s string) (Cascade, error) {
	switch s {
	case "":
		return cascadeUnset, nil
	case "stop":
		return CascadeStop, nil
	case "continue":
		return CascadeContinue, nil
	default:
		return cascadeUnset, fmt.Errorf("%w: %q", ErrInvalidCascade, s)
	}
}

func (c Cascade) valid() bool {
	return c == CascadeStop || c == CascadeContinue
}

// RuleChain is the ordered list of rules for one field.
type RuleChain[T, V any] struct {
	field    string
	selector func(*T) V
	rules    []Rule[T, V]
	cascade  Cascade
}

// Cascade overrides the validator default for this chain. It has no effect on
// validators already built.
func (c *RuleChain[T, V]) Cascade(mode Cascade) *RuleChain[T, V] {
	c.cascade = mode
	return c
}

func (c *RuleChain[T, V]) Field() string {
	return c.field
}

// Run evaluates the chain's rules in declaration order. The field value is
// selected once per run.
func (c *RuleChain[T, V]) Run(rec *T, now time.Time) Failures {
	value := c.selector(rec)

	var failures Failures
	for _, r := range c.rules {
		out := r.Evaluate(rec, value, now)
		if out.Passed {
			continue
		}
		failures = append(failures, Failure{
			Field:   c.field,
			Kind:    r.kind,
			Message: out.Message,
			State:   out.State,
		})
		if c.cascade != CascadeContinue {
			break
		}
	}
	return failures
}

// fieldChain is what a built Validator holds: a frozen chain with its value
// type erased.
type fieldChain[T any] interface {
	Field() string
	Run(rec *T, now time.Time) Failures
}

type registration[T any] interface {
	Field() string
	compile(defaultCascade Cascade) (fieldChain[T], []error)
}

// compile checks the chain and returns an independent copy with its cascade
// resolved.
func (c *RuleChain[T, V]) compile(defaultCascade Cascade) (fieldChain[T], []error) {
	var errs []error
	label := c.field
	if label == "" {
		errs = append(errs, ErrEmptyField)
		label = "<unnamed>"
	}
	if c.selector == nil {
		errs = append(errs, fmt.Errorf("field %q: %w", label, ErrNilSelector))
	}
	if len(c.rules) == 0 {
		errs = append(errs, fmt.Errorf("field %q: %w", label, ErrNoRules))
	}
	for i, r := range c.rules {
		if err := r.validate(); err != nil {
			errs = append(errs, fmt.Errorf("field %q rule %d (%s): %w", label, i, r.kind, err))
		}
	}

	cascade := c.cascade
	if cascade == cascadeUnset {
		cascade = defaultCascade
	}
	if !cascade.valid() {
		errs = append(errs, fmt.Errorf("field %q: %w: %s", label, ErrInvalidCascade, cascade))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &RuleChain[T, V]{
		field:    c.field,
		selector: c.selector,
		rules:    slices.Clone(c.rules),
		cascade:  cascade,
	}, nil
}
