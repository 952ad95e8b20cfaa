package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind identifies the comparison a rule performs.
type Kind string

const (
	KindNotNull     Kind = "not_null"
	KindNotEmpty    Kind = "not_empty"
	KindMinLength   Kind = "min_length"
	KindRange       Kind = "range"
	KindGreaterThan Kind = "greater_than"
	KindAfter       Kind = "after"
	KindPredicate   Kind = "predicate"
)

func (k Kind) String() string {
	return string(k)
}

// Failure is a single failed rule for one field.
//
// State holds whatever the rule's state producer returned. When the producer is
// Record, State is the same *T the caller passed to Validate, not a copy: if the
// caller mutates that record while another goroutine reads the failure, the
// access is a data race the engine cannot guard against.
type Failure struct {
	Field   string
	Kind    Kind
	Message string
	State   any
}

// Failures is an ordered collection of failures. It implements error so a
// failed validation can be returned through ordinary error paths.
type Failures []Failure

func (fs Failures) Error() string {
	if len(fs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fs))
	for _, f := range fs {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fs Failures) Has(field string) bool {
	for _, f := range fs {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, in evaluation order.
func (fs Failures) Get(field string) []string {
	var messages []string
	for _, f := range fs {
		if f.Field == field {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

func (fs Failures) ByField(field string) Failures {
	var out Failures
	for _, f := range fs {
		if f.Field == field {
			out = append(out, f)
		}
	}
	return out
}

// Fields returns the distinct failing field names in first-seen order.
func (fs Failures) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, f := range fs {
		if !seen[f.Field] {
			fields = append(fields, f.Field)
			seen[f.Field] = true
		}
	}
	return fields
}

func (fs Failures) IsEmpty() bool {
	return len(fs) == 0
}

// ExtractFailures extracts Failures from an error returned by Result.Err.
func ExtractFailures(err error) Failures {
	if err == nil {
		return nil
	}

	var failures Failures
	if errors.As(err, &failures) {
		return failures
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var failures Failures
	return errors.As(err, &failures)
}
