package validator

import "errors"

// Registration errors. Build joins every problem it finds under
// ErrInvalidRegistration, so callers can match either the umbrella error or a
// specific cause with errors.Is.
var (
	// ErrInvalidRegistration is returned by Build when any chain or rule is malformed.
	ErrInvalidRegistration = errors.New("invalid validator registration")

	// ErrEmptyField is returned when a chain is registered without a field name.
	ErrEmptyField = errors.New("field name is required")

	// ErrDuplicateField is returned when two chains share a field name.
	ErrDuplicateField = errors.New("field is already registered")

	// ErrNilSelector is returned when a chain has no field selector.
	ErrNilSelector = errors.New("field selector is nil")

	// ErrNoRules is returned when a chain declares no rules.
	ErrNoRules = errors.New("field has no rules")

	// ErrInvalidRule is returned for a zero-value Rule that was never built by a constructor.
	ErrInvalidRule = errors.New("rule has no check")

	// ErrInvalidRange is returned when a range rule has min greater than max.
	ErrInvalidRange = errors.New("range minimum is greater than maximum")

	// ErrInvalidLength is returned when a length rule has a negative bound.
	ErrInvalidLength = errors.New("length bound must not be negative")

	// ErrNilPredicate is returned when a predicate rule is built from a nil function.
	ErrNilPredicate = errors.New("predicate is nil")

	// ErrInvalidCascade is returned for an unknown cascade mode.
	ErrInvalidCascade = errors.New("invalid cascade mode")
)

// ErrUnknownField is returned by ValidateField for a field with no registered chain.
var ErrUnknownField = errors.New("unknown field")
