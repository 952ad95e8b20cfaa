package ruleset

import "errors"

var (
	// Parsing
	ErrFailedToParseYAML = errors.New("failed to parse YAML rule document")
	ErrEmptyDocument     = errors.New("rule document declares no fields")

	// Compilation
	ErrUnknownField     = errors.New("field has no binding")
	ErrUnknownPredicate = errors.New("predicate is not registered")
	ErrUnsupportedKind  = errors.New("rule kind is not supported for this field type")
	ErrMissingParam     = errors.New("rule parameter is missing")
	ErrInvalidParam     = errors.New("rule parameter is invalid")
	ErrInvalidState     = errors.New("unknown state policy")
)
