// Package validator provides a declarative, type-safe engine for validating
// records field by field.
//
// A Validator is assembled once from rule chains, one per field, and then
// reused for any number of records. Each chain selects a field value from the
// record and runs an ordered list of rules against it. A failed rule is a
// normal outcome, reported as a Failure in the returned Result; it is never an
// error and never a panic.
//
// # Architecture
//
// Core building blocks:
//   - Rule[T, V]       – one check over a field value, with a message and an optional state producer
//   - RuleChain[T, V]  – ordered rules for one field plus its cascade mode
//   - Builder[T]       – registration surface; Build freezes it into a Validator
//   - Validator[T]     – immutable set of chains, safe for concurrent use
//   - Result           – IsValid plus ordered Failures
//
// Rule constructors are grouped by family: not-null, not-empty and predicate
// rules in rule.go, length rules in string_rules.go, numeric comparisons in
// numeric_rules.go and date comparisons in date_rules.go.
//
// By default a chain stops at the first failing rule, so a field reports at most
// one message. Switch a chain to CascadeContinue to collect every failure for
// that field instead. Chains never affect each other: a failing field does not
// prevent the next one from being evaluated.
//
// # Usage
//
//	b := validator.NewBuilder[Forecast]()
//	validator.RuleFor(b, "summary", func(f *Forecast) *string { return f.Summary },
//	    validator.NotNull[Forecast, string]().WithMessage("summary is required"),
//	    validator.MinLength[Forecast](3).WithState(validator.Record[Forecast]),
//	)
//	validator.RuleFor(b, "temperature_c", func(f *Forecast) int { return f.TemperatureC },
//	    validator.Range[Forecast](-40, 60),
//	)
//
//	v, err := b.Build(validator.WithClock(clock.Now))
//	if err != nil {
//	    // malformed registration, e.g. a range with min > max
//	}
//
//	res := v.Validate(&forecast)
//	for _, f := range res.Failures() {
//	    fmt.Println(f.Field, f.Message)
//	}
//
// # Time
//
// Time-relative rules such as FutureDate never read the clock themselves. The
// validation moment comes from the clock passed with WithClock (time.Now by
// default) or directly through ValidateAt, which keeps tests deterministic.
//
// # Logging
//
// With WithLogger set, each failure and each completed validation produce a
// debug record. ValidateContext passes its context to the logger so handlers
// can add request-scoped attributes; rules never see it.
//
// # Failure state
//
// A state producer runs only when its rule fails. The Record producer attaches
// the very pointer passed to Validate. Failures therefore observe later
// mutations of that record, and reading a failure's State while another
// goroutine writes the record is a data race owned by the caller.
//
// # Error Handling
//
// Build reports malformed registrations (empty or duplicate field names, nil
// selectors, chains without rules, a range with min > max, negative lengths,
// nil predicates) joined under ErrInvalidRegistration. Result.Err exposes the
// failures as an error for callers that prefer error returns; use
// ExtractFailures or IsValidationError to get them back.
package validator
