package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// Validator runs a fixed set of rule chains against records of type T.
//
// A Validator holds no per-call state and is never modified after Build, so a
// single instance can validate many records from many goroutines at once.
type Validator[T any] struct {
	chains []fieldChain[T]
	now    func() time.Time
	logger *slog.Logger
}

// Validate runs every chain against rec using the configured clock for
// time-relative rules. rec must not be nil.
func (v *Validator[T]) Validate(rec *T) Result {
	return v.validate(context.Background(), rec, v.now())
}

// ValidateContext is Validate with a context for the debug log records, so
// handlers built by logger.New can add request-scoped attributes. Rules never
// see ctx and the call never blocks on it.
func (v *Validator[T]) ValidateContext(ctx context.Context, rec *T) Result {
	return v.validate(ctx, rec, v.now())
}

// ValidateAt is Validate with an explicit validation moment.
func (v *Validator[T]) ValidateAt(rec *T, now time.Time) Result {
	return v.validate(context.Background(), rec, now)
}

// ValidateField runs only the chain registered for field.
func (v *Validator[T]) ValidateField(rec *T, field string) (Result, error) {
	mustRecord(rec)
	for _, c := range v.chains {
		if c.Field() == field {
			failures := c.Run(rec, v.now())
			v.logResult(context.Background(), failures)
			return newResult(failures), nil
		}
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func (v *Validator[T]) validate(ctx context.Context, rec *T, now time.Time) Result {
	mustRecord(rec)

	var failures Failures
	for _, c := range v.chains {
		failures = append(failures, c.Run(rec, now)...)
	}

	v.logResult(ctx, failures)
	return newResult(failures)
}

// mustRecord panics on a nil record before any selector dereferences it.
func mustRecord[T any](rec *T) {
	if rec == nil {
		panic(nilRecordMessage)
	}
}

const nilRecordMessage = "validator: nil record"

func (v *Validator[T]) logResult(ctx context.Context, failures Failures) {
	if !v.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for _, f := range failures {
		v.logger.DebugContext(ctx, "rule failed",
			logger.Component("validator"),
			logger.Field(f.Field),
			logger.RuleKind(f.Kind.String()),
		)
	}
	v.logger.DebugContext(ctx, "validation completed",
		logger.Component("validator"),
		logger.FailureCount(len(failures)),
		logger.Fields(failures.Fields()...),
	)
}

// Fields returns the registered field names in evaluation order.
func (v *Validator[T]) Fields() []string {
	fields := make([]string, 0, len(v.chains))
	for _, c := range v.chains {
		fields = append(fields, c.Field())
	}
	return fields
}
