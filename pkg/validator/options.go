package validator

import (
	"log/slog"
	"time"
)

// Option configures a Validator at Build time.
type Option func(*options)

type options struct {
	now     func() time.Time
	logger  *slog.Logger
	cascade Cascade
}

func defaultOptions() *options {
	return &options{
		now:     time.Now,
		logger:  slog.New(slog.DiscardHandler),
		cascade: CascadeStop,
	}
}

// WithClock sets the source of the validation moment used by Validate.
// Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger enables a debug record per validation. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCascade sets the mode for chains that did not pick one explicitly.
func WithCascade(mode Cascade) Option {
	return func(o *options) {
		o.cascade = mode
	}
}
