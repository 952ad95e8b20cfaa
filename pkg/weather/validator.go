package weather

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// NewValidator builds the forecast validator for cfg. Chains are registered
// as date, temperature_c, summary and, when cfg.RequireLocation is set,
// location_id. Every failure carries the validated *Forecast as its State.
//
// Invalid bounds in cfg, such as a minimum temperature above the maximum, are
// returned as errors wrapping validator.ErrInvalidRegistration.
func NewValidator(cfg Config, opts ...validator.Option) (*validator.Validator[Forecast], error) {
	b := validator.NewBuilder[Forecast]()

	validator.RuleFor(b, FieldDate, selectDate,
		validator.FutureDate[Forecast]().
			WithMessage("The date must be in the future").
			WithState(validator.Record[Forecast]),
	)

	validator.RuleFor(b, FieldTemperatureC, selectTemperatureC,
		validator.Range[Forecast](cfg.MinTemperatureC, cfg.MaxTemperatureC).
			WithMessage(fmt.Sprintf("Temperature must be between %d and %d degrees", cfg.MinTemperatureC, cfg.MaxTemperatureC)).
			WithState(validator.Record[Forecast]),
	)

	validator.RuleFor(b, FieldSummary, selectSummary,
		validator.NotNull[Forecast, string]().
			WithMessage(fmt.Sprintf("You must enter a summary of at least %d characters", cfg.SummaryMinLength)).
			WithState(validator.Record[Forecast]),
		validator.MinLength[Forecast](cfg.SummaryMinLength).
			WithMessage(fmt.Sprintf("Summary must have at least %d characters", cfg.SummaryMinLength)).
			WithState(validator.Record[Forecast]),
	)

	if cfg.RequireLocation {
		validator.RuleFor(b, FieldLocationID, selectLocationID,
			validator.NotEmpty[Forecast, uuid.UUID]().
				WithMessage("A location must be selected").
				WithState(validator.Record[Forecast]),
		)
	}

	return b.Build(opts...)
}

// NewValidatorFromEnv builds the validator from FORECAST_* environment
// variables. loadOpts are passed to LoadConfig, e.g. config.WithEnvFiles. When
// FORECAST_LOG_ENV is set the validator logs to stderr through Config.Logger;
// a WithLogger in opts takes precedence.
func NewValidatorFromEnv(loadOpts []config.Option, opts ...validator.Option) (*validator.Validator[Forecast], error) {
	cfg, err := LoadConfig(loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load forecast config: %w", err)
	}
	opts = append([]validator.Option{validator.WithLogger(cfg.Logger(os.Stderr))}, opts...)
	return NewValidator(cfg, opts...)
}

func selectDate(f *Forecast) time.Time { return f.Date }
func selectTemperatureC(f *Forecast) int { return f.TemperatureC }
func selectSummary(f *Forecast) *string { return f.Summary }
func selectLocationID(f *Forecast) uuid.UUID { return f.LocationID }
