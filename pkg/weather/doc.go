// Package weather defines the Forecast record and its validators.
//
// NewValidator builds the rules in code from a Config whose bounds can be
// overridden through FORECAST_* environment variables (see LoadConfig).
// NewValidatorFromRuleset builds the same kind of validator from a YAML rule
// document; DefaultRuleset holds the embedded equivalent of the defaults.
//
// FORECAST_LOG_ENV selects a logger preset for NewValidatorFromEnv. Under the
// development preset every failure is logged, tagged with the request ID set
// by WithRequestID when the caller uses ValidateContext.
//
// The location identifier is part of the record but is only validated when
// Config.RequireLocation is set.
package weather
