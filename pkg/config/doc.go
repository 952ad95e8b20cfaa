// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct parsing:
//
//	type Config struct {
//	    MinTemperatureC int `env:"MIN_TEMPERATURE_C" envDefault:"-40"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("FORECAST_"))
//
// The default ./.env file is loaded once per process if present. Additional
// files can be requested per call with WithEnvFiles; those must exist.
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
