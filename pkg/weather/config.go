package weather

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/logger"
)

// EnvPrefix is prepended to every Config variable name.
const EnvPrefix = "FORECAST_"

// ServiceName tags the records of loggers built by Config.Logger.
const ServiceName = "forecast"

// Config holds the tunable bounds of the forecast validator.
//
// LogEnv selects a logger preset (development, staging, production). Empty
// disables validator logging.
type Config struct {
	MinTemperatureC  int    `env:"MIN_TEMPERATURE_C" envDefault:"-40"`
	MaxTemperatureC  int    `env:"MAX_TEMPERATURE_C" envDefault:"60"`
	SummaryMinLength int    `env:"SUMMARY_MIN_LENGTH" envDefault:"3"`
	RequireLocation  bool   `env:"REQUIRE_LOCATION" envDefault:"false"`
	LogEnv           string `env:"LOG_ENV"`
}

func DefaultConfig() Config {
	return Config{
		MinTemperatureC:  -40,
		MaxTemperatureC:  60,
		SummaryMinLength: 3,
	}
}

// LoadConfig reads Config from FORECAST_* environment variables, falling back
// to the defaults for unset ones.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds the validator logger for c.LogEnv writing to w, or returns nil
// when LogEnv is empty. Records carry the request ID set by WithRequestID.
// Only the development preset logs at debug level, where validation results
// are reported.
func (c Config) Logger(w io.Writer) *slog.Logger {
	if c.LogEnv == "" {
		return nil
	}
	return logger.New(
		logger.WithEnvironment(c.LogEnv, ServiceName),
		logger.WithOutput(w),
		logger.WithContextValue("request_id", requestIDKey{}),
	)
}
