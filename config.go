package asynchandler

import "github.com/dmitrymomot/asynchandler/core/config"

// Config controls the diagnostics emitted by Handle and Wrapped functions.
// Designed for environment-based configuration via core/config.
type Config struct {
	// Advisory enables the warning logged when Handle is called without an error callback.
	Advisory bool `env:"ASYNC_HANDLER_ADVISORY" envDefault:"true"`
	// LogFailures logs every failed invocation at debug level.
	LogFailures bool `env:"ASYNC_HANDLER_LOG_FAILURES" envDefault:"false"`
	// Name is the default component name attached to logs and observed invocations.
	Name string `env:"ASYNC_HANDLER_NAME" envDefault:"asynchandler"`
}

// DefaultConfig returns the configuration used when no WithConfig option is given.
func DefaultConfig() Config {
	return Config{
		Advisory:    true,
		LogFailures: false,
		Name:        "asynchandler",
	}
}

// ConfigFromEnv loads Config from the environment (and a .env file, if present).
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
