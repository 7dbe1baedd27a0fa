// Package config loads environment variables into structs, caching the result per type.
//
// Parsing is done by caarlos0/env; a .env file in the working directory is loaded
// once, on the first call, if it exists.
//
// The module's own settings use it through asynchandler.ConfigFromEnv:
//
//	// ASYNC_HANDLER_ADVISORY=false       silence the "no error callback" warning
//	// ASYNC_HANDLER_LOG_FAILURES=true    log each failed invocation at debug level
//	// ASYNC_HANDLER_NAME=billing         component name for logs and metrics
//	cfg, err := asynchandler.ConfigFromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	charge := asynchandler.Handle(chargeCard, onChargeError, asynchandler.WithConfig(cfg))
//
// Load and MustLoad work with any struct tagged for caarlos0/env:
//
//	import "github.com/dmitrymomot/asynchandler/core/config"
//
//	var cfg asynchandler.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure (useful at startup)
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// The first successful Load of a type is cached; later calls for that type return
// the cached value even if the environment changed in between. Failed loads are not
// cached. Different types are cached independently.
//
// Reset drops every cached value, so the next Load reads the environment again.
// Tests that set variables with t.Setenv call it before and after loading:
//
//	func TestConfig(t *testing.T) {
//		config.Reset()
//		t.Cleanup(config.Reset)
//		t.Setenv("ASYNC_HANDLER_NAME", "test")
//		// ...
//	}
package config
