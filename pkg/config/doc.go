// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for optional .env files and
// `github.com/caarlos0/env/v11` for parsing the environment into a struct
// annotated with `env` / `envDefault` tags:
//
//	type Settings struct {
//	    Env      string `env:"SIGNUP_ENV" envDefault:"development"`
//	    LogLevel string `env:"SIGNUP_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, "./signup.env"); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Values already present in the process environment win over .env files.
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct
//   - ErrLoadingEnvFile – an explicitly named .env file could not be read
//   - ErrNilPointer     – nil pointer passed to Load
package config
