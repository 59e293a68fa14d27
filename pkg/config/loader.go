package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads one or more .env files into the process environment.
// Variables that are already set are left untouched. Without arguments the
// default .env in the working directory is loaded if it exists.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v according to its env tags,
// after loading the given .env files (or the default .env when none are given).
//
// Example:
//
//	type Settings struct {
//		Lang       string        `env:"SIGNUP_LANG" envDefault:"en"`
//		ToastDelay time.Duration `env:"SIGNUP_TOAST_DELAY" envDefault:"4s"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := LoadEnv(files...); err != nil {
		return err
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
