package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/form"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// Config holds the signup command settings.
type Config struct {
	Env             string        `env:"SIGNUP_ENV" envDefault:"development"`
	LogLevel        string        `env:"SIGNUP_LOG_LEVEL" envDefault:"warn"`
	LogFormat       string        `env:"SIGNUP_LOG_FORMAT" envDefault:"text"`
	Lang            string        `env:"SIGNUP_LANG"`
	ToastDelay      time.Duration `env:"SIGNUP_TOAST_DELAY" envDefault:"4s"`
	ToastReschedule bool          `env:"SIGNUP_TOAST_RESCHEDULE" envDefault:"false"`
}

func loadConfig(envFile string) (Config, error) {
	var cfg Config
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	if err := config.Load(&cfg, files...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// newLogger builds the command logger. Level and format come from the config
// and override the environment preset.
func (c Config) newLogger(w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(strings.ToLower(strings.TrimSpace(c.LogFormat)))
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}

	return logger.New(
		logger.WithEnvironment(c.Env, "signup"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithContextValue("submission_id", form.SubmissionIDKey{}),
	), nil
}

// preferredLanguages lists language preferences, strongest first: the flag,
// SIGNUP_LANG, then the POSIX locale.
func (c Config) preferredLanguages(flagLang string) []string {
	var langs []string
	for _, l := range []string{flagLang, c.Lang, posixLocale(os.Getenv("LC_ALL")), posixLocale(os.Getenv("LANG"))} {
		if l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}

// posixLocale turns "es_MX.UTF-8" into "es-MX". C and POSIX map to "".
func posixLocale(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "", "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}
