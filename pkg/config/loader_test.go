package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/config"
)

type testSettings struct {
	Lang       string        `env:"CFGTEST_LANG" envDefault:"en"`
	ToastDelay time.Duration `env:"CFGTEST_TOAST_DELAY" envDefault:"4s"`
	Reschedule bool          `env:"CFGTEST_RESCHEDULE" envDefault:"false"`
}

type requiredSettings struct {
	Required string `env:"CFGTEST_REQUIRED,required"`
}

// unsetEnv clears a variable for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "CFGTEST_LANG", "CFGTEST_TOAST_DELAY", "CFGTEST_RESCHEDULE")

	var cfg testSettings
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 4*time.Second, cfg.ToastDelay)
	assert.False(t, cfg.Reschedule)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CFGTEST_LANG", "es")
	t.Setenv("CFGTEST_TOAST_DELAY", "250ms")
	t.Setenv("CFGTEST_RESCHEDULE", "true")

	var cfg testSettings
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "es", cfg.Lang)
	assert.Equal(t, 250*time.Millisecond, cfg.ToastDelay)
	assert.True(t, cfg.Reschedule)
}

func TestLoad_FromEnvFile(t *testing.T) {
	unsetEnv(t, "CFGTEST_LANG", "CFGTEST_TOAST_DELAY", "CFGTEST_RESCHEDULE")
	path := writeEnvFile(t, "CFGTEST_LANG=es\nCFGTEST_TOAST_DELAY=1s\n")

	var cfg testSettings
	require.NoError(t, config.Load(&cfg, path))

	assert.Equal(t, "es", cfg.Lang)
	assert.Equal(t, time.Second, cfg.ToastDelay)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	unsetEnv(t, "CFGTEST_TOAST_DELAY", "CFGTEST_RESCHEDULE")
	t.Setenv("CFGTEST_LANG", "de")
	path := writeEnvFile(t, "CFGTEST_LANG=es\n")

	var cfg testSettings
	require.NoError(t, config.Load(&cfg, path))
	assert.Equal(t, "de", cfg.Lang)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *testSettings
		err := config.Load(cfg)
		assert.True(t, errors.Is(err, config.ErrNilPointer))
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg testSettings
		err := config.Load(&cfg, filepath.Join(t.TempDir(), "absent.env"))
		assert.True(t, errors.Is(err, config.ErrLoadingEnvFile))
	})

	t.Run("missing required value", func(t *testing.T) {
		unsetEnv(t, "CFGTEST_REQUIRED")
		var cfg requiredSettings
		err := config.Load(&cfg)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("CFGTEST_TOAST_DELAY", "soon")
		var cfg testSettings
		err := config.Load(&cfg)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})
}

func TestLoad_Required(t *testing.T) {
	unsetEnv(t, "CFGTEST_REQUIRED")
	var cfg requiredSettings
	err := config.Load(&cfg)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))

	t.Setenv("CFGTEST_REQUIRED", "yes")
	assert.NoError(t, config.Load(&cfg))
}
