package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is written by toast timers while the test reads it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SIGNUP_ENV", "development")
	t.Setenv("SIGNUP_LOG_LEVEL", "error")
	t.Setenv("SIGNUP_LOG_FORMAT", "text")
	t.Setenv("SIGNUP_LANG", "")
	t.Setenv("SIGNUP_TOAST_DELAY", "10ms")
	t.Setenv("SIGNUP_TOAST_RESCHEDULE", "false")
	t.Setenv("LANG", "")
	t.Setenv("LC_ALL", "")
}

func validArgs() []string {
	return []string{
		"--no-input",
		"--name", "Ann Lee",
		"--email", "ann@example.com",
		"--phone", "1234567890",
		"--date-of-birth", "1990-04-12",
		"--password", "Strong1!",
		"--confirm-password", "Strong1!",
		"--accept-terms",
	}
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	out := &syncBuffer{}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Accepted(t *testing.T) {
	setTestEnv(t)

	out, err := runCmd(t, validArgs()...)
	require.NoError(t, err)
	assert.Contains(t, out, "Success")
	assert.Contains(t, out, "Registration Successful!")
}

func TestRootCmd_Rejected(t *testing.T) {
	setTestEnv(t)

	args := append(validArgs(), "--phone", "12345", "--website", "ftp:/bad")
	out, err := runCmd(t, args...)
	require.ErrorIs(t, err, errSubmissionRejected)

	assert.Contains(t, out, "Phone: Phone must be 10 digits")
	assert.Contains(t, out, "Website: Please include a valid URL (http/https)")
	assert.Contains(t, out, "Full name")
	assert.NotContains(t, out, "Registration Successful!")
}

func TestRootCmd_TermsRequired(t *testing.T) {
	setTestEnv(t)

	args := validArgs()
	args = args[:len(args)-1]
	out, err := runCmd(t, args...)
	require.ErrorIs(t, err, errSubmissionRejected)
	assert.Contains(t, out, "You must agree to the terms")
}

func TestRootCmd_Language(t *testing.T) {
	setTestEnv(t)

	args := append(validArgs(), "--lang", "es-MX", "--phone", "1")
	out, err := runCmd(t, args...)
	require.Error(t, err)
	assert.Contains(t, out, "Teléfono: El teléfono debe tener 10 dígitos")
}

func TestRootCmd_EnvFile(t *testing.T) {
	setTestEnv(t)
	os.Unsetenv("SIGNUP_LANG")

	path := filepath.Join(t.TempDir(), "signup.env")
	require.NoError(t, os.WriteFile(path, []byte("SIGNUP_LANG=es\n"), 0o600))

	args := append(validArgs(), "--env-file", path, "--email", "nope")
	out, err := runCmd(t, args...)
	require.Error(t, err)
	assert.Contains(t, out, "Introduce un correo electrónico válido")
}

func TestRootCmd_LogsSubmission(t *testing.T) {
	setTestEnv(t)
	t.Setenv("SIGNUP_LOG_LEVEL", "info")
	t.Setenv("SIGNUP_LOG_FORMAT", "json")
	out, err := runCmd(t, validArgs()...)
	require.NoError(t, err)

	assert.Contains(t, out, `"msg":"notification delivered"`)
	assert.Contains(t, out, `"msg":"submission accepted"`)
	assert.Contains(t, out, `"submission_id":"`)
	assert.Contains(t, out, `"service":"signup"`)
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	setTestEnv(t)
	t.Setenv("SIGNUP_LOG_LEVEL", "loud")

	_, err := runCmd(t, validArgs()...)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestPosixLocale(t *testing.T) {
	assert.Equal(t, "es-MX", posixLocale("es_MX.UTF-8"))
	assert.Equal(t, "de-DE", posixLocale("de_DE@euro"))
	assert.Equal(t, "en", posixLocale("en"))
	assert.Equal(t, "", posixLocale("C.UTF-8"))
	assert.Equal(t, "", posixLocale("POSIX"))
	assert.Equal(t, "", posixLocale(""))
}

func TestPreferredLanguages(t *testing.T) {
	setTestEnv(t)
	t.Setenv("LANG", "es_ES.UTF-8")

	cfg := Config{Lang: "en"}
	assert.Equal(t, []string{"fr", "en", "es-ES"}, cfg.preferredLanguages("fr"))
	assert.Equal(t, []string{"en", "es-ES"}, cfg.preferredLanguages(""))
}
