package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/i18n"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

func newMapTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := mapAdapter(map[string]map[string]any{
		"en": {
			"greeting": "Hello, %{name}!",
			"form": map[string]any{
				"errors": map[string]any{
					"phone": "Phone must be 10 digits",
					"email": "Please provide a valid email",
				},
			},
			"count": 3,
		},
		"es": {
			"greeting": "¡Hola, %{name}!",
			"form": map[string]any{
				"errors": map[string]any{
					"phone": "El teléfono debe tener 10 dígitos",
				},
			},
		},
	})
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("default language must exist", func(t *testing.T) {
		adapter := mapAdapter(map[string]map[string]any{"es": {"a": "b"}})
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrDefaultLangMissing)

		tr, err := i18n.NewTranslator(context.Background(), adapter, i18n.WithDefaultLanguage("es"))
		require.NoError(t, err)
		assert.Equal(t, "es", tr.DefaultLanguage())
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := mapAdapter(map[string]map[string]any{"en": {}, "": {"a": "b"}})
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguageCode)
	})

	t.Run("adapter error is returned", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := i18n.NewTranslator(context.Background(), failingAdapter{err: boom})
		assert.ErrorIs(t, err, boom)
	})
}

type mapAdapter map[string]map[string]any

func (a mapAdapter) Load(context.Context) (map[string]map[string]any, error) {
	return a, nil
}

type failingAdapter struct{ err error }

func (a failingAdapter) Load(context.Context) (map[string]map[string]any, error) {
	return nil, a.err
}

func TestTranslator_T(t *testing.T) {
	tr := newMapTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"nested key", "en", "form.errors.phone", nil, "Phone must be 10 digits"},
		{"other language", "es", "form.errors.phone", nil, "El teléfono debe tener 10 dígitos"},
		{"falls back to default language", "es", "form.errors.email", nil, "Please provide a valid email"},
		{"unknown language", "fr", "form.errors.phone", nil, "Phone must be 10 digits"},
		{"missing key returns key", "en", "form.errors.nope", nil, "form.errors.nope"},
		{"intermediate node is not a message", "en", "form.errors", nil, "form.errors"},
		{"non string leaf", "en", "count", nil, "count"},
		{"placeholder substitution", "es", "greeting", []string{"name", "Ana"}, "¡Hola, Ana!"},
		{"unknown placeholder kept", "en", "greeting", []string{"other", "x"}, "Hello, %{name}!"},
		{"odd args ignored", "en", "greeting", []string{"name"}, "Hello, %{name}!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_Td(t *testing.T) {
	tr := newMapTranslator(t)

	assert.Equal(t, "Phone must be 10 digits", tr.Td("en", "form.errors.phone", "fallback"))
	assert.Equal(t, "fallback", tr.Td("en", "form.errors.nope", "fallback"))
	assert.Equal(t, "Hi Ann", tr.Td("es", "nope", "Hi %{name}", "name", "Ann"))
}

func TestTranslator_Has(t *testing.T) {
	tr := newMapTranslator(t)

	assert.True(t, tr.Has("en", "form.errors.email"))
	assert.False(t, tr.Has("es", "form.errors.email"), "Has does not fall back")
	assert.False(t, tr.Has("fr", "greeting"))
}

func TestTranslator_Tc(t *testing.T) {
	tr := newMapTranslator(t)

	ctx := i18n.SetLocale(context.Background(), "es")
	assert.Equal(t, "El teléfono debe tener 10 dígitos", tr.Tc(ctx, "form.errors.phone"))
	assert.Equal(t, "Phone must be 10 digits", tr.Tc(context.Background(), "form.errors.phone"))
}

func TestTranslator_SupportedLanguagesAndMatch(t *testing.T) {
	tr := newMapTranslator(t)

	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
	assert.Equal(t, "es", tr.Match("es-MX"))
	assert.Equal(t, "en", tr.Match("fr"))
	assert.Equal(t, "en", tr.Match())
}

func TestTranslator_LogsMissing(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := newMapTranslator(t, i18n.WithLogger(logger.New(
		logger.WithOutput(buf),
		logger.WithEnvironment("development", ""),
	)))

	tr.T("es", "form.errors.email")
	tr.T("en", "nope")

	out := buf.String()
	assert.Contains(t, out, "translation missing, using default language")
	assert.Contains(t, out, "key=nope")
}
