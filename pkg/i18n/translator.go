package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// DefaultLanguage is used when no language is configured or detected.
const DefaultLanguage = "en"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one has no
// translation for a key.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger sets the logger. Missing translations are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// Translator resolves dotted message keys for a language.
type Translator struct {
	translations map[string]map[string]any
	defaultLang  string
	logger       *slog.Logger
	mu           sync.RWMutex
}

// NewTranslator loads translations through adapter. It fails when the default
// language has no catalog.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: nil catalog for %q", ErrInvalidCatalog, lang)
		}
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLangMissing, t.defaultLang)
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.supportedLanguages()))
	return t, nil
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the language codes with a catalog, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Has reports whether lang itself defines key; the default language is not consulted.
func (t *Translator) Has(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, falling back to the default language and then
// to the key itself. args are key/value pairs substituted into %{key}
// placeholders.
//
//	// "greeting": "Hello, %{name}!"
//	t.T("en", "greeting", "name", "Ann") // "Hello, Ann!"
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Td(lang, key, key, args...)
}

// Td is T with an explicit fallback instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if msg, ok := t.lookup(lang, key); ok {
		return substitute(msg, args)
	}
	if lang != t.defaultLang {
		if msg, ok := t.lookup(t.defaultLang, key); ok {
			t.logger.Debug("translation missing, using default language",
				logger.Lang(lang), slog.String("key", key))
			return substitute(msg, args)
		}
	}

	t.logger.Debug("translation missing", logger.Lang(lang), slog.String("key", key))
	return substitute(defaultValue, args)
}

// Tc translates using the language stored in ctx by SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Match negotiates the best supported language for the given preferences
// (language tags or Accept-Language style lists).
func (t *Translator) Match(preferred ...string) string {
	t.mu.RLock()
	supported := t.supportedLanguages()
	t.mu.RUnlock()
	return MatchLanguage(supported, t.defaultLang, preferred...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	messages, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	current := messages
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			switch v := val.(type) {
			case string:
				return v, true
			case fmt.Stringer:
				return v.String(), true
			default:
				return "", false
			}
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown names are left in place.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
