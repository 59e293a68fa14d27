package i18n

import (
	"context"
)

type localeContextKey struct{}

// SetLocale stores the active language in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the language stored by SetLocale, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return DefaultLanguage
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// LocaleFromContext is GetLocale without the fallback; ok is false when no
// language was stored.
func LocaleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale, locale != ""
}
