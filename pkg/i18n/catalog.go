package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var builtinCatalogs embed.FS

// BuiltinAdapter serves the catalogs shipped with the package (en, es).
func BuiltinAdapter() *FSAdapter {
	return NewFSAdapter(builtinCatalogs, "locales/*.yaml")
}

// NewBuiltinTranslator creates a translator over the shipped catalogs.
func NewBuiltinTranslator(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, BuiltinAdapter(), options...)
}
