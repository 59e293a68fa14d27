// Package i18n translates user-facing messages, chiefly the per-field failure
// messages of the signup form.
//
// A Translator holds catalogs keyed by language code. Message keys are dotted
// paths into nested maps ("form.errors.email"). Lookups fall back from the
// requested language to the default language and finally to a caller-given
// default (Td) or the key itself (T). Named placeholders in the form
// %{name} are substituted from key/value argument pairs.
//
// Catalogs are loaded by a TranslationAdapter. FSAdapter reads YAML or JSON
// files from any fs.FS; the package embeds English and Spanish catalogs,
// available through NewBuiltinTranslator:
//
//	tr, err := i18n.NewBuiltinTranslator(ctx)
//	if err != nil {
//		return err
//	}
//	lang := tr.Match(os.Getenv("LANG"), "es-MX")
//	msg := tr.T(lang, "form.errors.phone")
//
// MatchLanguage negotiates between preferred and supported languages with
// golang.org/x/text/language, so regional tags such as "es-MX" resolve to a
// base catalog ("es").
//
// SetLocale and GetLocale carry the active language through a context.Context.
package i18n
