package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// MatchLanguage picks the supported language closest to the caller's
// preferences. Each preferred entry may be a single tag ("es-MX") or an
// Accept-Language list ("es-MX,es;q=0.9,en;q=0.5"). Unparseable entries are
// skipped; with no usable match defaultLang is returned.
func MatchLanguage(supported []string, defaultLang string, preferred ...string) string {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}

	// The matcher falls back to its first tag, so the default goes first.
	candidates := []string{defaultLang}
	for _, lang := range supported {
		if lang != "" && !strings.EqualFold(lang, defaultLang) {
			candidates = append(candidates, lang)
		}
	}

	tags := make([]language.Tag, 0, len(candidates))
	names := make([]string, 0, len(candidates))
	for _, lang := range candidates {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, lang)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	var desired []language.Tag
	for _, pref := range preferred {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		desired = append(desired, parsed...)
	}
	if len(desired) == 0 {
		return defaultLang
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No || idx < 0 || idx >= len(names) {
		return defaultLang
	}
	return names[idx]
}
