package i18n

import "errors"

var (
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrNoTranslations    = errors.New("catalog contains no translations")
	ErrInvalidCatalog    = errors.New("invalid catalog structure")

	ErrNilAdapter         = errors.New("translation adapter is nil")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrUnsupportedFile    = errors.New("no parser for translation file")
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrEmptyLanguageCode  = errors.New("empty language code in catalog")
	ErrDefaultLangMissing = errors.New("default language has no translations")
)
