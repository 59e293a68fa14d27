package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser turns the content of a catalog file into translations keyed by
// language code. Nested maps under a language are kept as-is and addressed
// with dotted keys.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile picks a parser by file extension; nil when none fits.
func ParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	for _, p := range []Parser{YAMLParser{}, JSONParser{}} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// YAMLParser parses YAML catalogs.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return splitLanguages(data)
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser parses JSON catalogs.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return splitLanguages(data)
}

func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrNoTranslations
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, expected a map", ErrInvalidCatalog, lang, val)
		}
		result[lang] = messages
	}
	return result, nil
}
