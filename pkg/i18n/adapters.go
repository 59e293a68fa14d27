package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"sort"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// FSAdapter loads every catalog file matching Pattern from FS. The parser is
// chosen per file by extension. Files are merged in lexical order; a key
// defined twice for the same language takes the value from the later file.
type FSAdapter struct {
	FS      fs.FS
	Pattern string
}

// NewFSAdapter creates an adapter over fsys. An empty pattern means "*".
func NewFSAdapter(fsys fs.FS, pattern string) *FSAdapter {
	if pattern == "" {
		pattern = "*"
	}
	return &FSAdapter{FS: fsys, Pattern: pattern}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.FS == nil {
		return nil, ErrNilAdapter
	}

	files, err := fs.Glob(a.FS, a.Pattern)
	if err != nil {
		return nil, fmt.Errorf("i18n: bad catalog pattern %q: %w", a.Pattern, err)
	}
	sort.Strings(files)

	all := make(map[string]map[string]any)
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		parser := ParserForFile(name)
		if parser == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
		}

		content, err := fs.ReadFile(a.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		parsed, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", name, err)
		}

		for lang, messages := range parsed {
			if _, ok := all[lang]; !ok {
				all[lang] = make(map[string]any, len(messages))
			}
			mergeMessages(all[lang], messages)
		}
	}

	return all, nil
}

// mergeMessages copies src into dst, descending into maps present on both sides.
func mergeMessages(dst, src map[string]any) {
	for key, val := range src {
		srcMap, srcIsMap := val.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMessages(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[key] = maps.Clone(srcMap)
			continue
		}
		dst[key] = val
	}
}
