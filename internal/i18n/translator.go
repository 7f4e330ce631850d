package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locale/*.jsonc
var embedded embed.FS

// catalogExt is the file extension of message catalogs.
const catalogExt = ".jsonc"

// Fallback is the locale used when the requested one has no catalog.
var Fallback = language.English

// Translator renders user-facing messages in one locale.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New loads the embedded catalogs and returns a Translator for the locale
// closest to the requested one.
func New(locale string) (*Translator, error) {
	return NewFromFS(embedded, "locale", locale)
}

// NewFromFS loads every *.jsonc catalog in dir of fsys and returns a
// Translator for the closest match to locale. A catalog for Fallback
// must be present.
func NewFromFS(fsys fs.FS, dir, locale string) (*Translator, error) {
	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	builder, tags, err := loadCatalogs(fsys, dir)
	if err != nil {
		return nil, err
	}

	// The matcher prefers its first entry when nothing is close, so the
	// fallback goes first.
	supported := []language.Tag{Fallback}
	for _, tag := range tags {
		if tag.String() != Fallback.String() {
			supported = append(supported, tag)
		}
	}
	if len(supported) != len(tags) {
		return nil, fmt.Errorf("no %s catalog in %s", Fallback, dir)
	}

	_, index, _ := language.NewMatcher(supported).Match(requested)
	tag := supported[index]

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// T translates msg and formats it with args.
func (t *Translator) T(msg string, args ...any) string {
	return t.printer.Sprintf(msg, args...)
}

// Locale returns the tag of the catalog in use.
func (t *Translator) Locale() language.Tag {
	return t.tag
}

// loadCatalogs reads all catalogs in dir into one builder and returns the
// tags found, sorted for deterministic matching.
func loadCatalogs(fsys fs.FS, dir string) (*catalog.Builder, []language.Tag, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog directory %s: %w", dir, err)
	}

	builder := catalog.NewBuilder(catalog.Fallback(Fallback))
	var tags []language.Tag

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, catalogExt) {
			continue
		}

		tag, err := language.Parse(strings.TrimSuffix(name, catalogExt))
		if err != nil {
			return nil, nil, fmt.Errorf("catalog %s: file name is not a locale: %w", name, err)
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
		}

		messages, err := ParseCatalog(data)
		if err != nil {
			return nil, nil, fmt.Errorf("catalog %s: %w", name, err)
		}

		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, nil, fmt.Errorf("catalog %s: message %q: %w", name, key, err)
			}
		}
		tags = append(tags, tag)
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].String() < tags[j].String()
	})
	return builder, tags, nil
}

// ParseCatalog decodes one JSONC catalog into a source→translation map.
func ParseCatalog(data []byte) (map[string]string, error) {
	// Strip comments and trailing commas before handing off to encoding/json.
	cleanJSON := jsonc.ToJSON(data)

	var messages map[string]string
	if err := json.Unmarshal(cleanJSON, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return messages, nil
}
