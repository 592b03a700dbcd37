package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the bundled languages. The first entry is the fallback.
var Supported = []language.Tag{language.English, language.Japanese}

var (
	matcher = language.NewMatcher(Supported)
	known   = make(map[string]struct{}, len(entries))
	cat     = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		known[e.key] = struct{}{}
		if err := b.SetString(language.English, e.key, e.key); err != nil {
			panic(fmt.Sprintf("i18n: %s: %v", e.key, err))
		}
		if err := b.SetString(language.Japanese, e.key, e.ja); err != nil {
			panic(fmt.Sprintf("i18n: %s: %v", e.key, err))
		}
	}
	return b
}

// Match picks the best bundled language for the given preferences. Each
// preference may be a single tag ("ja") or a full Accept-Language header
// value ("ja-JP,ja;q=0.9,en;q=0.8"). Earlier preferences win. Unparseable
// values are skipped.
func Match(prefs ...string) language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return Supported[0]
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[index]
}

// Translator formats messages in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for tag. Unsupported tags fall back to English.
func New(tag language.Tag) *Translator {
	tag = Match(tag.String())
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Default returns the English translator.
func Default() *Translator {
	return New(Supported[0])
}

// Tag returns the language of t.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// T returns the message for key, formatted with args. Keys missing from
// the catalog are returned verbatim and args are ignored, so extension
// names pass through untouched even when they contain '%'.
func (t *Translator) T(key string, args ...any) string {
	if _, ok := known[key]; !ok {
		return key
	}
	if t == nil {
		return fmt.Sprintf(key, args...)
	}
	return t.printer.Sprintf(key, args...)
}

// Has reports whether key is in the catalog.
func Has(key string) bool {
	_, ok := known[key]
	return ok
}
