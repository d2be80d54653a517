// internal/words/words.go
//
// Word list management for the scramble hosts.
//
// Responsibilities:
//   - Load the root word pool and the dictionary from files or the embedded assets.
//   - Pick a root word uniformly at random.
//   - Answer "is this a recognized word in this locale?" for the validator.
//
// Sources (Load):
//   1. Options.StartFile / Options.DictionaryFile when set (one word per line,
//      blank lines and # comments skipped).
//   2. Otherwise the embedded assets/start.txt and assets/dictionary.txt.
//
// Missing or empty root data is reported as ErrDataUnavailable so hosts can
// fall back (FallbackRoot) instead of exiting.

package words

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"lukechampine.com/frand"

	"github.com/robalobadob/wordscramble/assets"
	"github.com/robalobadob/wordscramble/internal/scramble"
)

// FallbackRoot is the root word hosts use when no list can be loaded.
const FallbackRoot = "silkworm"

// ErrDataUnavailable means a word list could not be read or was empty.
var ErrDataUnavailable = errors.New("words: data unavailable")

// Options selects where word lists come from.
type Options struct {
	StartFile      string // root word pool; embedded start.txt when empty
	DictionaryFile string // recognized words; embedded dictionary.txt when empty
	Locale         string // language of the dictionary; "en" when empty
}

// Catalog is a loaded root pool plus dictionary. It is read-only after Load
// and safe for concurrent use.
type Catalog struct {
	roots []string
	dict  map[string]struct{}
	lang  language.Base
}

// Load reads both lists. A missing dictionary is only logged (every lookup
// then fails). A missing or empty root pool returns ErrDataUnavailable
// together with a usable Catalog that has no roots, so hosts can keep
// running on a fallback root.
func Load(opts Options) (*Catalog, error) {
	locale := opts.Locale
	if locale == "" {
		locale = "en"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("words: parse locale %q: %w", locale, err)
	}
	base, _ := tag.Base()

	c := &Catalog{lang: base, dict: map[string]struct{}{}}

	dict, err := readList(opts.DictionaryFile, assets.DictionaryList)
	if err != nil {
		log.Warn().Err(err).Str("file", opts.DictionaryFile).Msg("dictionary unavailable; no words will be recognized")
	}
	for _, w := range dict {
		c.dict[w] = struct{}{}
	}

	roots, err := readList(opts.StartFile, assets.StartList)
	if err != nil {
		return c, fmt.Errorf("load start words: %w: %v", ErrDataUnavailable, err)
	}
	if len(roots) == 0 {
		return c, fmt.Errorf("load start words: %w: list is empty", ErrDataUnavailable)
	}
	c.roots = roots

	log.Debug().Int("roots", len(c.roots)).Int("dictionary", len(c.dict)).Str("locale", base.String()).Msg("word lists loaded")
	return c, nil
}

// readList reads path, or the embedded list when path is empty, and returns
// the normalized, de-duplicated words in file order.
func readList(path string, embedded func() ([]string, error)) ([]string, error) {
	var lines []string
	var err error
	if path == "" {
		lines, err = embedded()
	} else {
		lines, err = readWordFile(path)
	}
	if err != nil {
		return nil, err
	}
	out := lo.FilterMap(lines, func(l string, _ int) (string, bool) {
		w := scramble.Normalize(l)
		return w, w != ""
	})
	return lo.Uniq(out), nil
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// RandomRoot returns a uniformly random root word.
func (c *Catalog) RandomRoot() (string, error) {
	if c == nil || len(c.roots) == 0 {
		return "", ErrDataUnavailable
	}
	return c.roots[frand.Intn(len(c.roots))], nil
}

// Roots returns the root pool in file order. Callers must not modify it.
func (c *Catalog) Roots() []string {
	if c == nil {
		return nil
	}
	return c.roots
}

// IsRecognizedWord reports whether word is in the dictionary for locale.
// Locales in another language, or that do not parse, recognize nothing.
func (c *Catalog) IsRecognizedWord(word, locale string) bool {
	if c == nil {
		return false
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	if base, _ := tag.Base(); base != c.lang {
		return false
	}
	_, ok := c.dict[scramble.Normalize(word)]
	return ok
}

// Recognizer binds locale and returns a lookup for scramble.Evaluate.
func (c *Catalog) Recognizer(locale string) scramble.Recognizer {
	return func(word string) bool { return c.IsRecognizedWord(word, locale) }
}

// Stats returns counts of loaded words: (roots, dictionary).
func (c *Catalog) Stats() (rootCount int, dictionaryCount int) {
	if c == nil {
		return 0, 0
	}
	return len(c.roots), len(c.dict)
}
