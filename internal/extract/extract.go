// Package extract finds catalog skills in free-form text.
package extract

import (
	"fmt"
	"sort"

	"github.com/kamusis/skillscan/internal/catalog"
	"github.com/kamusis/skillscan/internal/nlp"
)

// StopwordLanguage is the stopword list used by NewDefault.
const StopwordLanguage = "english"

// Extractor matches text against a skill catalog. It holds only read-only
// state and is safe for concurrent use.
type Extractor struct {
	catalog    *catalog.Catalog
	normalizer *nlp.Normalizer
}

// New returns an Extractor over cat using tok for segmentation and stop for
// filtering.
func New(cat *catalog.Catalog, tok nlp.Tokenizer, stop nlp.StopwordSet) *Extractor {
	return &Extractor{
		catalog:    cat,
		normalizer: nlp.NewNormalizer(tok, stop),
	}
}

// NewDefault wires the embedded catalog, the Treebank tokenizer and the
// English stopword list.
func NewDefault() (*Extractor, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("cannot initialize skill extractor: %w", err)
	}
	stop, err := nlp.Stopwords(StopwordLanguage)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize skill extractor: %w", err)
	}
	return New(cat, nlp.TreebankTokenizer{}, stop), nil
}

// Catalog returns the catalog the extractor matches against.
func (e *Extractor) Catalog() *catalog.Catalog { return e.catalog }

// Tokens returns the normalized token stream for text.
func (e *Extractor) Tokens(text string) []string {
	return e.normalizer.Tokens(text)
}

// Extract returns the distinct catalog skills found in text, sorted.
// The result is never nil.
func (e *Extractor) Extract(text string) []string {
	found := Match(e.normalizer.Tokens(text), e.catalog)
	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
