package nlp

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower applies Unicode full lowercase mapping to s.
func Lower(s string) string {
	// A Caser keeps state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(s)
}

// IsAlnum reports whether tok is non-empty and made only of letters and numbers.
func IsAlnum(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// Normalizer turns raw text into the token stream used for skill matching.
type Normalizer struct {
	tokenizer Tokenizer
	stopwords StopwordSet
}

// NewNormalizer returns a Normalizer using tok for segmentation and
// dropping every token found in stop.
func NewNormalizer(tok Tokenizer, stop StopwordSet) *Normalizer {
	return &Normalizer{tokenizer: tok, stopwords: stop}
}

// Tokens lowercases text, tokenizes it, and keeps only alphanumeric tokens
// that are not stopwords. Order is preserved.
func (n *Normalizer) Tokens(text string) []string {
	if text == "" {
		return []string{}
	}
	raw := n.tokenizer.Tokenize(Lower(text))
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if n.stopwords.Contains(tok) || !IsAlnum(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
