package nlp

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

//go:embed stopwords/*.txt
var stopwordFiles embed.FS

// StopwordSet is an immutable set of words excluded from matching.
type StopwordSet map[string]struct{}

// Contains reports whether w is a stopword.
func (s StopwordSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of stopwords in the set.
func (s StopwordSet) Len() int { return len(s) }

// languageFiles maps a base language to its embedded word list.
var languageFiles = map[language.Base]string{
	mustBase("en"): "stopwords/english.txt",
}

// languageNames maps NLTK-style corpus names to language tags.
var languageNames = map[string]string{
	"english": "en",
}

// Stopwords returns the stopword set for lang. lang is either a corpus name
// ("english") or a BCP 47 tag ("en", "en-US").
func Stopwords(lang string) (StopwordSet, error) {
	key := strings.ToLower(strings.TrimSpace(lang))
	if tag, ok := languageNames[key]; ok {
		key = tag
	}
	tag, err := language.Parse(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	base, _ := tag.Base()
	path, ok := languageFiles[base]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	data, err := stopwordFiles.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read stopword list %s: %w", path, err)
	}
	set, err := ParseStopwords(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stopword list %s: %w", path, err)
	}
	return set, nil
}

// ParseStopwords reads one word per line. Blank lines and lines starting
// with '#' are ignored. An input without any word is an error.
func ParseStopwords(data []byte) (StopwordSet, error) {
	set := make(StopwordSet)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		set[strings.ToLower(w)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, ErrNoStopwords
	}
	return set, nil
}

func mustBase(s string) language.Base {
	b, err := language.ParseBase(s)
	if err != nil {
		panic(err)
	}
	return b
}
