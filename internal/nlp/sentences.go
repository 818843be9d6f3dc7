package nlp

import (
	"strings"
	"unicode/utf8"
)

// abbreviations never end a sentence even when followed by whitespace.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {}, "st": {},
	"vs": {}, "etc": {}, "inc": {}, "ltd": {}, "co": {}, "corp": {}, "dept": {},
	"approx": {}, "no": {}, "fig": {}, "jan": {}, "feb": {}, "mar": {}, "apr": {},
	"jun": {}, "jul": {}, "aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

// SplitSentences splits text on sentence-final '.', '?' or '!' followed by
// whitespace. Words are rejoined with single spaces.
func SplitSentences(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		out  []string
		curr []string
	)
	for i, w := range words {
		curr = append(curr, w)
		if i == len(words)-1 || !endsSentence(w) {
			continue
		}
		out = append(out, strings.Join(curr, " "))
		curr = curr[:0]
	}
	if len(curr) > 0 {
		out = append(out, strings.Join(curr, " "))
	}
	return out
}

func endsSentence(word string) bool {
	w := strings.TrimRight(word, `"')]}»”’`)
	if w == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(w)
	switch last {
	case '?', '!':
		return true
	case '.':
	default:
		return false
	}

	stem := strings.TrimRight(w, ".")
	if stem == "" || strings.HasSuffix(w, "..") {
		return false
	}
	// Initials ("r.") and dotted abbreviations ("e.g.", "u.s.").
	if utf8.RuneCountInString(stem) == 1 || strings.Contains(stem, ".") {
		return false
	}
	_, abbr := abbreviations[strings.ToLower(stem)]
	return !abbr
}
