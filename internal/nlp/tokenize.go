package nlp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits text into word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// TreebankTokenizer splits text into sentences and then into Penn Treebank
// style word tokens: punctuation, brackets and quotes become their own tokens,
// clitics ("'s", "n't", ...) are split off, and hyphens, slashes and inner
// periods stay inside a word ("problem-solving", "ci/cd", "node.js").
//
// The zero value is ready to use and safe for concurrent use.
type TreebankTokenizer struct{}

// Tokenize implements Tokenizer.
func (TreebankTokenizer) Tokenize(text string) []string {
	var out []string
	for _, sent := range SplitSentences(text) {
		out = append(out, tokenizeSentence(sent)...)
	}
	return out
}

type rewrite struct {
	re   *regexp.Regexp
	repl string
}

func apply(s string, rules []rewrite) string {
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}

var startingQuotes = []rewrite{
	{regexp.MustCompile(`([«“‘„]|[` + "`" + `]+)`), " $1 "},
	{regexp.MustCompile(`^"`), "``"},
	{regexp.MustCompile("(``)"), " $1 "},
	{regexp.MustCompile(`([ (\[{<])("|'{2})`), "$1 `` "},
}

// cliticPrefixes follow a quote that must stay attached ('re, 've, 't, ...).
var cliticPrefixes = []string{"re", "ve", "ll", "m", "t", "s", "d", "n"}

// splitQuotedChar pads a quote followed by a single word character ("'r'" →
// "' r'") unless the quote opens a clitic.
func splitQuotedChar(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
		if r != '\'' {
			continue
		}
		rest := s[i:]
		if hasCliticPrefix(rest) {
			continue
		}
		c, csize := utf8.DecodeRuneInString(rest)
		if csize == 0 || !isWordRune(c) {
			continue
		}
		if next, _ := utf8.DecodeRuneInString(rest[csize:]); csize < len(rest) && isWordRune(next) {
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}

func hasCliticPrefix(s string) bool {
	for _, p := range cliticPrefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

var punctuation = []rewrite{
	{regexp.MustCompile(`([^.])(\.)([\])}>"']*)\s*$`), "${1} ${2} ${3} "},
	{regexp.MustCompile(`([:,])([^\d])`), " ${1} ${2}"},
	{regexp.MustCompile(`([:,])$`), " ${1} "},
	{regexp.MustCompile(`\.{2,}`), " $0 "},
	{regexp.MustCompile(`[;@#$%&]`), " $0 "},
	{regexp.MustCompile(`([^.])(\.)([\])}>"']*)\s*$`), "${1} ${2} ${3} "},
	{regexp.MustCompile(`[?!]`), " $0 "},
	{regexp.MustCompile(`([^'])' `), "${1} ' "},
	{regexp.MustCompile(`[*]`), " $0 "},
}

var brackets = []rewrite{
	{regexp.MustCompile(`[\](){}<>\[]`), " $0 "},
	{regexp.MustCompile(`--`), " -- "},
}

var endingQuotes = []rewrite{
	{regexp.MustCompile(`([»”’])`), " $1 "},
	{regexp.MustCompile(`''`), " '' "},
	{regexp.MustCompile(`"`), " '' "},
	{regexp.MustCompile(`([^' ])('[sS]|'[mM]|'[dD]|') `), "${1} ${2} "},
	{regexp.MustCompile(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `), "${1} ${2} "},
}

var contractions = []rewrite{
	{regexp.MustCompile(`(?i)\b(can)(not)\b`), " ${1} ${2} "},
	{regexp.MustCompile(`(?i)\b(d)('ye)\b`), " ${1} ${2} "},
	{regexp.MustCompile(`(?i)\b(gim)(me)\b`), " ${1} ${2} "},
	{regexp.MustCompile(`(?i)\b(gon)(na)\b`), " ${1} ${2} "},
	{regexp.MustCompile(`(?i)\b(got)(ta)\b`), " ${1} ${2} "},
	{regexp.MustCompile(`(?i)\b(lem)(me)\b`), " ${1} ${2} "},
	{regexp.MustCompile(`(?i)\b(more)('n)\b`), " ${1} ${2} "},
	{regexp.MustCompile(`(?i)\b(wan)(na)\s`), " ${1} ${2} "},
	{regexp.MustCompile(`(?i) ('t)(is)\b`), " ${1} ${2} "},
	{regexp.MustCompile(`(?i) ('t)(was)\b`), " ${1} ${2} "},
}

func tokenizeSentence(s string) []string {
	s = splitQuotedChar(apply(s, startingQuotes))
	s = apply(s, punctuation)
	s = apply(s, brackets)
	s = " " + s + " "
	s = apply(s, endingQuotes)
	s = apply(s, contractions)
	return strings.Fields(s)
}
