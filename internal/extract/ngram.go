package extract

import "strings"

// Lookup is the membership test the matcher needs from a catalog.
type Lookup interface {
	Contains(skill string) bool
}

// Match returns every unigram, bigram and trigram of tokens that is a
// member of catalog. N-grams are joined with a single space.
func Match(tokens []string, catalog Lookup) map[string]struct{} {
	found := make(map[string]struct{})
	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			if catalog.Contains(gram) {
				found[gram] = struct{}{}
			}
		}
	}
	return found
}
