// Package catalog holds the static set of skill keywords skillscan recognizes.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// MaxPhraseWords is the longest phrase, in words, a catalog entry may have.
const MaxPhraseWords = 3

//go:embed catalog.yaml
var embedded []byte

// Catalog is an immutable set of lowercase skill phrases grouped by category.
// It is safe for concurrent use.
type Catalog struct {
	skills     map[string]struct{}
	categories map[string][]string
}

// Parse decodes a YAML document mapping category names to skill lists.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid catalog YAML: %w", err)
	}

	c := &Catalog{
		skills:     make(map[string]struct{}),
		categories: make(map[string][]string, len(raw)),
	}
	for category, entries := range raw {
		seen := make(map[string]struct{}, len(entries))
		list := make([]string, 0, len(entries))
		for _, e := range entries {
			if err := validateEntry(e); err != nil {
				return nil, fmt.Errorf("category %s: %w", category, err)
			}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			list = append(list, e)
			c.skills[e] = struct{}{}
		}
		sort.Strings(list)
		c.categories[category] = list
	}
	if len(c.skills) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

func validateEntry(e string) error {
	words := strings.Fields(e)
	switch {
	case len(words) == 0:
		return fmt.Errorf("%w: empty entry", ErrInvalidEntry)
	case len(words) > MaxPhraseWords:
		return fmt.Errorf("%w: %q has more than %d words", ErrInvalidEntry, e, MaxPhraseWords)
	case strings.Join(words, " ") != e:
		return fmt.Errorf("%w: %q is not single-space separated", ErrInvalidEntry, e)
	case strings.ToLower(e) != e:
		return fmt.Errorf("%w: %q is not lowercase", ErrInvalidEntry, e)
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog compiled into the binary. It is parsed once;
// later calls return the same catalog or the same error.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(embedded)
	})
	return defaultCat, defaultErr
}

// Contains reports whether skill is a catalog entry. The match is exact.
func (c *Catalog) Contains(skill string) bool {
	_, ok := c.skills[skill]
	return ok
}

// Len returns the number of distinct skills.
func (c *Catalog) Len() int { return len(c.skills) }

// Skills returns every distinct skill, sorted.
func (c *Catalog) Skills() []string {
	out := make([]string, 0, len(c.skills))
	for s := range c.skills {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Categories returns the category names, sorted.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.categories))
	for name := range c.categories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Category returns a copy of the skills in the named category, or nil if
// there is no such category.
func (c *Catalog) Category(name string) []string {
	list, ok := c.categories[name]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}
