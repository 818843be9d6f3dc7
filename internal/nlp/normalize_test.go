package nlp

import (
	"errors"
	"reflect"
	"testing"
)

func newEnglishNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	stop, err := Stopwords("english")
	if err != nil {
		t.Fatalf("Stopwords: %v", err)
	}
	return NewNormalizer(TreebankTokenizer{}, stop)
}

func TestNormalizer_Tokens(t *testing.T) {
	n := newEnglishNormalizer(t)
	cases := []struct {
		in   string
		want []string
	}{
		{"I know PYTHON and React", []string{"know", "python", "react"}},
		{"the a an of for", []string{}},
		{"I am skilled in problem-solving", []string{"skilled"}},
		{"Python, Go; Rust!", []string{"python", "go", "rust"}},
		{"I don't use C++ or Node.js.", []string{"use"}},
		{"", []string{}},
		{"... !!! ???", []string{}},
	}
	for _, tc := range cases {
		got := n.Tokens(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokens(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsAlnum(t *testing.T) {
	cases := map[string]bool{
		"abc123": true,
		"naïve":  true,
		"s3":     true,
		"c++":    false,
		"n't":    false,
		"a-b":    false,
		"":       false,
	}
	for in, want := range cases {
		if got := IsAlnum(in); got != want {
			t.Errorf("IsAlnum(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLower(t *testing.T) {
	if got := Lower("PYTHON Ärger"); got != "python ärger" {
		t.Fatalf("Lower = %q", got)
	}
}

func TestStopwords_English(t *testing.T) {
	for _, lang := range []string{"english", "English", "en", "en-US"} {
		set, err := Stopwords(lang)
		if err != nil {
			t.Fatalf("Stopwords(%q): %v", lang, err)
		}
		if set.Len() != 179 {
			t.Errorf("Stopwords(%q): want 179 words, got %d", lang, set.Len())
		}
		for _, w := range []string{"the", "and", "i", "am", "don't", "wouldn't"} {
			if !set.Contains(w) {
				t.Errorf("Stopwords(%q): missing %q", lang, w)
			}
		}
		for _, w := range []string{"go", "r", "python", "it's fine"} {
			if set.Contains(w) {
				t.Errorf("Stopwords(%q): unexpected %q", lang, w)
			}
		}
	}
}

func TestStopwords_UnknownLanguage(t *testing.T) {
	for _, lang := range []string{"fr", "klingon", ""} {
		if _, err := Stopwords(lang); !errors.Is(err, ErrUnknownLanguage) {
			t.Errorf("Stopwords(%q): want ErrUnknownLanguage, got %v", lang, err)
		}
	}
}

func TestParseStopwords(t *testing.T) {
	set, err := ParseStopwords([]byte("# header\n\nThe\n  and \n"))
	if err != nil {
		t.Fatalf("ParseStopwords: %v", err)
	}
	if set.Len() != 2 || !set.Contains("the") || !set.Contains("and") {
		t.Fatalf("unexpected set: %v", set)
	}

	if _, err := ParseStopwords([]byte("# only a comment\n")); !errors.Is(err, ErrNoStopwords) {
		t.Fatalf("want ErrNoStopwords, got %v", err)
	}
}
