package extract_test

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/kamusis/skillscan/internal/extract"
	"github.com/kamusis/skillscan/internal/nlp"
)

func newExtractor(t *testing.T) *extract.Extractor {
	t.Helper()
	ex, err := extract.NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	return ex
}

func TestExtract(t *testing.T) {
	ex := newExtractor(t)
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"case insensitive", "I know PYTHON and React", []string{"python", "react"}},
		{"already lowercase", "i know python and react", []string{"python", "react"}},
		{"only stopwords", "the a an of for", []string{}},
		{"bigrams", "I have experience with machine learning and data science", []string{"data science", "machine learning"}},
		{"hyphenated phrase never matches", "I am skilled in problem-solving", []string{}},
		{"empty", "", []string{}},
		{"trigram", "Deployed tokens on Binance Smart Chain", []string{"binance smart chain"}},
		{"stopword inside phrase breaks it", "Ruby on Rails developer", []string{"developer", "ruby"}},
		{"sentence final period", "I know python.", []string{"python"}},
		{"symbols dropped", "Experienced in Go, Docker and AWS; familiar with CI/CD.", []string{"aws", "docker", "go"}},
		{"duplicates collapse", "python python PYTHON", []string{"python"}},
		{"quoted single letter", "I know 'R' well", []string{"r"}},
		{"quoted after colon", "Languages: 'R' and Go", []string{"go", "r"}},
		{"overlapping grams", "google cloud devops on azure devops", []string{"azure", "azure devops", "devops", "google cloud"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ex.Extract(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Extract(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtract_ResultIsSoundAndIdempotent(t *testing.T) {
	ex := newExtractor(t)
	text := `Senior Software Engineer. 7 years of Python, Java and Go; built REST API
microservices on AWS (EC2, S3, Lambda) with Docker and Kubernetes. Led Agile/Scrum teams,
strong communication and leadership. Machine learning with TensorFlow and PyTorch.`

	first := ex.Extract(text)
	if len(first) == 0 {
		t.Fatal("expected matches")
	}
	for _, s := range first {
		if !ex.Catalog().Contains(s) {
			t.Errorf("result %q is not a catalog entry", s)
		}
	}
	if second := ex.Extract(text); !reflect.DeepEqual(first, second) {
		t.Fatalf("not idempotent: %q vs %q", first, second)
	}
}

// Every entry made only of alphanumeric non-stopwords must be found when it
// stands alone in a sentence.
func TestExtract_FindsEveryMatchableEntry(t *testing.T) {
	ex := newExtractor(t)
	stop, err := nlp.Stopwords(extract.StopwordLanguage)
	if err != nil {
		t.Fatal(err)
	}

	checked := 0
	for _, skill := range ex.Catalog().Skills() {
		if !matchable(skill, stop) {
			continue
		}
		checked++
		got := ex.Extract("I use " + strings.ToUpper(skill) + " daily")
		if !contains(got, skill) {
			t.Errorf("Extract did not find %q: %q", skill, got)
		}
	}
	if checked < 100 {
		t.Fatalf("expected most entries to be matchable, only %d were", checked)
	}
}

func TestExtract_Concurrent(t *testing.T) {
	ex := newExtractor(t)
	want := []string{"docker", "kubernetes"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := ex.Extract("Docker and Kubernetes"); !reflect.DeepEqual(got, want) {
					t.Errorf("got %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func matchable(skill string, stop nlp.StopwordSet) bool {
	for _, w := range strings.Fields(skill) {
		if stop.Contains(w) || !nlp.IsAlnum(w) {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
