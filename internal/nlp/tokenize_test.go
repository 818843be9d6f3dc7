package nlp

import (
	"reflect"
	"testing"
)

func TestTreebankTokenizer_Tokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain words", "i know python and react", []string{"i", "know", "python", "and", "react"}},
		{"hyphen stays inside word", "i am skilled in problem-solving", []string{"i", "am", "skilled", "in", "problem-solving"}},
		{"final period split", "i know python.", []string{"i", "know", "python", "."}},
		{"clitic n't", "don't stop", []string{"do", "n't", "stop"}},
		{"clitic 's", "it's fine", []string{"it", "'s", "fine"}},
		{"symbols", "c++, c# and node.js", []string{"c++", ",", "c", "#", "and", "node.js"}},
		{"cannot", "i cannot code", []string{"i", "can", "not", "code"}},
		{"brackets", "see (docker) [k8s]", []string{"see", "(", "docker", ")", "[", "k8s", "]"}},
		{"two sentences", "I like Go. I use Docker!", []string{"I", "like", "Go", ".", "I", "use", "Docker", "!"}},
		{"abbreviation kept", "e.g. docker", []string{"e.g.", "docker"}},
		{"slash kept", "ci/cd pipelines", []string{"ci/cd", "pipelines"}},
		{"comma inside number", "1,000 users", []string{"1,000", "users"}},
		{"quoted single letter", "i know 'r' well", []string{"i", "know", "'", "r", "'", "well"}},
		{"quote before clitic kept", "'s fine", []string{"'s", "fine"}},
		{"quote before longer word kept", "'90s music", []string{"'90s", "music"}},
		{"empty", "", nil},
	}

	var tok TreebankTokenizer
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tok.Tokenize(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Hello world. Bye now!", []string{"Hello world.", "Bye now!"}},
		{"Dr. Smith knows Go.", []string{"Dr. Smith knows Go."}},
		{"Really? Yes.", []string{"Really?", "Yes."}},
		{"Wait... what", []string{"Wait... what"}},
		{"one\ntwo\tthree", []string{"one two three"}},
		{"   ", nil},
	}
	for _, tc := range cases {
		got := SplitSentences(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitSentences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
