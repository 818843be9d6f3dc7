package cmd

import (
	"bytes"
	"testing"
)

// runRoot executes the skillscan root command with args and returns stdout.
func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	if args == nil {
		args = []string{}
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := executeRoot(args); err != nil {
		t.Fatalf("skillscan %q: %v", args, err)
	}
	return out.String()
}

func TestRoot_NoArgumentPrintsEmptyArray(t *testing.T) {
	if got := runRoot(t); got != "[]\n" {
		t.Fatalf("got %q, want %q", got, "[]\n")
	}
}

func TestRoot_PrintsSortedJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"I know PYTHON and React", `["python","react"]` + "\n"},
		{"I have experience with machine learning and data science", `["data science","machine learning"]` + "\n"},
		{"the a an of for", "[]\n"},
		{"I am skilled in problem-solving", "[]\n"},
		{"", "[]\n"},
	}
	for _, tc := range cases {
		if got := runRoot(t, tc.in); got != tc.want {
			t.Errorf("skillscan %q = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoot_OnlyFirstArgumentIsRead(t *testing.T) {
	if got := runRoot(t, "go developer", "rust"); got != `["developer","go"]`+"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestRoot_FlagAndCommandWordsAreInput(t *testing.T) {
	for _, in := range []string{"--help", "-v", "__complete", "__completeNoDesc", "completion", "help"} {
		if got := runRoot(t, in); got != "[]\n" {
			t.Errorf("skillscan %q = %q, want []", in, got)
		}
	}
}

func TestRoot_CompletionWordWithTextIsInput(t *testing.T) {
	if got := runRoot(t, "__complete", "python"); got != "[]\n" {
		t.Fatalf("got %q, want []", got)
	}
}
