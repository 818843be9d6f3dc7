package log

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNew_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf, Version: "1.2.3"})

	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}

	l.Warn().Str("component", "test").Msg("kept")
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["service"] != "skillscand" || entry["version"] != "1.2.3" || entry["message"] != "kept" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "loud", Output: &buf})
	l.Debug().Msg("dropped")
	l.Info().Msg("kept")
	if bytes.Count(buf.Bytes(), []byte("\n")) != 1 {
		t.Fatalf("expected exactly one line, got %q", buf.String())
	}
}
