package skip

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteResult_Schema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")
	r := seeded(1).Simulate("")

	if err := WriteResult(path, r); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(doc) != 2 || doc["file"] == nil || doc["skips"] == nil {
		t.Errorf("top-level keys = %v, expected exactly file and skips", keys(doc))
	}

	var skips []map[string]any
	if err := json.Unmarshal(doc["skips"], &skips); err != nil {
		t.Fatalf("skips is not an array: %v", err)
	}
	if len(skips) != 1 {
		t.Fatalf("len(skips) = %d, expected 1", len(skips))
	}
	for _, k := range []string{"start", "end", "confidence", "reason"} {
		if _, ok := skips[0][k]; !ok {
			t.Errorf("segment missing key %q", k)
		}
	}

	if !strings.Contains(string(data), "\n  \"file\": \"sample.mp4\"") {
		t.Errorf("expected 2-space indented output, got:\n%s", data)
	}
}

func TestWriteResult_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("stale content that is longer than the result"), 0644); err != nil {
		t.Fatal(err)
	}

	want := Result{File: "a.mp4", Skips: []Segment{{Start: 21, End: 99, Confidence: 0.8, Reason: "intro"}}}
	if err := WriteResult(path, want); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}

	got, err := ReadResult(path)
	if err != nil {
		t.Fatalf("ReadResult() error = %v", err)
	}
	if got.File != want.File || len(got.Skips) != 1 || got.Skips[0] != want.Skips[0] {
		t.Errorf("ReadResult() = %+v, expected %+v", got, want)
	}
}

func TestWriteResult_LiteralFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	name := "Tom & Jerry <S01E01>.mp4"

	if err := WriteResult(path, Result{File: name, Skips: []Segment{{Start: 30, End: 90, Confidence: 0.8, Reason: "intro"}}}); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"file": "Tom & Jerry <S01E01>.mp4"`) {
		t.Errorf("expected unescaped file name, got:\n%s", data)
	}
	if strings.HasSuffix(string(data), "\n") {
		t.Error("expected no trailing newline")
	}

	got, err := ReadResult(path)
	if err != nil {
		t.Fatalf("ReadResult() error = %v", err)
	}
	if got.File != name {
		t.Errorf("File = %q, expected %q", got.File, name)
	}
}

func TestWriteResult_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "out.json")
	if err := WriteResult(path, Result{}); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestReadResult_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadResult(bad); err == nil {
		t.Error("expected parse error")
	}
	if _, err := ReadResult(filepath.Join(dir, "nope.json")); err == nil {
		t.Error("expected read error")
	}
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
