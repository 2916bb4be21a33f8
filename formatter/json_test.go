package formatter

import (
	"compress/gzip"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sample struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
	Note  *string `json:"note,omitempty"`
}

func TestMarshal(t *testing.T) {
	v := sample{ID: "a", Value: 1.5}

	compact, err := Marshal(v, false)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(compact) != `{"id":"a","value":1.5}` {
		t.Errorf("unexpected compact output: %s", compact)
	}

	pretty, err := Marshal(v, true)
	if err != nil {
		t.Fatalf("Marshal pretty: %v", err)
	}
	if !strings.Contains(string(pretty), "\n    \"id\": \"a\"") {
		t.Errorf("expected 4-space indentation, got: %s", pretty)
	}
}

func TestSavePlain(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nodes_1")
	path, err := Save([]sample{{ID: "a"}}, base, false, false)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != base+".json" {
		t.Errorf("expected %s.json, got %s", base, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var out []sample
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 || out[0].ID != "a" {
		t.Errorf("unexpected round trip: %+v", out)
	}
}

func TestSaveGzip(t *testing.T) {
	base := filepath.Join(t.TempDir(), "links_2")
	path, err := Save(sample{ID: "b", Value: 2}, base, true, true)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != base+".json.gz" {
		t.Errorf("expected %s.json.gz, got %s", base, path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer zr.Close()
	var out sample
	if err := json.NewDecoder(zr).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID != "b" || out.Value != 2 {
		t.Errorf("unexpected round trip: %+v", out)
	}
}

func TestSaveUncreatablePath(t *testing.T) {
	if _, err := Save(sample{}, filepath.Join(t.TempDir(), "no", "such", "dir", "x"), false, false); err == nil {
		t.Error("expected error for uncreatable path")
	}
}
