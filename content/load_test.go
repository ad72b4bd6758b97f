package content

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	site, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if site.Name != Default().Name || len(site.Skills) != 6 {
		t.Errorf("Expected defaults, got %+v", site)
	}
}

func TestLoadOverridesSomeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := []byte("name: Ada\nskills:\n  - name: Go\n    icon: \"🐹\"\n    description: gin, sqlite\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	site, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if site.Name != "Ada" {
		t.Errorf("Expected name Ada, got %s", site.Name)
	}
	if len(site.Skills) != 1 || site.Skills[0].Name != "Go" {
		t.Errorf("Expected skills replaced, got %+v", site.Skills)
	}
	if len(site.Projects) != len(Default().Projects) {
		t.Errorf("Expected default projects kept, got %d", len(site.Projects))
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	site, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if site.Title != Default().Title {
		t.Errorf("Expected default title, got %s", site.Title)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("skills: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected a decode error")
	}
}

func TestDumpThenLoad(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, Default()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	site, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if site.Footer != Default().Footer || len(site.Experience) != 3 {
		t.Errorf("Expected dumped content to load back, got %+v", site)
	}
}
