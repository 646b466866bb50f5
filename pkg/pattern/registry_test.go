package pattern

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()
	if registry == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if registry.Count() != 0 {
		t.Errorf("Count() = %d, want 0", registry.Count())
	}
}

func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry()

	p := &RejectPattern{Name: "publication-page", Version: "1.0.0", Regex: `\d{1,5}-+\d{1,5}`}

	if err := registry.Register(p); err != nil {
		t.Errorf("Register() error = %v", err)
	}
	if registry.Count() != 1 {
		t.Errorf("Count() = %d, want 1", registry.Count())
	}

	if err := registry.Register(nil); err == nil {
		t.Error("Register(nil) should return error")
	}

	if err := registry.Register(p); err == nil {
		t.Error("Register() duplicate should return error")
	}

	p2 := &RejectPattern{Name: "publication-page", Version: "2.0.0", Regex: `\d{1,5}-+\d{1,5}`}
	if err := registry.Register(p2); err != nil {
		t.Errorf("Register() new version error = %v", err)
	}
}

func TestRegistryRegisterInvalidPattern(t *testing.T) {
	registry := NewRegistry()

	invalid := &RejectPattern{Name: "missing-regex"}
	if err := registry.Register(invalid); err == nil {
		t.Error("Register() invalid pattern should return error")
	}

	invalidRegex := &RejectPattern{Name: "bad-regex", Version: "1.0.0", Regex: `[invalid`}
	if err := registry.Register(invalidRegex); err == nil {
		t.Error("Register() invalid regex should return error")
	}
}

func TestRegistryUnregister(t *testing.T) {
	registry := NewRegistry()

	p := &RejectPattern{Name: "publication-page", Version: "1.0.0", Regex: `\d+`}
	if err := registry.Register(p); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := registry.Unregister("publication-page"); err != nil {
		t.Errorf("Unregister() error = %v", err)
	}
	if registry.Count() != 0 {
		t.Errorf("Count() = %d, want 0", registry.Count())
	}

	if err := registry.Unregister("non-existent"); err == nil {
		t.Error("Unregister() non-existent should return error")
	}
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()

	p := &RejectPattern{Name: "publication-page", Version: "1.0.0", Regex: `\d+`}
	if err := registry.Register(p); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, ok := registry.Get("publication-page")
	if !ok {
		t.Error("Get() should find pattern")
	}
	if got.Name != "publication-page" {
		t.Errorf("Get() Name = %q, want %q", got.Name, "publication-page")
	}

	if _, ok := registry.Get("non-existent"); ok {
		t.Error("Get() should not find non-existent pattern")
	}
}

func TestRegistryList(t *testing.T) {
	registry := NewRegistry()

	patterns := []*RejectPattern{
		{Name: "pattern-a", Version: "1.0.0", Regex: `a`},
		{Name: "pattern-b", Version: "1.0.0", Regex: `b`},
	}
	for _, p := range patterns {
		if err := registry.Register(p); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	if got := len(registry.List()); got != 2 {
		t.Errorf("List() len = %d, want 2", got)
	}
}

func TestRegistryListByCategory(t *testing.T) {
	registry := NewRegistry()

	patterns := []*RejectPattern{
		{Name: "citation-a", Version: "1.0.0", Category: "citation", Regex: `a`},
		{Name: "date-a", Version: "1.0.0", Category: "date", Regex: `b`},
		{Name: "citation-b", Version: "1.0.0", Category: "citation", Regex: `c`},
	}
	for _, p := range patterns {
		if err := registry.Register(p); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	if got := len(registry.ListByCategory("citation")); got != 2 {
		t.Errorf("ListByCategory(citation) len = %d, want 2", got)
	}
	if got := len(registry.ListByCategory("DATE")); got != 1 {
		t.Errorf("ListByCategory(DATE) len = %d, want 1", got)
	}
	if got := len(registry.ListByCategory("id")); got != 0 {
		t.Errorf("ListByCategory(id) len = %d, want 0", got)
	}
}

func TestRegistryReject(t *testing.T) {
	registry := NewRegistry()

	p := &RejectPattern{Name: "publication-page", Version: "1.0.0", Regex: `\d{1,5}-+\d{1,5}\s{0,4}\(\d{1,4}`}
	if err := registry.Register(p); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if !registry.Reject("211-227 (2003") {
		t.Error("expected registry to reject a publication-page citation")
	}
	if registry.Reject("650-253-0000") {
		t.Error("expected registry not to reject a plain phone number")
	}
}

func TestRegistryClear(t *testing.T) {
	registry := NewRegistry()

	p := &RejectPattern{Name: "publication-page", Version: "1.0.0", Regex: `\d+`}
	if err := registry.Register(p); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	registry.Clear()

	if registry.Count() != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", registry.Count())
	}
}

func TestRegistryLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	patternFile := filepath.Join(tmpDir, "publication-page.yaml")

	yamlContent := `
name: "publication-page"
version: "1.0.0"
category: "citation"
regex: "\\d{1,5}-+\\d{1,5}\\s{0,4}\\(\\d{1,4}"
`
	if err := os.WriteFile(patternFile, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	registry := NewRegistry()
	if err := registry.LoadFile(patternFile); err != nil {
		t.Errorf("LoadFile() error = %v", err)
	}

	p, ok := registry.Get("publication-page")
	if !ok {
		t.Fatal("Get() should find loaded pattern")
	}
	if p.Category != "citation" {
		t.Errorf("Category = %q, want %q", p.Category, "citation")
	}
	if !p.IsCompiled() {
		t.Error("Pattern should be compiled after loading")
	}
}

func TestRegistryLoadDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	patterns := map[string]string{
		"pattern-a.yaml": "name: \"pattern-a\"\nversion: \"1.0.0\"\nregex: \"A\"\n",
		"pattern-b.yml":  "name: \"pattern-b\"\nversion: \"1.0.0\"\nregex: \"B\"\n",
		"not-a-pattern.txt": "This should be ignored",
	}

	for name, content := range patterns {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}

	registry := NewRegistry()
	if err := registry.LoadDirectory(tmpDir); err != nil {
		t.Errorf("LoadDirectory() error = %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Count() = %d, want 2", registry.Count())
	}
	if _, ok := registry.Get("pattern-a"); !ok {
		t.Error("pattern-a should be loaded")
	}
	if _, ok := registry.Get("pattern-b"); !ok {
		t.Error("pattern-b should be loaded")
	}
}

func TestRegistryLoadDirectoryNonExistent(t *testing.T) {
	registry := NewRegistry()

	if err := registry.LoadDirectory("/non/existent/path"); err != nil {
		t.Errorf("LoadDirectory() non-existent should not error, got: %v", err)
	}
	if registry.Count() != 0 {
		t.Errorf("Count() = %d, want 0", registry.Count())
	}
}

func TestRegistryReload(t *testing.T) {
	tmpDir := t.TempDir()

	patternFile := filepath.Join(tmpDir, "test.yaml")
	if err := os.WriteFile(patternFile, []byte("name: \"test\"\nversion: \"1.0.0\"\nregex: \"foo\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	registry, err := NewRegistryWithDirectory(tmpDir)
	if err != nil {
		t.Fatalf("NewRegistryWithDirectory() error = %v", err)
	}

	p, _ := registry.Get("test")
	if p.Regex != "foo" {
		t.Errorf("Regex = %q, want %q", p.Regex, "foo")
	}

	if err := os.WriteFile(patternFile, []byte("name: \"test\"\nversion: \"2.0.0\"\nregex: \"bar\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := registry.Reload(); err != nil {
		t.Errorf("Reload() error = %v", err)
	}

	p, _ = registry.Get("test")
	if p.Regex != "bar" {
		t.Errorf("Regex after reload = %q, want %q", p.Regex, "bar")
	}
}

func TestRegistryReloadNoDirectory(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Reload(); err == nil {
		t.Error("Reload() without directory should return error")
	}
}

func TestRegistryWatch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping watch test in short mode")
	}

	tmpDir := t.TempDir()

	patternFile := filepath.Join(tmpDir, "test.yaml")
	if err := os.WriteFile(patternFile, []byte("name: \"watch-test\"\nversion: \"1.0.0\"\nregex: \"foo\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	registry, err := NewRegistryWithDirectory(tmpDir)
	if err != nil {
		t.Fatalf("NewRegistryWithDirectory() error = %v", err)
	}

	changed := make(chan bool, 1)
	registry.SetOnChange(func(event string, pattern *RejectPattern) {
		select {
		case changed <- true:
		default:
		}
	})

	if err := registry.Watch(); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer registry.StopWatch()

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(patternFile, []byte("name: \"watch-test\"\nversion: \"2.0.0\"\nregex: \"bar\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case <-changed:
		time.Sleep(100 * time.Millisecond)
	case <-time.After(3 * time.Second):
		t.Log("Watch() did not detect file change within timeout (may be CI environment)")
		return
	}

	p, _ := registry.Get("watch-test")
	if p.Regex != "bar" {
		t.Errorf("Regex = %q, want %q", p.Regex, "bar")
	}
}

func TestRegistryWatchNoDirectory(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Watch(); err == nil {
		t.Error("Watch() without directory should return error")
	}
}

func TestNewRegistryWithDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	patternFile := filepath.Join(tmpDir, "test.yaml")
	if err := os.WriteFile(patternFile, []byte("name: \"test\"\nversion: \"1.0.0\"\nregex: \"foo\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	registry, err := NewRegistryWithDirectory(tmpDir)
	if err != nil {
		t.Fatalf("NewRegistryWithDirectory() error = %v", err)
	}

	if registry.Count() != 1 {
		t.Errorf("Count() = %d, want 1", registry.Count())
	}
}
