package cache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_DefaultDir(t *testing.T) {
	c := New("")
	if c.Dir() != DefaultDir() {
		t.Errorf("Dir() = %q, want %q", c.Dir(), DefaultDir())
	}
}

func TestResultPaths(t *testing.T) {
	c := New("/tmp/depscope-test")
	if got := c.AnalyzerResult(); got != "/tmp/depscope-test/analyzer-result.json" {
		t.Errorf("AnalyzerResult() = %q", got)
	}
	if got := c.AdvisorResult(); got != "/tmp/depscope-test/advise-result.json" {
		t.Errorf("AdvisorResult() = %q", got)
	}
}

func TestEnsureClearSize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c := New(dir)

	if err := c.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("cache dir missing after Ensure: %v", err)
	}

	if err := os.WriteFile(c.AnalyzerResult(), []byte("{}"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	size, err := c.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 2 {
		t.Errorf("Size() = %d, want 2", size)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("cache dir still present after Clear")
	}
}

func TestSize_MissingDir(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "never-created"))

	size, err := c.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 0 {
		t.Errorf("Size() = %d, want 0", size)
	}
}
