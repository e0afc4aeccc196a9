package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"checker/internal/domain"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary directory structure for testing
	tmpDir := t.TempDir()

	testFiles := []string{
		"intro/hello/test.m",
		"intro/loops/test.m",
		"advanced/matrix/test.m",
		"advanced/matrix/helper.m",
		"advanced/notes/readme.txt",
		"storage/old/test.m",
		".git/objects/test.m",
	}
	for _, file := range testFiles {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("% test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"storage"})

	t.Run("scans test folders correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{"advanced/matrix", "intro/hello", "intro/loops"}
		if len(results) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, results)
		}
		for i := range expected {
			if results[i] != expected[i] {
				t.Errorf("expected %s at %d, got %s", expected[i], i, results[i])
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "intro/hello/test.m"))
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}

func TestUndeclared(t *testing.T) {
	cfg := &domain.Configuration{TestGroups: []domain.TestGroup{
		{Name: "Intro", Folder: "intro", Tests: []domain.Test{{Name: "hello"}}},
	}}

	result := Undeclared(cfg, []string{"advanced/matrix", "intro/hello", "intro/loops"})
	if len(result) != 2 || result[0] != "advanced/matrix" || result[1] != "intro/loops" {
		t.Errorf("unexpected undeclared folders: %v", result)
	}

	if len(Undeclared(cfg, []string{"intro/hello"})) != 0 {
		t.Error("expected no undeclared folders")
	}
}
