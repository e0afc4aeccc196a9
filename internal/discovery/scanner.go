package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"checker/internal/domain"
)

// Scanner scans the root for test folders
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds every folder under root holding a test.m file.
// Paths are returned relative to root, slash separated and sorted.
func (s *Scanner) Scan(root string) ([]string, error) {
	var testDirs []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() == domain.TestFileName && d.Type().IsRegular() {
			rel, err := filepath.Rel(root, filepath.Dir(path))
			if err != nil {
				return err
			}
			if rel != "." {
				testDirs = append(testDirs, filepath.ToSlash(rel))
			}
		}
		return nil
	})

	sort.Strings(testDirs)
	return testDirs, err
}

// Undeclared returns the scanned test folders that no test in cfg points at
func Undeclared(cfg *domain.Configuration, testDirs []string) []string {
	declared := make(map[string]bool)
	for _, group := range cfg.TestGroups {
		for _, test := range group.Tests {
			declared[filepath.ToSlash(filepath.Join(group.Folder, test.Name))] = true
		}
	}

	var undeclared []string
	for _, dir := range testDirs {
		if !declared[dir] {
			undeclared = append(undeclared, dir)
		}
	}
	return undeclared
}
