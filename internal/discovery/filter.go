package discovery

import (
	"path/filepath"
	"strings"

	"checker/internal/domain"
)

// Filter filters tests by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the tests whose name matches pattern.
// Supports patterns like "loop*" or "*matrix*"; a pattern without
// wildcards matches any name containing it. Groups left without tests are dropped.
func (f *Filter) FilterByName(cfg *domain.Configuration, pattern string) *domain.Configuration {
	if pattern == "" {
		return cfg
	}

	filtered := &domain.Configuration{}
	for _, group := range cfg.TestGroups {
		var tests []domain.Test
		for _, test := range group.Tests {
			if f.Match(test.Name, pattern) {
				tests = append(tests, test)
			}
		}
		if len(tests) > 0 {
			g := group
			g.Tests = tests
			filtered.TestGroups = append(filtered.TestGroups, g)
		}
	}
	return filtered
}

// Match reports whether name matches pattern
func (f *Filter) Match(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Flexible match: every non-wildcard part must appear in order
	rest := name
	hasPart := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		hasPart = true
	}
	return hasPart
}
