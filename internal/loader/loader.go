// Package loader reads the checker configuration file from disk.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound is returned when the configuration file does not exist
var ErrNotFound = errors.New("config file not found")

// Document is a configuration file that holds well-formed JSON
type Document struct {
	Path string
	Raw  []byte
}

// Loader reads configuration documents
type Loader struct{}

// NewLoader creates a new Loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path. A missing file (or a directory in its place)
// yields ErrNotFound; malformed JSON yields a parse error. The shape of the
// document is not checked here.
func (l *Loader) Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &Document{Path: path, Raw: raw}, nil
}
