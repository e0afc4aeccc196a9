// Package validation checks a checker configuration before any test is attempted:
// first the shape of the JSON document, then the folder layout under the root.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"checker/internal/domain"
)

// ErrMissingRoot is returned when the root folder does not exist
var ErrMissingRoot = errors.New("root folder not found")

const hint = "Please check the JSON file for errors."

// Progress observes the layout check, one step per test
type Progress interface {
	Update(checked int)
	Finish()
	Abort()
}

// Validator validates configurations against the layout under Root
type Validator struct {
	root     string
	logger   *zap.Logger
	progress Progress
}

// NewValidator creates a Validator for the given root folder
func NewValidator(root string, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{root: root, logger: logger}
}

// SetProgress sets the observer notified during CheckLayout
func (v *Validator) SetProgress(progress Progress) {
	v.progress = progress
}

// CheckRoot verifies that the root folder exists
func (v *Validator) CheckRoot() error {
	if !isDir(v.root) {
		return fmt.Errorf("%w: %s", ErrMissingRoot, v.root)
	}
	return nil
}

// Check validates the document shape and then the layout, returning the
// decoded configuration. The first problem found is returned as a *domain.Diagnostic.
func (v *Validator) Check(raw []byte) (*domain.Configuration, error) {
	cfg, err := v.Validate(raw)
	if err != nil {
		return nil, err
	}
	if err := v.CheckLayout(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the shape of raw and decodes it
func (v *Validator) Validate(raw []byte) (*domain.Configuration, error) {
	vio, err := firstViolation(documentSchema, raw, documentFields)
	if err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}
	if vio != nil {
		return nil, documentDiagnostic(vio)
	}

	var doc struct {
		TestGroups []json.RawMessage `json:"test-groups"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	for i, rawGroup := range doc.TestGroups {
		if err := v.validateGroup(i, rawGroup); err != nil {
			return nil, err
		}
	}

	var cfg domain.Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	v.logger.Debug("configuration shape is valid",
		zap.Int("groups", len(cfg.TestGroups)),
		zap.Int("tests", cfg.TotalTests()))
	return &cfg, nil
}

func (v *Validator) validateGroup(index int, rawGroup json.RawMessage) error {
	vio, err := firstViolation(groupSchema, rawGroup, groupFields)
	if err != nil {
		return fmt.Errorf("validate test group %d: %w", index, err)
	}
	if vio != nil {
		return groupDiagnostic(index, rawGroup, vio)
	}

	var group struct {
		Name  string            `json:"name"`
		Tests []json.RawMessage `json:"tests"`
	}
	if err := json.Unmarshal(rawGroup, &group); err != nil {
		return fmt.Errorf("decode test group %d: %w", index, err)
	}

	for i, rawTest := range group.Tests {
		vio, err := firstViolation(testSchema, rawTest, testFields)
		if err != nil {
			return fmt.Errorf("validate test %d of group '%s': %w", i, group.Name, err)
		}
		if vio != nil {
			return testDiagnostic(index, i, group.Name, rawTest, vio)
		}
	}
	return nil
}

// CheckLayout verifies that every group folder, test subfolder and test file exists
func (v *Validator) CheckLayout(cfg *domain.Configuration) (err error) {
	if v.progress != nil {
		defer func() {
			if err != nil {
				v.progress.Abort()
			} else {
				v.progress.Finish()
			}
		}()
	}

	checked := 0
	for _, group := range cfg.TestGroups {
		expectedDir := filepath.Join(v.root, group.Folder)
		if !isDir(expectedDir) {
			return &domain.Diagnostic{
				Tag:      domain.TagDir,
				Message:  fmt.Sprintf("Missing folder for test group '%s' (expected '%s')", group.Name, expectedDir),
				Group:    group.Name,
				Expected: expectedDir,
			}
		}

		for _, test := range group.Tests {
			expectedSubdir := filepath.Join(expectedDir, test.Name)
			if !isDir(expectedSubdir) {
				return &domain.Diagnostic{
					Tag:      domain.TagSubdir,
					Message:  fmt.Sprintf("Missing subfolder for test group '%s' / test '%s' (expected '%s')", group.Name, test.Name, expectedSubdir),
					Group:    group.Name,
					Test:     test.Name,
					Expected: expectedSubdir,
				}
			}

			testFile := filepath.Join(expectedSubdir, domain.TestFileName)
			if !isFile(testFile) {
				return &domain.Diagnostic{
					Tag:      domain.TagTest,
					Message:  fmt.Sprintf("Missing '%s' for test group '%s' / test '%s' (expected '%s')", domain.TestFileName, group.Name, test.Name, testFile),
					Group:    group.Name,
					Test:     test.Name,
					Expected: testFile,
				}
			}

			checked++
			if v.progress != nil {
				v.progress.Update(checked)
			}
		}
		v.logger.Debug("test group layout ok", zap.String("group", group.Name), zap.String("folder", expectedDir))
	}
	return nil
}

func documentDiagnostic(vio *violation) *domain.Diagnostic {
	d := &domain.Diagnostic{Tag: domain.TagJSON, Field: vio.field, Expected: vio.expected}
	switch {
	case vio.field == "":
		d.Message = "The configuration must be a dict (use {}). " + hint
	case vio.missing:
		d.Message = fmt.Sprintf("Missing '%s'. %s", vio.field, hint)
	default:
		d.Message = fmt.Sprintf("'%s' must be a %s. %s", vio.field, vio.expected, hint)
	}
	return d
}

func groupDiagnostic(index int, rawGroup json.RawMessage, vio *violation) *domain.Diagnostic {
	d := &domain.Diagnostic{
		Tag:      domain.TagJSON,
		Field:    fieldPath(fmt.Sprintf("test-groups.%d", index), vio.field),
		Expected: vio.expected,
		Detail:   fmt.Sprintf("The problem was encountered for %s", compact(rawGroup)),
	}
	switch {
	case vio.field == "":
		d.Message = "Each test group must be a dict (use {}). " + hint
	case vio.missing:
		d.Message = fmt.Sprintf("Each test group must contain a '%s' field. %s", vio.field, hint)
	default:
		d.Message = fmt.Sprintf("The '%s' field inside a test group must be a %s. %s", vio.field, vio.expected, hint)
	}
	return d
}

func testDiagnostic(groupIndex, testIndex int, groupName string, rawTest json.RawMessage, vio *violation) *domain.Diagnostic {
	d := &domain.Diagnostic{
		Tag:      domain.TagJSON,
		Group:    groupName,
		Field:    fieldPath(fmt.Sprintf("test-groups.%d.tests.%d", groupIndex, testIndex), vio.field),
		Expected: vio.expected,
		Detail:   fmt.Sprintf("The problem was encountered inside the '%s' test group: %s", groupName, compact(rawTest)),
	}
	switch {
	case vio.field == "":
		d.Message = "Each test inside a test group must be a dict (use {}). " + hint
	case vio.missing:
		d.Message = fmt.Sprintf("Each test inside a test group must contain a '%s' field. %s", vio.field, hint)
	default:
		d.Message = fmt.Sprintf("The '%s' field inside a test must be a %s. %s", vio.field, vio.expected, hint)
	}
	return d
}

func fieldPath(prefix, field string) string {
	if field == "" {
		return prefix
	}
	return prefix + "." + field
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
