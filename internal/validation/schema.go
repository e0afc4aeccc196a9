package validation

import (
	"github.com/xeipuuv/gojsonschema"
)

// The configuration is checked in three stages (document, each group, each
// test) so the first reported problem follows document order.

const documentSchemaJSON = `{
	"type": "object",
	"required": ["test-groups"],
	"properties": {
		"test-groups": {"type": "array"}
	}
}`

const groupSchemaJSON = `{
	"type": "object",
	"required": ["name", "folder", "expected-file", "tests"],
	"properties": {
		"name": {"type": "string"},
		"folder": {"type": "string"},
		"expected-file": {"type": "string"},
		"tests": {"type": "array"}
	}
}`

const testSchemaJSON = `{
	"type": "object",
	"required": ["name", "test-score"],
	"properties": {
		"name": {"type": "string"},
		"test-score": {"type": "number"}
	}
}`

// rootContext is how gojsonschema names the validated value itself
const rootContext = "(root)"

var (
	documentFields = []string{"test-groups"}
	groupFields    = []string{"name", "folder", "expected-file", "tests"}
	testFields     = []string{"name", "test-score"}
)

var (
	documentSchema = mustCompile(documentSchemaJSON)
	groupSchema    = mustCompile(groupSchemaJSON)
	testSchema     = mustCompile(testSchemaJSON)
)

func mustCompile(schemaJSON string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic("validation: invalid schema: " + err.Error())
	}
	return schema
}

// violation is the first schema error of a stage, reduced to what a diagnostic needs
type violation struct {
	field    string // Offending property; empty when the value itself has the wrong type
	missing  bool
	expected string
}

// firstViolation validates raw against schema and picks the error for the
// earliest field in order. Problems with the value's own type come first.
func firstViolation(schema *gojsonschema.Schema, raw []byte, order []string) (*violation, error) {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}

	var best *violation
	bestRank := len(order) + 1
	for _, re := range result.Errors() {
		v := toViolation(re)
		rank := fieldRank(v.field, order)
		if best == nil || rank < bestRank || (rank == bestRank && v.missing && !best.missing) {
			best, bestRank = v, rank
		}
	}
	return best, nil
}

func toViolation(re gojsonschema.ResultError) *violation {
	details := re.Details()
	switch re.Type() {
	case "required":
		property, _ := details["property"].(string)
		return &violation{field: property, missing: true}
	case "invalid_type":
		expected, _ := details["expected"].(string)
		field := re.Field()
		if field == rootContext {
			field = ""
		}
		return &violation{field: field, expected: normalizeType(expected)}
	}
	return &violation{field: re.Field(), expected: re.Description()}
}

func fieldRank(field string, order []string) int {
	if field == "" {
		return -1
	}
	for i, f := range order {
		if f == field {
			return i
		}
	}
	return len(order)
}

// normalizeType turns gojsonschema's type names ("array", "object", "string",
// "number") into the words the diagnostics use.
func normalizeType(expected string) string {
	switch expected {
	case "array":
		return "list"
	case "object":
		return "dict"
	}
	return expected
}
