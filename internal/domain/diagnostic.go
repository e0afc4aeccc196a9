package domain

import "fmt"

// Tag identifies which rule a diagnostic violated
type Tag string

const (
	TagFatal  Tag = ""
	TagJSON   Tag = "JSON"
	TagDir    Tag = "DIR"
	TagSubdir Tag = "SUBDIR"
	TagTest   Tag = "TEST"
)

// Diagnostic describes the first problem found in a configuration or its layout
type Diagnostic struct {
	Tag      Tag    `json:"tag"`
	Message  string `json:"message"`
	Group    string `json:"group,omitempty"`
	Test     string `json:"test,omitempty"`
	Field    string `json:"field,omitempty"`    // Dotted path inside the JSON document
	Expected string `json:"expected,omitempty"` // Expected type or on-disk path
	Detail   string `json:"detail,omitempty"`   // Where the problem was encountered
}

// Label renders the bracketed prefix, e.g. "[ FATAL:DIR ]"
func (d *Diagnostic) Label() string {
	if d.Tag == TagFatal {
		return "[ FATAL ]"
	}
	return fmt.Sprintf("[ FATAL:%s ]", d.Tag)
}

func (d *Diagnostic) Error() string {
	return d.Label() + " " + d.Message
}
