// Package schemas provides JSON Schema validation functionality for structured data artifacts.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	schemafiles "github.com/themohitbharti/joblens/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Embedded schema names.
const (
	BenchmarkResultsSchema = "benchmark_results.schema.json"
	CatalogSchema          = "catalog.schema.json"
	ScanReportSchema       = "scan_report.schema.json"
	ComparisonResultSchema = "comparison_result.schema.json"
)

// compiled caches parsed embedded schemas by file name
var (
	compiled   = make(map[string]*gojsonschema.Schema)
	compiledMu sync.RWMutex
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateEmbedded validates raw JSON against one of the embedded schemas.
// Compiled schemas are cached after first use.
func ValidateEmbedded(name string, data []byte) error {
	schema, err := load(name)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	return toValidationError(result)
}

// ValidateValue marshals v and validates it against one of the embedded schemas.
func ValidateValue(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return ValidateEmbedded(name, data)
}

func load(name string) (*gojsonschema.Schema, error) {
	compiledMu.RLock()
	if s, ok := compiled[name]; ok {
		compiledMu.RUnlock()
		return s, nil
	}
	compiledMu.RUnlock()

	raw, err := schemafiles.FS.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "schema not embedded", Cause: err}
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "schema did not compile", Cause: err}
	}

	compiledMu.Lock()
	compiled[name] = s
	compiledMu.Unlock()
	return s, nil
}

// toValidationError returns nil for a valid result.
func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
