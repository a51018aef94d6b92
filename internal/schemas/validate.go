// Package schemas validates payloads exchanged with the email variation service against the embedded JSON Schemas.
package schemas

import (
	"fmt"
	"strings"

	schemafiles "github.com/jonathan/email-finder/schemas"
	"github.com/xeipuuv/gojsonschema"
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

// ValidateLookupRequest validates a request body destined for the variation service
func ValidateLookupRequest(data []byte) error {
	return validateEmbedded(schemafiles.LookupRequest, data)
}

// ValidateLookupResponse validates a body returned by the variation service
func ValidateLookupResponse(data []byte) error {
	return validateEmbedded(schemafiles.LookupResponse, data)
}

// ValidateErrorResponse validates a proxy failure envelope
func ValidateErrorResponse(data []byte) error {
	return validateEmbedded(schemafiles.ErrorResponse, data)
}

func validateEmbedded(name string, data []byte) error {
	schemaContent, err := schemafiles.FS.ReadFile(name)
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "embedded schema not found", Cause: err}
	}
	if err := validate(gojsonschema.NewBytesLoader(schemaContent), gojsonschema.NewBytesLoader(data)); err != nil {
		if loadErr, ok := err.(*SchemaLoadError); ok {
			loadErr.Path = name
		}
		return err
	}
	return nil
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(embedded schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
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
