// Package validation checks request documents against JSON schemas.
package validation

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformedDocument is returned when the document is not parseable JSON.
var ErrMalformedDocument = errors.New("malformed JSON document")

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error is returned when a document does not satisfy its schema.
type Error struct {
	Errors []ValidationError
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed: %d error(s)", len(e.Errors))
}

type Schema struct {
	schema *gojsonschema.Schema
}

// Compile parses a JSON schema document once so it can be reused per request.
func Compile(source string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Schema{schema: s}, nil
}

// MustCompile is Compile for package-level schemas.
func MustCompile(source string) *Schema {
	s, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return s
}

// ValidateBytes validates a raw JSON document. A nil error means the document is valid;
// schema violations come back as *Error.
func (s *Schema) ValidateBytes(document []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		// required violations are reported against the parent object
		if prop, ok := desc.Details()["property"].(string); ok && desc.Type() == "required" {
			field = prop
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	return &Error{Errors: errs}
}
