package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["name", "year"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"year": {"type": "integer", "minimum": 1900}
	}
}`

func TestSchema_ValidateBytes(t *testing.T) {
	s := MustCompile(testSchema)

	tests := []struct {
		name       string
		doc        string
		wantFields []string
	}{
		{"valid", `{"name":"Onix","year":2020}`, nil},
		{"missing field", `{"name":"Onix"}`, []string{"year"}},
		{"below minimum", `{"name":"Onix","year":1800}`, []string{"year"}},
		{"wrong type", `{"name":5,"year":2020}`, []string{"name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ValidateBytes([]byte(tt.doc))
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr))
			fields := make([]string, 0, len(verr.Errors))
			for _, e := range verr.Errors {
				fields = append(fields, e.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestSchema_MalformedDocument(t *testing.T) {
	s := MustCompile(testSchema)

	err := s.ValidateBytes([]byte(`{"name":`))
	require.ErrorIs(t, err, ErrMalformedDocument)

	var verr *Error
	assert.False(t, errors.As(err, &verr))
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile(`{"type": 12}`)
	assert.Error(t, err)
}
