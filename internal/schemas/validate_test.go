package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "count"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"count": {"type": "integer", "minimum": 0}
	},
	"additionalProperties": false
}`

func TestValidateBytes(t *testing.T) {
	t.Run("Valid document", func(t *testing.T) {
		err := ValidateBytes([]byte(testSchema), []byte(`{"name": "x", "count": 3}`))
		assert.NoError(t, err)
	})

	t.Run("Missing required field", func(t *testing.T) {
		err := ValidateBytes([]byte(testSchema), []byte(`{"name": "x"}`))
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.NotEmpty(t, ve.Errors)
		assert.Contains(t, err.Error(), "count")
	})

	t.Run("Wrong type", func(t *testing.T) {
		err := ValidateBytes([]byte(testSchema), []byte(`{"name": "x", "count": "three"}`))

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "count", ve.Errors[0].Field)
	})

	t.Run("Unexpected property", func(t *testing.T) {
		err := ValidateBytes([]byte(testSchema), []byte(`{"name": "x", "count": 1, "extra": true}`))

		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("Document is not JSON", func(t *testing.T) {
		err := ValidateBytes([]byte(testSchema), []byte(`nope`))

		var le *SchemaLoadError
		assert.ErrorAs(t, err, &le)
	})

	t.Run("Schema is not JSON", func(t *testing.T) {
		err := ValidateBytes([]byte(`{{`), []byte(`{}`))

		var le *SchemaLoadError
		assert.ErrorAs(t, err, &le)
	})
}

func TestValidationErrorMessage(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "entries.0.category", Message: "must be one of the enum values"},
		{Field: "version", Message: "is required"},
	}}

	msg := ve.Error()
	assert.Contains(t, msg, "1. entries.0.category")
	assert.Contains(t, msg, "2. version")
}
