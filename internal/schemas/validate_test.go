package schemas

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func TestValidateJSONString(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "valid", doc: `{"name": "x", "count": 1}`, wantErr: false},
		{name: "missing required", doc: `{"count": 1}`, wantErr: true},
		{name: "wrong type", doc: `{"name": 42}`, wantErr: true},
		{name: "below minimum", doc: `{"name": "x", "count": -1}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(testSchema, tt.doc)
			if tt.wantErr {
				var validationErr *ValidationError
				require.Error(t, err)
				assert.ErrorAs(t, err, &validationErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJSONStringBadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": `, `{}`)
	var loadErr *SchemaLoadError
	require.Error(t, err)
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateDocumentMissingSchemaFile(t *testing.T) {
	err := ValidateDocument(filepath.Join(t.TempDir(), "absent.json"), []byte(`{}`))
	assert.Error(t, err)
}

func TestResolveSchemaPathMissing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("does/not/exist.schema.json"))
}
