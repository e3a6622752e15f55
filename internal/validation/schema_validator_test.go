package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const choiceSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"description": {"type": "string", "minLength": 1},
		"success_chance": {"type": "number", "minimum": 0, "maximum": 1},
		"special_reward": {"enum": ["health_boost", "knowledge", "treasure"]}
	},
	"required": ["description", "success_chance"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "choice.schema.json", choiceSchema)

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid", `{"description": "Touch the shrine", "success_chance": 0.6}`, ""},
		{"valid with enum", `{"description": "Study", "success_chance": 0.8, "special_reward": "knowledge"}`, ""},
		{"missing required", `{"description": "Touch"}`, "required"},
		{"out of range", `{"description": "Touch", "success_chance": 1.5}`, "/success_chance"},
		{"empty string", `{"description": "", "success_chance": 0.5}`, "/description"},
		{"unknown enum", `{"description": "Touch", "success_chance": 0.5, "special_reward": "gold"}`, "/special_reward"},
		{"malformed", `{"description": }`, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchemaValidator_ViolationIsSentinel(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "choice.schema.json", choiceSchema)

	err := v.ValidateBytes([]byte(`{"success_chance": 2}`), schemaPath)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "choice.schema.json", choiceSchema)
	dataPath := writeFile(t, dir, "choice.json", `{"description": "Leave it", "success_chance": 1}`)

	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))

	err := v.ValidateFile(filepath.Join(dir, "missing.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read content file")
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_Decode(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "choice.schema.json", choiceSchema)

	var got struct {
		Description   string  `json:"description"`
		SuccessChance float64 `json:"success_chance"`
	}
	require.NoError(t, v.Decode([]byte(`{"description": "Study", "success_chance": 0.8}`), schemaPath, &got))
	assert.Equal(t, "Study", got.Description)
	assert.InDelta(t, 0.8, got.SuccessChance, 1e-9)

	err := v.Decode([]byte(`{"description": "Study"}`), schemaPath, &got)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*schemaValidator)
	schemaPath := writeFile(t, t.TempDir(), "choice.schema.json", choiceSchema)
	data := []byte(`{"description": "Touch", "success_chance": 0.6}`)

	require.NoError(t, v.ValidateBytes(data, schemaPath))
	require.NoError(t, v.ValidateBytes(data, schemaPath))
	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_ContentSchemas(t *testing.T) {
	v := NewSchemaValidator()

	for _, tc := range []struct{ data, schema string }{
		{"configs/events.json", "configs/schemas/events.schema.json"},
		{"configs/forge_upgrades.json", "configs/schemas/forge_upgrades.schema.json"},
	} {
		t.Run(tc.data, func(t *testing.T) {
			dataPath, err := ResolvePath(tc.data)
			require.NoError(t, err)
			assert.NoError(t, v.ValidateFile(dataPath, tc.schema))
		})
	}
}

func TestResolvePath(t *testing.T) {
	got, err := ResolvePath("go.mod")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	_, err = ResolvePath("configs/does-not-exist.json")
	assert.Error(t, err)
}
