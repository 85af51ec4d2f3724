package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumesense/internal/schemas"
)

const validModelJSON = `{"version": 1, "kind": "regression", "feature_names": ["a"], "intercept": 1, "coefficients": [2]}`

func TestValidateFile_BuiltInSchema(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "model.json", validModelJSON)
	invalid := writeFile(t, dir, "bad.json", `{"version": 0, "kind": "forest"}`)

	assert.NoError(t, validateFile("predictor_model", valid))
	assert.NoError(t, validateFile("predictor_model.schema.json", valid))

	err := validateFile("predictor_model", invalid)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateFile_SchemaPath(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "custom.schema.json", `{"type": "object", "required": ["name"]}`)
	valid := writeFile(t, dir, "ok.json", `{"name": "x"}`)
	invalid := writeFile(t, dir, "bad.json", `{}`)

	assert.NoError(t, validateFile(schemaPath, valid))
	assert.Error(t, validateFile(schemaPath, invalid))
}

func TestValidateFile_UnknownSchema(t *testing.T) {
	err := validateFile("no_such_schema", filepath.Join(t.TempDir(), "x.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "model.json", validModelJSON)
	invalid := writeFile(t, dir, "bad.json", `{"kind": "forest"}`)

	output, err := execute(t, "validate", "--schema", "predictor_model", "--json", valid)
	require.NoError(t, err)
	assert.Contains(t, output, "Validation passed")

	output, err = execute(t, "validate", "--schema", "predictor_model", "--json", invalid)
	require.Error(t, err)
	assert.Contains(t, output, "Validation failed")
}
