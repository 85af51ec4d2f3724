package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resumesense/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for schemaFile := range Files {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareDraft(t *testing.T) {
	for schemaFile, content := range Files {
		t.Run(schemaFile, func(t *testing.T) {
			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(content), &schemaObj))

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			_, hasRequired := schemaObj["required"]
			assert.True(t, hasRequired, "top-level schema should list required fields")
		})
	}
}

func TestEmbeddedSchemas_MatchFiles(t *testing.T) {
	for schemaFile, content := range Files {
		data, err := os.ReadFile(schemaFile)
		require.NoError(t, err)
		assert.Equal(t, string(data), content, schemaFile)
	}
}

func TestPredictorModelSchema_AcceptsMinimalArtifact(t *testing.T) {
	doc := `{
		"version": 1,
		"kind": "regression",
		"feature_names": ["text_length"],
		"intercept": 50.5,
		"coefficients": [0.1]
	}`

	err := schemas.ValidateJSONString(PredictorModel, doc)
	assert.NoError(t, err)
}

func TestPredictorModelSchema_RejectsBadArtifacts(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", `{"version": 1, "kind": "forest", "feature_names": ["a"], "intercept": 0, "coefficients": [1]}`},
		{"missing coefficients", `{"version": 1, "kind": "regression", "feature_names": ["a"], "intercept": 0}`},
		{"string coefficient", `{"version": 1, "kind": "regression", "feature_names": ["a"], "intercept": 0, "coefficients": ["x"]}`},
		{"zero version", `{"version": 0, "kind": "regression", "feature_names": ["a"], "intercept": 0, "coefficients": [1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateJSONString(PredictorModel, tt.doc)
			require.Error(t, err)
			_, ok := err.(*schemas.ValidationError)
			assert.True(t, ok, "expected ValidationError, got %T", err)
		})
	}
}

func TestAnalysisResultSchema_NullMatch(t *testing.T) {
	doc := `{
		"match": null,
		"ats": {
			"ats_score": 25,
			"section_checks": {"education": false, "experience": false, "skills": false, "contact": false, "summary": false},
			"contact_check": {"has_email": false, "has_phone": false, "has_address": false, "complete": false},
			"formatting_checks": {"has_tables": false, "excessive_formatting": false, "has_headers_footers": false, "has_bullets": false},
			"issues": ["Missing Education section"],
			"recommendations": ["Use standard section headings (Education, Experience, Skills)"]
		},
		"power_verbs": {
			"findings": [],
			"stats": {"weak_verb_count": 0, "strong_verb_count": 0, "weak_verbs_found": [], "power_verb_score": 0}
		},
		"quality": {"quality_score": 7.5, "features": {"text_length": 11}, "model_used": "rule_based"},
		"insights": {"projects": [], "achievements": []}
	}`

	assert.NoError(t, schemas.ValidateJSONString(AnalysisResult, doc))
}

func TestAnalysisResultSchema_RejectsOutOfRangeScore(t *testing.T) {
	doc := `{
		"match": {"match_score": 140, "common_keywords": [], "missing_keywords": [], "jd_keyword_count": 0, "resume_keyword_count": 0},
		"ats": {},
		"power_verbs": {},
		"quality": {},
		"insights": {}
	}`

	err := schemas.ValidateJSONString(AnalysisResult, doc)
	require.Error(t, err)
}
