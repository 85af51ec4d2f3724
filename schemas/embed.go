// Package schemas holds the JSON Schemas for the artifacts the analyzer
// reads and writes. The files are embedded so validation works regardless
// of the working directory.
package schemas

import _ "embed"

// PredictorModel validates trained predictor artifacts.
//
//go:embed predictor_model.schema.json
var PredictorModel string

// AnalysisResult validates engine output written by the analyze command.
//
//go:embed analysis_result.schema.json
var AnalysisResult string

// Files maps each schema file name to its content.
var Files = map[string]string{
	"predictor_model.schema.json": PredictorModel,
	"analysis_result.schema.json": AnalysisResult,
}
