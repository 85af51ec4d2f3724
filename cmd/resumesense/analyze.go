package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumesense/internal/analysis"
	"github.com/jonathan/resumesense/internal/ingestion"
	"github.com/jonathan/resumesense/internal/observability"
	"github.com/jonathan/resumesense/internal/schemas"
	"github.com/jonathan/resumesense/internal/scoring"
	"github.com/jonathan/resumesense/internal/types"
	schemadocs "github.com/jonathan/resumesense/schemas"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume, optionally against a job description",
	Long:  "Runs ATS compliance, power verb, insight and quality analysis on a resume file. With --jd the resume is also matched against a job description.",
	RunE:  runAnalyze,
}

var (
	analyzeResume  string
	analyzeJD      string
	analyzeModel   string
	analyzeOutput  string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file: txt, md, html, pdf or docx (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJD, "jd", "j", "", "Path to job description file (optional)")
	analyzeCmd.Flags().StringVarP(&analyzeModel, "model", "m", "", "Path to predictor model JSON (defaults to ML_MODEL_PATH or the config)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output AnalysisResult JSON (defaults to stdout)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	modelPath := analyzeModel
	if modelPath == "" {
		modelPath = appConfig.ModelPath
	}

	result, err := analyzeFiles(cmd.Context(), analyzeResume, analyzeJD, modelPath)
	if err != nil {
		return err
	}

	data, err := marshalResult(result)
	if err != nil {
		return err
	}

	if analyzeOutput == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if dir := filepath.Dir(analyzeOutput); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(analyzeOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote analysis to %s\n", analyzeOutput)
	}

	if analyzeVerbose || appConfig.Verbose {
		observability.NewPrinter(os.Stderr).PrintAnalysis(result)
	}
	return nil
}

// analyzeFiles reads the resume and optional job description and runs the engine.
func analyzeFiles(ctx context.Context, resumePath, jdPath, modelPath string) (*types.AnalysisResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	resumeText, _, err := ingestion.IngestFromFile(resumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	var jdText string
	if jdPath != "" {
		jdText, _, err = ingestion.IngestFromFile(jdPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read job description: %w", err)
		}
	}

	engine := analysis.NewEngine(scoring.NewScorer(modelPath))
	return engine.Analyze(ctx, resumeText, jdText)
}

// marshalResult encodes result and checks it against the analysis schema.
func marshalResult(result *types.AnalysisResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis JSON: %w", err)
	}
	if err := schemas.ValidateJSONString(schemadocs.AnalysisResult, string(data)); err != nil {
		return nil, fmt.Errorf("analysis output failed schema validation: %w", err)
	}
	return append(data, '\n'), nil
}
