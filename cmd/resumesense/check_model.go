package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumesense/internal/scoring"
)

var checkModelCmd = &cobra.Command{
	Use:   "check-model",
	Short: "Check that a predictor model can be loaded",
	Long:  "Validates a predictor model file against its schema and the feature order expected by the scorer. Exits non-zero when the analyzer would fall back to rule-based scoring.",
	RunE:  runCheckModel,
}

var checkModelPath string

func init() {
	checkModelCmd.Flags().StringVarP(&checkModelPath, "model", "m", "", "Path to predictor model JSON (defaults to ML_MODEL_PATH or the config)")
	rootCmd.AddCommand(checkModelCmd)
}

func runCheckModel(cmd *cobra.Command, _ []string) error {
	path := checkModelPath
	if path == "" {
		path = appConfig.ModelPath
	}

	model, err := scoring.LoadModel(path)
	if err != nil {
		return fmt.Errorf("model check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Model OK: %s\n", path)
	fmt.Fprintf(out, "  kind:     %s\n", model.Kind)
	fmt.Fprintf(out, "  features: %d\n", len(model.FeatureNames))
	if model.TrainedAt != nil {
		fmt.Fprintf(out, "  trained:  %s\n", model.TrainedAt.Format("2006-01-02 15:04:05"))
	}
	if model.Metrics != nil {
		fmt.Fprintf(out, "  test R²:  %.3f\n", model.Metrics.TestR2)
	}
	return nil
}
