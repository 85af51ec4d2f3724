package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumesense/internal/schemas"
	schemadocs "github.com/jonathan/resumesense/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a schema",
	Long:  "Validates a JSON document against a built-in schema (analysis_result, predictor_model) or a schema file on disk.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Built-in schema name or path to a schema file (required)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	err := validateFile(validateSchema, validateJSON)

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %s", validationErr.Error())
		return errors.New("schema validation failed")
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}

// validateFile checks jsonPath against a built-in schema when schema names
// one, otherwise against the schema file at that path.
func validateFile(schema, jsonPath string) error {
	name := schema
	if !strings.HasSuffix(name, ".schema.json") {
		name += ".schema.json"
	}
	if content, ok := schemadocs.Files[name]; ok {
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return fmt.Errorf("failed to read JSON file: %w", err)
		}
		return schemas.ValidateJSONString(content, string(data))
	}

	schemaPath := schemas.ResolveSchemaPath(schema)
	if schemaPath == "" {
		return fmt.Errorf("unknown schema %q: not a built-in name or an existing file", schema)
	}
	return schemas.ValidateJSON(schemaPath, jsonPath)
}
