package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resumesense/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume analysis, history and lookup endpoints. Set DATABASE_URL to store analyses.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT or 5001)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port := appConfig.Port
	if servePort != 0 {
		port = servePort
	}

	cfg := server.Config{
		Port:          port,
		DatabaseURL:   appConfig.DatabaseURL,
		ModelPath:     appConfig.ModelPath,
		MaxUploadSize: appConfig.MaxUploadSize,
	}

	srv, err := server.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
