// Package main provides the entry point for the ATS checker CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_checker",
	Short: "Deterministic resume / job-description compatibility analyzer",
	Long: "ats_checker scores how well a resume matches a job description using a versioned\n" +
		"keyword dictionary, section detection, and formatting heuristics. No language\n" +
		"models are involved; identical inputs always produce identical results.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
