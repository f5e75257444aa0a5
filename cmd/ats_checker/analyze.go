package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/engine"
	"github.com/jonathan/ats-checker/internal/observability"
)

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeConfigPath string
	analyzeDictPath   string
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Analyze reads two plain-text files (a resume and a job description), runs the
compatibility analysis, and prints the result as JSON. With --verbose the
result is rendered as a readable report instead.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file with weight/threshold overrides")
	analyzeCmd.Flags().StringVar(&analyzeDictPath, "dictionary", "", "Path to dictionary JSON file (default: embedded)")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print a readable report instead of JSON")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	resumeText, err := os.ReadFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(analyzeJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	cfg := config.Default()
	if analyzeConfigPath != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	dict, err := loadDictionary(cmd.Context(), analyzeDictPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(dict, cfg)
	if err != nil {
		return err
	}

	result, err := eng.Analyze(cmd.Context(), engine.Request{
		ResumeText:         string(resumeText),
		JobDescriptionText: string(jobText),
	})
	if err != nil {
		return err
	}

	if analyzeVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintResult(result)
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
