package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-checker/internal/observability"
)

var dictDictPath string

var dictionaryCmd = &cobra.Command{
	Use:   "dictionary",
	Short: "Show the loaded keyword dictionary",
	Long: `Load the keyword dictionary (validating it against the dictionary schema)
and print its version and per-category entry counts. Useful for checking a
custom dictionary file before deploying it.`,
	RunE: runDictionary,
}

func init() {
	dictionaryCmd.Flags().StringVar(&dictDictPath, "dictionary", "", "Path to dictionary JSON file (default: embedded)")
	rootCmd.AddCommand(dictionaryCmd)
}

func runDictionary(cmd *cobra.Command, _ []string) error {
	dict, err := loadDictionary(cmd.Context(), dictDictPath)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintDictionary(dict)
	return nil
}
