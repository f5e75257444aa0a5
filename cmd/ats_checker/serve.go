package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-checker/internal/config"
	"github.com/jonathan/ats-checker/internal/engine"
	"github.com/jonathan/ats-checker/internal/server"
)

var (
	servePort       int
	serveConfigPath string
	serveDictPath   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the analysis engine. The dictionary is
loaded once at startup (file, Postgres via DATABASE_URL, or the embedded
default) and shared read-only across all requests.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file with weight/threshold overrides")
	serveCmd.Flags().StringVar(&serveDictPath, "dictionary", "", "Path to dictionary JSON file (default: embedded)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	dict, err := loadDictionary(cmd.Context(), serveDictPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(dict, cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{Port: servePort}, eng)
	if err != nil {
		return err
	}

	return srv.Start()
}
