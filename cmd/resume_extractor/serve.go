package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmatsuda/resume-extractor/internal/config"
	"github.com/kmatsuda/resume-extractor/internal/parse"
	"github.com/kmatsuda/resume-extractor/internal/server"
	"github.com/kmatsuda/resume-extractor/internal/vocab"
)

var (
	servePort       int
	serveConfigPath string
	serveVocabPath  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume parsing endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveVocabPath, "vocab", "", "Path to skills vocabulary file (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveVocabPath != "" {
		cfg.VocabularyPath = serveVocabPath
	}
	configureLogging(cfg.LogLevel)

	parser := parse.NewParser(vocab.LoadOrDefault(cfg.VocabularyPath))
	return server.New(cfg, parser).Start()
}
