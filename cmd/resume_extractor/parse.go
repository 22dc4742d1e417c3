package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kmatsuda/resume-extractor/internal/extract"
	"github.com/kmatsuda/resume-extractor/internal/parse"
	"github.com/kmatsuda/resume-extractor/internal/vocab"
)

var (
	parseOutDir    string
	parseVocabPath string
	parseLogLevel  string
	parseWorkers   int
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse resume files into structured JSON",
	Long: `Parse one or more resume files (pdf, docx, txt) and emit structured JSON.
With --out, each result is written to <out>/<name>.json; otherwise results
stream to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseOutDir, "out", "", "Directory to write per-file JSON results")
	parseCmd.Flags().StringVar(&parseVocabPath, "vocab", "", "Path to skills vocabulary file")
	parseCmd.Flags().StringVar(&parseLogLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	parseCmd.Flags().IntVar(&parseWorkers, "workers", 4, "Number of files parsed concurrently")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	configureLogging(parseLogLevel)

	if parseOutDir != "" {
		if err := os.MkdirAll(parseOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	parser := parse.NewParser(vocab.LoadOrDefault(parseVocabPath))

	var (
		mu      sync.Mutex
		encoder = json.NewEncoder(cmd.OutOrStdout())
	)
	encoder.SetIndent("", "  ")

	cmdCtx := cmd.Context()
	if cmdCtx == nil {
		cmdCtx = context.Background()
	}
	g, ctx := errgroup.WithContext(cmdCtx)
	g.SetLimit(parseWorkers)
	for _, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			resume, err := parseFile(parser, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if parseOutDir != "" {
				return writeResult(parseOutDir, path, resume)
			}

			mu.Lock()
			defer mu.Unlock()
			return encoder.Encode(map[string]any{"file": path, "result": resume})
		})
	}
	return g.Wait()
}

func parseFile(parser *parse.Parser, path string) (any, error) {
	format, err := extract.ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parser.ParseDocument(data, format)
}

func writeResult(dir, srcPath string, resume any) error {
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	return os.WriteFile(filepath.Join(dir, base+".json"), append(data, '\n'), 0o644)
}
