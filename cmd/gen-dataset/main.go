package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/riskboard/internal/testdata"
	"github.com/okian/riskboard/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumRows    = 5000
	defaultMalformed  = 0
	defaultOutputFile = "generated-dataset.csv"
	defaultTimeout    = 1 * time.Minute
)

func main() {
	var (
		numRows   = flag.Int("rows", defaultNumRows, "Number of data rows to generate")
		malformed = flag.Int("malformed", defaultMalformed, "Number of deliberately malformed rows to mix in")
		output    = flag.String("output", defaultOutputFile, "Output CSV file")
		seed      = flag.String("seed", "gen", "Identifier embedded in generated names")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			logger.Error(err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	config := &testdata.Config{
		NumRows:       *numRows,
		MalformedRows: *malformed,
		OutputFile:    *output,
		Seed:          *seed,
	}
	stats := &testdata.Stats{}
	start := time.Now()

	rows, err := testdata.Generate(ctx, config, stats)
	if err != nil {
		logger.Get().Error(ctx, "generation failed", logger.Error(err))
		os.Exit(1)
	}

	if err := testdata.WriteCSV(ctx, config.OutputFile, rows); err != nil {
		logger.Get().Error(ctx, "write failed", logger.Error(err))
		os.Exit(1)
	}

	testdata.Summarize(stats, start)
	logger.Get().Info(ctx, "dataset generated",
		logger.String("output", config.OutputFile),
		logger.Int("rows", stats.RowsGenerated),
		logger.Int("malformed", stats.RowsMalformed),
		logger.Int("withBlanks", stats.RowsWithBlanks),
		logger.String("duration", stats.Duration.String()))
}

// showHelp prints usage information for the dataset generator.
func showHelp() {
	os.Stdout.WriteString(`Riskboard Dataset Generator
===========================

Generates a synthetic risk-assessment CSV shaped like the file the
service loads, covering every prior-conviction bucket, both outcomes
and rows with missing cells.

Usage:
  go run cmd/gen-dataset/main.go [options]

Options:
  -rows int
        Number of data rows to generate (default 5000)
  -malformed int
        Number of deliberately malformed rows to mix in (default 0)
  -output string
        Output CSV file (default "generated-dataset.csv")
  -seed string
        Identifier embedded in generated names (default "gen")
  -help
        Show this help message

Examples:
  # Generate with default settings
  go run cmd/gen-dataset/main.go

  # Generate a small file with malformed rows for loader testing
  go run cmd/gen-dataset/main.go -rows 200 -malformed 10 -output testdata.csv
`)
}
