package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andremq/novaconv/internal/config"
	"github.com/andremq/novaconv/internal/logger"
	"github.com/andremq/novaconv/internal/pipeline"
)

func main() {
	// Initialize structured logger
	log := logger.New()

	// Parse CLI flags
	input := flag.String("input", "", "path to the NovaDAX CSV export")
	output := flag.String("output", "", "path for the Koinly CSV (created or truncated)")
	configPath := flag.String("config", "", "optional YAML config file")
	fiat := flag.String("fiat", "", "local fiat currency code (default BRL)")
	flag.Parse()

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}
		cfg = loaded
	}

	// Flags take precedence over the config file.
	if *input != "" {
		cfg.Files.Input = *input
	}
	if *output != "" {
		cfg.Files.Output = *output
	}
	if *fiat != "" {
		cfg.Conversion.Fiat = *fiat
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Tag everything this run logs with one ID.
	log = log.With().Str("run_id", uuid.NewString()).Logger()

	// Create context with timeout so the CLI doesn't hang on stuck I/O
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	log.Info().
		Str("input", cfg.Files.Input).
		Str("output", cfg.Files.Output).
		Str("fiat", cfg.Conversion.Fiat).
		Msg("Starting conversion")

	report, err := pipeline.ConvertFile(ctx, cfg.Files.Input, cfg.Files.Output,
		pipeline.Options{Fiat: cfg.Conversion.Fiat})
	if err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}

	fmt.Printf("Converted file written to %s (%d rows).\n", cfg.Files.Output, report.RowsWritten)
}
