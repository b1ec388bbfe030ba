package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sage-snippets/quotes-recommender/internal/app"
	"github.com/sage-snippets/quotes-recommender/internal/command"
	"github.com/sage-snippets/quotes-recommender/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "quote ingestion failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "quote ingestion completed successfully")
}

func run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	input := os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer func() { _ = f.Close() }()
		input = f
	}

	tags, err := domain.LoadTagNormalizer(os.Getenv("TAG_MAPPING_PATH"))
	if err != nil {
		return fmt.Errorf("loading tag mappings: %w", err)
	}

	ledger, err := app.SetupPreferenceLedger(ctx)
	if err != nil {
		return fmt.Errorf("connecting to preference ledger: %w", err)
	}

	vectorStore, err := app.SetupVectorStore(ctx)
	if err != nil {
		return fmt.Errorf("connecting to vector store: %w", err)
	}

	embedder := app.SetupEmbedder(ctx)
	threshold := app.MustGetEnvAsInt(ctx, "SIMILARITY_THRESHOLD")

	ingestCmd := command.NewIngestQuote(
		embedder,
		vectorStore,
		vectorStore,
		vectorStore,
		tags,
		command.DefaultIngestQuoteConfig(),
	)

	if err := ingestQuotes(ctx, input, ingestCmd); err != nil {
		return err
	}

	seedCmd := command.NewSeedScrapedPreferences(
		vectorStore,
		ledger,
		ledger,
		ledger,
		threshold,
		100,
	)

	result, err := seedCmd.Execute(ctx, command.Empty{})
	if err != nil {
		return fmt.Errorf("seeding scraped preferences: %w", err)
	}

	logger.InfoContext(ctx, "scraped preferences seeded",
		"seeded_quotes", result.SeededQuotes,
		"removed_sets", result.RemovedSets,
	)

	return nil
}

// ingestQuotes reads one JSON quote record per line and runs each
// through the deduplicating ingest command. Failed records are logged
// and skipped so a rerun of the same input can re-drive them.
func ingestQuotes(ctx context.Context, input io.Reader, ingestCmd *command.IngestQuote) error {
	logger := domain.LoggerFromContext(ctx)

	counts := map[command.IngestAction]int{}
	failed := 0

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var quote domain.Quote
		if err := json.Unmarshal(line, &quote); err != nil {
			return fmt.Errorf("parsing quote record on line %d: %w", lineNo, err)
		}

		action, err := ingestCmd.Execute(ctx, command.IngestQuoteRequest{Quote: quote})
		if err != nil {
			logger.ErrorContext(ctx, "unable to ingest quote",
				"quote_id", quote.ID, "line", lineNo, "error", err)
			failed++
			continue
		}
		counts[action]++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading quote records: %w", err)
	}

	logger.InfoContext(ctx, "ingest pass finished",
		"upserted", counts[command.ActionUnmatched]+counts[command.ActionAuthorMatched],
		"author_matched", counts[command.ActionAuthorMatched],
		"duplicates_skipped", counts[command.ActionDuplicateSkipped],
		"failed", failed,
	)

	return nil
}
