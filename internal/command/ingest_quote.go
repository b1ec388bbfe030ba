package command

import (
	"context"
	"fmt"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// IngestAction reports what the deduplicator did with a scraped quote.
type IngestAction string

const (
	// ActionDuplicateSkipped means a near-identical quote already
	// exists; nothing was upserted.
	ActionDuplicateSkipped IngestAction = "duplicate_skipped"
	// ActionAuthorMatched means the quote was upserted after an
	// existing same-author entry was found for metadata backfill.
	ActionAuthorMatched IngestAction = "author_matched"
	// ActionUnmatched means the quote was upserted with no existing
	// duplicate or author match.
	ActionUnmatched IngestAction = "unmatched"
)

// IngestQuoteConfig holds deduplication tuning.
type IngestQuoteConfig struct {
	// DuplicateScoreFloor is the cosine similarity above which the
	// nearest neighbour counts as the same quote.
	DuplicateScoreFloor float32
}

func DefaultIngestQuoteConfig() IngestQuoteConfig {
	return IngestQuoteConfig{
		DuplicateScoreFloor: 0.9,
	}
}

// IngestQuoteRequest carries one scraped quote record.
type IngestQuoteRequest struct {
	Quote domain.Quote
}

// IngestQuote deduplicates a scraped quote against the index before
// upserting it. Authors are assumed consistently named across entries;
// there is no fuzzy author matching. Upsert failures propagate as hard
// errors and the item is not retried here; the batch job re-drives
// failed items.
type IngestQuote struct {
	Embedder datasources.Embedder
	Nearest  datasources.NearestQuoteFinder
	Authors  datasources.AuthorQuoteFinder
	Upserter datasources.QuoteUpserter
	Tags     domain.TagNormalizer
	Config   IngestQuoteConfig
}

func NewIngestQuote(
	embedder datasources.Embedder,
	nearest datasources.NearestQuoteFinder,
	authors datasources.AuthorQuoteFinder,
	upserter datasources.QuoteUpserter,
	tags domain.TagNormalizer,
	config IngestQuoteConfig,
) *IngestQuote {
	return &IngestQuote{
		Embedder: embedder,
		Nearest:  nearest,
		Authors:  authors,
		Upserter: upserter,
		Tags:     tags,
		Config:   config,
	}
}

func (c *IngestQuote) Execute(ctx context.Context, req IngestQuoteRequest) (IngestAction, error) {
	logger := domain.LoggerFromContext(ctx).With("quote_id", req.Quote.ID)

	vector, err := c.Embedder.EmbedText(ctx, req.Quote.Text)
	if err != nil {
		return "", fmt.Errorf("embedding quote text: %w", err)
	}

	duplicate, err := c.Nearest.FindNearestQuote(ctx, vector, c.Config.DuplicateScoreFloor)
	if err != nil {
		return "", fmt.Errorf("checking for duplicates: %w", err)
	}
	if duplicate != nil {
		logger.WarnContext(ctx, "duplicate quote found, skipping upsert",
			"existing_quote_id", duplicate.Quote.ID, "score", duplicate.Score)
		return ActionDuplicateSkipped, nil
	}

	action := ActionUnmatched
	quote := req.Quote

	existing, err := c.Authors.FindQuoteByAuthor(ctx, vector, quote.Author)
	if err != nil {
		return "", fmt.Errorf("checking for same-author entries: %w", err)
	}
	if existing != nil {
		action = ActionAuthorMatched
		if existing.AvatarImg != "" {
			quote.AvatarImg = existing.AvatarImg
		}
	}

	quote.Tags = c.Tags.Normalize(quote.Tags)

	if err := c.Upserter.UpsertQuote(ctx, quote, vector); err != nil {
		return "", fmt.Errorf("upserting quote: %w", err)
	}

	logger.DebugContext(ctx, "quote upserted", "action", string(action))
	return action, nil
}
