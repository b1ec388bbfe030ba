package datasources

import (
	"context"

	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// VectorStore combines all quote index capabilities.
type VectorStore interface {
	QuoteUpserter
	NearestQuoteFinder
	AuthorQuoteFinder
	QuoteSearcher
	QuotesFetcher
	QuoteScroller
	LikingUsersScroller
	QuoteRecommender
}

type QuoteUpserter interface {
	// UpsertQuote writes the quote's vector and payload to the index.
	UpsertQuote(ctx context.Context, quote domain.Quote, vector []float32) error
}

type NearestQuoteFinder interface {
	// FindNearestQuote returns the single nearest neighbour whose
	// similarity score clears the floor, or nil if none does.
	FindNearestQuote(ctx context.Context, vector []float32, scoreFloor float32) (*domain.ScoredQuote, error)
}

type AuthorQuoteFinder interface {
	// FindQuoteByAuthor returns the top match among entries with an
	// exactly matching author, regardless of score, or nil.
	FindQuoteByAuthor(ctx context.Context, vector []float32, author string) (*domain.Quote, error)
}

type QuoteSearcher interface {
	// SearchQuotesByVector returns the quotes nearest to the vector,
	// optionally restricted by filters.
	SearchQuotesByVector(
		ctx context.Context,
		vector []float32,
		filters domain.QuoteFilters,
		limit int,
	) ([]domain.ScoredQuote, error)
}

type QuotesFetcher interface {
	// FetchQuotesByID retrieves quote payloads by their IDs. Unknown
	// IDs are silently absent from the result.
	FetchQuotesByID(ctx context.Context, ids []int) ([]domain.Quote, error)
}

type QuoteScroller interface {
	// ScrollQuotes pages through the whole index in ID-listing order.
	// An empty cursor starts the scan; an empty next cursor ends it.
	ScrollQuotes(ctx context.Context, cursor string, limit int) ([]domain.Quote, string, error)
}

type LikingUsersScroller interface {
	// ScrollLikingUsers pages through the whole index reading only the
	// liking_users payload field. An empty cursor starts the scan; an
	// empty next cursor ends it.
	ScrollLikingUsers(ctx context.Context, cursor string, limit int) ([]domain.QuoteLikes, string, error)
}

type QuoteRecommender interface {
	// RecommendQuotes returns quotes similar to the positives and
	// dissimilar to the negatives, excluding both input sets.
	RecommendQuotes(ctx context.Context, positives, negatives []int, limit int) ([]domain.ScoredQuote, error)
}

// NullVectorStore is a null implementation of VectorStore.
type NullVectorStore struct{}

var _ VectorStore = NullVectorStore{}

func (NullVectorStore) UpsertQuote(_ context.Context, _ domain.Quote, _ []float32) error {
	return nil
}

func (NullVectorStore) FindNearestQuote(_ context.Context, _ []float32, _ float32) (*domain.ScoredQuote, error) {
	return nil, nil
}

func (NullVectorStore) FindQuoteByAuthor(_ context.Context, _ []float32, _ string) (*domain.Quote, error) {
	return nil, nil
}

func (NullVectorStore) SearchQuotesByVector(
	_ context.Context, _ []float32, _ domain.QuoteFilters, _ int,
) ([]domain.ScoredQuote, error) {
	return nil, nil
}

func (NullVectorStore) FetchQuotesByID(_ context.Context, _ []int) ([]domain.Quote, error) {
	return nil, nil
}

func (NullVectorStore) ScrollQuotes(_ context.Context, _ string, _ int) ([]domain.Quote, string, error) {
	return nil, "", nil
}

func (NullVectorStore) ScrollLikingUsers(_ context.Context, _ string, _ int) ([]domain.QuoteLikes, string, error) {
	return nil, "", nil
}

func (NullVectorStore) RecommendQuotes(_ context.Context, _, _ []int, _ int) ([]domain.ScoredQuote, error) {
	return nil, nil
}
