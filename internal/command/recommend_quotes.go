package command

import (
	"context"
	"fmt"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// RecommendQuotesConfig caps the two recommendation lists.
type RecommendQuotesConfig struct {
	ItemItemLimit int
	UserUserLimit int
}

func DefaultRecommendQuotesConfig() RecommendQuotesConfig {
	return RecommendQuotesConfig{
		ItemItemLimit: 10,
		UserUserLimit: 10,
	}
}

// RecommendQuotesRequest asks for recommendations for one user.
type RecommendQuotesRequest struct {
	Username string
}

// RecommendQuotesResult carries both recommendation lists. Either list
// may be empty; a user with unusual taste is a normal outcome, not an
// error.
type RecommendQuotesResult struct {
	ItemItem    []domain.ScoredQuote
	UserUser    []domain.Quote
	SimilarUser string
}

// RecommendQuotes assembles item-item recommendations from the vector
// index and user-user recommendations from the most similar user's
// like-set.
type RecommendQuotes struct {
	Preferences datasources.PreferencesGetter
	Recommender datasources.QuoteRecommender
	Fetcher     datasources.QuotesFetcher
	SimilarUser *FindMostSimilarUser
	Config      RecommendQuotesConfig
}

func NewRecommendQuotes(
	preferences datasources.PreferencesGetter,
	recommender datasources.QuoteRecommender,
	fetcher datasources.QuotesFetcher,
	similarUser *FindMostSimilarUser,
	config RecommendQuotesConfig,
) *RecommendQuotes {
	return &RecommendQuotes{
		Preferences: preferences,
		Recommender: recommender,
		Fetcher:     fetcher,
		SimilarUser: similarUser,
		Config:      config,
	}
}

func (c *RecommendQuotes) Execute(
	ctx context.Context, req RecommendQuotesRequest,
) (RecommendQuotesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	likes, dislikes, err := c.Preferences.GetUserPreferences(ctx, req.Username)
	if err != nil {
		return RecommendQuotesResult{}, fmt.Errorf("reading preferences: %w", err)
	}
	if len(likes) == 0 && len(dislikes) == 0 {
		return RecommendQuotesResult{}, nil
	}

	result := RecommendQuotesResult{}

	result.ItemItem, err = c.Recommender.RecommendQuotes(ctx, likes, dislikes, c.Config.ItemItemLimit)
	if err != nil {
		return RecommendQuotesResult{}, fmt.Errorf("getting item-item recommendations: %w", err)
	}

	similarUser, err := c.SimilarUser.Execute(ctx, req.Username)
	if err != nil {
		return RecommendQuotesResult{}, fmt.Errorf("finding similar user: %w", err)
	}
	if similarUser == "" {
		return result, nil
	}
	result.SimilarUser = similarUser

	similarLikes, _, err := c.Preferences.GetUserPreferences(ctx, similarUser)
	if err != nil {
		return RecommendQuotesResult{}, fmt.Errorf("reading similar user preferences: %w", err)
	}

	// Non-symmetric difference: quotes they liked that the target
	// user has not yet rated as a like.
	candidates := difference(similarLikes, likes)
	if len(candidates) > c.Config.UserUserLimit {
		candidates = candidates[:c.Config.UserUserLimit]
	}
	if len(candidates) == 0 {
		return result, nil
	}

	result.UserUser, err = c.Fetcher.FetchQuotesByID(ctx, candidates)
	if err != nil {
		return RecommendQuotesResult{}, fmt.Errorf("fetching user-user recommendations: %w", err)
	}

	logger.DebugContext(ctx, "assembled recommendations",
		"username", req.Username,
		"item_item", len(result.ItemItem),
		"user_user", len(result.UserUser),
		"similar_user", similarUser)

	return result, nil
}
