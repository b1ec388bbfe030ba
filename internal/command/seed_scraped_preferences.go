package command

import (
	"context"
	"fmt"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// SeedScrapedPreferencesResult summarises one batch run.
type SeedScrapedPreferencesResult struct {
	SeededQuotes int
	RemovedSets  int
}

// SeedScrapedPreferences pages the whole quote index reading only the
// liking_users payload and bulk-adds each (user, quote) pair into the
// ledger, seeding preference data for scraped users who never
// registered. A final cleanup pass deletes unregistered like-sets too
// sparse to be useful, bounding storage growth from few-like noise. It
// may run concurrently with live traffic against the same store; each
// write is an independent set add.
type SeedScrapedPreferences struct {
	Scroller    datasources.LikingUsersScroller
	Likes       datasources.LikesBatchStorer
	Credentials datasources.CredentialLister
	Cleaner     datasources.SparseLikeSetCleaner

	// Threshold is the minimum like-set size an unregistered user
	// needs to survive cleanup; the similarity resolver uses the same
	// value.
	Threshold int
	PageSize  int
}

func NewSeedScrapedPreferences(
	scroller datasources.LikingUsersScroller,
	likes datasources.LikesBatchStorer,
	credentials datasources.CredentialLister,
	cleaner datasources.SparseLikeSetCleaner,
	threshold int,
	pageSize int,
) *SeedScrapedPreferences {
	return &SeedScrapedPreferences{
		Scroller:    scroller,
		Likes:       likes,
		Credentials: credentials,
		Cleaner:     cleaner,
		Threshold:   threshold,
		PageSize:    pageSize,
	}
}

func (c *SeedScrapedPreferences) Execute(
	ctx context.Context, _ Empty,
) (SeedScrapedPreferencesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	result := SeedScrapedPreferencesResult{}

	cursor := ""
	for {
		page, nextCursor, err := c.Scroller.ScrollLikingUsers(ctx, cursor, c.PageSize)
		if err != nil {
			return result, fmt.Errorf("scrolling liking users: %w", err)
		}

		for _, quoteLikes := range page {
			userNames := make([]string, 0, len(quoteLikes.Users))
			for _, user := range quoteLikes.Users {
				name := user.UserName
				if name == "" {
					name = user.UserID
				}
				if name != "" {
					userNames = append(userNames, name)
				}
			}
			if len(userNames) == 0 {
				continue
			}

			if err := c.Likes.StoreLikesBatch(ctx, userNames, quoteLikes.QuoteID); err != nil {
				return result, fmt.Errorf("seeding likes for quote [%d]: %w", quoteLikes.QuoteID, err)
			}
			result.SeededQuotes++
		}

		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}

	credentials, err := c.Credentials.GetUserCredentials(ctx)
	if err != nil {
		return result, fmt.Errorf("listing registered users: %w", err)
	}
	registered := make(map[string]struct{}, len(credentials))
	for username := range credentials {
		registered[username] = struct{}{}
	}

	removed, err := c.Cleaner.CleanupSparseLikeSets(ctx, registered, c.Threshold)
	if err != nil {
		return result, fmt.Errorf("cleaning up sparse like sets: %w", err)
	}
	result.RemovedSets = removed

	logger.InfoContext(ctx, "seeded scraped preferences",
		"seeded_quotes", result.SeededQuotes, "removed_sets", result.RemovedSets)

	return result, nil
}
