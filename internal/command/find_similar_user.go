package command

import (
	"context"
	"fmt"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// FindMostSimilarUser ranks every other user's like-set against the
// target by intersection size. This is a deliberate brute-force scan
// over all preference keys, O(users x average set size); fine while the
// user base stays small.
type FindMostSimilarUser struct {
	Preferences datasources.PreferencesGetter
	Scanner     datasources.LikeSetScanner

	// Threshold is the minimum intersection size for two users to
	// count as similar. The cleanup job shares the same value.
	Threshold int
}

func NewFindMostSimilarUser(
	preferences datasources.PreferencesGetter,
	scanner datasources.LikeSetScanner,
	threshold int,
) *FindMostSimilarUser {
	return &FindMostSimilarUser{
		Preferences: preferences,
		Scanner:     scanner,
		Threshold:   threshold,
	}
}

// Execute returns the most similar user's name, or "" when nobody
// clears the threshold. Among qualifying candidates the winner is the
// one with the LARGEST raw like-set, not the largest intersection:
// ties in similarity go to overall activity volume. Equal set sizes
// fall back to the lexicographically smallest name so repeated calls
// agree.
func (c *FindMostSimilarUser) Execute(ctx context.Context, username string) (string, error) {
	logger := domain.LoggerFromContext(ctx)

	targetLikes, _, err := c.Preferences.GetUserPreferences(ctx, username)
	if err != nil {
		return "", fmt.Errorf("reading target user preferences: %w", err)
	}
	if len(targetLikes) == 0 {
		return "", nil
	}

	targetSet := make(map[int]struct{}, len(targetLikes))
	for _, id := range targetLikes {
		targetSet[id] = struct{}{}
	}

	likeSets, err := c.Scanner.ScanLikeSets(ctx)
	if err != nil {
		return "", fmt.Errorf("scanning like sets: %w", err)
	}

	bestUser := ""
	bestSize := 0
	for other, likes := range likeSets {
		if other == username {
			continue
		}

		overlap := 0
		for _, id := range likes {
			if _, ok := targetSet[id]; ok {
				overlap++
			}
		}
		if overlap < c.Threshold {
			continue
		}

		if len(likes) > bestSize || (len(likes) == bestSize && (bestUser == "" || other < bestUser)) {
			bestUser = other
			bestSize = len(likes)
		}
	}

	if bestUser != "" {
		logger.DebugContext(ctx, "found similar user",
			"username", username, "similar_user", bestUser, "like_set_size", bestSize)
	}

	return bestUser, nil
}
