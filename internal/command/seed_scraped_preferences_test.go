package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sage-snippets/quotes-recommender/internal/datasources/mocks"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

func TestSeedScrapedPreferences_Execute(t *testing.T) {
	scroller := mocks.NewMockLikingUsersScroller(t)
	likes := mocks.NewMockLikesBatchStorer(t)
	credentials := mocks.NewMockCredentialLister(t)
	cleaner := mocks.NewMockSparseLikeSetCleaner(t)

	scroller.EXPECT().
		ScrollLikingUsers(mock.Anything, "", 2).
		Return([]domain.QuoteLikes{
			{QuoteID: 1, Users: []domain.LikingUserRef{
				{UserID: "u1", UserName: "alice"},
				{UserID: "u2", UserName: "bob"},
			}},
			{QuoteID: 2, Users: []domain.LikingUserRef{
				// No display name; the source user ID stands in.
				{UserID: "u3"},
			}},
		}, "cursor-1", nil)
	scroller.EXPECT().
		ScrollLikingUsers(mock.Anything, "cursor-1", 2).
		Return([]domain.QuoteLikes{
			{QuoteID: 3, Users: []domain.LikingUserRef{
				{UserID: "u1", UserName: "alice"},
			}},
		}, "", nil)

	likes.EXPECT().
		StoreLikesBatch(mock.Anything, []string{"alice", "bob"}, 1).
		Return(nil)
	likes.EXPECT().
		StoreLikesBatch(mock.Anything, []string{"u3"}, 2).
		Return(nil)
	likes.EXPECT().
		StoreLikesBatch(mock.Anything, []string{"alice"}, 3).
		Return(nil)

	credentials.EXPECT().
		GetUserCredentials(mock.Anything).
		Return(map[string]map[string]string{
			"alice": {"password": "hash"},
		}, nil)
	cleaner.EXPECT().
		CleanupSparseLikeSets(mock.Anything, map[string]struct{}{"alice": {}}, 3).
		Return(2, nil)

	cmd := NewSeedScrapedPreferences(scroller, likes, credentials, cleaner, 3, 2)

	result, err := cmd.Execute(testContext(), Empty{})
	require.NoError(t, err)
	require.Equal(t, 3, result.SeededQuotes)
	require.Equal(t, 2, result.RemovedSets)
}

func TestSeedScrapedPreferences_Execute_SkipsQuotesWithoutUsers(t *testing.T) {
	scroller := mocks.NewMockLikingUsersScroller(t)
	likes := mocks.NewMockLikesBatchStorer(t)
	credentials := mocks.NewMockCredentialLister(t)
	cleaner := mocks.NewMockSparseLikeSetCleaner(t)

	scroller.EXPECT().
		ScrollLikingUsers(mock.Anything, "", 100).
		Return([]domain.QuoteLikes{
			{QuoteID: 1},
			{QuoteID: 2, Users: []domain.LikingUserRef{{}}},
		}, "", nil)

	credentials.EXPECT().
		GetUserCredentials(mock.Anything).
		Return(nil, nil)
	cleaner.EXPECT().
		CleanupSparseLikeSets(mock.Anything, map[string]struct{}{}, 3).
		Return(0, nil)

	cmd := NewSeedScrapedPreferences(scroller, likes, credentials, cleaner, 3, 100)

	result, err := cmd.Execute(testContext(), Empty{})
	require.NoError(t, err)
	require.Zero(t, result.SeededQuotes)
	require.Zero(t, result.RemovedSets)
}

func TestSeedScrapedPreferences_Execute_ScrollError(t *testing.T) {
	scroller := mocks.NewMockLikingUsersScroller(t)
	likes := mocks.NewMockLikesBatchStorer(t)
	credentials := mocks.NewMockCredentialLister(t)
	cleaner := mocks.NewMockSparseLikeSetCleaner(t)

	scroller.EXPECT().
		ScrollLikingUsers(mock.Anything, "", 100).
		Return(nil, "", errors.New("index unavailable"))

	cmd := NewSeedScrapedPreferences(scroller, likes, credentials, cleaner, 3, 100)

	_, err := cmd.Execute(testContext(), Empty{})
	require.ErrorContains(t, err, "index unavailable")
}
