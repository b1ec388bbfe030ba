package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sage-snippets/quotes-recommender/internal/datasources/mocks"
)

func TestFindMostSimilarUser_Execute(t *testing.T) {
	cases := []struct {
		name        string
		targetLikes []int
		likeSets    map[string][]int
		threshold   int
		want        string
	}{
		{
			name:        "largest_raw_set_wins",
			targetLikes: []int{1, 2, 3, 4},
			likeSets: map[string][]int{
				"bob":   {1, 2},
				"carol": {1, 2, 3, 9},
				"dave":  {1, 2, 3, 4, 5, 6},
			},
			threshold: 3,
			want:      "dave",
		},
		{
			// Equal intersections: the candidate with more likes
			// overall wins, even though the overlap is the same.
			name:        "activity_volume_breaks_similarity_tie",
			targetLikes: []int{1, 2, 3},
			likeSets: map[string][]int{
				"bob":   {1, 2, 3},
				"carol": {1, 2, 3, 7, 8},
			},
			threshold: 3,
			want:      "carol",
		},
		{
			name:        "equal_sizes_fall_back_to_name_order",
			targetLikes: []int{1, 2, 3},
			likeSets: map[string][]int{
				"carol": {1, 2, 3},
				"bob":   {1, 2, 3},
			},
			threshold: 3,
			want:      "bob",
		},
		{
			name:        "nobody_clears_threshold",
			targetLikes: []int{1, 2, 3},
			likeSets: map[string][]int{
				"bob":   {1, 2},
				"carol": {3},
			},
			threshold: 3,
			want:      "",
		},
		{
			name:        "target_excluded_from_candidates",
			targetLikes: []int{1, 2, 3},
			likeSets: map[string][]int{
				"alice": {1, 2, 3},
				"bob":   {1, 2, 3, 4},
			},
			threshold: 3,
			want:      "bob",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			preferences := mocks.NewMockPreferencesGetter(t)
			scanner := mocks.NewMockLikeSetScanner(t)

			preferences.EXPECT().
				GetUserPreferences(mock.Anything, "alice").
				Return(tc.targetLikes, nil, nil)
			scanner.EXPECT().
				ScanLikeSets(mock.Anything).
				Return(tc.likeSets, nil)

			cmd := NewFindMostSimilarUser(preferences, scanner, tc.threshold)

			got, err := cmd.Execute(testContext(), "alice")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFindMostSimilarUser_Execute_NoLikesSkipsScan(t *testing.T) {
	preferences := mocks.NewMockPreferencesGetter(t)
	scanner := mocks.NewMockLikeSetScanner(t)

	preferences.EXPECT().
		GetUserPreferences(mock.Anything, "alice").
		Return(nil, []int{5}, nil)

	cmd := NewFindMostSimilarUser(preferences, scanner, 3)

	got, err := cmd.Execute(testContext(), "alice")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFindMostSimilarUser_Execute_ScanError(t *testing.T) {
	preferences := mocks.NewMockPreferencesGetter(t)
	scanner := mocks.NewMockLikeSetScanner(t)

	preferences.EXPECT().
		GetUserPreferences(mock.Anything, "alice").
		Return([]int{1, 2, 3}, nil, nil)
	scanner.EXPECT().
		ScanLikeSets(mock.Anything).
		Return(nil, errors.New("scan failed"))

	cmd := NewFindMostSimilarUser(preferences, scanner, 3)

	_, err := cmd.Execute(testContext(), "alice")
	require.ErrorContains(t, err, "scan failed")
}
