package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

func setupTestStore(t *testing.T) *Store {
	if testing.Short() {
		t.Skip("skipping Redis integration tests in short mode")
	}

	store, err := Connect(context.Background(), Config{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   15, // keep integration test data out of any real DB
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		cleanupTestUsers(t, store,
			"inttest-alice", "inttest-bob", "inttest-carol", "inttest-sparse")
		_ = store.Close()
	})

	return store
}

func cleanupTestUsers(t *testing.T, store *Store, usernames ...string) {
	ctx := context.Background()
	for _, username := range usernames {
		keys := []string{
			credentialsKey(username),
			preferenceKey(username, domain.PolarityLike),
			preferenceKey(username, domain.PolarityDislike),
		}
		for _, key := range keys {
			require.NoError(t, store.client.Del(ctx, key).Err())
		}
	}
}

func TestStore_SetUserPreferences_MutualExclusivity(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetUserPreferences(ctx, "inttest-alice", []int{1, 2, 3}, nil))

	likes, dislikes, err := store.GetUserPreferences(ctx, "inttest-alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, likes)
	assert.Empty(t, dislikes)

	// Disliking a liked quote moves it out of the like set.
	require.NoError(t, store.SetUserPreferences(ctx, "inttest-alice", nil, []int{2}))

	likes, dislikes, err = store.GetUserPreferences(ctx, "inttest-alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 3}, likes)
	assert.ElementsMatch(t, []int{2}, dislikes)

	// And liking it again moves it back.
	require.NoError(t, store.SetUserPreferences(ctx, "inttest-alice", []int{2}, nil))

	likes, dislikes, err = store.GetUserPreferences(ctx, "inttest-alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3}, likes)
	assert.Empty(t, dislikes)
}

func TestStore_SetUserPreferences_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetUserPreferences(ctx, "inttest-alice", []int{5}, nil))
	require.NoError(t, store.SetUserPreferences(ctx, "inttest-alice", []int{5}, nil))

	likes, dislikes, err := store.GetUserPreferences(ctx, "inttest-alice")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, likes)
	assert.Empty(t, dislikes)
}

func TestStore_DeleteUserPreference(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetUserPreferences(ctx, "inttest-alice", []int{1, 2}, []int{3}))

	changed, err := store.DeleteUserPreference(ctx, "inttest-alice", []int{2}, nil)
	require.NoError(t, err)
	assert.True(t, changed)

	// Removing an absent member is a no-op, not an error.
	changed, err = store.DeleteUserPreference(ctx, "inttest-alice", []int{99}, nil)
	require.NoError(t, err)
	assert.False(t, changed)

	likes, dislikes, err := store.GetUserPreferences(ctx, "inttest-alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1}, likes)
	assert.ElementsMatch(t, []int{3}, dislikes)
}

func TestStore_DeleteUserPreference_ExactlyOnePolarity(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.DeleteUserPreference(ctx, "inttest-alice", []int{1}, []int{2})
	assert.ErrorIs(t, err, domain.ErrExactlyOnePolarity)

	_, err = store.DeleteUserPreference(ctx, "inttest-alice", nil, nil)
	assert.ErrorIs(t, err, domain.ErrExactlyOnePolarity)
}

func TestStore_RegisterUser_And_GetUserCredentials(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RegisterUser(ctx, "inttest-alice", map[string]string{
		"password": "hashed",
		"email":    "alice@example.com",
	}))

	credentials, err := store.GetUserCredentials(ctx)
	require.NoError(t, err)
	require.Contains(t, credentials, "inttest-alice")
	assert.Equal(t, "hashed", credentials["inttest-alice"]["password"])
	assert.Equal(t, "alice@example.com", credentials["inttest-alice"]["email"])
}

func TestStore_RegisterUser_DuplicateUsername(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RegisterUser(ctx, "inttest-alice", map[string]string{
		"password": "first",
	}))

	err := store.RegisterUser(ctx, "inttest-alice", map[string]string{
		"password": "second",
	})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	credentials, err := store.GetUserCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", credentials["inttest-alice"]["password"])
}

func TestStore_RegisterUser_InvalidUsername(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	assert.Error(t, store.RegisterUser(ctx, "", map[string]string{"password": "x"}))
	assert.Error(t, store.RegisterUser(ctx, "bad:name", map[string]string{"password": "x"}))
}

func TestStore_ScanLikeSets(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetUserPreferences(ctx, "inttest-alice", []int{1, 2}, nil))
	require.NoError(t, store.SetUserPreferences(ctx, "inttest-bob", []int{2, 3}, nil))

	likeSets, err := store.ScanLikeSets(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, likeSets["inttest-alice"])
	assert.ElementsMatch(t, []int{2, 3}, likeSets["inttest-bob"])
}

func TestStore_StoreLikesBatch(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.StoreLikesBatch(ctx, []string{"inttest-alice", "inttest-bob"}, 7))
	require.NoError(t, store.StoreLikesBatch(ctx, []string{"inttest-alice"}, 8))

	likes, _, err := store.GetUserPreferences(ctx, "inttest-alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{7, 8}, likes)

	likes, _, err = store.GetUserPreferences(ctx, "inttest-bob")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{7}, likes)
}

func TestStore_StoreLikesBatch_SkipsUnusableNames(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// "inttest-alice:goodreads" would be stored under a key the scan
	// attributes to inttest-alice, clobbering her real like-set.
	require.NoError(t, store.StoreLikesBatch(ctx,
		[]string{"inttest-alice", "inttest-alice:goodreads", ""}, 7))

	likes, _, err := store.GetUserPreferences(ctx, "inttest-alice")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{7}, likes)

	likes, _, err = store.GetUserPreferences(ctx, "inttest-alice:goodreads")
	require.NoError(t, err)
	assert.Empty(t, likes)

	require.NoError(t, store.StoreLikesBatch(ctx, []string{"bad:name", ""}, 8))
	likeSets, err := store.ScanLikeSets(ctx)
	require.NoError(t, err)
	assert.NotContains(t, likeSets, "bad")
}

func TestStore_CleanupSparseLikeSets(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// carol is registered and sparse, sparse is unregistered and
	// sparse, bob is unregistered but active enough to keep.
	require.NoError(t, store.SetUserPreferences(ctx, "inttest-carol", []int{1}, nil))
	require.NoError(t, store.SetUserPreferences(ctx, "inttest-sparse", []int{1}, nil))
	require.NoError(t, store.SetUserPreferences(ctx, "inttest-bob", []int{1, 2, 3}, nil))

	registered := map[string]struct{}{"inttest-carol": {}}
	removed, err := store.CleanupSparseLikeSets(ctx, registered, 3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, 1)

	likeSets, err := store.ScanLikeSets(ctx)
	require.NoError(t, err)
	assert.Contains(t, likeSets, "inttest-carol")
	assert.Contains(t, likeSets, "inttest-bob")
	assert.NotContains(t, likeSets, "inttest-sparse")
}
