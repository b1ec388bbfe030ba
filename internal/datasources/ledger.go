package datasources

import (
	"context"
)

// PreferenceLedger combines all capabilities of the per-user
// like/dislike set store.
type PreferenceLedger interface {
	PreferencesGetter
	PreferencesSetter
	PreferenceDeleter
	UserRegistrar
	CredentialLister
	LikeSetScanner
	LikesBatchStorer
	SparseLikeSetCleaner
}

type PreferencesGetter interface {
	// GetUserPreferences returns the user's liked and disliked quote
	// IDs. A user with no history yields empty slices, not an error.
	GetUserPreferences(ctx context.Context, username string) (likes, dislikes []int, err error)
}

type PreferencesSetter interface {
	// SetUserPreferences moves every supplied ID into its destination
	// set, removing it from the opposite set when present. Both
	// polarities may be supplied; each is reconciled against its own
	// opposite set. Reporting is all-or-nothing over the batch while
	// each ID's move stays atomic.
	SetUserPreferences(ctx context.Context, username string, likes, dislikes []int) error
}

type PreferenceDeleter interface {
	// DeleteUserPreference removes the supplied IDs from one
	// preference set. Exactly one polarity must be non-empty,
	// otherwise domain.ErrExactlyOnePolarity. Removing IDs that were
	// never present is (false, nil).
	DeleteUserPreference(ctx context.Context, username string, likes, dislikes []int) (changed bool, err error)
}

type UserRegistrar interface {
	// RegisterUser stores an opaque credential map under the username.
	// Returns domain.ErrUserExists when the username is already taken.
	RegisterUser(ctx context.Context, username string, credentials map[string]string) error
}

type CredentialLister interface {
	// GetUserCredentials returns every registered username mapped to
	// its credential fields.
	GetUserCredentials(ctx context.Context) (map[string]map[string]string, error)
}

type LikeSetScanner interface {
	// ScanLikeSets enumerates every user's like-set. This is a full
	// keyspace scan, O(users x set size); acceptable while the user
	// count stays small.
	ScanLikeSets(ctx context.Context) (map[string][]int, error)
}

type LikesBatchStorer interface {
	// StoreLikesBatch adds one quote ID to each named user's like-set.
	// Names that cannot serve as ledger usernames are skipped.
	StoreLikesBatch(ctx context.Context, userNames []string, quoteID int) error
}

type SparseLikeSetCleaner interface {
	// CleanupSparseLikeSets deletes like-sets whose owner is not
	// registered and whose cardinality is below threshold. Returns the
	// number of sets removed.
	CleanupSparseLikeSets(ctx context.Context, registered map[string]struct{}, threshold int) (removed int, err error)
}
