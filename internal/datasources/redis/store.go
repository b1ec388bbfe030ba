package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sage-snippets/quotes-recommender/internal/datasources"
	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

var _ datasources.PreferenceLedger = (*Store)(nil)

// scanCount is the per-round hint for SCAN-based enumeration.
const scanCount = 100

// Config carries the connection parameters for the preference store.
type Config struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// Store is the preference ledger: per-user like/dislike sets plus
// credential hashes, all in Redis. It performs no in-process locking;
// the mutual-exclusivity invariant between the two sets of one user is
// maintained with per-key set primitives and transactional pipelines.
type Store struct {
	client *goredis.Client
}

// Connect creates a Store and verifies the connection. An unreachable
// store fails here, before any operation is attempted.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("no redis address specified")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Username:    cfg.Username,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &Store{client: client}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) GetUserPreferences(ctx context.Context, username string) ([]int, []int, error) {
	likes, err := s.readSet(ctx, preferenceKey(username, domain.PolarityLike))
	if err != nil {
		return nil, nil, fmt.Errorf("reading like set: %w", err)
	}

	dislikes, err := s.readSet(ctx, preferenceKey(username, domain.PolarityDislike))
	if err != nil {
		return nil, nil, fmt.Errorf("reading dislike set: %w", err)
	}

	return likes, dislikes, nil
}

func (s *Store) SetUserPreferences(ctx context.Context, username string, likes, dislikes []int) error {
	likeKey := preferenceKey(username, domain.PolarityLike)
	dislikeKey := preferenceKey(username, domain.PolarityDislike)

	if len(likes) > 0 {
		if err := s.syncPreferences(ctx, likes, dislikeKey, likeKey); err != nil {
			return fmt.Errorf("syncing likes: %w", err)
		}
	}
	if len(dislikes) > 0 {
		if err := s.syncPreferences(ctx, dislikes, likeKey, dislikeKey); err != nil {
			return fmt.Errorf("syncing dislikes: %w", err)
		}
	}

	return nil
}

// syncPreferences moves a batch of IDs into the destination set while
// keeping the two sets mutually exclusive. IDs already in the opposite
// set are moved with SMOVE (atomic per ID); the remainder is added in
// one SADD. All writes go through one transactional pipeline, so a
// failed call never leaves an ID in both or neither set relative to its
// state before the call. There is no ordering guarantee across IDs.
func (s *Store) syncPreferences(ctx context.Context, ids []int, srcKey, dstKey string) error {
	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}

	inOpposite, err := s.client.SMIsMember(ctx, srcKey, members...).Result()
	if err != nil {
		return fmt.Errorf("checking opposite set membership: %w", err)
	}

	pipe := s.client.TxPipeline()
	var adds []interface{}
	for i, id := range ids {
		if inOpposite[i] {
			pipe.SMove(ctx, srcKey, dstKey, id)
		} else {
			adds = append(adds, id)
		}
	}
	if len(adds) > 0 {
		pipe.SAdd(ctx, dstKey, adds...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("applying preference moves: %w", err)
	}

	return nil
}

func (s *Store) DeleteUserPreference(ctx context.Context, username string, likes, dislikes []int) (bool, error) {
	if (len(likes) > 0) == (len(dislikes) > 0) {
		return false, domain.ErrExactlyOnePolarity
	}

	key := preferenceKey(username, domain.PolarityLike)
	ids := likes
	if len(dislikes) > 0 {
		key = preferenceKey(username, domain.PolarityDislike)
		ids = dislikes
	}

	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}

	// SREM only removes members actually present; its count tells us
	// whether anything changed, which is a no-op, not an error.
	removed, err := s.client.SRem(ctx, key, members...).Result()
	if err != nil {
		return false, fmt.Errorf("removing preferences: %w", err)
	}

	return removed > 0, nil
}

func (s *Store) RegisterUser(ctx context.Context, username string, credentials map[string]string) error {
	if username == "" || strings.Contains(username, ":") {
		return fmt.Errorf("invalid username [%s]", username)
	}

	key := credentialsKey(username)

	// HSETNX on a guard field claims the username atomically, so two
	// concurrent registrations of the same name cannot both succeed.
	claimed, err := s.client.HSetNX(ctx, key, "username", username).Result()
	if err != nil {
		return fmt.Errorf("claiming username: %w", err)
	}
	if !claimed {
		return domain.ErrUserExists
	}

	values := make(map[string]interface{}, len(credentials))
	for field, value := range credentials {
		values[field] = value
	}

	if err := s.client.HSet(ctx, key, values).Err(); err != nil {
		return fmt.Errorf("storing credentials: %w", err)
	}

	return nil
}

func (s *Store) GetUserCredentials(ctx context.Context) (map[string]map[string]string, error) {
	credentials := make(map[string]map[string]string)

	iter := s.client.ScanType(ctx, 0, credentialsKeyPattern, scanCount, "hash").Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		username, ok := usernameFromKey(key)
		if !ok {
			continue
		}

		fields, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("reading credentials for [%s]: %w", username, err)
		}
		credentials[username] = fields
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scanning credential keys: %w", err)
	}

	return credentials, nil
}

func (s *Store) ScanLikeSets(ctx context.Context) (map[string][]int, error) {
	likeSets := make(map[string][]int)

	iter := s.client.ScanType(ctx, 0, likeSetKeyPattern, scanCount, "set").Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		username, ok := usernameFromKey(key)
		if !ok {
			continue
		}

		likes, err := s.readSet(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("reading like set for [%s]: %w", username, err)
		}
		likeSets[username] = likes
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scanning like set keys: %w", err)
	}

	return likeSets, nil
}

func (s *Store) StoreLikesBatch(ctx context.Context, userNames []string, quoteID int) error {
	logger := domain.LoggerFromContext(ctx)

	pipe := s.client.TxPipeline()
	queued := 0
	for _, name := range userNames {
		// Scraped names are untrusted; a ':' would make the key scan
		// attribute this set to the wrong user.
		if name == "" || strings.Contains(name, ":") {
			logger.WarnContext(ctx, "skipping unusable scraped user name",
				"user_name", name, "quote_id", quoteID)
			continue
		}
		pipe.SAdd(ctx, preferenceKey(name, domain.PolarityLike), quoteID)
		queued++
	}
	if queued == 0 {
		return nil
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("storing likes batch for quote [%d]: %w", quoteID, err)
	}

	return nil
}

func (s *Store) CleanupSparseLikeSets(
	ctx context.Context, registered map[string]struct{}, threshold int,
) (int, error) {
	removed := 0

	iter := s.client.ScanType(ctx, 0, likeSetKeyPattern, scanCount, "set").Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		username, ok := usernameFromKey(key)
		if !ok {
			continue
		}

		// Registered users keep their sets no matter how small.
		if _, isRegistered := registered[username]; isRegistered {
			continue
		}

		size, err := s.client.SCard(ctx, key).Result()
		if err != nil {
			return removed, fmt.Errorf("sizing like set for [%s]: %w", username, err)
		}
		if size >= int64(threshold) {
			continue
		}

		if err := s.client.Del(ctx, key).Err(); err != nil {
			return removed, fmt.Errorf("deleting sparse like set for [%s]: %w", username, err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("scanning like set keys: %w", err)
	}

	return removed, nil
}

func (s *Store) readSet(ctx context.Context, key string) ([]int, error) {
	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			return nil, fmt.Errorf("non-numeric set member [%s] in [%s]: %w", member, key, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
