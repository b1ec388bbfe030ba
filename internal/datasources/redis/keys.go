package redis

import (
	"fmt"
	"strings"

	"github.com/sage-snippets/quotes-recommender/internal/domain"
)

// Key layout. Every key is constructible from the username alone so no
// secondary index is needed:
//
//	user:<name>:credentials           hash of opaque credential fields
//	user:<name>:preferences:like      set of liked quote IDs
//	user:<name>:preferences:dislike   set of disliked quote IDs

const (
	credentialsKeyPattern = "user:*:credentials"
	likeSetKeyPattern     = "user:*:preferences:like"
)

func credentialsKey(username string) string {
	return fmt.Sprintf("user:%s:credentials", username)
}

func preferenceKey(username string, polarity domain.Polarity) string {
	return fmt.Sprintf("user:%s:preferences:%s", username, polarity)
}

// usernameFromKey extracts the username segment from any of the keys
// above. Usernames do not contain ':'; every write path rejects them.
func usernameFromKey(key string) (string, bool) {
	parts := strings.Split(key, ":")
	if len(parts) < 3 || parts[0] != "user" {
		return "", false
	}
	return parts[1], true
}
