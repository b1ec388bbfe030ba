package domain

import "errors"

// Polarity is the like/dislike axis of a user preference.
type Polarity string

const (
	PolarityLike    Polarity = "like"
	PolarityDislike Polarity = "dislike"
)

// ValidPolarities lists the accepted polarity route values.
var ValidPolarities = []Polarity{PolarityLike, PolarityDislike}

// UserPreference is a single rating of one quote by one user.
// For a given user a quote ID is a member of at most one of the two
// preference sets; the ledger enforces this on every write.
type UserPreference struct {
	QuoteID int  `json:"quote_id"`
	Liked   bool `json:"liked"`
}

// MergePreferences flattens the two preference sets into one rated
// list, liked entries first.
func MergePreferences(likes, dislikes []int) []UserPreference {
	if len(likes) == 0 && len(dislikes) == 0 {
		return nil
	}

	merged := make([]UserPreference, 0, len(likes)+len(dislikes))
	for _, id := range likes {
		merged = append(merged, UserPreference{QuoteID: id, Liked: true})
	}
	for _, id := range dislikes {
		merged = append(merged, UserPreference{QuoteID: id, Liked: false})
	}
	return merged
}

// ErrExactlyOnePolarity is returned when a preference delete supplies
// both polarities or neither. The caller violated the contract;
// nothing is silently corrected.
var ErrExactlyOnePolarity = errors.New("exactly one of likes or dislikes must be supplied")

// ErrUserExists is returned when registering a username that already
// has a credential record.
var ErrUserExists = errors.New("username is already registered")
