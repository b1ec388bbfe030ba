package domain

// Quote is the payload record stored alongside a quote's embedding in
// the vector index. Immutable once upserted, except for avatar backfill
// performed during ingestion when an existing same-author entry is found.
type Quote struct {
	ID          int             `json:"id"`
	Text        string          `json:"text"`
	Author      string          `json:"author"`
	Tags        []string        `json:"tags"`
	AvatarImg   string          `json:"avatar_img,omitempty"`
	LikingUsers []LikingUserRef `json:"liking_users,omitempty"`
}

// ScoredQuote is a quote paired with a similarity score from the index.
type ScoredQuote struct {
	Quote Quote   `json:"quote"`
	Score float64 `json:"score"`
}

// LikingUserRef identifies a scraped user who liked a quote at its
// source site. Attached to the quote payload during ingestion and
// consumed once by the preference seeding job.
type LikingUserRef struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// QuoteLikes pairs a quote ID with the scraped users who liked it.
type QuoteLikes struct {
	QuoteID int
	Users   []LikingUserRef
}

// QuoteFilters restricts quote listing and search results.
type QuoteFilters struct {
	Tags   []string
	Author string
}
