package domain

import "time"

// RecentSearch is a persisted record of a past successful search.
// Term is the unique key; repeating a search refreshes CreatedAt
// instead of inserting a duplicate.
type RecentSearch struct {
	// Term is the trimmed, original-case query text.
	Term string

	// CreatedAt is when the term was last searched successfully.
	CreatedAt time.Time
}
