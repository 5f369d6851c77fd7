package domain

import "context"

type ReviewStore interface {
	// Append adds one review. Safe under concurrent callers; once it
	// returns, any snapshot started afterwards includes the review.
	Append(r Review)
	// Snapshot returns a point-in-time copy, safe to iterate while
	// concurrent appends proceed.
	Snapshot() []Review
	// Len reports the number of stored reviews.
	Len() int
	// Generation is a counter bumped on every append. Cache keys embed it
	// so a post-append read can never hit a pre-append cached result.
	Generation() uint64
}

// Scorer computes sentiment polarity for a text. Implementations must be
// safe for concurrent use.
type Scorer interface {
	Score(text string) (Sentiment, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
