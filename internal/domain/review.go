package domain

import "time"

// Review is the stored record. It is immutable after creation and is never
// deleted; the store only grows.
type Review struct {
	ID        string
	Body      string
	Location  string
	Timestamp time.Time
}

// Sentiment holds the polarity scores for one text. Compound is a single
// normalized scalar in [-1, 1]; Neg/Neu/Pos are proportions summing to ~1.
type Sentiment struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// RankedReview pairs a stored review with its query-time sentiment. The
// sentiment is ephemeral: it is recomputed per query and never written back
// to the stored record, so a lexicon change can't leave stale scores behind.
type RankedReview struct {
	Review
	Sentiment Sentiment
}

// ReviewQuery is the canonical, already-parsed filter. Nil fields impose no
// constraint. Date bounds are inclusive.
type ReviewQuery struct {
	Location *string
	Start    *time.Time
	End      *time.Time
}

// RawReviewQuery carries the unparsed date strings as they arrive at the
// transport edge. Parsing happens once, in the query service.
type RawReviewQuery struct {
	Location  string
	StartDate string
	EndDate   string
}

// TimestampLayout is the wire format for review timestamps, in server-local
// time. Matches the seed dataset's column format.
const TimestampLayout = "2006-01-02 15:04:05"
