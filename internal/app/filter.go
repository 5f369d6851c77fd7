package app

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"review_radar/internal/domain"
)

// ParseQuery turns the raw transport-level query into a canonical one. Date
// strings accept anything dateparse understands (ISO-8601, "May 1 2024",
// "2024/05/01", ...); bounds are interpreted in server-local time, like the
// stored timestamps. A malformed date aborts the read with ErrInvalidDate.
func ParseQuery(raw domain.RawReviewQuery) (domain.ReviewQuery, error) {
	var q domain.ReviewQuery
	if raw.Location != "" {
		loc := raw.Location
		q.Location = &loc
	}
	if raw.StartDate != "" {
		t, err := dateparse.ParseIn(raw.StartDate, time.Local)
		if err != nil {
			return domain.ReviewQuery{}, fmt.Errorf("%w: start_date %q", domain.ErrInvalidDate, raw.StartDate)
		}
		q.Start = &t
	}
	if raw.EndDate != "" {
		t, err := dateparse.ParseIn(raw.EndDate, time.Local)
		if err != nil {
			return domain.ReviewQuery{}, fmt.Errorf("%w: end_date %q", domain.ErrInvalidDate, raw.EndDate)
		}
		q.End = &t
	}
	return q, nil
}

// Filter selects the reviews matching q. Pure and stable: the returned slice
// preserves the relative order of the input. Location matching is exact and
// case-sensitive; date bounds are inclusive.
func Filter(reviews []domain.Review, q domain.ReviewQuery) []domain.Review {
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if q.Location != nil && r.Location != *q.Location {
			continue
		}
		if q.Start != nil && r.Timestamp.Before(*q.Start) {
			continue
		}
		if q.End != nil && r.Timestamp.After(*q.End) {
			continue
		}
		out = append(out, r)
	}
	return out
}
