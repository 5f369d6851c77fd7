package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"review_radar/internal/domain"
)

type QueryService struct {
	store    domain.ReviewStore
	scorer   domain.Scorer
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(st domain.ReviewStore, sc domain.Scorer, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: st, scorer: sc, cache: c, cacheTTL: ttl}
}

// ListReviews answers a read: snapshot, filter, score, rank. No side effects
// on the store. An empty result is a valid answer, not an error.
//
// Results are cached per (store generation, filter). The generation is part
// of the key, so an append makes every older cached entry unreachable and a
// read issued after Append returns always sees the new review; stale entries
// simply age out with the TTL.
func (s *QueryService) ListReviews(ctx context.Context, raw domain.RawReviewQuery) ([]domain.RankedReview, error) {
	q, err := ParseQuery(raw)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey(q)
	if s.cache != nil {
		var cached []domain.RankedReview
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	ranked, err := Rank(Filter(s.store.Snapshot(), q), s.scorer)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// size guard: don't cache oversized result sets
		if b, _ := json.Marshal(ranked); len(b) < 1_000_000 {
			_ = s.cache.Set(ctx, key, ranked, int(s.cacheTTL.Seconds()))
		}
	}
	return ranked, nil
}

func (s *QueryService) cacheKey(q domain.ReviewQuery) string {
	loc, start, end := "", "", ""
	if q.Location != nil {
		loc = *q.Location
	}
	if q.Start != nil {
		start = q.Start.Format(time.RFC3339)
	}
	if q.End != nil {
		end = q.End.Format(time.RFC3339)
	}
	return fmt.Sprintf("reviews:%d:%s:%s:%s", s.store.Generation(), loc, start, end)
}
