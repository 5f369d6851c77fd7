package app

import (
	"fmt"
	"sort"

	"review_radar/internal/domain"
)

// Rank scores each review's body and orders the result by compound score,
// highest first. The sort is stable, so equal-score reviews keep their
// relative input order. Stored records are never touched; sentiment lives
// only on the returned RankedReview values.
func Rank(reviews []domain.Review, scorer domain.Scorer) ([]domain.RankedReview, error) {
	out := make([]domain.RankedReview, 0, len(reviews))
	for _, r := range reviews {
		s, err := scorer.Score(r.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: scoring review %s: %v", domain.ErrInternal, r.ID, err)
		}
		out = append(out, domain.RankedReview{Review: r, Sentiment: s})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sentiment.Compound > out[j].Sentiment.Compound
	})
	return out, nil
}
