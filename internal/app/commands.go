package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/domain"
)

type SubmissionService struct {
	store  domain.ReviewStore
	scorer domain.Scorer
	clock  clockwork.Clock
}

func NewSubmissionService(st domain.ReviewStore, sc domain.Scorer, clock clockwork.Clock) *SubmissionService {
	return &SubmissionService{store: st, scorer: sc, clock: clock}
}

// Submit validates, scores and stores one review. All validation happens
// before the append, so a rejected submission leaves no trace. The returned
// RankedReview carries the sentiment computed for the response; the stored
// record holds only the persistent fields.
func (s *SubmissionService) Submit(ctx context.Context, location, body string) (domain.RankedReview, error) {
	_ = ctx // no blocking work inside the core

	if strings.TrimSpace(location) == "" {
		observability.ObserveSubmission("missing_field")
		return domain.RankedReview{}, fmt.Errorf("%w: Location", domain.ErrMissingField)
	}
	if strings.TrimSpace(body) == "" {
		observability.ObserveSubmission("missing_field")
		return domain.RankedReview{}, fmt.Errorf("%w: ReviewBody", domain.ErrMissingField)
	}
	if !domain.LocationAllowed(location) {
		observability.ObserveSubmission("invalid_location")
		return domain.RankedReview{}, fmt.Errorf("%w: %q", domain.ErrInvalidLocation, location)
	}

	sent, err := s.scorer.Score(body)
	if err != nil {
		observability.ObserveSubmission("internal")
		return domain.RankedReview{}, fmt.Errorf("%w: scoring failed: %v", domain.ErrInternal, err)
	}

	r := domain.Review{
		ID:        uuid.NewString(),
		Body:      body,
		Location:  location,
		Timestamp: s.clock.Now().Truncate(time.Second),
	}
	s.store.Append(r)

	observability.ObserveSubmission("accepted")
	observability.ReviewsStored.Set(float64(s.store.Len()))

	return domain.RankedReview{Review: r, Sentiment: sent}, nil
}
