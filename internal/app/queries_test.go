package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"review_radar/internal/app"
	"review_radar/internal/domain"
	"review_radar/internal/storage/memory"
)

// ---- fakes ----

type fakeScorer struct {
	byBody map[string]float64
	calls  int
	err    error
}

func (f *fakeScorer) Score(text string) (domain.Sentiment, error) {
	f.calls++
	if f.err != nil {
		return domain.Sentiment{}, f.err
	}
	return domain.Sentiment{Compound: f.byBody[text]}, nil
}

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok2 := dst.(*[]domain.RankedReview); ok2 {
		*d = v.([]domain.RankedReview)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error { return nil }

func ts(day, hour int) time.Time {
	return time.Date(2024, 5, day, hour, 0, 0, 0, time.Local)
}

func seeded() *memory.Store {
	return memory.New([]domain.Review{
		{ID: "a", Body: "Terrible service", Location: "Denver, Colorado", Timestamp: ts(1, 9)},
		{ID: "b", Body: "Wonderful stay", Location: "Denver, Colorado", Timestamp: ts(2, 9)},
		{ID: "c", Body: "Decent room", Location: "Fresno, California", Timestamp: ts(3, 9)},
	})
}

func denverScorer() *fakeScorer {
	return &fakeScorer{byBody: map[string]float64{
		"Terrible service": -0.477,
		"Wonderful stay":   0.572,
		"Decent room":      0.2,
	}}
}

// ---- filter ----

func TestFilter_Location(t *testing.T) {
	loc := "Denver, Colorado"
	got := app.Filter(seeded().Snapshot(), domain.ReviewQuery{Location: &loc})
	if len(got) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(got))
	}
	for _, r := range got {
		if r.Location != loc {
			t.Fatalf("wrong location: %s", r.Location)
		}
	}
}

func TestFilter_DateBoundsInclusive(t *testing.T) {
	start, end := ts(2, 9), ts(3, 9)
	got := app.Filter(seeded().Snapshot(), domain.ReviewQuery{Start: &start, End: &end})
	if len(got) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "c" {
		t.Fatalf("expected [b c] (input order preserved), got %+v", got)
	}
}

func TestFilter_OmittedBoundsPassEverything(t *testing.T) {
	got := app.Filter(seeded().Snapshot(), domain.ReviewQuery{})
	if len(got) != 3 {
		t.Fatalf("expected all 3 reviews, got %d", len(got))
	}
}

// ---- rank ----

func TestRank_DescendingByCompound(t *testing.T) {
	got, err := app.Rank(seeded().Snapshot(), denverScorer())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Sentiment.Compound < got[i].Sentiment.Compound {
			t.Fatalf("not descending at %d: %+v", i, got)
		}
	}
	if got[0].ID != "b" {
		t.Fatalf("expected b first, got %s", got[0].ID)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	reviews := []domain.Review{
		{ID: "x", Body: "same"},
		{ID: "y", Body: "same"},
		{ID: "z", Body: "same"},
	}
	got, err := app.Rank(reviews, &fakeScorer{byBody: map[string]float64{"same": 0.3}})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got[0].ID != "x" || got[1].ID != "y" || got[2].ID != "z" {
		t.Fatalf("tie order not preserved: %+v", got)
	}
}

// ---- query service ----

func TestListReviews_DenverRanking(t *testing.T) {
	q := app.NewQueryService(seeded(), denverScorer(), nil, 0)
	got, err := q.ListReviews(context.Background(), domain.RawReviewQuery{Location: "Denver, Colorado"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("expected [b a], got %+v", got)
	}
}

func TestListReviews_StartAfterAllIsEmptyNotError(t *testing.T) {
	q := app.NewQueryService(seeded(), denverScorer(), nil, 0)
	got, err := q.ListReviews(context.Background(), domain.RawReviewQuery{StartDate: "2030-01-01"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestListReviews_BadDate(t *testing.T) {
	q := app.NewQueryService(seeded(), denverScorer(), nil, 0)
	_, err := q.ListReviews(context.Background(), domain.RawReviewQuery{StartDate: "not a date at all zzz"})
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestListReviews_FlexibleDateFormats(t *testing.T) {
	q := app.NewQueryService(seeded(), denverScorer(), nil, 0)
	for _, s := range []string{"2024-05-01", "May 1, 2024", "2024/05/01", "2024-05-01 00:00:00"} {
		if _, err := q.ListReviews(context.Background(), domain.RawReviewQuery{StartDate: s}); err != nil {
			t.Fatalf("%q should parse: %v", s, err)
		}
	}
}

func TestListReviews_SecondCallServedFromCache(t *testing.T) {
	sc := denverScorer()
	q := app.NewQueryService(seeded(), sc, &fakeCache{}, 10*time.Minute)

	if _, err := q.ListReviews(context.Background(), domain.RawReviewQuery{Location: "Denver, Colorado"}); err != nil {
		t.Fatalf("err: %v", err)
	}
	calls := sc.calls

	got, err := q.ListReviews(context.Background(), domain.RawReviewQuery{Location: "Denver, Colorado"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if sc.calls != calls {
		t.Fatalf("expected cache hit, scorer called %d more times", sc.calls-calls)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected cached result: %+v", got)
	}
}

func TestListReviews_AppendInvalidatesCachedGeneration(t *testing.T) {
	st := seeded()
	q := app.NewQueryService(st, denverScorer(), &fakeCache{}, 10*time.Minute)

	if _, err := q.ListReviews(context.Background(), domain.RawReviewQuery{Location: "Denver, Colorado"}); err != nil {
		t.Fatalf("err: %v", err)
	}

	st.Append(domain.Review{ID: "d", Body: "Wonderful stay", Location: "Denver, Colorado", Timestamp: ts(4, 9)})

	got, err := q.ListReviews(context.Background(), domain.RawReviewQuery{Location: "Denver, Colorado"})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("read after append must include the new review, got %d", len(got))
	}
}

func TestListReviews_ScorerFailureIsInternal(t *testing.T) {
	q := app.NewQueryService(seeded(), &fakeScorer{err: errors.New("lexicon exploded")}, nil, 0)
	_, err := q.ListReviews(context.Background(), domain.RawReviewQuery{})
	if !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
