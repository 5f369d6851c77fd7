// Command analyzer batch-scores a reviews dataset offline and logs
// per-location sentiment aggregates. Useful for eyeballing lexicon changes
// against the full dataset before they ship.
package main

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"review_radar/internal/adapters/observability"
	"review_radar/internal/dataset"
	"review_radar/internal/sentiment"
	"review_radar/internal/shared"
)

type agg struct {
	sum   float64
	count int
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	reviews, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("dataset load failed")
	}
	log.Info().
		Str("path", cfg.DatasetPath).
		Int("reviews", len(reviews)).
		Int("workers", cfg.Workers).
		Msg("analyzer starting")

	scorer := sentiment.NewAnalyzer()
	sem := semaphore.NewWeighted(int64(cfg.Workers))

	var mu sync.Mutex
	byLocation := map[string]*agg{}
	var wg sync.WaitGroup

	for _, r := range reviews {
		r := r

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			s, err := scorer.Score(r.Body)
			if err != nil {
				log.Warn().Str("id", r.ID).Err(err).Msg("score failed")
				return
			}
			mu.Lock()
			a, ok := byLocation[r.Location]
			if !ok {
				a = &agg{}
				byLocation[r.Location] = a
			}
			a.sum += s.Compound
			a.count++
			mu.Unlock()
		}()
	}
	wg.Wait()

	locations := make([]string, 0, len(byLocation))
	for loc := range byLocation {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	for _, loc := range locations {
		a := byLocation[loc]
		log.Info().
			Str("location", loc).
			Int("reviews", a.count).
			Float64("mean_compound", a.sum/float64(a.count)).
			Msg("location sentiment")
	}
	log.Info().Msg("analysis completed")
}
